package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"restaurant-api/internal/services"
	"restaurant-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	locBody  = "body"
	locQuery = "query"
	locPath  = "path"
)

// respondValidation writes a 422 with the given items.
func respondValidation(c *gin.Context, items ...dto.ValidationErrorItem) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Detail: items})
}

// respondError maps a service error onto the HTTP status taxonomy.
func respondError(c *gin.Context, err error) {
	var nf *services.NotFoundError
	switch {
	case errors.As(err, &nf):
		c.AbortWithStatusJSON(http.StatusNotFound, dto.NotFoundResponse{Detail: nf.Error()})
	case errors.Is(err, services.ErrValidation):
		respondValidation(c, dto.ValidationErrorItem{Loc: []string{locBody}, Msg: err.Error(), Type: "value_error"})
	case errors.Is(err, services.ErrConflict):
		c.AbortWithStatusJSON(http.StatusConflict, dto.NotFoundResponse{Detail: "Conflict"})
	default:
		slog.Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NotFoundResponse{Detail: "Internal Server Error"})
	}
}

// FormatValidationErrors converts a binding or validation failure into
// FastAPI-style error items rooted at loc.
func FormatValidationErrors(err error, loc string) []dto.ValidationErrorItem {
	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		numErr    *strconv.NumError
	)
	switch {
	case errors.As(err, &verrs):
		items := make([]dto.ValidationErrorItem, 0, len(verrs))
		for _, fe := range verrs {
			msg, typ := describeFieldError(fe)
			items = append(items, dto.ValidationErrorItem{Loc: []string{loc, fe.Field()}, Msg: msg, Type: typ})
		}
		return items
	case errors.As(err, &typeErr):
		return []dto.ValidationErrorItem{{
			Loc:  []string{loc, typeErr.Field},
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type),
			Type: "type_error",
		}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return []dto.ValidationErrorItem{{Loc: []string{loc}, Msg: "JSON decode error: " + err.Error(), Type: "value_error.jsondecode"}}
	case errors.As(err, &numErr):
		return []dto.ValidationErrorItem{{Loc: []string{loc}, Msg: "value is not a valid integer", Type: "type_error.integer"}}
	default:
		return []dto.ValidationErrorItem{{Loc: []string{loc}, Msg: err.Error(), Type: "value_error"}}
	}
}

func describeFieldError(fe validator.FieldError) (msg, typ string) {
	switch fe.Tag() {
	case "required":
		return "field required", "value_error.missing"
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", fe.Param()), "value_error.any_str.max_length"
	case "min":
		return fmt.Sprintf("ensure this value has at least %s characters", fe.Param()), "value_error.any_str.min_length"
	case "gte":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param()), "value_error.number.not_ge"
	case "decimal":
		return "value is not a valid decimal", "type_error.decimal"
	default:
		return fmt.Sprintf("field validation failed on the '%s' tag", fe.Tag()), "value_error"
	}
}
