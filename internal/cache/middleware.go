package cache

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderName reports whether a response was served from the cache.
const HeaderName = "X-Cache"

type entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ReadThrough serves GET requests from store when a fresh entry exists and
// records 200 responses otherwise. Store failures are logged and the request
// falls through to the handler.
func ReadThrough(store Store, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := Key(prefix, c.Request.Method, c.Request.URL.Path, c.Request.URL.Query())

		raw, ok, err := store.Get(ctx, key)
		switch {
		case err != nil:
			slog.Warn("cache read failed", slog.String("key", key), slog.Any("error", err))
		case ok:
			var e entry
			if err := json.Unmarshal(raw, &e); err == nil {
				c.Header(HeaderName, "HIT")
				c.Data(e.Status, e.ContentType, e.Body)
				c.Abort()
				return
			}
			slog.Warn("discarding undecodable cache entry", slog.String("key", key))
		}

		c.Header(HeaderName, "MISS")
		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		if rec.Status() != http.StatusOK {
			return
		}
		payload, err := json.Marshal(entry{
			Status:      rec.Status(),
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.body.Bytes(),
		})
		if err != nil {
			slog.Warn("cache encode failed", slog.String("key", key), slog.Any("error", err))
			return
		}
		if err := store.Set(ctx, key, payload); err != nil {
			slog.Warn("cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}
}

// InvalidateOnWrite purges store after every successful mutating request.
func InvalidateOnWrite(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			return
		}
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}
		if err := store.Purge(c.Request.Context()); err != nil {
			slog.Warn("cache purge failed", slog.Any("error", err))
		}
	}
}
