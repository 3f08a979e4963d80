package dto

// MessageResponse acknowledges a successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// NotFoundResponse is returned with 404 and 500 statuses.
type NotFoundResponse struct {
	Detail string `json:"detail" example:"menu not found"`
}

// ValidationErrorItem describes one rejected input.
type ValidationErrorItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrorResponse is returned with the 422 status.
type ValidationErrorResponse struct {
	Detail []ValidationErrorItem `json:"detail"`
}
