package dto

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// NoticeResponse reports a degraded or unavailable feature without failing.
type NoticeResponse struct {
	Available bool   `json:"available"`
	Notice    string `json:"notice"`
}
