package dto

// Response is the envelope wrapping every successful API result.
type Response struct {
	Data    interface{} `json:"data"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
}

// ErrorResponse is the envelope wrapping every failure. Error holds a short
// machine-readable tag, or a []FieldError list for validation failures.
type ErrorResponse struct {
	Error   interface{} `json:"error"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
