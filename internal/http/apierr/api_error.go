package apierr

// ErrorResponse is the JSON error envelope returned by the API. The field
// names and error texts are fixed by the integration contract.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// InvalidJSONBody is the response for a request body that cannot be decoded
// as JSON.
func InvalidJSONBody() ErrorResponse {
	return ErrorResponse{Error: "Invalid JSON body"}
}

// Validation is the response for a payload violating one or more field rules.
// Details carries one message per violated rule, in rule order.
func Validation(details []string) ErrorResponse {
	return ErrorResponse{Error: "ValidationError", Details: details}
}

// Internal is the response for unexpected handling failures, e.g. from the
// panic recoverer.
func Internal() ErrorResponse {
	return ErrorResponse{Error: "InternalServerError"}
}
