package responses

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// Merge flattens the envelope with extra top-level keys.
func (e ErrorResponse) Merge(fields map[string]interface{}) map[string]interface{} {
	body := map[string]interface{}{
		"success": e.Success,
		"error":   e.Error,
	}
	if e.Message != "" {
		body["message"] = e.Message
	}
	if e.Details != "" {
		body["details"] = e.Details
	}
	for key, value := range fields {
		body[key] = value
	}
	return body
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
