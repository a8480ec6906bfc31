package responses

type WebhookAuth struct {
	Type string `json:"type"`
	*LinkPhone
}

// WebhookAuthFailure is the linker's error body, answered with 200 so the gateway does not redeliver.
type WebhookAuthFailure struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

type WebhookUnlinked struct {
	Type        string `json:"type"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	PhoneNumber string `json:"phone_number"`
}

type WebhookMessage struct {
	Type        string `json:"type"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
	Content     string `json:"content"`
}
