package requests

type WhatsAppMessage struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type InboundWhatsAppMessage struct {
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
	Content     string `json:"content"`
	Date        string `json:"date,omitempty"`
	ReceivedAt  string `json:"received_at"`
}
