package requests

type WhatsAppAuth struct {
	Date              string `json:"date" validate:"notblank"`
	Message           string `json:"message" validate:"notblank"`
	SenderPhoneNumber string `json:"senderPhoneNumber" validate:"notblank"`
}

type PhoneLookup struct {
	PhoneNumber string `json:"phone_number" validate:"notblank"`
}

type PhoneStatus struct {
	SenderPhoneNumber string `json:"senderPhoneNumber" validate:"notblank"`
}

// WebhookMessage is an inbound message relayed by the messaging gateway.
type WebhookMessage struct {
	Message           string
	SenderPhoneNumber string
	Date              string
	Type              string
}
