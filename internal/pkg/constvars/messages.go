package constvars

// Success messages for clients
const (
	MessagePhoneLinked            = "Phone number successfully linked to your account!"
	MessagePhoneUnlinked          = "Phone number successfully unlinked from your account"
	MessagePhoneNotLinked         = "Phone number not linked to any account"
	MessagePhoneIsLinked          = "Phone number is linked to an account"
	MessageWebhookPhoneNotLinked  = "Phone number not linked to any account. Send #auth <code> to link your phone."
	MessageWebhookMessageReceived = "Message received from linked phone"
	MessageNoExpiredCodes         = "No expired auth codes found"
	MessageExpiredCodesCleaned    = "Successfully cleaned up %d expired auth codes"
	MessageTodoDeleted            = "Todo deleted successfully"
)

// Outbound WhatsApp texts
const (
	WhatsAppLinkConfirmation = "Your phone number is now linked to your account. You can start sending messages."
)
