package responses

import "time"

type AuthCode struct {
	AuthCode    int       `json:"auth_code"`
	IsLinked    bool      `json:"is_linked"`
	PhoneNumber *string   `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

type LinkPhone struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
}

type PhoneLookup struct {
	IsLinked bool       `json:"is_linked"`
	UserID   *string    `json:"user_id"`
	AuthCode *int       `json:"auth_code,omitempty"`
	LinkedAt *time.Time `json:"linked_at,omitempty"`
}

type PhoneStatus struct {
	IsLinked      bool           `json:"is_linked"`
	UserID        *string        `json:"user_id"`
	PhoneNumber   string         `json:"phone_number"`
	Message       string         `json:"message"`
	Status        string         `json:"status"`
	*PhoneStatusLinked
}

// PhoneStatusLinked is present only for linked phones. UserInfo renders as
// null when the profile could not be loaded.
type PhoneStatusLinked struct {
	UserInfo      *UserInfo      `json:"user_info"`
	PhoneLinkInfo *PhoneLinkInfo `json:"phone_link_info"`
}

type UserInfo struct {
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	AccountCreated *time.Time `json:"account_created"`
}

type PhoneLinkInfo struct {
	LinkedAt time.Time `json:"linked_at"`
}

type EndpointDescription struct {
	Endpoint        string                 `json:"endpoint"`
	Method          string                 `json:"method"`
	Description     string                 `json:"description"`
	RequiredHeaders map[string]string      `json:"required_headers"`
	RequestBody     map[string]string      `json:"request_body"`
	Response        map[string]interface{} `json:"response"`
}

type CleanupExpiredCodes struct {
	Message      string            `json:"message"`
	CleanedCount int               `json:"cleaned_count"`
	ExpiredCodes []ExpiredAuthCode `json:"expired_codes,omitempty"`
}

type ExpiredAuthCode struct {
	ID        string    `json:"id"`
	AuthCode  int       `json:"auth_code"`
	CreatedAt time.Time `json:"created_at"`
}
