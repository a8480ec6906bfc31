package models

// Principal identifies who is calling an endpoint.
type Principal struct {
	AuthMethod string
	UserID     string
}

// IsUser reports whether the caller was authenticated with a user session.
func (p Principal) IsUser() bool {
	return p.UserID != ""
}

type Identity struct {
	UserID string
	Email  string
}
