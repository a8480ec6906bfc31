package models

import (
	"phonelink-service/internal/pkg/dto/responses"
	"time"
)

// PhoneLink ties a user to a one-time auth code and, once linked, a phone number.
type PhoneLink struct {
	ID                string
	UserID            string
	AuthCode          int
	PhoneNumberLinked *string
	LinkedAt          *time.Time
	IsActive          bool
	IsDeleted         bool
	DeletedAt         *time.Time
	CreatedAt         time.Time
}

func (p PhoneLink) IsLinked() bool {
	return p.PhoneNumberLinked != nil
}

func (p PhoneLink) IsExpired(now time.Time, validity time.Duration) bool {
	return now.Sub(p.CreatedAt) > validity
}

// LinkedSince falls back to the creation time for rows linked before linked_at existed.
func (p PhoneLink) LinkedSince() time.Time {
	if p.LinkedAt != nil {
		return *p.LinkedAt
	}
	return p.CreatedAt
}

func (p PhoneLink) ConvertIntoAuthCodeResponse() responses.AuthCode {
	return responses.AuthCode{
		AuthCode:    p.AuthCode,
		IsLinked:    p.IsLinked(),
		PhoneNumber: p.PhoneNumberLinked,
		CreatedAt:   p.CreatedAt,
	}
}

type ExpiredAuthCode struct {
	ID        string    `json:"id"`
	AuthCode  int       `json:"auth_code"`
	CreatedAt time.Time `json:"created_at"`
}

func (e ExpiredAuthCode) ConvertIntoResponse() responses.ExpiredAuthCode {
	return responses.ExpiredAuthCode{
		ID:        e.ID,
		AuthCode:  e.AuthCode,
		CreatedAt: e.CreatedAt,
	}
}

// CleanupReport is the archived record of one expiry sweep.
type CleanupReport struct {
	RanAt        time.Time         `json:"ran_at"`
	Trigger      string            `json:"trigger"`
	CleanedCount int               `json:"cleaned_count"`
	ExpiredCodes []ExpiredAuthCode `json:"expired_codes"`
}
