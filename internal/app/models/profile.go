package models

import (
	"phonelink-service/internal/pkg/dto/responses"
	"time"
)

type Profile struct {
	ID        string     `bson:"_id"`
	Email     string     `bson:"email"`
	FullName  string     `bson:"full_name"`
	CreatedAt *time.Time `bson:"created_at,omitempty"`
}

func (p Profile) ConvertIntoUserInfo() *responses.UserInfo {
	return &responses.UserInfo{
		Email:          p.Email,
		FullName:       p.FullName,
		AccountCreated: p.CreatedAt,
	}
}
