package utils

import (
	"context"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/constvars"
)

// PrincipalFromContext reads the caller identity stored by the auth middlewares.
func PrincipalFromContext(ctx context.Context) models.Principal {
	authMethod, _ := ctx.Value(constvars.CONTEXT_AUTH_METHOD_KEY).(string)
	userID, _ := ctx.Value(constvars.CONTEXT_USER_ID_KEY).(string)
	return models.Principal{
		AuthMethod: authMethod,
		UserID:     userID,
	}
}
