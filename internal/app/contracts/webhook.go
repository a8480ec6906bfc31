package contracts

import (
	"context"
	"phonelink-service/internal/pkg/dto/requests"
)

type WebhookUsecase interface {
	// HandleMessage returns the JSON body to send back to the gateway.
	HandleMessage(ctx context.Context, message *requests.WebhookMessage) (interface{}, error)
}
