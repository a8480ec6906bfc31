package contracts

import (
	"context"
	"phonelink-service/internal/pkg/dto/requests"
)

type WhatsAppService interface {
	SendMessage(ctx context.Context, request *requests.WhatsAppMessage) error
	PublishInbound(ctx context.Context, request *requests.InboundWhatsAppMessage) error
}
