package whatsapp

import (
	"context"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the subset of *amqp091.Channel used to publish messages.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type whatsAppService struct {
	Channel       Publisher
	OutboundQueue string
	InboundQueue  string
	Log           *zap.Logger
}

var (
	whatsAppServiceInstance contracts.WhatsAppService
	onceWhatsAppService     sync.Once
	whatsAppServiceError    error
)

// NewWhatsAppService declares both queues on a dedicated channel. A nil
// connection yields a service that drops messages, for deployments without RabbitMQ.
func NewWhatsAppService(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, outboundQueue, inboundQueue string) (contracts.WhatsAppService, error) {
	onceWhatsAppService.Do(func() {
		if rabbitMQConnection == nil {
			whatsAppServiceInstance = &noopWhatsAppService{Log: logger}
			return
		}

		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			whatsAppServiceError = err
			return
		}
		for _, queue := range []string{outboundQueue, inboundQueue} {
			_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
			if err != nil {
				whatsAppServiceError = err
				return
			}
		}

		whatsAppServiceInstance = NewPublisherService(channel, logger, outboundQueue, inboundQueue)
	})
	return whatsAppServiceInstance, whatsAppServiceError
}

func NewPublisherService(channel Publisher, logger *zap.Logger, outboundQueue, inboundQueue string) contracts.WhatsAppService {
	return &whatsAppService{
		Channel:       channel,
		OutboundQueue: outboundQueue,
		InboundQueue:  inboundQueue,
		Log:           logger,
	}
}

func (s *whatsAppService) SendMessage(ctx context.Context, request *requests.WhatsAppMessage) error {
	return s.publish(ctx, "whatsAppService.SendMessage", s.OutboundQueue, request)
}

func (s *whatsAppService) PublishInbound(ctx context.Context, request *requests.InboundWhatsAppMessage) error {
	return s.publish(ctx, "whatsAppService.PublishInbound", s.InboundQueue, request)
}

func (s *whatsAppService) publish(ctx context.Context, operation, queue string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, queue),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		s.Log.Error(operation+" error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    requestID,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = s.Channel.PublishWithContext(ctx, "", queue, false, false, message)
	if err != nil {
		s.Log.Error(operation+" error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	s.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, queue),
	)
	return nil
}

type noopWhatsAppService struct {
	Log *zap.Logger
}

func (s *noopWhatsAppService) SendMessage(ctx context.Context, request *requests.WhatsAppMessage) error {
	s.Log.Debug("noopWhatsAppService.SendMessage skipped, messaging disabled")
	return nil
}

func (s *noopWhatsAppService) PublishInbound(ctx context.Context, request *requests.InboundWhatsAppMessage) error {
	s.Log.Debug("noopWhatsAppService.PublishInbound skipped, messaging disabled")
	return nil
}
