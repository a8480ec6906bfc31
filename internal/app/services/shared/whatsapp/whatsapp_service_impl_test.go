package whatsapp

import (
	"context"
	"errors"
	"testing"

	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type published struct {
	key string
	msg amqp091.Publishing
}

type fakePublisher struct {
	messages []published
	err      error
}

func (f *fakePublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, published{key: key, msg: msg})
	return nil
}

func TestWhatsAppService_RoutesToQueues(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewPublisherService(publisher, zap.NewNop(), "whatsapp.outbound", "whatsapp.inbound")
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	require.NoError(t, svc.SendMessage(ctx, &requests.WhatsAppMessage{To: "+15551234567", Message: "linked"}))
	require.NoError(t, svc.PublishInbound(ctx, &requests.InboundWhatsAppMessage{UserID: "user-1", Content: "hi"}))

	require.Len(t, publisher.messages, 2)
	assert.Equal(t, "whatsapp.outbound", publisher.messages[0].key)
	assert.Equal(t, "whatsapp.inbound", publisher.messages[1].key)
	assert.Equal(t, "req-1", publisher.messages[0].msg.MessageId)
	assert.Equal(t, amqp091.Persistent, publisher.messages[0].msg.DeliveryMode)

	var outbound requests.WhatsAppMessage
	require.NoError(t, json.Unmarshal(publisher.messages[0].msg.Body, &outbound))
	assert.Equal(t, "+15551234567", outbound.To)
}

func TestWhatsAppService_PublishFailure(t *testing.T) {
	svc := NewPublisherService(&fakePublisher{err: errors.New("channel closed")}, zap.NewNop(), "out", "in")
	err := svc.SendMessage(context.Background(), &requests.WhatsAppMessage{To: "+1", Message: "x"})
	assert.Error(t, err)
}

func TestNoopWhatsAppService(t *testing.T) {
	svc := &noopWhatsAppService{Log: zap.NewNop()}
	assert.NoError(t, svc.SendMessage(context.Background(), &requests.WhatsAppMessage{}))
	assert.NoError(t, svc.PublishInbound(context.Background(), &requests.InboundWhatsAppMessage{}))
}
