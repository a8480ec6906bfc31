package phonelinks

import (
	"context"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/dto/requests"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockPhoneLinkRepository struct {
	mock.Mock
}

func (m *MockPhoneLinkRepository) FindActiveByUserID(ctx context.Context, userID string) (*models.PhoneLink, error) {
	args := m.Called(ctx, userID)
	link, _ := args.Get(0).(*models.PhoneLink)
	return link, args.Error(1)
}

func (m *MockPhoneLinkRepository) FindLinkedByUserID(ctx context.Context, userID string) (*models.PhoneLink, error) {
	args := m.Called(ctx, userID)
	link, _ := args.Get(0).(*models.PhoneLink)
	return link, args.Error(1)
}

func (m *MockPhoneLinkRepository) FindActiveByAuthCode(ctx context.Context, authCode int) (*models.PhoneLink, error) {
	args := m.Called(ctx, authCode)
	link, _ := args.Get(0).(*models.PhoneLink)
	return link, args.Error(1)
}

func (m *MockPhoneLinkRepository) FindActiveByPhoneNumber(ctx context.Context, phoneNumber string) ([]models.PhoneLink, error) {
	args := m.Called(ctx, phoneNumber)
	links, _ := args.Get(0).([]models.PhoneLink)
	return links, args.Error(1)
}

func (m *MockPhoneLinkRepository) Create(ctx context.Context, phoneLink *models.PhoneLink) (*models.PhoneLink, error) {
	args := m.Called(ctx, phoneLink)
	link, _ := args.Get(0).(*models.PhoneLink)
	return link, args.Error(1)
}

func (m *MockPhoneLinkRepository) LinkPhoneNumber(ctx context.Context, input *contracts.LinkPhoneNumberInput) (*models.PhoneLink, error) {
	args := m.Called(ctx, input)
	link, _ := args.Get(0).(*models.PhoneLink)
	return link, args.Error(1)
}

func (m *MockPhoneLinkRepository) UnlinkPhoneNumber(ctx context.Context, phoneLinkID string) (bool, error) {
	args := m.Called(ctx, phoneLinkID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPhoneLinkRepository) Deactivate(ctx context.Context, phoneLinkID string, at time.Time) error {
	args := m.Called(ctx, phoneLinkID, at)
	return args.Error(0)
}

func (m *MockPhoneLinkRepository) DeactivateAllByUserID(ctx context.Context, userID string, at time.Time) (int64, error) {
	args := m.Called(ctx, userID, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhoneLinkRepository) SoftDeleteExpired(ctx context.Context, createdBefore, at time.Time) ([]models.ExpiredAuthCode, error) {
	args := m.Called(ctx, createdBefore, at)
	codes, _ := args.Get(0).([]models.ExpiredAuthCode)
	return codes, args.Error(1)
}

type MockWhatsAppService struct {
	mock.Mock
}

func (m *MockWhatsAppService) SendMessage(ctx context.Context, request *requests.WhatsAppMessage) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockWhatsAppService) PublishInbound(ctx context.Context, request *requests.InboundWhatsAppMessage) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*models.Profile)
	return profile, args.Error(1)
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func strPtr(value string) *string {
	return &value
}
