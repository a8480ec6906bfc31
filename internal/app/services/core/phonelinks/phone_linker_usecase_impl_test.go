package phonelinks

import (
	"context"
	"errors"
	"testing"
	"time"

	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var linkerNow = time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

func newTestPhoneLinkerUsecase(repo *MockPhoneLinkRepository, whatsApp contracts.WhatsAppService) *phoneLinkerUsecase {
	uc := newPhoneLinkerUsecase(repo, whatsApp, zap.NewNop())
	uc.now = fixedClock(linkerNow)
	return uc
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	assert.Equal(t, status, customErr.StatusCode)
}

func validAuthRequest() *requests.WhatsAppAuth {
	return &requests.WhatsAppAuth{
		Date:              "2025-01-02T12:00:00Z",
		Message:           "#auth 12345678",
		SenderPhoneNumber: "+15551234567",
	}
}

func TestPhoneLinkerUsecase_LinkPhone(t *testing.T) {
	ctx := context.Background()
	pending := &models.PhoneLink{
		ID:        "link-1",
		UserID:    "user-1",
		AuthCode:  12345678,
		IsActive:  true,
		CreatedAt: linkerNow.Add(-time.Hour),
	}

	t.Run("links the phone and sends a confirmation", func(t *testing.T) {
		repo := new(MockPhoneLinkRepository)
		whatsApp := new(MockWhatsAppService)
		repo.On("FindActiveByAuthCode", ctx, 12345678).Return(pending, nil)
		repo.On("LinkPhoneNumber", ctx, &contracts.LinkPhoneNumberInput{
			PhoneLinkID:  "link-1",
			AuthCode:     12345678,
			PhoneNumber:  "+15551234567",
			LinkedAt:     linkerNow,
			CreatedAfter: linkerNow.Add(-constvars.AuthCodeValidity),
		}).Return(&models.PhoneLink{ID: "link-1", UserID: "user-1", PhoneNumberLinked: strPtr("+15551234567")}, nil)
		whatsApp.On("SendMessage", ctx, &requests.WhatsAppMessage{
			To:      "+15551234567",
			Message: constvars.WhatsAppLinkConfirmation,
		}).Return(nil)

		result, err := newTestPhoneLinkerUsecase(repo, whatsApp).LinkPhone(ctx, validAuthRequest())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, constvars.MessagePhoneLinked, result.Message)
		assert.Equal(t, "user-1", result.UserID)
		assert.Equal(t, "+15551234567", result.PhoneNumber)
		repo.AssertExpectations(t)
		whatsApp.AssertExpectations(t)
	})

	t.Run("confirmation failure does not fail the link", func(t *testing.T) {
		repo := new(MockPhoneLinkRepository)
		whatsApp := new(MockWhatsAppService)
		repo.On("FindActiveByAuthCode", ctx, 12345678).Return(pending, nil)
		repo.On("LinkPhoneNumber", ctx, mock.Anything).Return(&models.PhoneLink{ID: "link-1", UserID: "user-1"}, nil)
		whatsApp.On("SendMessage", ctx, mock.Anything).Return(errors.New("broker down"))

		result, err := newTestPhoneLinkerUsecase(repo, whatsApp).LinkPhone(ctx, validAuthRequest())
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("missing fields", func(t *testing.T) {
		repo := new(MockPhoneLinkRepository)
		request := validAuthRequest()
		request.Date = "  "

		_, err := newTestPhoneLinkerUsecase(repo, nil).LinkPhone(ctx, request)
		assertStatus(t, err, constvars.StatusBadRequest)
		repo.AssertNotCalled(t, "FindActiveByAuthCode", mock.Anything, mock.Anything)
	})

	t.Run("invalid command format", func(t *testing.T) {
		for _, message := range []string{"hello", "#auth 1234", "#auth 123456789", "auth 12345678"} {
			request := validAuthRequest()
			request.Message = message
			_, err := newTestPhoneLinkerUsecase(new(MockPhoneLinkRepository), nil).LinkPhone(ctx, request)
			assertStatus(t, err, constvars.StatusBadRequest)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		repo := new(MockPhoneLinkRepository)
		repo.On("FindActiveByAuthCode", ctx, 12345678).Return(nil, nil)

		_, err := newTestPhoneLinkerUsecase(repo, nil).LinkPhone(ctx, validAuthRequest())
		assertStatus(t, err, constvars.StatusNotFound)
	})

	t.Run("expired code is deactivated", func(t *testing.T) {
		repo := new(MockPhoneLinkRepository)
		stale := *pending
		stale.CreatedAt = linkerNow.Add(-25 * time.Hour)
		repo.On("FindActiveByAuthCode", ctx, 12345678).Return(&stale, nil)
		repo.On("Deactivate", ctx, "link-1", linkerNow).Return(nil)

		_, err := newTestPhoneLinkerUsecase(repo, nil).LinkPhone(ctx, validAuthRequest())
		assertStatus(t, err, constvars.StatusGone)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "LinkPhoneNumber", mock.Anything, mock.Anything)
	})

	t.Run("code consumed by a concurrent request", func(t *testing.T) {
		repo := new(MockPhoneLinkRepository)
		repo.On("FindActiveByAuthCode", ctx, 12345678).Return(pending, nil)
		repo.On("LinkPhoneNumber", ctx, mock.Anything).Return(nil, nil)

		_, err := newTestPhoneLinkerUsecase(repo, nil).LinkPhone(ctx, validAuthRequest())
		assertStatus(t, err, constvars.StatusConflict)
	})

	t.Run("phone already linked to another account", func(t *testing.T) {
		repo := new(MockPhoneLinkRepository)
		repo.On("FindActiveByAuthCode", ctx, 12345678).Return(pending, nil)
		repo.On("LinkPhoneNumber", ctx, mock.Anything).
			Return(nil, uniqueViolation(queries.ConstraintPhoneLinksActivePhone))

		_, err := newTestPhoneLinkerUsecase(repo, nil).LinkPhone(ctx, validAuthRequest())
		assertStatus(t, err, constvars.StatusConflict)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientPhoneAlreadyLinked, customErr.ClientError)
	})

	t.Run("database failure while linking", func(t *testing.T) {
		repo := new(MockPhoneLinkRepository)
		repo.On("FindActiveByAuthCode", ctx, 12345678).Return(pending, nil)
		repo.On("LinkPhoneNumber", ctx, mock.Anything).
			Return(nil, exceptions.ErrPostgresDBUpdateData(errors.New("connection reset")))

		_, err := newTestPhoneLinkerUsecase(repo, nil).LinkPhone(ctx, validAuthRequest())
		assertStatus(t, err, constvars.StatusInternalServerError)
	})
}

func TestPhoneLinkerUsecase_UnlinkPhone(t *testing.T) {
	ctx := context.Background()

	t.Run("unlinks the linked phone", func(t *testing.T) {
		repo := new(MockPhoneLinkRepository)
		repo.On("FindLinkedByUserID", ctx, "user-1").
			Return(&models.PhoneLink{ID: "link-1", UserID: "user-1", PhoneNumberLinked: strPtr("+15551234567")}, nil)
		repo.On("UnlinkPhoneNumber", ctx, "link-1").Return(true, nil)

		result, err := newTestPhoneLinkerUsecase(repo, nil).UnlinkPhone(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, constvars.MessagePhoneUnlinked, result.Message)
	})

	t.Run("nothing linked", func(t *testing.T) {
		repo := new(MockPhoneLinkRepository)
		repo.On("FindLinkedByUserID", ctx, "user-1").Return(nil, nil)

		_, err := newTestPhoneLinkerUsecase(repo, nil).UnlinkPhone(ctx, "user-1")
		assertStatus(t, err, constvars.StatusNotFound)
	})

	t.Run("row changed before the update", func(t *testing.T) {
		repo := new(MockPhoneLinkRepository)
		repo.On("FindLinkedByUserID", ctx, "user-1").Return(&models.PhoneLink{ID: "link-1"}, nil)
		repo.On("UnlinkPhoneNumber", ctx, "link-1").Return(false, nil)

		_, err := newTestPhoneLinkerUsecase(repo, nil).UnlinkPhone(ctx, "user-1")
		assertStatus(t, err, constvars.StatusNotFound)
	})
}
