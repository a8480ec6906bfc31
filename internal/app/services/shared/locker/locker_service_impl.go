package locker

import (
	"context"
	"fmt"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

// lockService hands out Redis leases identified by a random token. Only the
// holder of the token can release a lease before it expires.
type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
	newToken  func() string
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = newLockService(repo, logger)
	})
	return lockerServiceInstance
}

func newLockService(repo contracts.RedisRepository, logger *zap.Logger) *lockService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
		newToken:  uuid.NewString,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	}

	token := s.newToken()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, token, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error acquiring lease", append(fields, zap.Error(err))...)
		return false, "", err
	}
	if !acquired {
		s.Log.Debug("lockService.TryLock lease busy", fields...)
		return false, "", nil
	}

	s.Log.Info("lockService.TryLock lease acquired", append(fields,
		zap.String(constvars.LoggingLockValueKey, token),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
	)...)
	return true, token, nil
}

// Unlock releases the lease atomically. A lease that already expired is not
// an error; a lease now held by another token is.
func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	}

	result, err := s.redisRepo.DeleteIfValue(ctx, key, lockValue)
	if err != nil {
		s.Log.Error("lockService.Unlock error releasing lease", append(fields, zap.Error(err))...)
		return err
	}

	switch result {
	case contracts.DeleteIfValueMissing:
		s.Log.Info("lockService.Unlock lease already expired", fields...)
		return nil
	case contracts.DeleteIfValueOtherOwner:
		err := exceptions.ErrRedisUnlock(fmt.Errorf("lease %s is held by another owner", key))
		s.Log.Warn("lockService.Unlock lease owned elsewhere", append(fields, zap.Error(err))...)
		return err
	}

	s.Log.Info("lockService.Unlock lease released", fields...)
	return nil
}
