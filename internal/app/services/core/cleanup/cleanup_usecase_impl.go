package cleanup

import (
	"context"
	"fmt"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	TriggerHTTP   = "http"
	TriggerWorker = "worker"
)

type cleanupUsecase struct {
	PhoneLinkRepository contracts.PhoneLinkRepository
	ReportStorage       contracts.ReportStorage
	ReportBucket        string
	Log                 *zap.Logger
	now                 func() time.Time
}

var (
	cleanupUsecaseInstance contracts.CleanupUsecase
	onceCleanupUsecase     sync.Once
)

func NewCleanupUsecase(
	phoneLinkRepository contracts.PhoneLinkRepository,
	reportStorage contracts.ReportStorage,
	reportBucket string,
	logger *zap.Logger,
) contracts.CleanupUsecase {
	onceCleanupUsecase.Do(func() {
		cleanupUsecaseInstance = newCleanupUsecase(phoneLinkRepository, reportStorage, reportBucket, logger)
	})
	return cleanupUsecaseInstance
}

func newCleanupUsecase(
	phoneLinkRepository contracts.PhoneLinkRepository,
	reportStorage contracts.ReportStorage,
	reportBucket string,
	logger *zap.Logger,
) *cleanupUsecase {
	return &cleanupUsecase{
		PhoneLinkRepository: phoneLinkRepository,
		ReportStorage:       reportStorage,
		ReportBucket:        reportBucket,
		Log:                 logger,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

func (uc *cleanupUsecase) CleanupExpiredCodes(ctx context.Context, trigger string) (*responses.CleanupExpiredCodes, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cleanupUsecase.CleanupExpiredCodes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTriggerKey, trigger),
	)

	now := uc.now()
	expired, err := uc.PhoneLinkRepository.SoftDeleteExpired(ctx, now.Add(-constvars.AuthCodeValidity), now)
	if err != nil {
		uc.Log.Error("cleanupUsecase.CleanupExpiredCodes error sweeping expired phone links",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if len(expired) == 0 {
		uc.Log.Info("cleanupUsecase.CleanupExpiredCodes found nothing to clean",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return &responses.CleanupExpiredCodes{
			Message:      constvars.MessageNoExpiredCodes,
			CleanedCount: 0,
		}, nil
	}

	uc.archiveReport(ctx, &models.CleanupReport{
		RanAt:        now,
		Trigger:      trigger,
		CleanedCount: len(expired),
		ExpiredCodes: expired,
	})

	expiredCodes := make([]responses.ExpiredAuthCode, 0, len(expired))
	for _, code := range expired {
		expiredCodes = append(expiredCodes, code.ConvertIntoResponse())
	}

	uc.Log.Info("cleanupUsecase.CleanupExpiredCodes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(expired)),
	)
	return &responses.CleanupExpiredCodes{
		Message:      fmt.Sprintf(constvars.MessageExpiredCodesCleaned, len(expired)),
		CleanedCount: len(expired),
		ExpiredCodes: expiredCodes,
	}, nil
}

func (uc *cleanupUsecase) archiveReport(ctx context.Context, report *models.CleanupReport) {
	if uc.ReportStorage == nil || uc.ReportBucket == "" {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectName := fmt.Sprintf("%s/%s.json", constvars.CleanupReportPrefix, report.RanAt.Format("20060102T150405Z"))
	location, err := uc.ReportStorage.UploadJSON(ctx, uc.ReportBucket, objectName, report)
	if err != nil {
		uc.Log.Warn("cleanupUsecase.CleanupExpiredCodes failed to archive report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return
	}
	uc.Log.Info("cleanupUsecase.CleanupExpiredCodes archived report",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, location),
	)
}
