package cleanup

import (
	"context"
	"phonelink-service/internal/app/config"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker sweeps expired auth codes on a cron schedule.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	usecase contracts.CleanupUsecase
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, usecase contracts.CleanupUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, usecase: usecase}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Cleanup.WorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("cleanup.worker: invalid cron spec, falling back to default",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(constvars.CleanupDefaultCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
	w.log.Info("cleanup.worker: started", zap.String(constvars.LoggingCronSpecKey, spec))
}

// Stop cancels in-flight sweeps and waits for running jobs to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())

	acquired, token, err := w.locker.TryLock(ctx, constvars.CleanupLeaderLockKey, constvars.CleanupLeaderLockTTL)
	if err != nil {
		w.log.Warn("cleanup.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("cleanup.worker: leader lock held by another instance")
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, constvars.CleanupLeaderLockKey, token); err != nil {
			w.log.Warn("cleanup.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	result, err := w.usecase.CleanupExpiredCodes(ctx, TriggerWorker)
	if err != nil {
		w.log.Error("cleanup.worker: sweep failed", zap.Error(err))
		return
	}
	w.log.Info("cleanup.worker: sweep finished", zap.Int(constvars.LoggingCountKey, result.CleanedCount))
}
