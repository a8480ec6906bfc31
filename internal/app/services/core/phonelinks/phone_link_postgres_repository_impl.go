package phonelinks

import (
	"context"
	"database/sql"
	"errors"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/queries"
	"sync"
	"time"

	"go.uber.org/zap"
)

type phoneLinkPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	phoneLinkPostgresRepositoryInstance contracts.PhoneLinkRepository
	oncePhoneLinkPostgresRepository     sync.Once
)

func NewPhoneLinkPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PhoneLinkRepository {
	oncePhoneLinkPostgresRepository.Do(func() {
		phoneLinkPostgresRepositoryInstance = newPhoneLinkPostgresRepository(db, logger)
	})
	return phoneLinkPostgresRepositoryInstance
}

func newPhoneLinkPostgresRepository(db *sql.DB, logger *zap.Logger) *phoneLinkPostgresRepository {
	return &phoneLinkPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPhoneLink(row rowScanner) (*models.PhoneLink, error) {
	var (
		model       models.PhoneLink
		phoneNumber sql.NullString
		linkedAt    sql.NullTime
		deletedAt   sql.NullTime
	)
	err := row.Scan(
		&model.ID,
		&model.UserID,
		&model.AuthCode,
		&phoneNumber,
		&linkedAt,
		&model.IsActive,
		&model.IsDeleted,
		&deletedAt,
		&model.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phoneNumber.Valid {
		model.PhoneNumberLinked = &phoneNumber.String
	}
	if linkedAt.Valid {
		model.LinkedAt = &linkedAt.Time
	}
	if deletedAt.Valid {
		model.DeletedAt = &deletedAt.Time
	}
	return &model, nil
}

func (repo *phoneLinkPostgresRepository) findOne(ctx context.Context, method, query string, args ...interface{}) (*models.PhoneLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	phoneLink, err := scanPhoneLink(repo.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			repo.Log.Info("phoneLinkPostgresRepository."+method+" no rows found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, nil
		}
		repo.Log.Error("phoneLinkPostgresRepository."+method+" error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("phoneLinkPostgresRepository."+method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneLinkIDKey, phoneLink.ID),
	)
	return phoneLink, nil
}

func (repo *phoneLinkPostgresRepository) FindActiveByUserID(ctx context.Context, userID string) (*models.PhoneLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("phoneLinkPostgresRepository.FindActiveByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return repo.findOne(ctx, "FindActiveByUserID", queries.QueryFindActivePhoneLinkByUserID, userID)
}

func (repo *phoneLinkPostgresRepository) FindLinkedByUserID(ctx context.Context, userID string) (*models.PhoneLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("phoneLinkPostgresRepository.FindLinkedByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return repo.findOne(ctx, "FindLinkedByUserID", queries.QueryFindLinkedPhoneLinkByUserID, userID)
}

func (repo *phoneLinkPostgresRepository) FindActiveByAuthCode(ctx context.Context, authCode int) (*models.PhoneLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("phoneLinkPostgresRepository.FindActiveByAuthCode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return repo.findOne(ctx, "FindActiveByAuthCode", queries.QueryFindActivePhoneLinkByAuthCode, authCode)
}

func (repo *phoneLinkPostgresRepository) FindActiveByPhoneNumber(ctx context.Context, phoneNumber string) ([]models.PhoneLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("phoneLinkPostgresRepository.FindActiveByPhoneNumber called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneNumberKey, phoneNumber),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.QueryFindActivePhoneLinksByPhoneNumber, phoneNumber)
	if err != nil {
		repo.Log.Error("phoneLinkPostgresRepository.FindActiveByPhoneNumber error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var phoneLinks []models.PhoneLink
	for rows.Next() {
		phoneLink, err := scanPhoneLink(rows)
		if err != nil {
			repo.Log.Error("phoneLinkPostgresRepository.FindActiveByPhoneNumber error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		phoneLinks = append(phoneLinks, *phoneLink)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("phoneLinkPostgresRepository.FindActiveByPhoneNumber rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	repo.Log.Info("phoneLinkPostgresRepository.FindActiveByPhoneNumber succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(phoneLinks)),
	)
	return phoneLinks, nil
}

func (repo *phoneLinkPostgresRepository) Create(ctx context.Context, phoneLink *models.PhoneLink) (*models.PhoneLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("phoneLinkPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, phoneLink.UserID),
	)

	created, err := scanPhoneLink(repo.DB.QueryRowContext(
		ctx,
		queries.QueryInsertPhoneLink,
		phoneLink.ID,
		phoneLink.UserID,
		phoneLink.AuthCode,
		phoneLink.CreatedAt,
	))
	if err != nil {
		repo.Log.Error("phoneLinkPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	repo.Log.Info("phoneLinkPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneLinkIDKey, created.ID),
	)
	return created, nil
}

func (repo *phoneLinkPostgresRepository) LinkPhoneNumber(ctx context.Context, input *contracts.LinkPhoneNumberInput) (*models.PhoneLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("phoneLinkPostgresRepository.LinkPhoneNumber called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneLinkIDKey, input.PhoneLinkID),
	)

	linked, err := scanPhoneLink(repo.DB.QueryRowContext(
		ctx,
		queries.QueryLinkPhoneNumber,
		input.PhoneNumber,
		input.LinkedAt,
		input.PhoneLinkID,
		input.AuthCode,
		input.CreatedAfter,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			repo.Log.Warn("phoneLinkPostgresRepository.LinkPhoneNumber conditional update matched no rows",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPhoneLinkIDKey, input.PhoneLinkID),
			)
			return nil, nil
		}
		repo.Log.Error("phoneLinkPostgresRepository.LinkPhoneNumber error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}

	repo.Log.Info("phoneLinkPostgresRepository.LinkPhoneNumber succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneLinkIDKey, linked.ID),
	)
	return linked, nil
}

func (repo *phoneLinkPostgresRepository) UnlinkPhoneNumber(ctx context.Context, phoneLinkID string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("phoneLinkPostgresRepository.UnlinkPhoneNumber called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneLinkIDKey, phoneLinkID),
	)

	result, err := repo.DB.ExecContext(ctx, queries.QueryUnlinkPhoneNumber, phoneLinkID)
	if err != nil {
		repo.Log.Error("phoneLinkPostgresRepository.UnlinkPhoneNumber error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}

	repo.Log.Info("phoneLinkPostgresRepository.UnlinkPhoneNumber succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, affected),
	)
	return affected > 0, nil
}

func (repo *phoneLinkPostgresRepository) Deactivate(ctx context.Context, phoneLinkID string, at time.Time) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("phoneLinkPostgresRepository.Deactivate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneLinkIDKey, phoneLinkID),
	)

	_, err := repo.DB.ExecContext(ctx, queries.QueryDeactivatePhoneLinkByID, phoneLinkID, at)
	if err != nil {
		repo.Log.Error("phoneLinkPostgresRepository.Deactivate error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}

	repo.Log.Info("phoneLinkPostgresRepository.Deactivate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (repo *phoneLinkPostgresRepository) DeactivateAllByUserID(ctx context.Context, userID string, at time.Time) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("phoneLinkPostgresRepository.DeactivateAllByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	result, err := repo.DB.ExecContext(ctx, queries.QueryDeactivatePhoneLinksByUserID, userID, at)
	if err != nil {
		repo.Log.Error("phoneLinkPostgresRepository.DeactivateAllByUserID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBUpdateData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, exceptions.ErrPostgresDBUpdateData(err)
	}

	repo.Log.Info("phoneLinkPostgresRepository.DeactivateAllByUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, affected),
	)
	return affected, nil
}

func (repo *phoneLinkPostgresRepository) SoftDeleteExpired(ctx context.Context, createdBefore, at time.Time) ([]models.ExpiredAuthCode, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("phoneLinkPostgresRepository.SoftDeleteExpired called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.QuerySoftDeleteExpiredPhoneLinks, at, createdBefore)
	if err != nil {
		repo.Log.Error("phoneLinkPostgresRepository.SoftDeleteExpired error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	defer rows.Close()

	expired := make([]models.ExpiredAuthCode, 0)
	for rows.Next() {
		var model models.ExpiredAuthCode
		if err := rows.Scan(&model.ID, &model.AuthCode, &model.CreatedAt); err != nil {
			repo.Log.Error("phoneLinkPostgresRepository.SoftDeleteExpired error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBUpdateData(err)
		}
		expired = append(expired, model)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("phoneLinkPostgresRepository.SoftDeleteExpired rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	repo.Log.Info("phoneLinkPostgresRepository.SoftDeleteExpired succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(expired)),
	)
	return expired, nil
}
