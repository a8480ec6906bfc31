package profiles

import (
	"context"
	"errors"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ProfileMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

// NewProfileMongoRepository returns nil when no MongoDB client is configured.
func NewProfileMongoRepository(client *mongo.Client, dbName, collectionName string, logger *zap.Logger) contracts.ProfileRepository {
	if client == nil {
		return nil
	}
	return &ProfileMongoRepository{
		Collection: client.Database(dbName).Collection(collectionName),
		Log:        logger,
	}
}

func (repo *ProfileMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("ProfileMongoRepository.FindByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingCollectionNameKey, repo.Collection.Name()),
	)

	result := repo.Collection.FindOne(ctx, bson.M{"_id": userID})
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			repo.Log.Info("ProfileMongoRepository.FindByUserID no document found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, nil
		}
		repo.Log.Error("ProfileMongoRepository.FindByUserID error finding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var profile models.Profile
	if err := result.Decode(&profile); err != nil {
		repo.Log.Error("ProfileMongoRepository.FindByUserID error decoding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBDecodeDocument(err)
	}

	repo.Log.Info("ProfileMongoRepository.FindByUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &profile, nil
}
