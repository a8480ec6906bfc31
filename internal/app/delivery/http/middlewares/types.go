package middlewares

import (
	"phonelink-service/internal/app/config"
	"phonelink-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	RateLimiter    contracts.RateLimiter
	TokenVerifier  contracts.TokenVerifier
}

func NewMiddlewares(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	rateLimiter contracts.RateLimiter,
	tokenVerifier contracts.TokenVerifier,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		RateLimiter:    rateLimiter,
		TokenVerifier:  tokenVerifier,
	}
}
