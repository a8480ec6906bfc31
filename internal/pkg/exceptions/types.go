package exceptions

import (
	"fmt"
	"phonelink-service/internal/pkg/constvars"
)

var (
	// Request
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed).
			WithDetails(FormatAllValidationErrors(err))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidJSONBody, constvars.ErrDevCannotParseJSON)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotReadBody, constvars.ErrDevCannotReadBody)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevCannotMarshalJSON)
	}
	ErrMissingRequiredFields = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingRequiredFields, constvars.ErrDevMissingRequiredFields)
	}
	ErrWebhookMissingRequiredFields = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientWebhookMissingFields, constvars.ErrDevMissingRequiredFields)
	}
	ErrPhoneNumberRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientPhoneNumberRequired, constvars.ErrDevMissingRequiredFields)
	}
	ErrSenderPhoneNumberRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientSenderPhoneRequired, constvars.ErrDevMissingRequiredFields).
			WithFields(map[string]interface{}{"is_linked": false, "user_id": nil})
	}
	ErrTitleRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientTitleRequired, constvars.ErrDevMissingRequiredFields)
	}
	ErrInvalidDueDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidDueDate, constvars.ErrDevInvalidDueDate)
	}

	// Access guard
	ErrAPIKeyMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevAPIKeyMissing).
			WithMessage(constvars.ErrClientMissingAPIKey)
	}
	ErrAPIKeyInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevAPIKeyInvalid).
			WithMessage(constvars.ErrClientInvalidAPIKey)
	}
	ErrServerConfiguration = func(err error, devMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, devMessage).
			WithMessage(constvars.ErrClientServerConfiguration)
	}
	ErrSignatureMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevSignatureMissing).
			WithMessage(constvars.ErrClientMissingSignature)
	}
	ErrSignatureInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevSignatureMismatch).
			WithMessage(constvars.ErrClientInvalidSignature)
	}
	ErrIPNotAllowed = func(err error, clientIP string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientForbidden, fmt.Sprintf(constvars.ErrDevIPNotAllowed, clientIP)).
			WithMessage(fmt.Sprintf(constvars.ErrClientIPNotAllowed, clientIP))
	}
	ErrRateLimitExceeded = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevRateLimitExceeded, key)).
			WithMessage(constvars.ErrClientRateLimitExceeded)
	}
	ErrAuthorizationHeaderRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevAuthorizationHeaderMissing).
			WithMessage(constvars.ErrClientAuthorizationRequired)
	}
	ErrTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevAuthTokenInvalid).
			WithMessage(constvars.ErrClientInvalidToken)
	}
	ErrTokenMissingSubject = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevAuthTokenMissingSubject).
			WithMessage(constvars.ErrClientInvalidToken)
	}
	ErrCleanupTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevCleanupTokenInvalid).
			WithMessage(constvars.ErrClientInvalidCleanupToken)
	}

	// Phone links
	ErrInvalidAuthCommand = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidAuthCommand, constvars.ErrDevInvalidAuthCommand)
	}
	ErrAuthCodeNotFound = func(err error, authCode int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAuthCodeNotFound, fmt.Sprintf(constvars.ErrDevAuthCodeNotFound, authCode))
	}
	ErrAuthCodeExpired = func(err error, authCode int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGone, constvars.ErrClientAuthCodeExpired, fmt.Sprintf(constvars.ErrDevAuthCodeExpired, authCode))
	}
	ErrAuthCodeAlreadyUsed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientAuthCodeAlreadyUsed, constvars.ErrDevAuthCodeAlreadyUsed)
	}
	ErrPhoneNumberAlreadyLinked = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientPhoneAlreadyLinked, constvars.ErrDevPhoneAlreadyLinked)
	}
	ErrLinkPhoneNumber = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToLinkPhone, constvars.ErrDevDBFailedToUpdateData)
	}
	ErrGenerateAuthCode = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToIssueAuthCode, constvars.ErrDevGenerateAuthCode)
	}
	ErrNoLinkedPhoneNumber = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientNoLinkedPhoneNumber, constvars.ErrDevNoLinkedPhoneNumber)
	}

	// Todos
	ErrTodoNotFound = func(err error, todoID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientTodoNotFound, fmt.Sprintf(constvars.ErrDevTodoNotFound, todoID))
	}

	// Server
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientGatewayTimeout, constvars.ErrDevServerDeadlineExceeded).
			WithMessage(constvars.ErrClientServerLongRespond)
	}
	ErrNotImplemented = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotImplemented, constvars.ErrClientNotImplemented, constvars.ErrDevNotImplemented).
			WithMessage(constvars.ErrClientAPITokensNotSupported)
	}

	// Postgres DB
	ErrPostgresDBFindData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToFindData)
	}
	ErrPostgresDBInsertData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToInsertData)
	}
	ErrPostgresDBUpdateData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToUpdateData)
	}
	ErrPostgresDBIterateDataset = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToIterateDataset)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBDecodeDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToDecodeDocument)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevRedisIncrementValue)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
)
