package errors

import (
	"net/http"
	"reflect"

	"github.com/sirupsen/logrus"
)

type AppError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(statusCode int, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

// NewValidationError reports bad or missing input. No side effects have
// happened by the time it is returned.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

// NewUnsupportedMethodError rejects a payment method outside the supported
// enumeration, before any gateway call is made.
func NewUnsupportedMethodError(method string) *AppError {
	return &AppError{
		StatusCode: http.StatusBadRequest,
		Message:    "Unsupported payment method",
		Details:    method,
	}
}

// NewSignatureMismatchError rejects a webhook whose signature does not match.
// Treated as a potential forgery, so the attempt is logged.
func NewSignatureMismatchError(orderID string) *AppError {
	logrus.WithField("order_id", orderID).Warn("webhook signature mismatch")
	return NewAppError(http.StatusBadRequest, "Invalid signature")
}

// NewGatewayError reports an upstream provider failure. The provider detail is
// logged but only a safe summary is returned to the client.
func NewGatewayError(originalError error, message string) *AppError {
	logrus.Errorf("[%s] %s", reflect.TypeOf(originalError).String(), originalError)
	return NewAppError(http.StatusInternalServerError, message)
}

// NewExtractionError reports a charge the provider accepted but whose response
// carried no usable presentation value for the chosen method.
func NewExtractionError(message, details string) *AppError {
	return &AppError{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
		Details:    details,
	}
}

// NewPersistenceError reports a local store failure after the provider side
// already succeeded. The order id is logged prominently so an operator can
// reconcile manually.
func NewPersistenceError(originalError error, orderID, message string) *AppError {
	logrus.WithField("order_id", orderID).Errorf("persistence failure: %v", originalError)
	return NewAppError(http.StatusInternalServerError, message)
}

func NewUnauthorizedError(message ...string) *AppError {
	if len(message) > 0 {
		return NewAppError(http.StatusUnauthorized, message[0])
	}
	return NewAppError(http.StatusUnauthorized, "Unauthorized")
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

func NewTooManyRequestsError(message string) *AppError {
	return NewAppError(http.StatusTooManyRequests, message)
}

func NewInternalServerError(originalError error, message string) *AppError {
	logrus.Errorf("[%s] %s", reflect.TypeOf(originalError).String(), originalError)
	return NewAppError(http.StatusInternalServerError, message)
}
