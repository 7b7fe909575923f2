package api

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"google.golang.org/grpc/codes"
)

// Code classifies a service error for the transports.
func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrTokenNotFound),
		errors.Is(err, common.ErrTokenInvalid),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrTokenExpiredOrRevoked):
		return codes.Unauthenticated
	case errors.Is(err, common.ErrClientMismatch):
		return codes.PermissionDenied
	case errors.Is(err, common.ErrRateLimitExceeded):
		return codes.ResourceExhausted
	case errors.Is(err, common.ErrorAlreadyExists):
		return codes.AlreadyExists
	case errors.Is(err, common.ErrorValidation):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrorNotFound):
		return codes.NotFound
	default:
		return codes.Internal
	}
}

// HTTPStatus is the HTTP counterpart of a code returned by Code.
func HTTPStatus(c codes.Code) int {
	switch c {
	case codes.OK:
		return http.StatusOK
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message is the client-facing text for err. Internal failures are not
// described.
func Message(err error) string {
	if Code(err) == codes.Internal {
		return "internal error"
	}
	return err.Error()
}
