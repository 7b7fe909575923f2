package httpapi

import (
	"github.com/dmitrijs2005/gophauth/internal/server/api"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
)

var errorCodes = map[codes.Code]string{
	codes.Unauthenticated:   "UNAUTHENTICATED",
	codes.PermissionDenied:  "PERMISSION_DENIED",
	codes.ResourceExhausted: "RATE_LIMITED",
	codes.AlreadyExists:     "ALREADY_EXISTS",
	codes.InvalidArgument:   "VALIDATION_ERROR",
	codes.NotFound:          "NOT_FOUND",
	codes.Internal:          "INTERNAL_ERROR",
}

func success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func fail(c *gin.Context, code codes.Code, message string) {
	c.AbortWithStatusJSON(api.HTTPStatus(code), gin.H{
		"success": false,
		"error": gin.H{
			"code":    errorCodes[code],
			"message": message,
		},
	})
}

// failWith writes the envelope for a service error.
func failWith(c *gin.Context, err error) {
	fail(c, api.Code(err), api.Message(err))
}
