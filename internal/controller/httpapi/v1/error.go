package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ocf/api/internal/usecase/accounts"
	"github.com/ocf/api/internal/usecase/auth"
	"github.com/ocf/api/internal/usecase/labstats"
	"github.com/ocf/api/internal/usecase/sqldb"
)

// ErrorResponse maps service errors to HTTP responses. Internal causes are
// logged by the callers; the client only ever sees the mapped message.
func ErrorResponse(c *gin.Context, err error) {
	var (
		invalidToken   auth.InvalidTokenError
		unknownDesktop labstats.UnknownDesktopError
		notFound       sqldb.NotFoundError
		validation     accounts.ValidationError
		bindErrs       validator.ValidationErrors
	)

	switch {
	case errors.As(err, &invalidToken), errors.Is(err, auth.ErrTokenRejected):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "malformed jwt"})
	case errors.Is(err, labstats.ErrIPOutsideLab):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
	case errors.As(err, &unknownDesktop):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.As(err, &validation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": validation.Message})
	case errors.As(err, &bindErrs):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": bindErrs.Error()})
	case isBadJSON(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "malformed request body"})
	case errors.As(err, &notFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "not found"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

func isBadJSON(err error) bool {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
