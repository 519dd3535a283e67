package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"team-showcase.backend/internal/config"
	domainerrors "team-showcase.backend/internal/domain/errors"
)

var (
	envelope      = config.EnvelopeData
	exposeDetails = true
)

// Configure sets the envelope mode and whether 5xx responses carry the underlying
// error text. It is called once at startup.
func Configure(mode string, production bool) {
	if mode == config.EnvelopeBare {
		envelope = config.EnvelopeBare
	} else {
		envelope = config.EnvelopeData
	}
	exposeDetails = !production
}

// Envelope reports the active envelope mode.
func Envelope() string {
	return envelope
}

// Success sends a payload, wrapped as {data} unless the bare envelope is active.
func Success(c *gin.Context, status int, data interface{}) {
	if envelope == config.EnvelopeBare {
		c.JSON(status, data)
		return
	}
	c.JSON(status, gin.H{"data": data})
}

// Message sends the result of a mutation as {message, data}. The bare envelope
// sends only the data.
func Message(c *gin.Context, status int, message string, data interface{}) {
	if envelope == config.EnvelopeBare {
		c.JSON(status, data)
		return
	}
	c.JSON(status, gin.H{"message": message, "data": data})
}

// Raw sends body as is, regardless of the envelope mode.
func Raw(c *gin.Context, status int, body interface{}) {
	c.JSON(status, body)
}

// Error sends {error, details?}. Errors that are not AppErrors become a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	body := gin.H{"error": appErr.Message}
	details := appErr.Details
	if details == "" && appErr.Status >= http.StatusInternalServerError && exposeDetails && appErr.Err != nil {
		details = appErr.Err.Error()
	}
	if details != "" {
		body["details"] = details
	}
	c.JSON(appErr.Status, body)
}

// Abort writes an error response and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
