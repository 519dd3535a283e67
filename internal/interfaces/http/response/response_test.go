package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"team-showcase.backend/internal/config"
	domainerrors "team-showcase.backend/internal/domain/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func resetConfig(t *testing.T) {
	t.Cleanup(func() { Configure(config.EnvelopeData, false) })
}

func TestSuccess_DataEnvelope(t *testing.T) {
	resetConfig(t)
	Configure(config.EnvelopeData, false)
	c, w := newContext()

	Success(c, http.StatusOK, []string{"a"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":["a"]}`, w.Body.String())
}

func TestSuccess_BareEnvelope(t *testing.T) {
	resetConfig(t)
	Configure(config.EnvelopeBare, false)
	c, w := newContext()

	Success(c, http.StatusOK, []string{"a"})
	assert.JSONEq(t, `["a"]`, w.Body.String())
	assert.Equal(t, config.EnvelopeBare, Envelope())
}

func TestMessage(t *testing.T) {
	resetConfig(t)
	c, w := newContext()
	Message(c, http.StatusCreated, "created", gin.H{"id": 1})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"created","data":{"id":1}}`, w.Body.String())

	Configure(config.EnvelopeBare, false)
	c, w = newContext()
	Message(c, http.StatusOK, "updated", gin.H{"id": 2})
	assert.JSONEq(t, `{"id":2}`, w.Body.String())
}

func TestRaw_IgnoresEnvelope(t *testing.T) {
	resetConfig(t)
	c, w := newContext()
	Raw(c, http.StatusOK, gin.H{"status": "ok"})
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestError_AppError(t *testing.T) {
	resetConfig(t)
	c, w := newContext()

	Error(c, domainerrors.NotFound("member not found"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"member not found"}`, w.Body.String())
}

func TestError_ValidationDetailsAlwaysShown(t *testing.T) {
	resetConfig(t)
	Configure(config.EnvelopeData, true)
	c, w := newContext()

	Error(c, domainerrors.BadRequest("invalid status").WithDetails("allowed: pending"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid status","details":"allowed: pending"}`, w.Body.String())
}

func TestError_WrappedAppError(t *testing.T) {
	resetConfig(t)
	c, w := newContext()

	Error(c, fmt.Errorf("handler: %w", domainerrors.Unauthorized("login required")))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestError_GenericErrorDetailsGatedByEnvironment(t *testing.T) {
	resetConfig(t)
	Configure(config.EnvelopeData, false)
	c, w := newContext()
	Error(c, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error","details":"boom"}`, w.Body.String())

	Configure(config.EnvelopeData, true)
	c, w = newContext()
	Error(c, domainerrors.Internal("failed to list members", errors.New("dial tcp")))
	assert.JSONEq(t, `{"error":"failed to list members"}`, w.Body.String())
}

func TestAbort(t *testing.T) {
	resetConfig(t)
	c, w := newContext()
	Abort(c, domainerrors.Unauthorized("authorization required"))
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
