package channel

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperr "github.com/idlefit/healthstat/internal/core/errors"
)

const (
	headerCallID = "X-Call-ID"

	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgBodyTooLarge   = "Request body exceeds maximum allowed size"
)

// envelope is the JSON body of POST /v1/invoke.
type envelope struct {
	Channel   string `json:"channel"`
	Method    string `json:"method"`
	Arguments any    `json:"arguments"`
}

// Transport exposes a Registry over HTTP.
type Transport struct {
	registry     *Registry
	maxBodyBytes int64
}

// NewTransport creates an HTTP transport for registry.
func NewTransport(registry *Registry, maxBodyBytes int64) *Transport {
	return &Transport{registry: registry, maxBodyBytes: maxBodyBytes}
}

// RegisterRoutes registers the invoke endpoint on r.
func (t *Transport) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/invoke", t.HandleInvoke)
}

// HandleInvoke handles POST /v1/invoke.
func (t *Transport) HandleInvoke(c *gin.Context) {
	callID := uuid.NewString()
	c.Header(headerCallID, callID)

	env, err := t.decodeEnvelope(c)
	if err != nil {
		writeError(c, err)
		return
	}

	ctx := WithCallID(c.Request.Context(), callID)
	result, err := t.registry.Invoke(ctx, env.Channel, MethodCall{Method: env.Method, Arguments: env.Arguments})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// decodeEnvelope reads at most maxBodyBytes and decodes numbers as json.Number
// so integer arguments keep their type.
func (t *Transport) decodeEnvelope(c *gin.Context) (*envelope, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, t.maxBodyBytes+1))
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return nil, &apperr.ChannelError{Code: apperr.CodeInternalError, Message: msgReadBodyFailed, Err: err}
	}
	if int64(len(body)) > t.maxBodyBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(body), "max", t.maxBodyBytes)
		return nil, errBodyTooLarge
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var env envelope
	if err := dec.Decode(&env); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(body))
		return nil, &apperr.ChannelError{Code: apperr.CodeInvalidArguments, Message: msgInvalidJSON, Details: err.Error()}
	}
	return &env, nil
}

var errBodyTooLarge = &apperr.ChannelError{Code: apperr.CodeInvalidArguments, Message: msgBodyTooLarge}

// writeError maps an invocation error to its HTTP status and JSON body.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotImplemented):
		c.JSON(http.StatusNotImplemented, apperr.ErrorResponse{
			Code:    apperr.CodeNotImplemented,
			Message: err.Error(),
		})
		return
	case errors.Is(err, ErrChannelNotFound):
		c.JSON(http.StatusNotFound, apperr.ErrorResponse{
			Code:    apperr.CodeChannelNotFound,
			Message: err.Error(),
		})
		return
	case errors.Is(err, errBodyTooLarge):
		_, resp := apperr.Response(err)
		c.JSON(http.StatusRequestEntityTooLarge, resp)
		return
	}

	status, resp := apperr.Response(err)
	c.JSON(status, resp)
}
