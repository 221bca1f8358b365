package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const TraceIDKey = "trace_id"

// TraceID returns the request trace id set by the trace middleware, or "".
func TraceID(c *gin.Context) string {
	if v, ok := c.Get(TraceIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondJSONBytes(c *gin.Context, body []byte) {
	c.Data(http.StatusOK, "application/json", body)
}

func RespondError(c *gin.Context, code int, message string) {
	c.String(code, message)
}

// HandleItineraryError maps service errors onto the fixed plain-text responses.
// The cause is logged, never sent to the client.
func HandleItineraryError(c *gin.Context, log *zap.Logger, err error) {
	fields := []zap.Field{zap.Error(err), zap.String(TraceIDKey, TraceID(c))}

	switch {
	case errors.Is(err, ErrInvalidInput):
		log.Info("rejected itinerary request", fields...)
		RespondError(c, http.StatusBadRequest, MsgInvalidRequest)
	case errors.Is(err, ErrResponseShape):
		log.Error("AI response failed schema validation", fields...)
		RespondError(c, http.StatusInternalServerError, MsgInvalidAIResponse)
	case errors.Is(err, ErrInvalidAIResponse):
		log.Error("failed to parse AI response", fields...)
		RespondError(c, http.StatusInternalServerError, MsgInvalidAIResponse)
	default:
		log.Error("itinerary generation failed", fields...)
		RespondError(c, http.StatusInternalServerError, MsgInternalServerError)
	}
}
