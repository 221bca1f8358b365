package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestHandleItineraryError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"invalid input", fmt.Errorf("days: %w", ErrInvalidInput), http.StatusBadRequest, MsgInvalidRequest},
		{"parse failure", fmt.Errorf("decode: %w", ErrInvalidAIResponse), http.StatusInternalServerError, MsgInvalidAIResponse},
		{"shape failure", fmt.Errorf("schema: %w", ErrResponseShape), http.StatusInternalServerError, MsgInvalidAIResponse},
		{"model failure", fmt.Errorf("openai: %w", ErrModelCall), http.StatusInternalServerError, MsgInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, MsgInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set(TraceIDKey, "trace-1")

			HandleItineraryError(c, zaptest.NewLogger(t), tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		})
	}
}

func TestTraceID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", TraceID(c))
	c.Set(TraceIDKey, "abc")
	assert.Equal(t, "abc", TraceID(c))
}
