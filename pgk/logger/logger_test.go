package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Valid(t *testing.T) {
	logger, err := New()

	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("test")
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer

	config := zap.NewDevelopmentConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config.EncoderConfig),
		zapcore.AddSync(&buf),
		zapcore.InfoLevel,
	)

	logger := zap.New(core).Sugar()

	middleware := LoggingMiddleware(logger)

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hello"))
	})

	handler := middleware(nextHandler)

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "hello", w.Body.String())

	logOutput := buf.String()
	assert.Contains(t, logOutput, "request->")
	assert.Contains(t, logOutput, "uri: /test")
	assert.Contains(t, logOutput, "method: GET")
	assert.Contains(t, logOutput, "status: 201")
	assert.Contains(t, logOutput, "size: 5")
}
