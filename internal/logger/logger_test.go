package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	New(slog.NewJSONHandler(&buf, nil))

	Info("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestInfoWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	New(slog.NewJSONHandler(&buf, nil))

	Info("HTTP request", "method", "GET", "status", 200)

	output := buf.String()
	assert.Contains(t, output, "HTTP request")
	assert.Contains(t, output, "method")
	assert.Contains(t, output, "GET")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	New(slog.NewJSONHandler(&buf, nil))

	Error("test error")

	assert.Contains(t, buf.String(), "test error")
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Debug("test debug")

	assert.Contains(t, buf.String(), "test debug")
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	New(slog.NewJSONHandler(&buf, nil))

	Infof("test %s", "message")

	assert.Contains(t, buf.String(), "test message")
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	New(slog.NewJSONHandler(&buf, nil))

	Errorf("test %s", "error")

	assert.Contains(t, buf.String(), "test error")
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Debugf("test %s", "debug")

	assert.Contains(t, buf.String(), "test debug")
}
