package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/repin/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithHandler(slog.NewTextHandler(&buf, nil))

	l.Info("loaded manifest")

	assert.Contains(t, buf.String(), "loaded manifest")
	assert.Contains(t, buf.String(), "level=INFO")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithHandler(slog.NewTextHandler(&buf, nil))

	l.Error(errors.New("boom"))

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "boom")
}
