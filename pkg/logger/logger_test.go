package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	assert.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "service.log")

	log, err := New(file, "info")
	require.NoError(t, err)
	defer log.Close()

	log.Info("booking id=%d created", 42)
	assert.FileExists(t, file)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, logrus.WarnLevel)

	log.Info("hidden %s", "message")
	log.Warn("visible %s", "warning")

	assert.NotContains(t, buf.String(), "hidden message")
	assert.Contains(t, buf.String(), "visible warning")
}
