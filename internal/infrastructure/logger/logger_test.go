// internal/infrastructure/logger/logger_test.go
package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestZapLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZapLogger(&buf, DebugLevel)

	logger.Debug("Debug message", map[string]interface{}{
		"key1": "value1",
	})

	entry := decodeLine(t, &buf)
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "Debug message", entry["message"])
	assert.Equal(t, "value1", entry["key1"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry, "caller")

	// Levels below the threshold are dropped
	buf.Reset()
	warnLogger := NewZapLogger(&buf, WarnLevel)
	warnLogger.Debug("Should not appear", nil)
	warnLogger.Info("Should not appear either", nil)
	assert.Equal(t, "", buf.String())

	warnLogger.Warn("Warning message", nil)
	assert.Contains(t, buf.String(), "Warning message")

	buf.Reset()
	warnLogger.Error("Error message", nil)
	assert.Contains(t, buf.String(), "Error message")
}

func TestZapLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZapLogger(&buf, InfoLevel)

	logger.WithField("context", "test").Info("With field", nil)
	entry := decodeLine(t, &buf)
	assert.Equal(t, "test", entry["context"])
	assert.Equal(t, "With field", entry["message"])

	buf.Reset()
	logger.WithFields(map[string]interface{}{
		"app":     "converter",
		"version": "1.0.0",
	}).Info("With fields", map[string]interface{}{"base": "USD"})

	entry = decodeLine(t, &buf)
	assert.Equal(t, "converter", entry["app"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "USD", entry["base"])

	// Empty field sets return the same logger
	assert.Same(t, logger, logger.WithFields(nil))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel(" Warn "))
	assert.Equal(t, ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefaultLogger()
	assert.NotNil(t, original)

	var buf bytes.Buffer
	SetDefaultLogger(NewZapLogger(&buf, DebugLevel))
	GetDefaultLogger().Info("hello", nil)
	assert.Contains(t, buf.String(), "hello")

	// nil is ignored
	SetDefaultLogger(nil)
	assert.NotNil(t, GetDefaultLogger())

	SetDefaultLogger(original)
}
