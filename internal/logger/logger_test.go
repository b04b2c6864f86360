package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", "json").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("bogus", "json").GetLevel())
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("info", "json", &buf)

	log.WithField("request_id", "abc").Info("validated")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "validated", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("info", "text", &buf)

	log.Info("started")

	assert.Contains(t, buf.String(), "msg=started")
}
