package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithServiceField(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput("debug", "json", &buf)

	log.WithField("id", "42").Debug("incident stored")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "incident stored", entry["msg"])
	assert.Equal(t, serviceName, entry["service"])
	assert.Equal(t, "42", entry["id"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput("info", "text", &buf)

	log.Info("poller started")

	assert.Contains(t, buf.String(), `msg="poller started"`)
	assert.Contains(t, buf.String(), "service="+serviceName)
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := newWithOutput("loud", "json", &bytes.Buffer{})

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
