package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("WIB", 7*3600)
	l := New(&buf, "debug", loc)

	l.WithField("component", "test").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.True(t, strings.HasSuffix(entry["ts"].(string), "+07:00"))
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	l := New(&bytes.Buffer{}, "loud", nil)
	assert.Equal(t, logrus.InfoLevel, l.Level)
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation("Not/AZone"))
	assert.Equal(t, "UTC", LoadLocation("UTC").String())
}
