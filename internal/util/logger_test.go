package util

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"trafficapi/config"
)

func TestConfigureLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()

	err := ConfigureLogger(logger, config.Log{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.WithField("rows", 3).Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, "visible", gjson.Get(out, "msg").String())
	assert.Equal(t, int64(3), gjson.Get(out, "rows").Int())
	assert.Equal(t, "warning", gjson.Get(out, "level").String())
}

func TestConfigureLogger_Defaults(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()

	require.NoError(t, ConfigureLogger(logger, config.Log{}, &buf))
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	_, ok := logger.Formatter.(*log.TextFormatter)
	assert.True(t, ok)
}

func TestConfigureLogger_Invalid(t *testing.T) {
	logger := log.New()
	assert.Error(t, ConfigureLogger(logger, config.Log{Level: "loud"}, &bytes.Buffer{}))
	assert.Error(t, ConfigureLogger(logger, config.Log{Format: "xml"}, &bytes.Buffer{}))
}

func TestNewGormLogger(t *testing.T) {
	assert.NotNil(t, NewGormLogger(log.New(), true))
	assert.NotNil(t, NewGormLogger(log.New(), false))
}
