package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	Setup(true)
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	Setup(false)
	assert.Equal(t, log.WarnLevel, log.GetLevel())
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(&buf, "w3w", log.InfoLevel, false, false, log.LogfmtFormatter)

	l.Debug("hidden")
	l.Info("request done", "op", "autosuggest")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "op=autosuggest")
	assert.Contains(t, out, "prefix=w3w")
}
