package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withCapture(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(verbose)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return buf
}

func TestDebug_Silent(t *testing.T) {
	buf := withCapture(t, false)

	Debug("hidden %d", 1)

	assert.Empty(t, buf.String())
}

func TestDebug_Verbose(t *testing.T) {
	buf := withCapture(t, true)

	Debug("visible %d", 1)

	assert.Contains(t, buf.String(), "[DEBUG] visible 1")
}

func TestWarn_AlwaysPrints(t *testing.T) {
	buf := withCapture(t, false)

	Warn("schema problem at %s", "title")

	assert.Contains(t, buf.String(), "[WARN] schema problem at title")
}

func TestIsVerbose(t *testing.T) {
	withCapture(t, true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}
