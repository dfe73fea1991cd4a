package logger

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger_WritesJSONLinesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewZapLogger(path, true)

	l.Debug("NOTE", "debug is below the file level", nil)
	l.Info("FOLDER", "folder deleted", map[string]interface{}{"folder_id": "111111111111111111111101", "notes_removed": 2})
	l.Error("HTTP", "request failed", map[string]interface{}{"error": errors.New("boom")})
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "folder deleted", info["message"])
	assert.Equal(t, "FOLDER", info["module"])
	assert.Contains(t, info, "timestamp")

	var failure map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "boom", failure["error"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Info("NOTE", "ignored", nil)
		l.Error("NOTE", "ignored", map[string]interface{}{"error": errors.New("x")})
	})
	assert.NoError(t, l.Sync())
}
