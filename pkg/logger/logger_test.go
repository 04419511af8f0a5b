package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, parseLevel("warn"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
	require.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNewToTagsService(t *testing.T) {
	var buf bytes.Buffer
	NewTo(&buf).Info("hello", "k", "v")

	require.Contains(t, buf.String(), `"service":"calorie-advisor"`)
	require.Contains(t, buf.String(), `"msg":"hello"`)
}
