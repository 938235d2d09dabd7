package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Run("known level", func(t *testing.T) {
		require.Equal(t, zerolog.DebugLevel, parseLogLevel("debug"))
		require.Equal(t, zerolog.WarnLevel, parseLogLevel("warn"))
	})

	t.Run("unknown level warns and keeps info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.Logger
		log.Logger = zerolog.New(&buf)
		defer func() { log.Logger = logger }()

		require.Equal(t, zerolog.InfoLevel, parseLogLevel("verbose"))
		require.Contains(t, buf.String(), `"level":"warn"`)
		require.Contains(t, buf.String(), "verbose")
	})
}
