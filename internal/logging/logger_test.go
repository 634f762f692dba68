// SPDX-License-Identifier: MIT
package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
	} {
		l, err := New(tc.in, false)
		require.NoError(t, err)
		require.True(t, l.Core().Enabled(tc.want))
		require.False(t, l.Core().Enabled(tc.want-1))
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", true)
	require.Error(t, err)
	require.NotNil(t, NewOrNop("loud", true))
}

func TestEncodingFormat(t *testing.T) {
	require.Equal(t, "console", encodingFormat(true))
	require.Equal(t, "json", encodingFormat(false))
}
