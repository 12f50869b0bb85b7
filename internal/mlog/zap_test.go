package mlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLoggerDefaultsOnInvalidLevel(t *testing.T) {
	l, err := NewZapLogger("not-a-level")
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestWithFieldsLeavesReceiverUnchanged(t *testing.T) {
	l, err := NewZapLogger("info")
	require.NoError(t, err)

	l2 := l.WithFields("requestId", "r1")

	assert.NotSame(t, l, l2)
}

func TestNoneLoggerImplementsLogger(t *testing.T) {
	var l Logger = &NoneLogger{}
	l.Info("discarded")
	assert.NoError(t, l.Sync())
}
