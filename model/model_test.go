package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReading_Value(t *testing.T) {
	v := 1234.5
	require.True(t, Reading{Core: 0, MHz: &v}.Readable())
	require.Equal(t, 1234.5, Reading{Core: 0, MHz: &v}.Value())

	unreadable := Reading{Core: 1}
	require.False(t, unreadable.Readable())
	require.Equal(t, 0.0, unreadable.Value())
}

func TestCoreLabel(t *testing.T) {
	require.Equal(t, "CPU0", CoreLabel(0))
	require.Equal(t, "CPU12", CoreLabel(12))
}

func TestRow_Timestamp(t *testing.T) {
	r := Row{Time: time.Date(2024, 3, 9, 7, 5, 1, 999_000_000, time.Local)}
	require.Equal(t, "2024-03-09 07:05:01", r.Timestamp())
}
