package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	list := collect()

	names := make(map[string]bool, len(list))
	for _, a := range list {
		require.False(t, names[a.Name], "duplicate analyzer %s", a.Name)
		names[a.Name] = true
	}
	for _, want := range []string{"noosexit", "nilerr", "printf", "lostcancel", "ST1000", "SA1019"} {
		require.True(t, names[want], "missing analyzer %s", want)
	}
}
