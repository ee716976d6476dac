// Package utils holds small helpers shared across packages.
package utils

// F64Ptr returns a pointer to the given float64 value.
func F64Ptr(v float64) *float64 { return &v }

// IntPtr returns a pointer to the given int value.
func IntPtr(v int) *int { return &v }
