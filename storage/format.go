package storage

import "strconv"

// FormatMHz writes v in its shortest decimal form, e.g. 1362.5 or 1200.
func FormatMHz(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
