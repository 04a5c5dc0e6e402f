package formatter

import (
	"fmt"
	"strings"
)

// FormatLikes renders a like counter the way social feeds do.
// Example: 999 -> "999", 1234 -> "1.2K", 4500000 -> "4.5M"
func FormatLikes(n int) string {
	if n < 0 {
		n = 0
	}
	switch {
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1fM", float64(n)/1_000_000))
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1fK", float64(n)/1_000))
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimZero(s string) string {
	return strings.Replace(s, ".0", "", 1)
}
