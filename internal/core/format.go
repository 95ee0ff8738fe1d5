package core

import "fmt"

// FormatSize renders a byte count in human-readable form (B, KB, MB, GB, TB).
// Sizes are formatted with one decimal place above KB, none below.
func FormatSize(size int64) string {
	const unit = 1024
	if size < 0 {
		size = 0
	}
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGT"[exp])
}

// FormatKB renders a kilobyte count produced by the size aggregator.
func FormatKB(kb int64) string {
	return FormatSize(kb * 1024)
}

// Plural returns singular when n == 1, otherwise plural.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
