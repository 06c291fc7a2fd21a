package nostd

import "strings"

// Mask 只保留前4个字符，用于展示API Key
func Mask(s string) string {
	const visible = 4
	runes := []rune(s)
	if len(runes) <= visible {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:visible]) + strings.Repeat("*", 8)
}
