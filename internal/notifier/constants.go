package notifier

import "strings"

// Embed colors by severity
const (
	DefaultEmbedColor = 0x2B2D31 // Discord dark theme color
	SuccessEmbedColor = 0x5CB85C
	ErrorEmbedColor   = 0xD9534F
	WarningEmbedColor = 0xF0AD4E
	InfoEmbedColor    = 0x5BC0DE
)

// ColorForLevel maps a severity name to an embed color. Unknown levels get
// DefaultEmbedColor.
func ColorForLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "success", "ok":
		return SuccessEmbedColor
	case "error", "critical", "failure":
		return ErrorEmbedColor
	case "warn", "warning":
		return WarningEmbedColor
	case "info":
		return InfoEmbedColor
	default:
		return DefaultEmbedColor
	}
}
