package chatbot

import (
	"regexp"
	"strings"
)

// Decorative glyphs the upstream AI likes to sprinkle into replies.
var emojiDenylist = regexp.MustCompile(`📁|📦|📝|🏷️|💡|🎯|📍|📞|📧|⏰|🌾|📋|💰|🏭|✅|❌`)

var (
	headingMarkers    = regexp.MustCompile(`#{1,6}\s`)
	excessiveNewlines = regexp.MustCompile(`\n{3,}`)
	brokenLabelLines  = regexp.MustCompile(`:\s*\n`)
)

// SanitizeReply normalizes bot message text for display: markdown
// emphasis and heading markers are stripped, the emoji denylist is
// removed, runs of 3+ newlines collapse to 2, and a label left dangling
// before a newline is rejoined with its value.
func SanitizeReply(content string) string {
	out := strings.ReplaceAll(content, "**", "")
	out = strings.ReplaceAll(out, "*", "")
	out = headingMarkers.ReplaceAllString(out, "")
	out = emojiDenylist.ReplaceAllString(out, "")
	out = excessiveNewlines.ReplaceAllString(out, "\n\n")
	out = brokenLabelLines.ReplaceAllString(out, ": ")
	return out
}
