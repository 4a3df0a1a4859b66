package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeReply_StripsMarkdownEmphasis(t *testing.T) {
	assert.Equal(t, "bold and italic", SanitizeReply("**bold** and *italic*"))
}

func TestSanitizeReply_StripsHeadingMarkers(t *testing.T) {
	assert.Equal(t, "Title\nSubtitle", SanitizeReply("## Title\n### Subtitle"))
}

func TestSanitizeReply_StripsDenylistedEmoji(t *testing.T) {
	assert.Equal(t, "Phone: +91 93119 33481", SanitizeReply("📞Phone: +91 93119 33481"))
	// Glyphs outside the denylist survive.
	assert.Equal(t, "Fresh 🥬 produce", SanitizeReply("Fresh 🥬 produce"))
}

func TestSanitizeReply_CollapsesExcessiveNewlines(t *testing.T) {
	assert.Equal(t, "one\n\ntwo", SanitizeReply("one\n\n\n\ntwo"))
}

func TestSanitizeReply_JoinsBrokenLabelLines(t *testing.T) {
	assert.Equal(t, "MOQ: 500kg", SanitizeReply("MOQ:\n500kg"))
}

func TestSanitizeReply_IsPureAndIdempotent(t *testing.T) {
	input := "### **Catalog**:\n\n\n\nGroceries 📦"
	once := SanitizeReply(input)
	assert.Equal(t, once, SanitizeReply(once))
}
