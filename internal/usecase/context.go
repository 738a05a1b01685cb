package usecase

import (
	"fmt"
	"strings"

	"member-qa/internal/domain"
)

const (
	contextHeader   = "Member messages:\n"
	unknownUser     = "Unknown"
	maxContextRunes = 6000
)

// buildMessagesContext flattens the fetched items into the text block handed
// to the model: the fixed header, then one line per item in received order.
// Not line-aware: when the result exceeds the cap only the trailing runes are
// kept, so the context may start mid-line.
func buildMessagesContext(data domain.MessagesResponse) string {
	lines := make([]string, 0, len(data.Items)+1)
	lines = append(lines, contextHeader)
	for _, it := range data.Items {
		user := unknownUser
		if it.UserName != nil {
			user = *it.UserName
		}
		lines = append(lines, fmt.Sprintf("- %s (on %s): %s", user, it.Timestamp, it.Message))
	}
	text := strings.Join(lines, "\n")
	if r := []rune(text); len(r) > maxContextRunes {
		text = string(r[len(r)-maxContextRunes:])
	}
	return text
}
