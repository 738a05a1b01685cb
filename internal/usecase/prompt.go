package usecase

import (
	"fmt"

	"member-qa/internal/domain"
)

// FallbackPhrase is the answer the model is instructed to give when the
// context does not contain the information asked for.
const FallbackPhrase = "I don't have enough information to answer that question."

const systemPrompt = "You answer questions about member data based ONLY on the provided messages. " +
	"If the answer is not in the messages, reply: " + FallbackPhrase

// buildPromptMessages assembles the system/user message pair: the fixed
// grounding instruction and the context plus question verbatim.
func buildPromptMessages(contextText, question string) []domain.ChatMessage {
	return []domain.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{
			Role:    "user",
			Content: fmt.Sprintf("Context:\n%s\n\nQuestion: %s\nProvide a concise answer.", contextText, question),
		},
	}
}
