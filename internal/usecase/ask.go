package usecase

import (
	"context"
	"errors"
	"strings"

	"member-qa/internal/domain"
	"member-qa/internal/integrations/openai"
)

// MessagesFetcher retrieves the member messages document from the upstream
// API.
type MessagesFetcher interface {
	FetchMessages(ctx context.Context) (domain.MessagesResponse, error)
}

// LLMClient completes a chat prompt with the given model.
type LLMClient interface {
	Chat(ctx context.Context, model string, messages []domain.ChatMessage) (string, error)
}

// AskService runs the question-answering pipeline: validate, fetch messages,
// build context, complete, trim. It keeps no state between requests.
type AskService struct {
	fetcher MessagesFetcher
	llm     LLMClient
	model   string
}

type AskInput struct {
	Question string
}

type AskOutput struct {
	Answer string
}

func NewAskService(fetcher MessagesFetcher, llm LLMClient, model string) (*AskService, error) {
	if fetcher == nil {
		return nil, errors.New("usecase: messages fetcher must not be nil")
	}
	if llm == nil {
		return nil, errors.New("usecase: llm client must not be nil")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.New("usecase: model must not be empty")
	}
	return &AskService{
		fetcher: fetcher,
		llm:     llm,
		model:   model,
	}, nil
}

// Ask answers a single question. Validation failures return before any
// outbound call; fetch and completion failures are terminal with their
// category preserved.
func (s *AskService) Ask(ctx context.Context, in AskInput) (AskOutput, error) {
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return AskOutput{}, newError(ErrorInvalidInput, "empty_question", nil)
	}

	data, err := s.fetcher.FetchMessages(ctx)
	if err != nil {
		return AskOutput{}, newError(ErrorUpstream, "messages_fetch_error", err)
	}

	contextText := buildMessagesContext(data)

	raw, err := s.llm.Chat(ctx, s.model, buildPromptMessages(contextText, question))
	if err != nil {
		if errors.Is(err, openai.ErrAPIKeyNotConfigured) {
			return AskOutput{}, newError(ErrorUnauthenticated, "missing_api_key", err)
		}
		return AskOutput{}, newError(ErrorLLM, "completion_error", err)
	}

	return AskOutput{Answer: strings.TrimSpace(raw)}, nil
}
