// Package app wires the outbound clients and the ask pipeline from
// configuration. Shared by the server and lambda entrypoints.
package app

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"member-qa/internal/config"
	"member-qa/internal/integrations/messages"
	"member-qa/internal/integrations/openai"
	"member-qa/internal/integrations/paramstore"
	"member-qa/internal/usecase"
)

// BuildAskService constructs the messages fetcher, the OpenAI client, and the
// ask service. The AWS SDK is only initialized when an SSM key parameter is
// configured.
func BuildAskService(ctx context.Context, cfg config.Config) (*usecase.AskService, error) {
	fetcher, err := messages.NewClient(cfg.MessagesAPIURL)
	if err != nil {
		return nil, err
	}

	opts := []openai.Option{
		openai.WithTemperature(cfg.OpenAITemperature),
		openai.WithMaxTokens(cfg.OpenAIMaxTokens),
	}
	if cfg.OpenAIKeyParameter != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		ps, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
		if err != nil {
			return nil, err
		}
		opts = append(opts, openai.WithKeyParameter(ps, cfg.OpenAIKeyParameter))
	}
	llm := openai.NewClient(cfg.OpenAIAPIKey, opts...)

	return usecase.NewAskService(fetcher, llm, cfg.OpenAIModel)
}
