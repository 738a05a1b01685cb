package config

import (
	"os"
	"strconv"
	"strings"
)

// Defaults applied when the corresponding environment variable is unset or
// unparsable.
const (
	DefaultMessagesAPIURL = "https://november7-730026606190.europe-west1.run.app/messages/"
	DefaultModel          = "gpt-3.5-turbo"
	DefaultTemperature    = 0.3
	DefaultMaxTokens      = 300
	DefaultPort           = 8100
)

// Config carries all process-wide settings. It is built once at startup and
// passed down explicitly so tests can substitute values directly.
type Config struct {
	// MessagesAPIURL is the upstream source of member messages. Always ends
	// with a slash.
	MessagesAPIURL string

	// OpenAIAPIKey is the completion provider credential. May be empty; the
	// ask route then fails with the configuration error unless
	// OpenAIKeyParameter supplies the key at request time.
	OpenAIAPIKey string

	// OpenAIKeyParameter is an optional SSM Parameter Store name holding the
	// API key, used when OpenAIAPIKey is unset.
	OpenAIKeyParameter string

	OpenAIModel       string
	OpenAITemperature float64
	OpenAIMaxTokens   int

	Port int
}

// FromEnv reads configuration from the environment, applying defaults.
func FromEnv() Config {
	return Config{
		MessagesAPIURL:     normalizeMessagesURL(envStr("MESSAGES_API_URL", DefaultMessagesAPIURL)),
		OpenAIAPIKey:       strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIKeyParameter: strings.TrimSpace(os.Getenv("OPENAI_API_KEY_PARAM")),
		OpenAIModel:        envStr("OPENAI_MODEL", DefaultModel),
		OpenAITemperature:  envFloat("OPENAI_TEMPERATURE", DefaultTemperature),
		OpenAIMaxTokens:    envInt("OPENAI_MAX_TOKENS", DefaultMaxTokens),
		Port:               envInt("PORT", DefaultPort),
	}
}

// normalizeMessagesURL guarantees a trailing slash so the upstream does not
// answer every fetch with a 307 redirect.
func normalizeMessagesURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultMessagesAPIURL
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return raw
}

func envStr(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
