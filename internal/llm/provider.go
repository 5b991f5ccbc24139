package llm

import "fmt"

const (
	DeepSeekBaseURL = "https://api.deepseek.com"
	DeepSeekModel   = "deepseek-chat"
	OllamaBaseURL   = "http://localhost:11434/v1"
)

type ProviderConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

func NewClient(cfg ProviderConfig) (Client, error) {
	switch cfg.Provider {
	case "deepseek", "":
		if cfg.Model == "" {
			cfg.Model = DeepSeekModel
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = DeepSeekBaseURL
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case "anthropic":
		return NewAnthropicClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case "ollama":
		if cfg.Model == "" {
			cfg.Model = "llama3.1"
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = OllamaBaseURL
		}
		return NewOpenAIClient("ollama", cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
