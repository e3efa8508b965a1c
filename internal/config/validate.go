package config

import "fmt"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	CommentStub   = "stub"
	CommentOpenAI = "openai"
	CommentNone   = "none"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required when storage.driver is %q", StoragePostgres)
		}
	default:
		return fmt.Errorf("storage.driver must be %q or %q (got %q)", StorageMemory, StoragePostgres, c.Storage.Driver)
	}

	if err := c.Analytics.validate(); err != nil {
		return fmt.Errorf("analytics: %w", err)
	}

	if err := c.Comment.validate(); err != nil {
		return fmt.Errorf("comment: %w", err)
	}

	return nil
}

func (a *AnalyticsConfig) validate() error {
	if a.RiskWindowDays <= 0 {
		return fmt.Errorf("risk_window_days must be > 0 (got %d)", a.RiskWindowDays)
	}
	if a.SearchDefaultLimit <= 0 {
		return fmt.Errorf("search_default_limit must be > 0 (got %d)", a.SearchDefaultLimit)
	}
	if a.SearchMaxLimit < a.SearchDefaultLimit {
		return fmt.Errorf("search_max_limit must be >= search_default_limit (got %d < %d)", a.SearchMaxLimit, a.SearchDefaultLimit)
	}
	return nil
}

func (c *CommentConfig) validate() error {
	switch c.Provider {
	case CommentStub, CommentNone:
		return nil
	case CommentOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("openai_api_key is required when provider is %q", CommentOpenAI)
		}
		if c.Model == "" {
			return fmt.Errorf("model is required when provider is %q", CommentOpenAI)
		}
		return nil
	}
	return fmt.Errorf("provider must be one of stub, openai, none (got %q)", c.Provider)
}
