package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Oracle.validate(); err != nil {
		return fmt.Errorf("oracle: %w", err)
	}

	if c.Redis.DailySubmitQuota < 0 {
		return fmt.Errorf("redis.daily_submit_quota must be >= 0 (got %d)", c.Redis.DailySubmitQuota)
	}

	if c.RateLimit.SubmitPerMinute < 0 || c.RateLimit.HistoryPerMinute < 0 {
		return fmt.Errorf("rate_limit: per-minute limits must be >= 0")
	}

	return nil
}

func (o *OracleConfig) validate() error {
	switch o.Provider {
	case ProviderGemini, ProviderClaude:
	default:
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderGemini, ProviderClaude, o.Provider)
	}
	if o.APIKey() == "" {
		return fmt.Errorf("api key for provider %q is required", o.Provider)
	}
	if o.Model() == "" {
		return fmt.Errorf("model for provider %q is required", o.Provider)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", o.Timeout)
	}
	if o.MaxOutputTokens <= 0 {
		return fmt.Errorf("max_output_tokens must be > 0 (got %d)", o.MaxOutputTokens)
	}
	return nil
}
