package config

import "github.com/spf13/viper"

// Config holds all subsystem configuration.
type Config struct {
	Vision   ProviderConfig
	Fallback ProviderConfig
	OCR      OCRConfig
	Log      LogConfig
}

// ProviderConfig holds settings for a single model provider endpoint.
type ProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// Configured reports whether the provider has a usable credential.
func (p *ProviderConfig) Configured() bool {
	return p.APIKey != ""
}

// OCRConfig holds tesseract adapter settings.
type OCRConfig struct {
	Binary    string `mapstructure:"binary"`
	Languages string `mapstructure:"languages"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the CARDSCAN_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CARDSCAN")
	v.AutomaticEnv()

	// Vision provider defaults
	v.SetDefault("vision.provider", "gemini")
	v.SetDefault("vision.default_model", "gemini-2.0-flash")
	v.SetDefault("vision.timeout_secs", 20)

	// Fallback provider defaults (unconfigured unless a key is supplied)
	v.SetDefault("fallback.provider", "gemini")
	v.SetDefault("fallback.default_model", "gemini-2.0-flash")
	v.SetDefault("fallback.timeout_secs", 15)

	// OCR defaults
	v.SetDefault("ocr.binary", "tesseract")
	v.SetDefault("ocr.languages", "eng")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	envBindings := map[string]string{
		"vision.provider":        "CARDSCAN_VISION_PROVIDER",
		"vision.api_key":         "CARDSCAN_VISION_API_KEY",
		"vision.default_model":   "CARDSCAN_VISION_DEFAULT_MODEL",
		"vision.timeout_secs":    "CARDSCAN_VISION_TIMEOUT_SECS",
		"fallback.provider":      "CARDSCAN_FALLBACK_PROVIDER",
		"fallback.api_key":       "CARDSCAN_FALLBACK_API_KEY",
		"fallback.default_model": "CARDSCAN_FALLBACK_DEFAULT_MODEL",
		"fallback.timeout_secs":  "CARDSCAN_FALLBACK_TIMEOUT_SECS",
		"ocr.binary":             "CARDSCAN_OCR_BINARY",
		"ocr.languages":          "CARDSCAN_OCR_LANGUAGES",
		"log.level":              "CARDSCAN_LOG_LEVEL",
		"log.format":             "CARDSCAN_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.Vision = ProviderConfig{
		Provider:     v.GetString("vision.provider"),
		APIKey:       v.GetString("vision.api_key"),
		DefaultModel: v.GetString("vision.default_model"),
		TimeoutSecs:  v.GetInt("vision.timeout_secs"),
	}
	cfg.Fallback = ProviderConfig{
		Provider:     v.GetString("fallback.provider"),
		APIKey:       v.GetString("fallback.api_key"),
		DefaultModel: v.GetString("fallback.default_model"),
		TimeoutSecs:  v.GetInt("fallback.timeout_secs"),
	}
	cfg.OCR = OCRConfig{
		Binary:    v.GetString("ocr.binary"),
		Languages: v.GetString("ocr.languages"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	return cfg, nil
}
