package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardscan/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Vision.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Vision.DefaultModel)
	assert.Equal(t, 20, cfg.Vision.TimeoutSecs)

	assert.Equal(t, "gemini", cfg.Fallback.Provider)
	assert.Equal(t, 15, cfg.Fallback.TimeoutSecs)

	assert.Equal(t, "tesseract", cfg.OCR.Binary)
	assert.Equal(t, "eng", cfg.OCR.Languages)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CARDSCAN_VISION_API_KEY", "vision-secret")
	t.Setenv("CARDSCAN_VISION_DEFAULT_MODEL", "gemini-2.5-pro")
	t.Setenv("CARDSCAN_FALLBACK_TIMEOUT_SECS", "45")
	t.Setenv("CARDSCAN_OCR_LANGUAGES", "eng+hin")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "vision-secret", cfg.Vision.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Vision.DefaultModel)
	assert.Equal(t, 45, cfg.Fallback.TimeoutSecs)
	assert.Equal(t, "eng+hin", cfg.OCR.Languages)
}

func TestProviderConfig_Configured(t *testing.T) {
	p := config.ProviderConfig{}
	assert.False(t, p.Configured())

	p.APIKey = "key"
	assert.True(t, p.Configured())
}
