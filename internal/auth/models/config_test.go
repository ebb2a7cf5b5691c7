package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"authbridge/pkg/autherrors"
)

func validConfig() Configuration {
	return Configuration{
		Authority:   "https://login.microsoftonline.com/common",
		ClientID:    "11111111-2222-3333-4444-555555555555",
		RedirectURI: "msauth://com.example.app/callback",
	}
}

func TestConfigurationValidate(t *testing.T) {
	t.Run("accepts a complete configuration", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("rejects each missing required field", func(t *testing.T) {
		missing := map[string]func(*Configuration){
			"authority":   func(c *Configuration) { c.Authority = "" },
			"clientId":    func(c *Configuration) { c.ClientID = "" },
			"redirectUri": func(c *Configuration) { c.RedirectURI = "" },
		}
		for name, strip := range missing {
			cfg := validConfig()
			strip(&cfg)
			err := cfg.Validate()
			assert.True(t, autherrors.HasCode(err, autherrors.CodeInvalidOptions), name)
		}
	})

	t.Run("rejects malformed authority URLs", func(t *testing.T) {
		for _, authority := range []string{"not a url", "login.microsoftonline.com", "https://", "://missing"} {
			cfg := validConfig()
			cfg.Authority = authority
			err := cfg.Validate()
			assert.True(t, autherrors.HasCode(err, autherrors.CodeInvalidOptions), authority)
		}
	})
}

func TestConfigurationWithDefaults(t *testing.T) {
	cfg := validConfig().WithDefaults()
	assert.Equal(t, CacheLocationSession, cfg.CacheLocation)
	assert.Equal(t, DefaultTokenExpirationBuffer, cfg.TokenExpirationBuffer)

	cfg = validConfig()
	cfg.CacheLocation = CacheLocationLocal
	cfg.TokenExpirationBuffer = 30 * time.Second
	cfg = cfg.WithDefaults()
	assert.Equal(t, CacheLocationLocal, cfg.CacheLocation)
	assert.Equal(t, 30*time.Second, cfg.TokenExpirationBuffer)
}
