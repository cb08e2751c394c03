package authenticator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenIDConfig(t *testing.T) {
	cfg := OpenIDConfig{Domain: "tenant.eu.auth0.com", ClientID: "id", ClientSecret: "secret", CallbackURL: "http://localhost:8080/callback"}
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "https://tenant.eu.auth0.com/", cfg.IssuerURL())

	cfg.Domain = "http://localhost:9999/"
	assert.Equal(t, "http://localhost:9999/", cfg.IssuerURL())

	cfg.ClientSecret = ""
	assert.EqualError(t, cfg.Validate(), "client secret is required")
}

func TestGenerateState(t *testing.T) {
	first, err := GenerateState()
	require.NoError(t, err)
	second, err := GenerateState()
	require.NoError(t, err)

	assert.Len(t, first, 43)
	assert.NotEqual(t, first, second)
}

func TestClaimsString(t *testing.T) {
	claims := Claims{"email": "a@example.com", "email_verified": true}
	assert.Equal(t, "a@example.com", claims.String("email"))
	assert.Equal(t, "", claims.String("email_verified"))
	assert.Equal(t, "", claims.String("missing"))
}
