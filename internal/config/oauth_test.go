package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOAuthConfig() *OAuthClientConfig {
	return &OAuthClientConfig{
		Installed: OAuthInstalled{
			ClientID:                "test-client-id.apps.googleusercontent.com",
			ProjectID:               "test-project",
			AuthURI:                 "https://accounts.google.com/o/oauth2/auth",
			TokenURI:                "https://oauth2.googleapis.com/token",
			AuthProviderX509CertURL: "https://www.googleapis.com/oauth2/v1/certs",
			ClientSecret:            "test-secret",
			RedirectURIs:            []string{"http://localhost"},
		},
	}
}

func TestValidateOAuthClient_ValidConfig(t *testing.T) {
	assert.NoError(t, ValidateOAuthClient(validOAuthConfig()))
}

func TestValidateOAuthClient_MissingClientID(t *testing.T) {
	cfg := validOAuthConfig()
	cfg.Installed.ClientID = ""

	err := ValidateOAuthClient(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateOAuthClient_InvalidAuthURI(t *testing.T) {
	cfg := validOAuthConfig()
	cfg.Installed.AuthURI = "not-a-valid-url"

	err := ValidateOAuthClient(cfg)
	assert.Error(t, err)
}

func TestLoadOAuthClientFromPath_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	oauthPath := filepath.Join(tmpDir, "oauthClient.json")

	contents := `{
  "installed": {
    "client_id": "test-client-id.apps.googleusercontent.com",
    "project_id": "test-project",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
    "client_secret": "test-secret",
    "redirect_uris": ["http://localhost"]
  }
}`
	require.NoError(t, os.WriteFile(oauthPath, []byte(contents), 0644))

	cfg, err := LoadOAuthClientFromPath(oauthPath)
	require.NoError(t, err)
	assert.Equal(t, "test-project", cfg.Installed.ProjectID)
	assert.Equal(t, "test-secret", cfg.Installed.ClientSecret)
}

func TestLoadOAuthClientFromPath_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	oauthPath := filepath.Join(tmpDir, "oauthClient.json")
	require.NoError(t, os.WriteFile(oauthPath, []byte("{not json"), 0644))

	_, err := LoadOAuthClientFromPath(oauthPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse oauth client file")
}
