package infrastructures

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"time"
)

type MidtransConfig struct {
	ServerKey   string
	Environment string // "sandbox" or "production"
	BaseURL     string
	CallbackURL string
}

type MidtransClient struct {
	HTTPClient *http.Client
	Config     *MidtransConfig
	BaseURL    string
	AuthHeader string
}

// NewMidtransClient creates a new Midtrans Core API HTTP client with configuration
func NewMidtransClient(appConfig *AppConfig) *MidtransClient {
	config := &MidtransConfig{
		ServerKey:   appConfig.MidtransServerKey,
		Environment: appConfig.MidtransEnvironment,
		CallbackURL: appConfig.BaseURL,
	}

	// Set base URL based on environment
	if config.Environment == "production" {
		config.BaseURL = "https://api.midtrans.com"
	} else {
		config.BaseURL = "https://api.sandbox.midtrans.com"
	}

	// Core API uses basic auth with the server key as username
	authString := base64.StdEncoding.EncodeToString([]byte(config.ServerKey + ":"))
	authHeader := "Basic " + authString

	return &MidtransClient{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Config:     config,
		BaseURL:    config.BaseURL,
		AuthHeader: authHeader,
	}
}

// GetAuthHeader returns the properly formatted authorization header
func (c *MidtransClient) GetAuthHeader() string {
	return c.AuthHeader
}

// GetFullURL constructs the full URL for an endpoint
func (c *MidtransClient) GetFullURL(endpoint string) string {
	return fmt.Sprintf("%s%s", c.BaseURL, endpoint)
}
