package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/servisku/servisku-api/config"
)

// AuthInterface defines the identity provider operations used by the API
type AuthInterface interface {
	// CreateUser creates an email/password account and returns the
	// provider-issued subject id
	CreateUser(email, password string) (string, error)
}

// Auth0Service handles interactions with the Auth0 Management API
type Auth0Service struct {
	domain     string
	mgmtToken  string
	httpClient *http.Client
}

var authServiceInstance AuthInterface

// InitAuthService initializes the auth service from configuration
func InitAuthService(cfg *config.Config) AuthInterface {
	authServiceInstance = NewAuth0Service(cfg)
	return authServiceInstance
}

// GetAuthService returns the initialized auth service instance
func GetAuthService() AuthInterface {
	return authServiceInstance
}

// SetAuthService sets the auth service instance (primarily for testing)
func SetAuthService(service AuthInterface) {
	authServiceInstance = service
}

// NewAuth0Service creates a new Auth0 service instance
func NewAuth0Service(cfg *config.Config) *Auth0Service {
	return &Auth0Service{
		domain:    cfg.Auth0Domain,
		mgmtToken: cfg.Auth0MgmtToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// createUserRequest is the Management API payload for account creation
type createUserRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Connection string `json:"connection"`
}

// createUserResponse holds the fields we need from the created account
type createUserResponse struct {
	UserID string `json:"user_id"`
}

// CreateUser creates an email/password account via the Auth0 Management API
// and returns the subject id of the new account. Duplicate emails, weak
// passwords and malformed emails are rejected by the provider.
func (s *Auth0Service) CreateUser(email, password string) (string, error) {
	// Construct the Management API URL
	// If domain already includes a protocol (for testing), use it as-is
	var endpoint string
	if strings.HasPrefix(s.domain, "http://") || strings.HasPrefix(s.domain, "https://") {
		endpoint = fmt.Sprintf("%s/api/v2/users", s.domain)
	} else {
		endpoint = fmt.Sprintf("https://%s/api/v2/users", s.domain)
	}

	payload := createUserRequest{
		Email:      email,
		Password:   password,
		Connection: "Username-Password-Authentication",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode create-user payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.mgmtToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call create-user endpoint: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	// The Management API answers 201 on success
	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("create-user endpoint returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var created createUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode create-user response: %w", err)
	}

	if created.UserID == "" {
		return "", fmt.Errorf("create-user response did not include a user id")
	}

	return created.UserID, nil
}
