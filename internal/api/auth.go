package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AuthService handles account registration and authentication.
type AuthService struct {
	client *Client
}

// Signup registers a new photographer account. A conflicting email is
// reported as ErrConflict; other rejected input surfaces the server reason.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) error {
	var resp signupResponse
	err := s.client.post(ctx, "/auth/signup", "", req, &resp)
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest &&
		strings.Contains(strings.ToLower(apiErr.Detail), "already registered") {
		return fmt.Errorf("%w: %s", ErrConflict, apiErr.Detail)
	}
	return err
}

// Login authenticates with email and password and returns the bearer token
// plus the account identity.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var resp LoginResult
	err := s.client.post(ctx, "/auth/login", "", LoginRequest{Email: email, Password: password}, &resp)
	if err == nil {
		return &resp, nil
	}

	// A 401 on login means bad credentials, not an expired session.
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Detail)
	}
	return nil, err
}
