package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tripjournal/internal/models"
)

// Register creates an account and stores the returned token in the session.
// If only persisting fails, the token is returned together with the error.
func (c *HTTPClient) Register(ctx context.Context, username, password string) (models.AuthToken, error) {
	body, err := jsonPayload(models.Credentials{Username: username, Password: password})
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("register: %w", err)
	}

	token, err := send[models.AuthToken](ctx, c, opRegister, body)
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("register: %w", err)
	}
	return c.authenticated(ctx, "register", username, token)
}

// Login exchanges credentials for a token via the form-encoded /token endpoint.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (models.AuthToken, error) {
	body := formPayload(map[string]string{"username": username, "password": password})

	token, err := send[models.AuthToken](ctx, c, opLogin, body)
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("login: %w", err)
	}
	return c.authenticated(ctx, "login", username, token)
}

// authenticated stores a freshly issued token. An empty access token is a
// malformed response and leaves the session untouched.
func (c *HTTPClient) authenticated(ctx context.Context, action, username string, token models.AuthToken) (models.AuthToken, error) {
	if token.IsZero() {
		return models.AuthToken{}, fmt.Errorf("%s: %w: empty access token", action, ErrDecoding)
	}
	if err := c.session.Set(ctx, token); err != nil {
		c.log.Warn(ctx, "token not persisted", "action", action, "error", err)
		return token, fmt.Errorf("%s: %w", action, err)
	}
	c.log.Info(ctx, "authenticated", "action", action, "user", username)
	return token, nil
}

// Logout is local only: it clears the session and the credential store.
func (c *HTTPClient) Logout(ctx context.Context) error {
	if err := c.session.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	c.log.Info(ctx, "logged out")
	return nil
}
