package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/tripjournal/internal/common"
)

var errEmptyUserName = errors.New("user name must not be empty")

func (a *App) readCredentials(ctx context.Context) (string, []byte, error) {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return "", nil, a.report(ctx, err)
	}
	if userName == "" {
		return "", nil, a.report(ctx, errEmptyUserName)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return "", nil, a.report(ctx, err)
	}
	return userName, password, nil
}

func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.readCredentials(ctx)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.client.Register(ctx, userName, string(password)); err != nil {
		return a.report(ctx, err)
	}
	a.setUser(userName)
	a.println("Registered and logged in as", userName)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.readCredentials(ctx)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.client.Login(ctx, userName, string(password)); err != nil {
		return a.report(ctx, err)
	}
	a.setUser(userName)
	a.println("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return a.report(ctx, err)
	}
	a.println("Logged out")
	return nil
}

// Status prints whether a token is held and, for JWTs, its subject and expiry.
func (a *App) Status(ctx context.Context) error {
	if !a.client.IsAuthenticated() {
		a.println("Not logged in")
		return nil
	}
	a.println("Logged in")

	tok, ok := a.client.Token()
	if !ok {
		return nil
	}
	claims, err := tok.Claims()
	if err != nil {
		a.log.Debug(ctx, "token claims unavailable", "error", err)
		return nil
	}
	if claims.Subject != "" {
		a.println("  user:", claims.Subject)
	}
	if !claims.ExpiresAt.IsZero() {
		a.printf("  expires: %s", claims.ExpiresAt.UTC().Format(time.RFC3339))
		if time.Now().After(claims.ExpiresAt) {
			a.printf(" (expired, please login again)")
		}
		a.println()
	}
	return nil
}
