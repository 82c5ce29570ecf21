package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// TokenPathFor is where NewClientFromCredentialsFile looks for the stored
// installed-app token.
func TokenPathFor(credentialsPath string) string {
	return filepath.Join(filepath.Dir(credentialsPath), "token.json")
}

// AuthCodeURL returns the consent URL for installed-app credentials.
func AuthCodeURL(credentialsJSON []byte) (string, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return "", fmt.Errorf("parse installed-app credentials: %w", err)
	}
	return cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline), nil
}

// ExchangeAndSave trades an authorization code for a token and writes it to
// tokenPath with owner-only permissions.
func ExchangeAndSave(ctx context.Context, credentialsJSON []byte, code, tokenPath string) error {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return fmt.Errorf("parse installed-app credentials: %w", err)
	}
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	return saveToken(tokenPath, tok)
}

func saveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}
