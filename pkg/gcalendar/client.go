package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const dateLayout = "2006-01-02"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file.
// Installed-app credentials look for token.json next to the credentials file.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, TokenPathFor(credentialsPath))
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials.
// Service account JSON is tried first, then installed-app OAuth credentials
// paired with the token stored at tokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err == nil {
		return newClient(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	}

	oauthConfig, oauthErr := installedAppConfig(credentialsJSON)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", errors.Join(err, oauthErr))
	}

	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("installed-app credentials need a stored token at %s: %w", tokenPath, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	return newClient(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func installedAppConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	var creds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &creds); err != nil {
		return nil, err
	}
	if creds.Installed.ClientID == "" {
		return nil, errors.New("missing installed.client_id")
	}

	return &oauth2.Config{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       eventTime(req.StartTime, req.AllDay, req.Timezone),
		End:         eventTime(req.EndTime, req.AllDay, req.Timezone),
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

func eventTime(t time.Time, allDay bool, tz string) *calendar.EventDateTime {
	if allDay {
		return &calendar.EventDateTime{Date: t.Format(dateLayout)}
	}
	return &calendar.EventDateTime{
		DateTime: t.Format(time.RFC3339),
		TimeZone: tz,
	}
}
