package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/appwrite/starter-for-vue/pkg/models"
)

// CurrentSession addresses the session the client is authenticated with.
const CurrentSession = "current"

// Account exposes the /account API for the authenticated user.
type Account struct {
	client *Client
}

func NewAccount(c *Client) *Account {
	return &Account{client: c}
}

// Client returns the shared client this service wraps.
func (a *Account) Client() *Client {
	return a.client
}

// Get returns the currently logged in user.
func (a *Account) Get(ctx context.Context) (*models.User, error) {
	out := &models.User{}
	if err := a.client.call(ctx, "account.get", http.MethodGet, "/account", nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a new user. Use id.Unique() to let the server pick the id.
func (a *Account) Create(ctx context.Context, userID, email, password, name string) (*models.User, error) {
	if userID == "" {
		return nil, missing("userId")
	}
	if email == "" {
		return nil, missing("email")
	}
	if password == "" {
		return nil, missing("password")
	}
	body := map[string]any{
		"userId":   userID,
		"email":    email,
		"password": password,
	}
	if name != "" {
		body["name"] = name
	}
	out := &models.User{}
	if err := a.client.call(ctx, "account.create", http.MethodPost, "/account", nil, body, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEmailPasswordSession logs in with email and password. The session
// cookie is kept by the client for later calls.
func (a *Account) CreateEmailPasswordSession(ctx context.Context, email, password string) (*models.Session, error) {
	if email == "" {
		return nil, missing("email")
	}
	if password == "" {
		return nil, missing("password")
	}
	body := map[string]any{"email": email, "password": password}
	out := &models.Session{}
	if err := a.client.call(ctx, "account.createEmailPasswordSession", http.MethodPost, "/account/sessions/email", nil, body, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Account) CreateAnonymousSession(ctx context.Context) (*models.Session, error) {
	out := &models.Session{}
	if err := a.client.call(ctx, "account.createAnonymousSession", http.MethodPost, "/account/sessions/anonymous", nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Account) ListSessions(ctx context.Context) (*models.SessionList, error) {
	out := &models.SessionList{}
	if err := a.client.call(ctx, "account.listSessions", http.MethodGet, "/account/sessions", nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSession returns a session by id, or the current one for CurrentSession.
func (a *Account) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, missing("sessionId")
	}
	out := &models.Session{}
	path := "/account/sessions/" + url.PathEscape(sessionID)
	if err := a.client.call(ctx, "account.getSession", http.MethodGet, path, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteSession logs out of one session. Pass CurrentSession to log out.
func (a *Account) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return missing("sessionId")
	}
	path := "/account/sessions/" + url.PathEscape(sessionID)
	return a.client.call(ctx, "account.deleteSession", http.MethodDelete, path, nil, nil, nil)
}

// DeleteSessions logs out of every session of the user.
func (a *Account) DeleteSessions(ctx context.Context) error {
	return a.client.call(ctx, "account.deleteSessions", http.MethodDelete, "/account/sessions", nil, nil, nil)
}

func (a *Account) UpdateName(ctx context.Context, name string) (*models.User, error) {
	if name == "" {
		return nil, missing("name")
	}
	out := &models.User{}
	if err := a.client.call(ctx, "account.updateName", http.MethodPatch, "/account/name", nil, map[string]any{"name": name}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Account) GetPrefs(ctx context.Context) (models.Preferences, error) {
	out := models.Preferences{}
	if err := a.client.call(ctx, "account.getPrefs", http.MethodGet, "/account/prefs", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePrefs replaces the user's preferences.
func (a *Account) UpdatePrefs(ctx context.Context, prefs models.Preferences) (*models.User, error) {
	if prefs == nil {
		prefs = models.Preferences{}
	}
	out := &models.User{}
	if err := a.client.call(ctx, "account.updatePrefs", http.MethodPatch, "/account/prefs", nil, map[string]any{"prefs": prefs}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateJWT issues a short-lived token for the current session, for handing
// the user's identity to a backend that then calls Client.SetJWT.
func (a *Account) CreateJWT(ctx context.Context) (*models.JWT, error) {
	out := &models.JWT{}
	if err := a.client.call(ctx, "account.createJWT", http.MethodPost, "/account/jwts", nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
