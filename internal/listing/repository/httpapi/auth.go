package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/model"
)

var errNoRefreshToken = errors.New("no refresh token")

// sessionTokenSource hands out the session's access token and swaps it for a
// fresh one through POST /auth/refresh once it has been invalidated.
type sessionTokenSource struct {
	mu           sync.Mutex
	refreshURL   string
	refreshToken string
	current      *oauth2.Token
	httpClient   *http.Client
}

var _ oauth2.TokenSource = (*sessionTokenSource)(nil)

func newSessionTokenSource(baseURL string, sess model.Session, httpClient *http.Client) *sessionTokenSource {
	ts := &sessionTokenSource{
		refreshURL:   fmt.Sprintf("%s/auth/refresh", baseURL),
		refreshToken: sess.RefreshToken,
		httpClient:   httpClient,
	}
	if sess.AccessToken != "" {
		ts.current = bearer(sess.AccessToken)
	}
	return ts
}

// Token implements oauth2.TokenSource.
func (ts *sessionTokenSource) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.current.Valid() {
		return ts.current, nil
	}

	tok, err := ts.refresh(context.Background())
	if err != nil {
		return nil, err
	}
	ts.current = tok
	return tok, nil
}

// invalidate forces the next Token call to refresh. It reports whether a
// refresh is possible at all.
func (ts *sessionTokenSource) invalidate() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.current = nil
	return ts.refreshToken != ""
}

func (ts *sessionTokenSource) refresh(ctx context.Context) (*oauth2.Token, error) {
	if ts.refreshToken == "" {
		return nil, &FetchError{StatusCode: http.StatusUnauthorized, Message: errNoRefreshToken.Error(), Err: listing.ErrUnauthorized, refresh: true}
	}

	body, err := json.Marshal(RefreshRequest{Token: ts.refreshToken})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.refreshURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{StatusCode: http.StatusUnauthorized, Message: "session expired: " + string(raw), Err: listing.ErrUnauthorized, refresh: true}
	}

	var out RefreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if !out.Success || out.AccessToken == "" {
		return nil, &FetchError{StatusCode: http.StatusUnauthorized, Message: "session expired", Err: listing.ErrUnauthorized, refresh: true}
	}

	return bearer(out.AccessToken), nil
}

// bearer wraps an access token. The backend does not report expiry alongside
// the token, so it is read from the JWT exp claim when there is one; otherwise
// the token is used until a 401 invalidates it.
func bearer(access string) *oauth2.Token {
	return &oauth2.Token{AccessToken: access, TokenType: "Bearer", Expiry: tokenExpiry(access)}
}

// tokenExpiry returns the exp claim of a JWT without verifying its signature,
// or the zero time when access is not a JWT or carries no expiry.
func tokenExpiry(access string) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
