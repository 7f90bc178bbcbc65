package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/shra1-honade/protein-calorie-tracker/config"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleIdentity is the subset of the userinfo response we keep.
type GoogleIdentity struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type GoogleService struct {
	oauth       *oauth2.Config
	client      *http.Client
	userinfoURL string
}

func NewGoogleService(cfg *config.Config) *GoogleService {
	return &GoogleService{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.FrontendURL + "/api/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		client:      &http.Client{Timeout: 10 * time.Second},
		userinfoURL: googleUserinfoURL,
	}
}

// LoginURL builds the authorization redirect target: fixed scope, offline
// access, forced consent.
func (s *GoogleService) LoginURL() string {
	q := url.Values{}
	q.Set("client_id", s.oauth.ClientID)
	q.Set("redirect_uri", s.oauth.RedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("access_type", "offline")
	q.Set("prompt", "consent")
	return s.oauth.Endpoint.AuthURL + "?" + q.Encode()
}

// ExchangeCode trades an authorization code for the Google identity: token
// exchange first, then a userinfo fetch with the returned bearer token.
// Every failure collapses into ErrAuthFailed.
func (s *GoogleService) ExchangeCode(ctx context.Context, code string) (*GoogleIdentity, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.client)
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, ErrAuthFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userinfoURL, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, ErrAuthFailed
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrAuthFailed
	}

	var identity GoogleIdentity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, ErrAuthFailed
	}
	if identity.ID == "" || identity.Email == "" {
		return nil, ErrAuthFailed
	}
	return &identity, nil
}
