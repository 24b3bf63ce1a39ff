package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tmsdash/internal/model"
	"tmsdash/internal/session"
	"tmsdash/internal/upstream"

	"github.com/golang-jwt/jwt/v5"
)

const (
	loginPath = "/v1/auth/login-json"
	mePath    = "/v1/users/me"
)

// LoginRequest is the credential payload for the upstream login endpoint
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

type loginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        model.User `json:"user"`
}

// Service performs login/logout against the upstream API and resolves the
// current user from the session token.
type Service struct {
	api      *upstream.Client
	sessions session.Store
}

func NewService(api *upstream.Client, sessions session.Store) *Service {
	return &Service{api: api, sessions: sessions}
}

// Login exchanges credentials for a session. On success the token is stored
// with a 7-day window (clamped to the token's own expiry when it is a JWT
// that expires sooner) and the normalized user is returned.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, error) {
	var resp loginResponse
	err := s.api.Post(ctx, loginPath, LoginRequest{UsernameOrEmail: email, Password: password}, &resp)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			// string detail verbatim; anything else gets the generic message
			if apiErr.Detail.Message != "" {
				return nil, errors.New(apiErr.Detail.Message)
			}
			return nil, errors.New("Login failed")
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("login: upstream returned no access token")
	}

	user := NormalizeUser(resp.User)
	s.sessions.SetToken(resp.AccessToken, sessionTTL(resp.AccessToken))
	return user, nil
}

// Logout destroys the session. The token scheme is stateless; there is no
// server-side revocation to call.
func (s *Service) Logout() {
	s.sessions.Clear()
}

// CurrentUser resolves the authenticated user, or nil when there is none.
// Without a token it returns immediately, skipping the network round-trip.
// Fetch failures (expired token included) also yield nil: an unauthenticated
// state is a normal outcome here, so the error is logged, not returned.
func (s *Service) CurrentUser(ctx context.Context) *model.User {
	if _, ok := s.sessions.Token(); !ok {
		return nil
	}

	var raw model.User
	if err := s.api.Get(ctx, mePath, &raw); err != nil {
		log.Printf("auth: current user fetch failed: %v", err)
		return nil
	}
	return NormalizeUser(raw)
}

// NormalizeUser maps a raw upstream user payload into its canonical form:
// is_superuser is always derived from the role and the permissions map is
// never nil.
func NormalizeUser(raw model.User) *model.User {
	raw.IsSuperuser = raw.Role == model.RoleSuperAdmin
	if raw.Permissions == nil {
		raw.Permissions = map[string]bool{}
	}
	return &raw
}

// sessionTTL is the 7-day default, shortened to the access token's exp claim
// when it parses as a JWT expiring sooner. The token is not verified here;
// only the upstream can do that, this just avoids cookies outliving tokens.
func sessionTTL(token string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return session.DefaultTTL
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return session.DefaultTTL
	}
	if ttl := time.Until(exp.Time); ttl > 0 && ttl < session.DefaultTTL {
		return ttl
	}
	return session.DefaultTTL
}
