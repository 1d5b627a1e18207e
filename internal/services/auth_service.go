package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eburon/crm-service/internal/config"
	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/utils"
)

type AuthResult struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"accessToken,omitempty"`
}

type AuthService interface {
	SignUp(ctx context.Context, email, password, name string, role models.UserRole) (*AuthResult, error)

	// SignIn authenticates against the hosted auth endpoint and returns the
	// stored profile. A missing profile row is synthesized from the auth
	// email and persisted before returning.
	SignIn(ctx context.Context, email, password string, role models.UserRole) (*AuthResult, error)
}

type authService struct {
	cfg      *config.Config
	http     *http.Client
	profiles ProfileService
}

func NewAuthService(cfg *config.Config, profiles ProfileService) AuthService {
	return &authService{
		cfg:      cfg,
		http:     &http.Client{Timeout: 30 * time.Second},
		profiles: profiles,
	}
}

type authUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// authResponse covers both shapes the auth endpoint answers with: a bare
// user object on signup, or a token envelope on password sign-in.
type authResponse struct {
	AccessToken string    `json:"access_token"`
	User        *authUser `json:"user"`
	authUser
}

func (r *authResponse) userID() string {
	if r.User != nil && r.User.ID != "" {
		return r.User.ID
	}
	return r.ID
}

func (r *authResponse) userEmail() string {
	if r.User != nil && r.User.Email != "" {
		return r.User.Email
	}
	return r.Email
}

func (s *authService) SignUp(ctx context.Context, email, password, name string, role models.UserRole) (*AuthResult, error) {
	resp, err := s.post(ctx, "/auth/v1/signup", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:     resp.userID(),
		Email:  email,
		Name:   name,
		Role:   role,
		Avatar: avatarURL(name),
	}
	if err := s.profiles.CreateUserProfile(ctx, user); err != nil {
		return nil, err
	}
	return &AuthResult{User: user, AccessToken: resp.AccessToken}, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string, role models.UserRole) (*AuthResult, error) {
	resp, err := s.post(ctx, "/auth/v1/token?grant_type=password", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	userID := resp.userID()
	profile, err := s.profiles.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		authEmail := resp.userEmail()
		if authEmail == "" {
			authEmail = email
		}
		fallback := &models.User{
			ID:     userID,
			Email:  authEmail,
			Name:   nameFromEmail(authEmail),
			Role:   role,
			Avatar: avatarURL(authEmail),
		}
		if err := s.profiles.CreateUserProfile(ctx, fallback); err != nil {
			return nil, err
		}
		profile, err = s.profiles.GetUserProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	if profile == nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeNotFound,
			Message:    "Profile not found. Please contact support.",
			Err:        utils.ErrProfileNotFound,
		}
	}
	return &AuthResult{User: profile, AccessToken: resp.AccessToken}, nil
}

func (s *authService) post(ctx context.Context, path string, body map[string]string) (*authResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(s.cfg.SupabaseURL, "/")+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", s.cfg.SupabaseAnonKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeBackendUnavailable,
			Message:    "Authentication backend unreachable",
			Err:        err,
		}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeInvalidCredentials,
			Message:    authErrorMessage(raw),
			Err:        fmt.Errorf("auth status %d", resp.StatusCode),
		}
	}

	var parsed authResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeBackendUnavailable,
			Message:    "Malformed auth response",
			Err:        err,
		}
	}
	return &parsed, nil
}

func authErrorMessage(raw []byte) string {
	var e struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
	}
	_ = json.Unmarshal(raw, &e)
	if e.ErrorDescription != "" {
		return e.ErrorDescription
	}
	if e.Msg != "" {
		return e.Msg
	}
	return "Invalid credentials"
}

func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "User"
}

func avatarURL(seed string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(seed) + "&background=random"
}
