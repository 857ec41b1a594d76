package repo

import (
	"context"

	"swiftdrop/internal/api"
	"swiftdrop/internal/domain"
)

// AuthRepo handles login, registration and push-token forwarding. Login and
// Register go through the public client; everything else is authenticated.
type AuthRepo struct {
	public *api.Client
	authed *api.Client
}

// NewAuthRepo constructs an AuthRepo over the two pipeline clients.
func NewAuthRepo(public, authed *api.Client) *AuthRepo {
	return &AuthRepo{public: public, authed: authed}
}

// Login exchanges credentials for a session.
func (r *AuthRepo) Login(ctx context.Context, email, password string) (domain.AuthSession, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out sessionDTO
	if err := r.public.Post(ctx, "/users/login/", in, &out); err != nil {
		return domain.AuthSession{}, err
	}
	return mapSession(out), nil
}

// Register creates an account and returns the fresh session.
func (r *AuthRepo) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthSession, error) {
	in := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}{req.Name, req.Email, req.Phone, req.Password, string(req.Role)}

	var out sessionDTO
	if err := r.public.Post(ctx, "/users/register/", in, &out); err != nil {
		return domain.AuthSession{}, err
	}
	return mapSession(out), nil
}

// UpdatePushToken forwards a new device push token to the backend.
func (r *AuthRepo) UpdatePushToken(ctx context.Context, token string) error {
	in := struct {
		FCMToken string `json:"fcm_token"`
	}{token}
	return r.authed.Post(ctx, "/users/update-fcm-token/", in, nil)
}

// Compile-time assertion that AuthRepo implements domain.AuthRepository.
var _ domain.AuthRepository = (*AuthRepo)(nil)
