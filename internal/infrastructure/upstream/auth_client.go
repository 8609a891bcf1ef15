package upstream

import (
	"context"
	"net/http"

	"github.com/buy01/storefront-gateway/internal/core/domain"
)

// AuthClient implements ports.AuthAPI against the remote user service.
type AuthClient struct {
	*Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{Client: c}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResult struct {
	Token string           `json:"token"`
	User  *domain.Identity `json:"user"`
}

type registerPayload struct {
	Firstname string      `json:"firstname"`
	Lastname  string      `json:"lastname"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Role      domain.Role `json:"role"`
}

type registerResult struct {
	UserID string `json:"userId"`
}

// Login calls the remote authentication endpoint.
func (c *AuthClient) Login(ctx context.Context, email, password string) (*domain.Identity, string, error) {
	var res loginResult
	err := c.doJSON(ctx, "auth_login", http.MethodPost, "/api/users/login",
		loginPayload{Email: email, Password: password}, &res)
	if err != nil {
		return nil, "", err
	}
	return res.User, res.Token, nil
}

// Signup calls the remote registration endpoint. The avatar is deliberately
// not part of the payload; it is uploaded through the media endpoint after
// login.
func (c *AuthClient) Signup(ctx context.Context, req domain.SignupRequest) (string, error) {
	var res registerResult
	err := c.doJSON(ctx, "auth_register", http.MethodPost, "/api/users/register",
		registerPayload{
			Firstname: req.Firstname,
			Lastname:  req.Lastname,
			Email:     req.Email,
			Password:  req.Password,
			Role:      req.Role,
		}, &res)
	if err != nil {
		return "", err
	}
	return res.UserID, nil
}
