package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"jobdesk-engine/internal/domain"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // user or company
	City     string `json:"city,omitempty"`
}

type LoginResult struct {
	Token string
	User  domain.User
}

type wireUser struct {
	ID    flexID `json:"user_id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (w wireUser) toDomain() domain.User {
	return domain.User{ID: string(w.ID), Role: w.Role, Name: w.Name, Email: w.Email}
}

func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	b, err := c.do(ctx, http.MethodPost, "/login", creds, false)
	if err != nil {
		return LoginResult{}, err
	}
	var env struct {
		Data struct {
			Token string   `json:"token"`
			User  wireUser `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return LoginResult{}, fmt.Errorf("unexpected login response shape: %w", err)
	}
	if env.Data.Token == "" {
		return LoginResult{}, fmt.Errorf("login response missing token")
	}
	return LoginResult{Token: env.Data.Token, User: env.Data.User.toDomain()}, nil
}

func (c *Client) Register(ctx context.Context, reg Registration) (string, error) {
	b, err := c.do(ctx, http.MethodPost, "/register", reg, false)
	if err != nil {
		return "", err
	}
	return message(b), nil
}

func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	var w wireUser
	if err := c.getData(ctx, "/profile", true, &w); err != nil {
		return domain.User{}, err
	}
	return w.toDomain(), nil
}

func (c *Client) UpdateProfile(ctx context.Context, fields map[string]any) (string, error) {
	b, err := c.do(ctx, http.MethodPut, "/profile", fields, true)
	if err != nil {
		return "", err
	}
	return message(b), nil
}
