package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/soyelectronico/storefront/internal/core/domain"
)

// UserGateway consumes the remote user service.
type UserGateway struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewUserGateway(baseURL string, client *http.Client, log zerolog.Logger) *UserGateway {
	return &UserGateway{baseURL: strings.TrimRight(baseURL, "/"), client: client, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer credential. Any 4xx is a business
// rejection; the caller never learns whether the email or the password was
// wrong.
func (g *UserGateway) Login(ctx context.Context, email, password string) (string, error) {
	status, body, err := do(ctx, g.client, http.MethodPost, g.baseURL+"/login", "", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	switch {
	case is2xx(status):
	case status >= 400 && status < 500:
		return "", domain.ErrAuthRejected
	default:
		return "", &domain.RemoteError{Status: status, Message: serverMessage(body)}
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Token == "" {
		g.log.Error().Int("status", status).Msg("user service returned no credential")
		return "", &domain.RemoteError{Status: status, Message: "login response carried no credential"}
	}

	return resp.Token, nil
}

// Register creates a customer account.
func (g *UserGateway) Register(ctx context.Context, name, email, password string) error {
	status, body, err := do(ctx, g.client, http.MethodPost, g.baseURL+"/registration", "", registerRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return err
	}

	switch {
	case is2xx(status):
		return nil
	case status >= 400 && status < 500:
		// Server-side rule violation, e.g. duplicate email.
		return &domain.ValidationRejectedError{Message: serverMessage(body)}
	default:
		return &domain.RemoteError{Status: status, Message: serverMessage(body)}
	}
}
