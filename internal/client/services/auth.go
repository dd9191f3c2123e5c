package services

import (
	"context"

	"github.com/fieldassets/fieldassets/internal/client/api"
	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/logging"
)

// AuthService authenticates the operator against the remote service. The
// session credential is opaque; only the identity fields of the response
// are kept, and the username becomes the owner tag for every local read
// and write that follows.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

type authService struct {
	client api.Client
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client api.Client, log logging.Logger) AuthService {
	return &authService{client: client, log: log}
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	a.log.Info(ctx, "login successful", "user", user.Username, "role", user.Role)
	return user, nil
}
