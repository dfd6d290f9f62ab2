package client

import (
	"context"

	"github.com/dmitrijs2005/signin/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
}
