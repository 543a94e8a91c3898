package core

import (
	"context"
	"pinboard/internal/repository"
	tokenIssuer "pinboard/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateMessage(ctx context.Context, userName, contents string) (repository.Message, error)
	ListMessages(ctx context.Context) ([]repository.Message, error)
	SearchMessages(ctx context.Context, substring string) ([]repository.Message, error)
	GetMessage(ctx context.Context, id uint) (repository.Message, error)
	UpdateMessage(ctx context.Context, id uint, contents string) error
	DeleteMessage(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name SessionIssuer . SessionIssuer
type SessionIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
