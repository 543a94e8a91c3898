package handler

import (
	"context"
	"io"
	"net/http"
	"pinboard/internal/core"
	"pinboard/internal/http/payload"
	"pinboard/internal/http/view"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BoardService . BoardService
type BoardService interface {
	SignUp(ctx context.Context, creds core.Credentials) error
	Authenticate(ctx context.Context, creds core.Credentials) (string, error)
	PostMessage(ctx context.Context, userName, contents string) (core.MessageRecord, error)
	ListMessages(ctx context.Context, searchWord string) ([]core.MessageRecord, error)
	GetMessage(ctx context.Context, id uint) (core.MessageRecord, error)
	UpdateMessage(ctx context.Context, id uint, contents string) error
	DeleteMessage(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name FormDecoder . FormDecoder
type FormDecoder interface {
	DecodeForm(r *http.Request, form payload.Form) error
}

//counterfeiter:generate -o fake -fake-name Renderer . Renderer
type Renderer interface {
	Render(w io.Writer, page string, data view.Page) error
}
