package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, entities any) error
	SearchBy(ctx context.Context, column string, substring string, entities any) error
	UpdateBy(ctx context.Context, model any, column string, value any, updates map[string]any) error
	DeleteBy(ctx context.Context, model any, column string, value any) error
}
