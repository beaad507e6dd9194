package components

import (
	"smartlocker/internal/infra/query"
	"smartlocker/internal/infra/readstore"
	repo_impl "smartlocker/internal/infra/repository"
	"smartlocker/internal/usecase/commands"
	"smartlocker/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			NewQueries,
			fx.As(new(repo_impl.LockerWriteQueries)),
		),
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.LockerReadQueries)),
		),
		fx.Annotate(
			repo_impl.NewLockerRepository,
			fx.As(new(commands.LockerRepository)),
			fx.As(new(queries.LeaseExpirer)),
		),
		fx.Annotate(
			readstore.NewLockerReadStore,
			fx.As(new(queries.LockerReadStore)),
		),
	),
)

func NewQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
