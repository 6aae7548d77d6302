package components

import (
	"log/slog"

	"event-checkout/internal/infra/readstore"
	"event-checkout/internal/infra/repository"
	"event-checkout/internal/infra/sessionstore"
	"event-checkout/internal/infra/uow"
	"event-checkout/internal/pkg/config"
	"event-checkout/internal/usecase/commands"
	"event-checkout/internal/usecase/queries"
	"event-checkout/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	sessionModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewSavedProfileReadStore,
			fx.As(new(commands.SavedProfileReader)),
			fx.As(new(queries.SavedProfileLister)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork owns the transactional repositories
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewIdentityRepository,
			fx.As(new(commands.IdentityDirectory)),
		),
		fx.Annotate(
			repository.NewErrorLogRepository,
			fx.As(new(commands.ErrorReporter)),
		),
	),
)

var sessionModule = fx.Module("persistence/session",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionStore)),
			fx.As(new(queries.SessionReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) shared.DBTX {
	return pool
}

func NewSessionStore(client redis.UniversalClient, cfg config.Config, logger *slog.Logger) *sessionstore.RedisStore {
	return sessionstore.NewRedisStore(client, cfg.Session.TTL, cfg.Session.KeyPrefix, logger)
}
