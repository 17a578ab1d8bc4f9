package bootstrap

import (
	"room-booking/cmd/bootstrap/components"
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		TracingModule,
		PersistenceModule(cfg),
		components.UseCaseModule,
		components.HandlerModule,
	)
}

// PersistenceModule picks the store backing the unit of work and the read side.
func PersistenceModule(cfg config.Config) fx.Option {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return components.MemoryPersistenceModule
	}
	return fx.Options(
		DBModule,
		components.PostgresPersistenceModule,
	)
}
