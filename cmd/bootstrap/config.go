package bootstrap

import (
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies an already loaded config; the store and notify drivers decide the graph.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
