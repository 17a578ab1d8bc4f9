package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"room-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// ServerModule owns the gin engine and serves it over HTTP for the app's lifetime.
var ServerModule = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Invoke(StartServer),
)

func NewEngine() *gin.Engine {
	gin.EnableJsonDecoderDisallowUnknownFields()
	return gin.New()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Bind before returning so a taken port fails startup instead of a goroutine.
			ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("http server listening", "address", ln.Addr().String(), "mode", gin.Mode(), "store", cfg.Store.Driver)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server stopped unexpectedly", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}
