package main

import (
	"log/slog"
	"os"
	"time"

	"room-booking/cmd/bootstrap"
	"room-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Debug output only when asked for explicitly.
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           room-booking
// @version         1.0
// @description     Conference room reservation admission service
// @BasePath        /api
// @schemes         http https
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	fx.New(
		bootstrap.Module(cfg),
		bootstrap.ServerModule,
		fx.StartTimeout(30*time.Second),
		fx.StopTimeout(15*time.Second),
	).Run()
}
