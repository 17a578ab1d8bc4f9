package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/trace"

	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"
)

type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	tp trace.TracerProvider,
	reservationHandler *api.ReservationHandler,
	roomHandler *api.RoomHandler,
) {
	// Recovery stays outermost so it also catches panics raised by the other middleware.
	engine.Use(
		middleware.CustomRecovery(logger),
		middleware.RequestTracing(tp),
		middleware.RequestLogger(logger),
		middleware.NewCORSMiddleware(cfg.CORS, logger),
		middleware.ErrorHandler(logger),
	)

	engine.GET("/health", healthCheck(cfg.Store.Driver))
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	addRoutes(apiGroup.Group("/reservations"), []route{
		{http.MethodPost, "", reservationHandler.Create},
		{http.MethodGet, "/:id", reservationHandler.Get},
		{http.MethodPut, "/:id", reservationHandler.Replace},
		{http.MethodPatch, "/:id", reservationHandler.Update},
		{http.MethodDelete, "/:id", reservationHandler.Delete},
	})
	addRoutes(apiGroup.Group("/rooms"), []route{
		{http.MethodGet, "", roomHandler.List},
		{http.MethodGet, "/:id", roomHandler.Get},
		{http.MethodDelete, "/:id", roomHandler.Delete},
		{http.MethodGet, "/:id/reservations", reservationHandler.ListByRoom},
	})
}

func addRoutes(g *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		g.Handle(r.method, r.path, r.handler)
	}
}

// @Summary Health check
// @Description Report liveness and the configured store driver
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(storeDriver string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"store":  storeDriver,
		})
	}
}
