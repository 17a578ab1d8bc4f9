//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"room-booking/cmd/bootstrap"
	"room-booking/cmd/bootstrap/components"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/config"
	"room-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "booking"
	pgPassword = "booking"
	pgPort     = nat.Port("5432/tcp")
)

// One container per test process; every suite gets its own database inside it.
// The container is reaped by testcontainers once the process exits.
var shared struct {
	once sync.Once
	host string
	port string
	err  error
}

func sharedPostgres(t *testing.T) (host, port string) {
	t.Helper()

	shared.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: postgresRequest(),
			Started:          true,
		})
		if err != nil {
			shared.err = fmt.Errorf("start postgres: %w", err)
			return
		}
		mapped, err := c.MappedPort(ctx, pgPort)
		if err != nil {
			shared.err = fmt.Errorf("postgres port: %w", err)
			return
		}
		h, err := c.Host(ctx)
		if err != nil {
			shared.err = fmt.Errorf("postgres host: %w", err)
			return
		}
		shared.host, shared.port = h, mapped.Port()
	})

	require.NoError(t, shared.err)
	return shared.host, shared.port
}

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		// throwaway data: keep it in RAM and skip durability
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "synchronous_commit=off",
			"-c", "full_page_writes=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return adminDSN(host, port.Port())
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "room-booking-e2e"},
	}
}

func adminDSN(host, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port)
}

// createDatabase makes a fresh database for one suite and drops it afterwards.
func createDatabase(t *testing.T, host, port string) config.DBConfig {
	t.Helper()

	name := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err)
	defer admin.Close()

	// CREATE DATABASE fails transiently while template1 is busy with a parallel package.
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create test database failed, retrying", "database", name, "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			slog.Warn("drop test database: connect", "database", name, "error", err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
		MinConns: 1,
	}
}

func connectAndMigrate(t *testing.T, dbCfg config.DBConfig) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, _, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err, "connect to test database")
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool, slog.New(slog.DiscardHandler)), "migrate test database")
	return pool
}

func testConfig(dbCfg config.DBConfig) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	// admitted events land in notification_jobs so scenarios can assert on them
	cfg.Notify.Driver = config.NotifyDriverOutbox
	return cfg
}

// startApp wires the production modules around the test pool and returns the router.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.ConfigModule(cfg),
		bootstrap.LoggerModule,
		bootstrap.TracingModule,
		components.PostgresPersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop application", "error", err)
		}
	})
	return router
}

// SharedSuite gives each e2e suite a migrated database of its own and the HTTP router
// of a fully wired application on top of it.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	host, port := sharedPostgres(t)
	dbCfg := createDatabase(t, host, port)
	s.DB = connectAndMigrate(t, dbCfg)
	s.Config = testConfig(dbCfg)
	s.Router = startApp(t, s.DB, s.Config)
}

// SetupSubTest starts every subtest from empty tables.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
