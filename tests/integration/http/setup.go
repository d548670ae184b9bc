package http

import (
	"context"
	"database/sql"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JMURv/apk-gate/internal/auth"
	"github.com/JMURv/apk-gate/internal/cache/redis"
	"github.com/JMURv/apk-gate/internal/config"
	"github.com/JMURv/apk-gate/internal/ctrl"
	hdl "github.com/JMURv/apk-gate/internal/hdl/http"
	"github.com/JMURv/apk-gate/internal/repo/db"
	"github.com/JMURv/apk-gate/internal/smtp"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const getTables = `
SELECT tablename
FROM pg_tables
WHERE schemaname = 'public';
`

var rootDir = filepath.Join("..", "..", "..")

func getRedis(conf config.Config) testcontainers.Container {
	ctx := context.Background()

	hostPort := strings.TrimPrefix(conf.Redis.Addr, "localhost:")
	req := testcontainers.ContainerRequest{
		Image:        "redis:alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
		HostConfigModifier: func(hostConfig *container.HostConfig) {
			hostConfig.PortBindings = nat.PortMap{
				"6379/tcp": []nat.PortBinding{
					{
						HostIP:   "0.0.0.0",
						HostPort: hostPort,
					},
				},
			}
		},
	}

	redisC, err := testcontainers.GenericContainer(
		ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		},
	)
	if err != nil {
		panic(err)
	}

	zap.L().Info("Redis container is ready")
	return redisC
}

func getPostgres(conf config.Config) testcontainers.Container {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17.4-alpine",
		WaitingFor:   wait.ForHealthCheck(),
		ExposedPorts: []string{"5432/tcp"},
		ConfigModifier: func(c *container.Config) {
			c.Healthcheck = &container.HealthConfig{
				Test: []string{
					"CMD-SHELL",
					fmt.Sprintf("pg_isready -U %s -d %s", conf.DB.User, conf.DB.Database),
				},
				Interval:    5 * time.Second,
				Timeout:     2 * time.Second,
				Retries:     5,
				StartPeriod: 2 * time.Second,
			}
		},
		HostConfigModifier: func(hostConfig *container.HostConfig) {
			hostConfig.PortBindings = nat.PortMap{
				"5432/tcp": []nat.PortBinding{
					{
						HostIP:   "0.0.0.0",
						HostPort: fmt.Sprintf("%d", conf.DB.Port),
					},
				},
			}
		},
		Env: map[string]string{
			"POSTGRES_DB":       conf.DB.Database,
			"POSTGRES_USER":     conf.DB.User,
			"POSTGRES_PASSWORD": conf.DB.Password,
		},
	}

	pgC, err := testcontainers.GenericContainer(
		ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		},
	)
	if err != nil {
		panic(err)
	}

	zap.L().Info("Postgres container is ready")
	return pgC
}

func setupTestServer() (*httptest.Server, config.Config, func(t *testing.T)) {
	zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))

	conf := config.MustLoad(
		filepath.ToSlash(
			filepath.Join(rootDir, "configs", "integration.config.yaml"),
		),
	)

	_ = os.Setenv(
		"MIGRATIONS_PATH", filepath.ToSlash(
			filepath.Join(rootDir, "internal", "repo", "db", "migration"),
		),
	)

	redisC := getRedis(conf)
	pgC := getPostgres(conf)

	au := auth.New(conf.Auth)
	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	svc := ctrl.New(repo, cache, smtp.New(conf), conf.APK)
	h := hdl.New(au, svc)

	ts := httptest.NewServer(h.Router())

	cleanupFunc := func(t *testing.T) {
		ts.Close()

		conn, err := sql.Open(
			"pgx", fmt.Sprintf(
				"postgres://%s:%s@%s:%d/%s?sslmode=disable",
				conf.DB.User,
				conf.DB.Password,
				conf.DB.Host,
				conf.DB.Port,
				conf.DB.Database,
			),
		)
		if err != nil {
			zap.L().Fatal("Failed to connect to the database", zap.Error(err))
		}

		if err = conn.Ping(); err != nil {
			zap.L().Fatal("Failed to ping the database", zap.Error(err))
		}

		rows, err := conn.Query(getTables)
		if err != nil {
			zap.L().Fatal("Failed to fetch table names", zap.Error(err))
		}
		defer func(rows *sql.Rows) {
			if err := rows.Close(); err != nil {
				zap.L().Debug("Error while closing rows", zap.Error(err))
			}
		}(rows)

		var tables []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				zap.L().Fatal("Failed to scan table name", zap.Error(err))
			}
			tables = append(tables, name)
		}

		if len(tables) > 0 {
			_, err = conn.Exec(
				fmt.Sprintf(
					"TRUNCATE TABLE %v RESTART IDENTITY CASCADE;",
					strings.Join(tables, ", "),
				),
			)
			if err != nil {
				zap.L().Fatal("Failed to truncate tables", zap.Error(err))
			}
		}

		testcontainers.CleanupContainer(t, redisC)
		testcontainers.CleanupContainer(t, pgC)
	}

	return ts, conf, cleanupFunc
}
