package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scheduler-api/core/config"
	"scheduler-api/core/database"
	"scheduler-api/core/logger"
	"scheduler-api/core/queue"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	cfg       *config.Config
	db        *database.Database
	redis     *redis.Client
	publisher *queue.Client
	worker    *queue.Worker
	echo      *echo.Echo
	http      *http.Server
}

// New opens the database, runs migrations when enabled and, if Redis is
// configured, prepares the job client and worker.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.InitDB(database.DatabaseConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.Name,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		SSLMode:         cfg.Database.SSLMode,
		ConnectTimeout:  5,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Database.Migrate {
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	s := &Server{cfg: cfg, db: db}
	checks := map[string]Pinger{"database": db}
	deps := RouterDeps{Env: cfg.App.Env, DB: db, Checks: checks}

	if cfg.Redis.Enabled() {
		opt := asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}
		s.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		s.publisher = queue.NewClient(opt)
		s.worker = queue.NewWorker(opt, cfg.Queue.Concurrency)

		checks["redis"] = RedisPinger(s.redis)
		deps.Publisher = s.publisher
		deps.Worker = s.worker
	} else {
		logger.Warn("Server:New", "detail", "REDIS_ADDR not set, notifications disabled")
	}

	s.echo = NewRouter(deps)
	s.http = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.echo,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	return s, nil
}

// Start serves HTTP until ctx is canceled, then shuts down.
func (s *Server) Start(ctx context.Context) error {
	if s.worker != nil {
		if err := s.worker.Start(); err != nil {
			return fmt.Errorf("failed to start worker: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server:Start", "addr", s.http.Addr, "env", s.cfg.App.Env)
		if err := s.http.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.close()
		return err
	case <-ctx.Done():
	}

	return s.Shutdown()
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeoutDuration())
	defer cancel()

	logger.Info("Server:Shutdown", "timeout", s.cfg.Server.ShutdownTimeoutDuration().String())
	err := s.http.Shutdown(ctx)
	s.close()
	return err
}

func (s *Server) close() {
	if s.worker != nil {
		s.worker.Shutdown()
	}
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			logger.Error("Server:Close:Queue", err)
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			logger.Error("Server:Close:Redis", err)
		}
	}
	if err := s.db.Close(); err != nil {
		logger.Error("Server:Close:Database", err)
	}
}

// Run loads configuration and serves until SIGINT or SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	s, err := New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s.Start(ctx)
}
