package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"oficios/config"
	"oficios/db"
	"oficios/router"
	"oficios/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	cfg     config.Configuration
	backend db.Backend
	redis   *redis.Client
	server  *http.Server
}

// New abre o banco e o store de sessões e monta o servidor HTTP.
func New(ctx context.Context, cfg config.Configuration) (*App, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	backend, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect backend: %w", err)
	}

	a := &App{cfg: cfg, backend: backend}

	sessions, err := a.sessionStore(ctx)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	engine := gin.New()
	router.Initialize(engine, cfg, backend, sessions)

	a.server = &http.Server{
		Addr:              ":" + cfg.ApiPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return a, nil
}

func (a *App) sessionStore(ctx context.Context) (session.Store, error) {
	if a.cfg.Session.Store != config.SESSION_STORE_REDIS {
		return session.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{Addr: a.cfg.Session.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", a.cfg.Session.RedisAddr, err)
	}
	a.redis = client
	return session.NewRedisStore(client), nil
}

// Handler expõe o roteador (usado nos testes).
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serve até ctx ser cancelado e então encerra com prazo de 10s.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("Servidor rodando", zap.String("addr", a.server.Addr), zap.String("backend", a.cfg.Backend))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.server.Shutdown(shutdownCtx)
}

func (a *App) close() {
	if err := a.backend.Close(); err != nil {
		zap.L().Warn("falha ao fechar banco", zap.Error(err))
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
}
