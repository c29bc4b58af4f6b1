package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avc/stellar-burger-store/internal/api"
	"github.com/avc/stellar-burger-store/internal/config"
	"github.com/avc/stellar-burger-store/internal/storage"
	"github.com/avc/stellar-burger-store/internal/store"
	"github.com/avc/stellar-burger-store/internal/stubapi"
	"go.uber.org/zap"
)

const (
	serverReadTimeout  = 15 * time.Second
	serverWriteTimeout = 15 * time.Second
	serverIdleTimeout  = 60 * time.Second
	shutdownTimeout    = 10 * time.Second
)

// App представляет приложение: ядро состояния, координатор операций
// и, при необходимости, встроенный burger API
type App struct {
	config      *config.Config
	logger      *zap.Logger
	store       *store.Store
	coordinator *store.Coordinator
	apiServer   *http.Server // nil, когда используется удаленный API
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Хранилища токенов: cookie-скоуп для access, файловый для refresh
	session := storage.NewSession(
		storage.NewCookieStore(cfg.AccessTokenTTL),
		storage.NewFileStore(cfg.RefreshTokenFile),
	)

	// Встроенный API поднимается, если удаленный не задан
	baseURL := cfg.APIBaseURL
	var apiServer *http.Server
	if baseURL == "" {
		server := stubapi.NewServer(stubapi.Config{
			JWTSecret:  cfg.JWTSecret,
			AccessTTL:  cfg.AccessTokenTTL,
			RefreshTTL: cfg.RefreshTokenTTL,
		}, logger)

		apiServer = &http.Server{
			Addr:         cfg.RunAddress,
			Handler:      server.Router(),
			ReadTimeout:  serverReadTimeout,
			WriteTimeout: serverWriteTimeout,
			IdleTimeout:  serverIdleTimeout,
		}
		baseURL = localBaseURL(cfg.RunAddress)
		logger.Info("using embedded burger API", zap.String("address", cfg.RunAddress))
	}

	// Клиент API, хранилище состояния и координатор операций
	client := api.NewClient(api.Config{
		BaseURL:  baseURL,
		Timeout:  cfg.HTTPTimeout,
		RetryMax: cfg.RetryMax,
	}, session, logger)

	st := store.New(session, logger)
	coordinator := store.NewCoordinator(st, client, logger)

	return &App{
		config:      cfg,
		logger:      logger,
		store:       st,
		coordinator: coordinator,
		apiServer:   apiServer,
	}, nil
}

// Run запускает приложение: поднимает встроенный API и проигрывает
// демонстрационную пользовательскую сессию
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.apiServer != nil {
		go func() {
			a.logger.Info("starting embedded burger API", zap.String("address", a.apiServer.Addr))
			if err := a.apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				a.logger.Fatal("failed to start embedded API", zap.Error(err))
			}
		}()
		// Даем серверу принять соединения
		time.Sleep(100 * time.Millisecond)
	}

	if err := a.runDemoSession(ctx); err != nil {
		a.logger.Error("demo session failed", zap.Error(err))
	}

	a.shutdown()
	return nil
}

// shutdown выполняет graceful shutdown приложения
func (a *App) shutdown() {
	if a.apiServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := a.apiServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("embedded API shutdown error", zap.Error(err))
		}
		a.logger.Info("embedded API stopped")
	}

	a.logger.Info("application stopped gracefully")
}

// localBaseURL строит базовый URL встроенного API по адресу прослушивания
func localBaseURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/api"
}
