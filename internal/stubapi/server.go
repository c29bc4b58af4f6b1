package stubapi

import (
	"sync"
	"time"

	"github.com/avc/stellar-burger-store/internal/domain"
	"github.com/avc/stellar-burger-store/internal/utils/jwt"
	"github.com/avc/stellar-burger-store/internal/utils/password"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server представляет встроенный burger API: полный набор эндпоинтов
// продакшен-бэкенда поверх состояния в памяти. Используется демо-бинарем
// и интеграционными тестами вместо удаленного сервера.
type Server struct {
	router     *chi.Mux
	jwtManager *jwt.Manager
	hasher     password.Hasher
	logger     *zap.Logger

	mu          sync.Mutex
	users       map[string]*userRecord
	orders      []domain.Order
	orderOwners map[string]string // order id -> email владельца
	nextNumber  int
}

// userRecord представляет учетную запись в памяти
type userRecord struct {
	Name         string
	Email        string
	PasswordHash string
}

// Config содержит настройки встроенного API
type Config struct {
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// NewServer создает встроенный API с каталогом-фикстурой и пустой лентой
func NewServer(cfg Config, logger *zap.Logger) *Server {
	s := &Server{
		jwtManager:  jwt.NewManager(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL),
		hasher:      password.NewBCryptHasher(password.DefaultCost),
		logger:      logger,
		users:       make(map[string]*userRecord),
		orderOwners: make(map[string]string),
		nextNumber:  10001,
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware(logger))
	r.Use(RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))

	r.Route("/api", func(r chi.Router) {
		// Публичные эндпоинты
		r.Get("/ingredients", s.handleIngredients)
		r.Get("/orders/all", s.handleFeed)
		r.Get("/orders/{number}", s.handleOrderByNumber)
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/token", s.handleRefresh)
		r.Post("/auth/logout", s.handleLogout)

		// Защищенные эндпоинты
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(s.jwtManager))
			r.Get("/auth/user", s.handleGetUser)
			r.Patch("/auth/user", s.handleUpdateUser)
			r.Get("/orders", s.handlePersonalOrders)
			r.Post("/orders", s.handleSubmitOrder)
		})
	})

	s.router = r
	return s
}

// Router возвращает HTTP обработчик сервера
func (s *Server) Router() *chi.Mux {
	return s.router
}
