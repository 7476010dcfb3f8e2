//GET  /                     # Главная страница
//GET  /add-data             # Форма добавления
//GET  /show-table-data      # Таблица записей
//POST /save-data            # Отправка формы -> 303 /add-data?success
//GET    /api/test-data      # Список записей
//GET    /api/test-data/{id} # Получить запись
//POST   /api/test-data      # Создать запись
//PUT    /api/test-data/{id} # Обновить запись
//DELETE /api/test-data/{id} # Удалить запись
//GET  /api/health           # Проверка хранилища
//GET  /metrics              # Prometheus

package api

import (
	"context"

	"datakeeper/internal/app/server/api/http/apierr"
	healthAPI "datakeeper/internal/app/server/api/http/health"
	"datakeeper/internal/app/server/api/http/middleware"
	"datakeeper/internal/app/server/api/http/middleware/logger"
	"datakeeper/internal/app/server/api/http/middleware/metrics"
	"datakeeper/internal/app/server/api/http/page"
	recordAPI "datakeeper/internal/app/server/api/http/record"
	"datakeeper/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"
)

// Store is what the HTTP layer needs from the persistence backend.
type Store interface {
	Records() record.Repository
	Ping(ctx context.Context) error
}

// Options tunes the router; the zero value allows any CORS origin.
type Options struct {
	AllowedOrigins []string
}

type Handlers struct {
	Health *healthAPI.Handler
	Record *recordAPI.Handler
	Page   *page.Handler
}

// New создает *chi.Mux с HTML страницами и ВСЕМИ API операциями через huma.Register
func New(store Store, log *slog.Logger, opts Options) *chi.Mux {
	apierr.Register()

	mux := chi.NewMux()
	m := metrics.New()
	loggerMW := logger.New(log)

	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(chimw.Recoverer)
	mux.Use(m.Middleware)
	mux.Use(cors.Handler(corsOptions(opts.AllowedOrigins)))

	API := humachi.New(mux, apiConfig())

	h := handlers(store, log, loggerMW)
	h.Health.SetupRoutes(API)
	h.Record.SetupRoutes(API)

	mux.Group(func(r chi.Router) {
		r.Use(loggerMW.Handler)
		h.Page.SetupRoutes(r)
	})
	mux.Handle("/metrics", m.Handler())

	return mux
}

func apiConfig() huma.Config {
	config := huma.DefaultConfig("Datakeeper API", "1.0.0")
	// Responses carry exactly the documented shapes, without "$schema" links.
	config.CreateHooks = nil
	return config
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}
}

func handlers(store Store, log *slog.Logger, loggerMW *logger.Logger) *Handlers {
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	recordService := record.NewService(store.Records(), log)
	middlewares.Add(loggerMW.Middleware())
	recordHandler := recordAPI.NewHandler(recordService, log, middlewares.GetAllAndClear())

	pageHandler := page.NewHandler(recordService, log)

	return &Handlers{
		Health: healthHandler,
		Record: recordHandler,
		Page:   pageHandler,
	}
}
