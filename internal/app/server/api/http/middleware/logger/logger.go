package logger

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

// Logger middleware для логирования входящих HTTP запросов
type Logger struct {
	log *slog.Logger
}

// New создает новый экземпляр Logger middleware
func New(log *slog.Logger) *Logger {
	return &Logger{
		log: log.With(slog.String("component", "http_logger")),
	}
}

// Middleware возвращает huma middleware для логирования API запросов
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		// Получаем информацию о запросе до его обработки
		method := ctx.Method()
		path := ctx.URL().Path
		remoteAddr := ctx.RemoteAddr()

		next(ctx)

		l.write(ctx.Context().Value(chimw.RequestIDKey), method, path, ctx.Status(), time.Since(start), remoteAddr)
	}
}

// Handler возвращает chi middleware для запросов вне huma (HTML страницы)
func (l *Logger) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		l.write(r.Context().Value(chimw.RequestIDKey), r.Method, r.URL.Path, status, time.Since(start), r.RemoteAddr)
	})
}

func (l *Logger) write(requestID any, method, path string, status int, duration time.Duration, remoteAddr string) {
	attrs := []any{
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Duration("duration", duration),
		slog.String("remote_addr", remoteAddr),
	}
	if id, ok := requestID.(string); ok && id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}

	l.log.Info("HTTP request", attrs...)
}
