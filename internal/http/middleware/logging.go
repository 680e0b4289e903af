// middleware — net/http-мидлвары вспомогательного сервера бота.
// Каждый конструктор возвращает func(http.Handler) http.Handler,
// готовый для chi Router.Use.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/go-health-bot/pkg/log"
)

// respRecorder запоминает статус и объём ответа для access-лога.
type respRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *respRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *respRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// Logging пишет по одной access-строке на запрос и кладёт в контекст
// request-scoped логгер с request_id — хэндлеры достают его через pkg/log.
func Logging(l *slog.Logger) func(http.Handler) http.Handler {
	if l == nil {
		l = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := l
			if rid := r.Header.Get("X-Request-Id"); rid != "" {
				reqLogger = reqLogger.With(slog.String("request_id", rid))
			}
			r = r.WithContext(logctx.Into(r.Context(), reqLogger))

			rec := &respRecorder{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(rec, r)

			logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelInfo, "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("dur", time.Since(start)),
				slog.Int("bytes", rec.bytes),
			)
		})
	}
}
