package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/takara-tech/product-api/pkg/logger"
)

// requestLogger логирует каждый запрос: метод, путь, статус, длительность
// и сгенерированный идентификатор запроса.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			w.Header().Set("X-Request-ID", requestID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Infof(
				"%s %s %d %s request_id=%s",
				r.Method, r.URL.Path, ww.Status(), time.Since(start), requestID,
			)
		})
	}
}

// recoverer перехватывает панику обработчика и отвечает 500,
// не раскрывая внутренности клиенту.
func recoverer(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Warnf("panic in handler %s %s: %v", r.Method, r.URL.Path, rec)
					WriteSuccess(w, http.StatusInternalServerError,
						NewErrorResponse(http.StatusInternalServerError, "internal server error"))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
