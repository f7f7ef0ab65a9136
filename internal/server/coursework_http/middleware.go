package coursework_http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"coursework_service/internal/domain"
	"coursework_service/pkg/ctxdata"
	"coursework_service/pkg/logger"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func NewLoggingMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			traceID, err := uuid.NewV7()
			if err != nil {
				traceID = uuid.New()
			}

			ctx := ctxdata.WithTraceID(r.Context(), traceID.String())
			r = r.WithContext(ctx)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			w.Header().Set("X-Trace-Id", traceID.String())

			next.ServeHTTP(sw, r)

			log.Info("request completed",
				zap.String("trace_id", traceID.String()),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// NewIdentityMiddleware reads the authenticated identity forwarded by the
// gateway. Token verification happens upstream; this service only consumes
// the resulting claim.
func NewIdentityMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := r.Header.Get("X-User-Id")
			rawRole := r.Header.Get("X-User-Role")
			if rawID == "" || rawRole == "" {
				log.Info("missing identity headers", zap.String("path", r.URL.Path))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			id, err := uuid.Parse(rawID)
			if err != nil {
				log.Info("invalid user id header", zap.String("path", r.URL.Path))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			role, ok := domain.ToRole(rawRole)
			if !ok {
				log.Info("invalid user role header",
					zap.String("path", r.URL.Path),
					zap.String("role", rawRole),
				)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := ctxdata.WithIdentity(r.Context(), domain.Identity{ID: id, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
