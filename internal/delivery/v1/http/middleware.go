package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger пишет строку лога на каждый запрос со статусом и длительностью.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.WithContext(r.Context()).Infof("%s %s -> %d (%d bytes, %s)",
				r.Method, r.URL.RequestURI(), ww.Status(), ww.BytesWritten(), time.Since(start))
		})
	}
}

// writeFailure логирует ошибку и пишет ответ. Внутренние ошибки логируются целиком,
// клиент получает только общий текст.
func writeFailure(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	code, _ := ToHTTPResponse(err)

	l := log.WithContext(r.Context())
	if code == http.StatusInternalServerError {
		l.Errorf(err, "%s %s failed", r.Method, r.URL.Path)
	} else {
		l.Warnf("%d %s %s: %v", code, r.Method, r.URL.Path, err)
	}

	WriteError(w, err)
}
