package middleware

import (
	"net/http"

	"wellness-cms-backend/pkg/response"

	"github.com/sirupsen/logrus"
)

type RecoveryMiddleware struct {
	log *logrus.Logger
}

func NewRecoveryMiddleware(log *logrus.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{log: log}
}

// Handle converts a handler panic into a 500 instead of killing the
// connection.
func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.log.Errorf("Panic serving %s %s: %+v", req.Method, req.URL.Path, rec)
				response.InternalServerError(w)
			}
		}()
		next.ServeHTTP(w, req)
	})
}
