package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	handlers "miniblog/internal/handler"
	"miniblog/internal/service"
)

type Middleware func(http.Handler) http.Handler

// CurrentUserMiddleware resolves the session cookie into the request
// context. An invalid or expired token just leaves the request
// anonymous, it never fails the request.
func CurrentUserMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(handlers.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := authService.ParseSessionToken(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := authService.GetUserByID(r.Context(), userID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, handlers.WithUser(r, user))
		})
	}
}

// RequireAuth gates a route: anonymous requests are redirected to the
// login page and the original action is aborted.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")

		if handlers.CurrentUser(r) == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r)
	}
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("[%s] %s %s (%s)", requestID, r.Method, r.RequestURI, time.Since(start))
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
