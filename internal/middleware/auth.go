package middleware

import (
	"net/http"

	"github.com/ayush/multiuser-calendar/internal/auth"
)

// RequireAuth is middleware that validates the session cookie and injects
// the user id into the request context. Anonymous requests are redirected to
// the login page rather than answered with an error.
func RequireAuth(sessions auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			userID, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil || userID == 0 {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}
