package middleware

import (
	"net/http"
	"strings"

	"github.com/Jonathangadeaharder/LangPlug-sub005/pkg/ctxutil"
)

// Identity propagates the caller identity set by the authenticating proxy
// in front of this service. Requests without the header pass through as
// anonymous; handlers that need an identity validate it themselves.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := ctxutil.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
