package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"hris/internal/domain/auth"
	"hris/internal/transport/http/api"
)

type ctxKey string

const ctxKeyAccount ctxKey = "account"

// AccountResolver maps a token subject to a live user account.
type AccountResolver interface {
	FindByUsername(ctx context.Context, username string) (auth.Account, error)
}

// Auth gates every CRUD route: it requires a valid bearer token whose
// subject still resolves to a user account. A bad token and a removed
// account produce identical rejections.
func Auth(secret string, accounts AccountResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			header := r.Header.Get("Authorization")
			if header == "" {
				api.Unauthorized(w, requestID)
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				api.Unauthorized(w, requestID)
				return
			}

			subject, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				slog.Debug("token rejected", "err", err, "requestId", requestID)
				api.Unauthorized(w, requestID)
				return
			}

			account, err := accounts.FindByUsername(r.Context(), subject)
			if err != nil {
				api.Unauthorized(w, requestID)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyAccount, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetAccount(ctx context.Context) (auth.Account, bool) {
	account, ok := ctx.Value(ctxKeyAccount).(auth.Account)
	return account, ok
}
