package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/interfaces"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/utils/logging"
)

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.String("request_id", string(reqID)))

		ctx = logging.With(ctx, logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}

// authenticate resolves the bearer session token into a Principal and stores
// it in the request context. Requests without a resolvable principal never
// reach the handlers.
func authenticate(identity interfaces.IdentityClient) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity == nil {
				respondError(r.Context(), w, goerr.Wrap(types.ErrNoSession, "identity client is not configured"))
				return
			}

			principal, err := identity.Authenticate(r.Context(), bearerToken(r))
			if err != nil {
				respondError(r.Context(), w, err)
				return
			}

			ctx := withPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

type ctxPrincipalKey struct{}

func withPrincipal(ctx context.Context, principal *model.Principal) context.Context {
	return context.WithValue(ctx, ctxPrincipalKey{}, principal)
}

func principalFrom(ctx context.Context) *model.Principal {
	if p, ok := ctx.Value(ctxPrincipalKey{}).(*model.Principal); ok {
		return p
	}
	return nil
}
