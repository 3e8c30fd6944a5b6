package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"nyumba/config"
	"nyumba/infras/otel"
	"nyumba/shared/constant"
	"nyumba/shared/failure"
	"nyumba/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth guards the operator surface. Guests never need a key; everything
// under the operator routes requires the configured X-API-Key header.
type Auth interface {
	APIKey(next http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

func (a *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, otelHTTPScopeName+".APIKey")
		defer scope.End()

		key := r.Header.Get(constant.RequestHeaderAPIKey)

		if a.cfg.App.APIKey == constant.Empty || subtle.ConstantTimeCompare([]byte(key), []byte(a.cfg.App.APIKey)) != 1 {
			err := failure.Unauthorized("invalid or missing API key")
			scope.TraceError(err)
			log.Warn().Str("path", r.URL.Path).Msg("operator request rejected")

			response.WithError(w, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyOperator, true)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
