package jwt

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/roleauth/roleauth/pkg/featurerole"
)

// TokenExtractorFunc extracts a token string from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// SkipFunc decides whether to bypass token verification for a request.
type SkipFunc func(r *http.Request) bool

// MiddlewareConfig configures the verification middleware.
type MiddlewareConfig struct {
	Service   *Service           // token service used for verification
	Extractor TokenExtractorFunc // defaults to BearerTokenExtractor
	Skip      SkipFunc           // optional request filter
	Logger    *slog.Logger       // optional; verification failures are logged at debug level
}

// Middleware verifies the request token and injects its role claims into the
// request context for downstream access checks. Requests without a valid
// token are rejected with 401.
func Middleware(service *Service) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Service: service})
}

// MiddlewareWithConfig is Middleware with custom extraction, skip, and
// logging behavior.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.Extractor == nil {
		config.Extractor = BearerTokenExtractor
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, err := config.Extractor(r)
			if err != nil {
				unauthorized(w, r, config.Logger, err)
				return
			}

			var claims RoleClaims
			if err := config.Service.Parse(tokenString, &claims); err != nil {
				unauthorized(w, r, config.Logger, err)
				return
			}

			ctx := SetToken(r.Context(), tokenString)
			ctx = SetClaims(ctx, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextResolverFunc resolves the access context to check for a request,
// e.g. a tenant identifier taken from the URL. Returning an empty string
// checks for unscoped presence of the feature role.
type ContextResolverFunc func(r *http.Request) string

// RequireFeatureRole gates a handler chain on the claims-path access check:
// the verified token in the request context must grant the feature role for
// the resolved access context. Requests without verified claims get 401,
// requests without the role get 403.
//
// A nil resolver performs an unscoped check.
func RequireFeatureRole(mapping featurerole.RoleMapping, roleName string, resolver ContextResolverFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			accessContext := ""
			if resolver != nil {
				accessContext = resolver(r)
			}

			if !claims.HasFeatureRole(mapping, roleName, accessContext) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if logger != nil {
		logger.DebugContext(r.Context(), "token verification failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	http.Error(w, err.Error(), http.StatusUnauthorized)
}

// BearerTokenExtractor reads "Authorization: Bearer <token>" per RFC 6750.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}

// CookieTokenExtractor reads the token from a named cookie, for browser
// clients where Authorization headers are impractical.
func CookieTokenExtractor(cookieName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil {
			return "", ErrInvalidToken
		}
		return cookie.Value, nil
	}
}

// HeaderTokenExtractor reads the token from a custom header.
func HeaderTokenExtractor(headerName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(headerName)
		if token == "" {
			return "", ErrInvalidToken
		}
		return token, nil
	}
}
