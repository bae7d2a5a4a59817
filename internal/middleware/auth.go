package middleware

import (
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/semexe/backend/api/transport"
	"github.com/semexe/backend/domain"
	"github.com/semexe/backend/internal/auth"
)

// identityKey is the fasthttp user-value slot holding the resolved identity.
const identityKey = "auth.identity"

// JWTAuth guards a handler behind a bearer token. The header is checked in a
// single pass (present, two parts, Bearer scheme, valid signature and window)
// and the request is rejected before the handler runs on any failure. On
// success the verified identity is attached to the request.
func JWTAuth(secret []byte, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			header := string(ctx.Request.Header.Peek("Authorization"))
			if header == "" {
				reject(ctx, "authentication required")
				return
			}

			parts := strings.Fields(header)
			if len(parts) != 2 {
				reject(ctx, "malformed authorization header")
				return
			}
			if !strings.EqualFold(parts[0], "Bearer") {
				reject(ctx, "unsupported authorization scheme")
				return
			}

			claims, err := auth.ParseToken(parts[1], secret)
			if err != nil {
				logger.Warn("token rejected", zap.Error(err))
				reject(ctx, err.Error())
				return
			}

			ctx.SetUserValue(identityKey, domain.Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
			})
			next(ctx)
		}
	}
}

// IdentityFromRequest returns the identity attached by JWTAuth, if any.
func IdentityFromRequest(ctx *fasthttp.RequestCtx) (domain.Identity, bool) {
	identity, ok := ctx.UserValue(identityKey).(domain.Identity)
	return identity, ok
}

func reject(ctx *fasthttp.RequestCtx, message string) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(http.StatusUnauthorized)
	ctx.SetBodyString(transport.NewError(string(domain.ErrCodeUnauthorized), message, nil).String())
}
