package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gamepool/gamepool/internal/domain"
	"github.com/gamepool/gamepool/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	credential *service.CredentialService
}

func NewAuthMiddleware(credential *service.CredentialService) *AuthMiddleware {
	return &AuthMiddleware{
		credential: credential,
	}
}

// IdentifyAPIKey pulls a Steam Web API key out of a bearer
// authorization header, when present, and stores it in the request
// context. Handlers still accept the key in the request body; the
// header is just the alternative carrier.
func (s *AuthMiddleware) IdentifyAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.IdentifyAPIKey")
		defer span.End()

		authHeader := c.Request().Header.Get(domain.AuthorizationHeader)

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skipCheckAuthorization
			}

			authType, token := split[0], split[1]
			if authType != "Bearer" {
				span.RecordError(fmt.Errorf("only Bearer is acceptable"))
				goto skipCheckAuthorization
			}

			result, err := s.credential.ValidateKey(ctx, token)
			if err != nil {
				span.RecordError(errors.Wrap(err, "AuthMiddleware.IdentifyAPIKey: s.credential.ValidateKey failed"))
				goto skipCheckAuthorization
			}

			ctx = context.WithValue(ctx, domain.APIKeyCtxKey, result.APIKey)
			span.SetAttributes(attribute.Bool("HasAPIKey", true))
		}

	skipCheckAuthorization:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
