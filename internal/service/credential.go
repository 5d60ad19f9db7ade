package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/gamepool/gamepool/internal/domain"
)

var tracer = otel.Tracer("credential")

// CredentialService checks caller-supplied Steam Web API keys. Keys are
// never stored; each request carries its own.
type CredentialService struct{}

func NewCredentialService() *CredentialService {
	return &CredentialService{}
}

type CredentialResult struct {
	APIKey string
}

func isHexString(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// ValidateKey trims and sanity-checks an API key. An empty key is a
// configuration error. A key that does not look like the usual 32 hex
// characters is accepted anyway; Steam is the authority on validity.
func (s *CredentialService) ValidateKey(ctx context.Context, key string) (*CredentialResult, error) {
	_, span := tracer.Start(ctx, "Credential.Service.ValidateKey")
	defer span.End()

	key = strings.TrimSpace(key)
	if key == "" {
		err := errors.Wrap(domain.ErrMissingAPIKey, "CredentialService.ValidateKey")
		span.RecordError(err)
		return nil, domain.ErrMissingAPIKey
	}

	if len(key) != 32 || !isHexString(key) {
		slog.WarnContext(
			ctx, "api key does not look like a Steam Web API key",
			slog.Int("length", len(key)),
			slog.String("module", "credential"),
		)
	}

	return &CredentialResult{APIKey: key}, nil
}
