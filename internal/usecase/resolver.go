package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/gamepool/gamepool"
	"github.com/gamepool/gamepool/internal/domain"
)

// xmlIDPatterns match the steamID64 field of the profile XML feed. The
// feed has shipped the value both bare and CDATA-wrapped over the
// years, so structurally equivalent spellings are tried in order.
var xmlIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`<steamID64>(\d{17})</steamID64>`),
	regexp.MustCompile(`<steamID64><!\[CDATA\[(\d{17})\]\]></steamID64>`),
	regexp.MustCompile(`steamID64[^0-9]{0,16}(\d{17})`),
}

// htmlIDPatterns match a SteamID64 embedded in profile page markup,
// ordered from most to least structured. Every match is still gated by
// IsSteamID64; the page contains plenty of unrelated long numbers.
var htmlIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`"steamid":"(\d{17})"`),
	regexp.MustCompile(`g_rgProfileData\s*=\s*\{[^}]*"steamid"\s*:\s*"(\d{17})"`),
	regexp.MustCompile(`data-steamid="(\d{17})"`),
	regexp.MustCompile(`/profiles/(\d{17})`),
	regexp.MustCompile(`"steamId":"(\d{17})"`),
	regexp.MustCompile(`"SteamId":"(\d{17})"`),
}

type ResolverUsecase struct {
	gateway SteamGateway
}

func NewResolverUsecase(gateway SteamGateway) *ResolverUsecase {
	return &ResolverUsecase{gateway: gateway}
}

// Resolve turns an arbitrary identifier (numeric id, community profile
// URL or vanity name) into a SteamID64. Numeric input is returned
// verbatim without touching the network. Exhausting every tier yields
// domain.ErrNotFound; a missing API key yields domain.ErrMissingAPIKey.
func (uc *ResolverUsecase) Resolve(ctx context.Context, identifier, apiKey string) (string, error) {

	if gamepool.IsNumericID(identifier) {
		return identifier, nil
	}

	vanity := identifier
	if gamepool.IsProfileURL(identifier) {
		if id, ok := gamepool.ExtractProfileID(identifier); ok {
			return id, nil
		}
		if name, ok := gamepool.ExtractVanityName(identifier); ok {
			vanity = name
		}
	}

	if apiKey == "" {
		return "", domain.ErrMissingAPIKey
	}

	if id, ok := uc.resolveViaAPI(ctx, vanity, apiKey); ok {
		return id, nil
	}
	if id, ok := uc.resolveViaXML(ctx, vanity); ok {
		return id, nil
	}
	if id, ok := uc.resolveViaHTML(ctx, vanity); ok {
		return id, nil
	}

	return "", domain.NotFoundError{Resource: fmt.Sprintf("steam id for %q", identifier)}
}

func (uc *ResolverUsecase) resolveViaAPI(ctx context.Context, vanity, apiKey string) (string, bool) {
	envelope, err := uc.gateway.ResolveVanity(ctx, vanity, apiKey)
	if err != nil {
		slog.DebugContext(
			ctx, "vanity api lookup failed",
			slog.String("vanity", vanity),
			slog.String("error", err.Error()),
			slog.String("module", "resolver"),
		)
		return "", false
	}

	if envelope.Response.Success != gamepool.VanitySuccessOK {
		// success=42 and friends mean the name is simply unknown to
		// the Web API; the scraping tiers may still find it.
		return "", false
	}
	if envelope.Response.SteamID == "" {
		return "", false
	}

	return envelope.Response.SteamID, true
}

func (uc *ResolverUsecase) resolveViaXML(ctx context.Context, vanity string) (string, bool) {
	body, err := uc.gateway.ProfileXML(ctx, vanity)
	if err != nil {
		slog.DebugContext(
			ctx, "profile xml fetch failed",
			slog.String("vanity", vanity),
			slog.String("error", err.Error()),
			slog.String("module", "resolver"),
		)
		return "", false
	}
	return scanForSteamID(body, xmlIDPatterns)
}

func (uc *ResolverUsecase) resolveViaHTML(ctx context.Context, vanity string) (string, bool) {
	body, err := uc.gateway.ProfilePage(ctx, vanity)
	if err != nil {
		slog.DebugContext(
			ctx, "profile page fetch failed",
			slog.String("vanity", vanity),
			slog.String("error", err.Error()),
			slog.String("module", "resolver"),
		)
		return "", false
	}
	return scanForSteamID(body, htmlIDPatterns)
}

// scanForSteamID walks the patterns in order and returns the first
// match that passes the SteamID64 check. Matches failing the check are
// discarded and the scan continues.
func scanForSteamID(body string, patterns []*regexp.Regexp) (string, bool) {
	for _, pattern := range patterns {
		for _, match := range pattern.FindAllStringSubmatch(body, -1) {
			if gamepool.IsSteamID64(match[1]) {
				return match[1], true
			}
		}
	}
	return "", false
}
