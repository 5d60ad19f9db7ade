package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gamepool/gamepool"
	"github.com/gamepool/gamepool/internal/domain"
	"github.com/gamepool/gamepool/internal/utils"
)

type LibraryUsecase struct {
	resolver *ResolverUsecase
	gateway  SteamGateway
}

func NewLibraryUsecase(resolver *ResolverUsecase, gateway SteamGateway) *LibraryUsecase {
	return &LibraryUsecase{
		resolver: resolver,
		gateway:  gateway,
	}
}

// OwnedGames fetches one account's library.
func (uc *LibraryUsecase) OwnedGames(ctx context.Context, steamID, apiKey string) ([]gamepool.OwnedGame, error) {
	if apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	return uc.gateway.OwnedGames(ctx, steamID, apiKey)
}

// GameDetails fetches store metadata for one app, reshaped for the
// boundary.
func (uc *LibraryUsecase) GameDetails(ctx context.Context, appID int) (domain.GameDetails, error) {
	details, err := uc.gateway.AppDetails(ctx, appID)
	if err != nil {
		return domain.GameDetails{}, err
	}

	genres := make([]string, 0, len(details.Genres))
	for _, g := range details.Genres {
		genres = append(genres, g.Description)
	}

	return domain.GameDetails{
		AppID:            appID,
		Name:             details.Name,
		ShortDescription: details.ShortDescription,
		HeaderImage:      details.HeaderImage,
		Genres:           genres,
		Tags:             tagsOf(details),
	}, nil
}

// Aggregate merges the libraries of every identifier into one
// deduplicated collection in first-sighting order. Identifiers are
// processed strictly one at a time; a failed account becomes an entry
// in the errors list, never an abort. Store metadata is fetched at most
// once per distinct app within one call.
func (uc *LibraryUsecase) Aggregate(ctx context.Context, identifiers []string, apiKey string) (domain.Library, error) {

	if apiKey == "" {
		return domain.Library{}, domain.ErrMissingAPIKey
	}

	merged := utils.NewOrderedMap[int, *domain.AggregatedGame]()
	errs := []string{}

	for _, identifier := range identifiers {

		steamID, err := uc.resolver.Resolve(ctx, identifier, apiKey)
		if err != nil {
			slog.WarnContext(
				ctx, "could not resolve identifier",
				slog.String("identifier", identifier),
				slog.String("error", err.Error()),
				slog.String("module", "library"),
			)
			errs = append(errs, fmt.Sprintf(
				"could not resolve Steam ID for '%s': make sure it is a valid Steam vanity URL, numeric Steam ID, or full profile URL",
				identifier,
			))
			continue
		}

		games, err := uc.gateway.OwnedGames(ctx, steamID, apiKey)
		if err != nil {
			slog.WarnContext(
				ctx, "could not fetch owned games",
				slog.String("identifier", identifier),
				slog.String("error", err.Error()),
				slog.String("module", "library"),
			)
			errs = append(errs, fmt.Sprintf("failed to fetch games for '%s': %s", identifier, err))
			continue
		}

		for _, game := range games {
			entry, ok := merged.Get(game.AppID)
			if !ok {
				entry = uc.newEntry(ctx, game)
				merged.Set(game.AppID, entry)
			}
			appendAccount(entry, identifier)
		}
	}

	return domain.Library{
		Games:  merged.Values(),
		Errors: errs,
	}, nil
}

// newEntry builds the merged record for an app seen for the first time
// in this call. A failed details fetch degrades to the bare owned-game
// record with fallback artwork and no tags.
func (uc *LibraryUsecase) newEntry(ctx context.Context, game gamepool.OwnedGame) *domain.AggregatedGame {

	entry := &domain.AggregatedGame{
		AppID:    game.AppID,
		Name:     game.Name,
		Picture:  gamepool.FallbackArtworkURL(game.AppID, game.ImgLogoURL),
		Tags:     []string{},
		Accounts: []string{},
	}

	details, err := uc.gateway.AppDetails(ctx, game.AppID)
	if err != nil {
		slog.DebugContext(
			ctx, "app details unavailable",
			slog.Int("appid", game.AppID),
			slog.String("error", err.Error()),
			slog.String("module", "library"),
		)
		return entry
	}

	if details.HeaderImage != "" {
		entry.Picture = details.HeaderImage
	}
	entry.Tags = tagsOf(details)

	return entry
}

// tagsOf prefers store categories over genres, matching what the store
// page itself shows as tags.
func tagsOf(details *gamepool.AppDetails) []string {
	if len(details.Categories) > 0 {
		tags := make([]string, 0, len(details.Categories))
		for _, c := range details.Categories {
			tags = append(tags, c.Description)
		}
		return tags
	}
	if len(details.Genres) > 0 {
		tags := make([]string, 0, len(details.Genres))
		for _, g := range details.Genres {
			tags = append(tags, g.Description)
		}
		return tags
	}
	return []string{}
}

func appendAccount(entry *domain.AggregatedGame, identifier string) {
	for _, account := range entry.Accounts {
		if account == identifier {
			return
		}
	}
	entry.Accounts = append(entry.Accounts, identifier)
}
