package usecase

import (
	"context"

	"github.com/gamepool/gamepool"
)

// SteamGateway encapsulates every outbound call to the Steam services:
// the Web API, the store API and the community site.
type SteamGateway interface {
	ResolveVanity(ctx context.Context, vanity, apiKey string) (gamepool.VanityEnvelope, error)
	ProfileXML(ctx context.Context, vanity string) (string, error)
	ProfilePage(ctx context.Context, vanity string) (string, error)
	OwnedGames(ctx context.Context, steamID, apiKey string) ([]gamepool.OwnedGame, error)
	AppDetails(ctx context.Context, appID int) (*gamepool.AppDetails, error)
}
