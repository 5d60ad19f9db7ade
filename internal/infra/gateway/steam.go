package gateway

import (
	"context"

	"github.com/gamepool/gamepool"
	"github.com/gamepool/gamepool/client"
)

// SteamGateway adapts the outbound client to the usecase port.
type SteamGateway struct {
	client *client.Client
}

func NewSteamGateway(cl *client.Client) *SteamGateway {
	return &SteamGateway{client: cl}
}

func (g *SteamGateway) ResolveVanity(ctx context.Context, vanity, apiKey string) (gamepool.VanityEnvelope, error) {
	return g.client.ResolveVanityURL(ctx, vanity, apiKey)
}

func (g *SteamGateway) ProfileXML(ctx context.Context, vanity string) (string, error) {
	return g.client.GetProfileXML(ctx, vanity)
}

func (g *SteamGateway) ProfilePage(ctx context.Context, vanity string) (string, error) {
	return g.client.GetProfilePage(ctx, vanity)
}

func (g *SteamGateway) OwnedGames(ctx context.Context, steamID, apiKey string) ([]gamepool.OwnedGame, error) {
	return g.client.GetOwnedGames(ctx, steamID, apiKey)
}

func (g *SteamGateway) AppDetails(ctx context.Context, appID int) (*gamepool.AppDetails, error) {
	return g.client.GetAppDetails(ctx, appID)
}
