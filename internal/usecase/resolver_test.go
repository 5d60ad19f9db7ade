package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gamepool/gamepool"
	"github.com/gamepool/gamepool/internal/domain"
)

// --- mocks ---

type mockGateway struct {
	vanityEnvelope gamepool.VanityEnvelope
	vanityErr      error
	xmlBody        string
	xmlErr         error
	htmlBody       string
	htmlErr        error
	games          map[string][]gamepool.OwnedGame
	gamesErr       map[string]error
	details        map[int]*gamepool.AppDetails
	detailsErr     map[int]error

	vanityCalls  int
	xmlCalls     int
	htmlCalls    int
	ownedCalls   []string
	detailsCalls []int
}

func (m *mockGateway) ResolveVanity(ctx context.Context, vanity, apiKey string) (gamepool.VanityEnvelope, error) {
	m.vanityCalls++
	return m.vanityEnvelope, m.vanityErr
}

func (m *mockGateway) ProfileXML(ctx context.Context, vanity string) (string, error) {
	m.xmlCalls++
	return m.xmlBody, m.xmlErr
}

func (m *mockGateway) ProfilePage(ctx context.Context, vanity string) (string, error) {
	m.htmlCalls++
	return m.htmlBody, m.htmlErr
}

func (m *mockGateway) OwnedGames(ctx context.Context, steamID, apiKey string) ([]gamepool.OwnedGame, error) {
	m.ownedCalls = append(m.ownedCalls, steamID)
	if err, ok := m.gamesErr[steamID]; ok {
		return nil, err
	}
	return m.games[steamID], nil
}

func (m *mockGateway) AppDetails(ctx context.Context, appID int) (*gamepool.AppDetails, error) {
	m.detailsCalls = append(m.detailsCalls, appID)
	if err, ok := m.detailsErr[appID]; ok {
		return nil, err
	}
	d, ok := m.details[appID]
	if !ok {
		return nil, domain.NotFoundError{Resource: fmt.Sprintf("details for app %d", appID)}
	}
	return d, nil
}

func vanityFound(steamID string) gamepool.VanityEnvelope {
	var env gamepool.VanityEnvelope
	env.Response.Success = gamepool.VanitySuccessOK
	env.Response.SteamID = steamID
	return env
}

func vanityMiss() gamepool.VanityEnvelope {
	var env gamepool.VanityEnvelope
	env.Response.Success = gamepool.VanitySuccessNoMatch
	return env
}

// --- tests ---

func TestResolveNumericPassthrough(t *testing.T) {
	gw := &mockGateway{}
	uc := NewResolverUsecase(gw)

	id, err := uc.Resolve(context.Background(), "76561198000000001", "key")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if id != "76561198000000001" {
		t.Fatalf("expected passthrough got %s", id)
	}
	if gw.vanityCalls+gw.xmlCalls+gw.htmlCalls != 0 {
		t.Fatalf("numeric input must not hit the network")
	}
}

func TestResolveProfileURL(t *testing.T) {
	gw := &mockGateway{}
	uc := NewResolverUsecase(gw)

	id, err := uc.Resolve(context.Background(), "https://steamcommunity.com/profiles/76561198000000001", "key")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if id != "76561198000000001" {
		t.Fatalf("expected id from url got %s", id)
	}
	if gw.vanityCalls+gw.xmlCalls+gw.htmlCalls != 0 {
		t.Fatalf("profile url must bypass the vanity cascade")
	}
}

func TestResolveVanityURLPath(t *testing.T) {
	gw := &mockGateway{vanityEnvelope: vanityFound("76561198000000002")}
	uc := NewResolverUsecase(gw)

	id, err := uc.Resolve(context.Background(), "https://steamcommunity.com/id/gaben", "key")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if id != "76561198000000002" {
		t.Fatalf("expected resolved id got %s", id)
	}
	if gw.vanityCalls != 1 {
		t.Fatalf("expected one vanity call got %d", gw.vanityCalls)
	}
}

func TestResolveVanityAPIMissFallsToXML(t *testing.T) {
	gw := &mockGateway{
		vanityEnvelope: vanityMiss(),
		xmlBody:        "<profile><steamID64><![CDATA[76561198000000003]]></steamID64></profile>",
	}
	uc := NewResolverUsecase(gw)

	id, err := uc.Resolve(context.Background(), "somename", "key")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if id != "76561198000000003" {
		t.Fatalf("expected id from xml got %s", id)
	}
	if gw.htmlCalls != 0 {
		t.Fatalf("xml hit must stop the cascade")
	}
}

func TestResolveXMLGarbageFallsToHTML(t *testing.T) {
	// 17 digits with the wrong prefix must be discarded, not trusted.
	gw := &mockGateway{
		vanityErr: errors.New("api down"),
		xmlBody:   "<steamID64>12345678901234567</steamID64>",
		htmlBody:  `<div data-steamid="76561198000000004"></div>`,
	}
	uc := NewResolverUsecase(gw)

	id, err := uc.Resolve(context.Background(), "somename", "key")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if id != "76561198000000004" {
		t.Fatalf("expected id from html got %s", id)
	}
	if gw.xmlCalls != 1 || gw.htmlCalls != 1 {
		t.Fatalf("expected both scraping tiers to run")
	}
}

func TestResolveHTMLPatternOrder(t *testing.T) {
	// The /profiles/ link appears first in the body, but the embedded
	// JSON pattern is listed first and must win.
	gw := &mockGateway{
		vanityEnvelope: vanityMiss(),
		xmlErr:         errors.New("404"),
		htmlBody: `<a href="/profiles/76561198000000005">x</a>` +
			`<script>{"steamid":"76561198000000006"}</script>`,
	}
	uc := NewResolverUsecase(gw)

	id, err := uc.Resolve(context.Background(), "somename", "key")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if id != "76561198000000006" {
		t.Fatalf("expected listed-order winner got %s", id)
	}
}

func TestResolveExhaustedReturnsNotFound(t *testing.T) {
	gw := &mockGateway{
		vanityEnvelope: vanityMiss(),
		xmlErr:         errors.New("404"),
		htmlErr:        errors.New("404"),
	}
	uc := NewResolverUsecase(gw)

	_, err := uc.Resolve(context.Background(), "no-such-user", "key")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestResolveMissingKey(t *testing.T) {
	gw := &mockGateway{}
	uc := NewResolverUsecase(gw)

	_, err := uc.Resolve(context.Background(), "somename", "")
	if !errors.Is(err, domain.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey got %v", err)
	}
	if gw.vanityCalls+gw.xmlCalls+gw.htmlCalls != 0 {
		t.Fatalf("missing key must be reported before any network call")
	}
}
