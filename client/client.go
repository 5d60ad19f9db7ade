package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gamepool/gamepool"
	"github.com/gamepool/gamepool/internal/domain"
)

const (
	defaultTimeout = 10 * time.Second

	// The community endpoints answer scrapers differently without a
	// browser-like user agent, so every outbound request carries one.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Client talks to the Steam Web API, the store API and the community
// site. It holds no state between calls.
type Client struct {
	client        *http.Client
	userAgent     string
	apiBase       string
	storeBase     string
	communityBase string
}

func New() *Client {
	httpClient := http.Client{
		Timeout: defaultTimeout,
	}

	c := &Client{
		client:        &httpClient,
		userAgent:     defaultUserAgent,
		apiBase:       gamepool.APIBase,
		storeBase:     gamepool.StoreAPIBase,
		communityBase: gamepool.CommunityBase,
	}
	httpClient.Transport = c
	return c
}

func (c *Client) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)
	return http.DefaultTransport.RoundTrip(req)
}

// apiRequest performs one Web API call and decodes the JSON body into
// response. The key is appended when present; format=json always is.
func (c *Client) apiRequest(ctx context.Context, path string, params url.Values, apiKey string, response any) error {

	if params == nil {
		params = url.Values{}
	}
	if apiKey != "" {
		params.Set("key", apiKey)
	}
	params.Set("format", "json")

	endpoint := c.apiBase + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.UpstreamError{Endpoint: path, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.UpstreamError{Endpoint: path, Status: resp.StatusCode}
	}

	err = json.NewDecoder(resp.Body).Decode(&response)
	if err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}

	return nil
}

// fetchText fetches a community URL and returns the raw body for the
// scraping tiers. Any non-OK status is an upstream error; callers
// decide whether that means "not found".
func (c *Client) fetchText(ctx context.Context, endpoint string) (string, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", domain.UpstreamError{Endpoint: endpoint, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.UpstreamError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	bytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %v", err)
	}

	return string(bytes), nil
}

// ResolveVanityURL asks the Web API to turn a vanity name into a
// SteamID64. A non-1 success code in the envelope is a miss, not an
// error.
func (c *Client) ResolveVanityURL(ctx context.Context, vanity, apiKey string) (gamepool.VanityEnvelope, error) {
	params := url.Values{}
	params.Set("vanityurl", vanity)

	var envelope gamepool.VanityEnvelope
	err := c.apiRequest(ctx, "/ISteamUser/ResolveVanityURL/v0001/", params, apiKey, &envelope)
	if err != nil {
		return gamepool.VanityEnvelope{}, err
	}
	return envelope, nil
}

// GetOwnedGames fetches the library of one account. A response without
// a games field (private profile) yields an empty slice.
func (c *Client) GetOwnedGames(ctx context.Context, steamID, apiKey string) ([]gamepool.OwnedGame, error) {
	params := url.Values{}
	params.Set("steamid", steamID)
	params.Set("include_appinfo", "true")

	var envelope gamepool.OwnedGamesEnvelope
	err := c.apiRequest(ctx, "/IPlayerService/GetOwnedGames/v0001/", params, apiKey, &envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Response.Games == nil {
		return []gamepool.OwnedGame{}, nil
	}
	return envelope.Response.Games, nil
}

// GetAppDetails fetches store metadata for one app. A missing or
// unsuccessful entry returns ErrNotFound so callers can degrade to a
// bare record instead of aborting.
func (c *Client) GetAppDetails(ctx context.Context, appID int) (*gamepool.AppDetails, error) {

	endpoint := fmt.Sprintf("%s/appdetails?appids=%d&l=en", c.storeBase, appID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.UpstreamError{Endpoint: "/appdetails", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.UpstreamError{Endpoint: "/appdetails", Status: resp.StatusCode}
	}

	var envelope gamepool.AppDetailsEnvelope
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to decode appdetails: %v", err)
	}

	entry, ok := envelope[strconv.Itoa(appID)]
	if !ok || !entry.Success || entry.Data == nil {
		return nil, domain.NotFoundError{Resource: fmt.Sprintf("details for app %d", appID)}
	}

	return entry.Data, nil
}

// GetProfileXML fetches the community profile feed of a vanity name in
// XML form.
func (c *Client) GetProfileXML(ctx context.Context, vanity string) (string, error) {
	return c.fetchText(ctx, c.communityBase+"/id/"+url.PathEscape(vanity)+"?xml=1")
}

// GetProfilePage fetches the community profile page of a vanity name.
func (c *Client) GetProfilePage(ctx context.Context, vanity string) (string, error) {
	return c.fetchText(ctx, c.communityBase+"/id/"+url.PathEscape(vanity))
}
