package rest

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gamepool/gamepool/internal/domain"
	"github.com/gamepool/gamepool/internal/present/rest/presenter"
	"github.com/gamepool/gamepool/internal/usecase"
)

type Handler struct {
	resolver *usecase.ResolverUsecase
	library  *usecase.LibraryUsecase
}

func NewHandler(
	resolver *usecase.ResolverUsecase,
	library *usecase.LibraryUsecase,
) *Handler {
	return &Handler{
		resolver: resolver,
		library:  library,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/resolve-steam-id", h.handleResolveSteamID)
	e.POST("/api/user-games", h.handleUserGames)
	e.GET("/api/game-details/:appid", h.handleGameDetails)
	e.POST("/api/games-for-users", h.handleGamesForUsers)
	e.GET("/api/health", h.handleHealth)
}

type resolveRequest struct {
	Identifier string `json:"identifier"`
	APIKey     string `json:"apiKey"`
}

type userGamesRequest struct {
	SteamID string `json:"steamId"`
	APIKey  string `json:"apiKey"`
}

type gamesForUsersRequest struct {
	Nicknames []string `json:"nicknames"`
	APIKey    string   `json:"apiKey"`
}

// apiKey prefers the body field and falls back to the key the auth
// middleware extracted from the bearer header.
func (h *Handler) apiKey(c echo.Context, bodyKey string) string {
	if bodyKey != "" {
		return bodyKey
	}
	if key, ok := c.Request().Context().Value(domain.APIKeyCtxKey).(string); ok {
		return key
	}
	return ""
}

func (h *Handler) handleResolveSteamID(c echo.Context) error {
	ctx := c.Request().Context()

	var req resolveRequest
	err := c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	if req.Identifier == "" {
		return presenter.BadRequestMessage(c, "identifier is required")
	}

	steamID, err := h.resolver.Resolve(ctx, req.Identifier, h.apiKey(c, req.APIKey))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "Could not resolve Steam ID. Make sure the username is a valid Steam vanity URL, or use Steam ID (numeric) or full profile URL.")
		}
		return presenter.InternalError(c, err)
	}

	return presenter.OK(c, echo.Map{"steamId": steamID})
}

func (h *Handler) handleUserGames(c echo.Context) error {
	ctx := c.Request().Context()

	var req userGamesRequest
	err := c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	if req.SteamID == "" {
		return presenter.BadRequestMessage(c, "steamId is required")
	}

	games, err := h.library.OwnedGames(ctx, req.SteamID, h.apiKey(c, req.APIKey))
	if err != nil {
		return presenter.InternalError(c, err)
	}

	return presenter.OK(c, echo.Map{"games": games})
}

func (h *Handler) handleGameDetails(c echo.Context) error {
	ctx := c.Request().Context()

	appID, err := strconv.Atoi(c.Param("appid"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid appid")
	}

	details, err := h.library.GameDetails(ctx, appID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "Game not found")
		}
		return presenter.InternalError(c, err)
	}

	return presenter.OK(c, details)
}

func (h *Handler) handleGamesForUsers(c echo.Context) error {
	ctx := c.Request().Context()

	var req gamesForUsersRequest
	err := c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	if len(req.Nicknames) == 0 {
		return presenter.BadRequestMessage(c, "nicknames array is required")
	}

	library, err := h.library.Aggregate(ctx, req.Nicknames, h.apiKey(c, req.APIKey))
	if err != nil {
		// only a missing key or an internal fault reaches here;
		// per-account failures ride in the errors list.
		return presenter.InternalError(c, err)
	}

	return presenter.OK(c, library)
}

func (h *Handler) handleHealth(c echo.Context) error {
	return presenter.OK(c, echo.Map{"status": "ok"})
}
