package gamepool

// Base URLs of the Steam services this app talks to. None of them are
// under our control; the paths below are substituted with ids/names.
const (
	APIBase       = "https://api.steampowered.com"
	StoreAPIBase  = "https://store.steampowered.com/api"
	CommunityBase = "https://steamcommunity.com"
	MediaBase     = "https://media.steampowered.com"
)

// ResolveVanityURL success codes. Anything other than 1 means the
// vanity name is unknown to the Web API, which is not an error.
const (
	VanitySuccessOK      = 1
	VanitySuccessNoMatch = 42
)

// OwnedGame is one record from IPlayerService/GetOwnedGames.
type OwnedGame struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	ImgIconURL      string `json:"img_icon_url"`
	ImgLogoURL      string `json:"img_logo_url"`
	PlaytimeForever int    `json:"playtime_forever,omitempty"`
}

// OwnedGamesEnvelope wraps the GetOwnedGames response. Games is absent
// (not empty) when the profile is private, so callers must treat nil as
// an empty library.
type OwnedGamesEnvelope struct {
	Response struct {
		GameCount int         `json:"game_count"`
		Games     []OwnedGame `json:"games"`
	} `json:"response"`
}

// VanityEnvelope wraps the ISteamUser/ResolveVanityURL response.
type VanityEnvelope struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
		Message string `json:"message"`
	} `json:"response"`
}

// Category is a store category descriptor. Its id is numeric.
type Category struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// Genre is a store genre descriptor. Unlike Category, the store ships
// its id as a string.
type Genre struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// AppDetails is the slice of the store appdetails payload we care
// about. Categories and Genres may both be absent.
type AppDetails struct {
	Name             string     `json:"name"`
	ShortDescription string     `json:"short_description"`
	HeaderImage      string     `json:"header_image"`
	Categories       []Category `json:"categories"`
	Genres           []Genre    `json:"genres"`
}

// AppDetailsEntry is one value of the appdetails envelope. Data is only
// meaningful when Success is true.
type AppDetailsEntry struct {
	Success bool        `json:"success"`
	Data    *AppDetails `json:"data"`
}

// AppDetailsEnvelope maps the appid (serialized as a string key) to its
// entry. The store returns this shape even for a single-app request.
type AppDetailsEnvelope map[string]AppDetailsEntry
