package domain

// AggregatedGame is one game of the merged library. Accounts holds the
// original identifier strings of the owners in the order they were
// processed, each at most once.
type AggregatedGame struct {
	AppID    int      `json:"appid"`
	Name     string   `json:"name"`
	Picture  string   `json:"picture"`
	Tags     []string `json:"tags"`
	Accounts []string `json:"accounts"`
}

// Library is the result of one aggregation call: the merged games in
// first-sighting order plus one message per account that could not be
// resolved or fetched.
type Library struct {
	Games  []*AggregatedGame `json:"games"`
	Errors []string          `json:"errors"`
}

// GameDetails is the boundary-level shape of a single store lookup.
type GameDetails struct {
	AppID            int      `json:"appid"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description"`
	HeaderImage      string   `json:"header_image"`
	Genres           []string `json:"genres"`
	Tags             []string `json:"tags"`
}
