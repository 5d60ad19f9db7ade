package gamepool

import "testing"

func TestIsSteamID64(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"76561198000000001", true},
		{"76561197960287930", true},
		{"7656119800000000", false},   // 16 digits
		{"765611980000000012", false}, // 18 digits
		{"7656119800000000a", false},  // non-digit
		{"12345678901234567", false},  // wrong prefix
		{"", false},
	}
	for _, c := range cases {
		if got := IsSteamID64(c.in); got != c.want {
			t.Fatalf("IsSteamID64(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestExtractProfileID(t *testing.T) {
	id, ok := ExtractProfileID("https://steamcommunity.com/profiles/76561198000000001")
	if !ok || id != "76561198000000001" {
		t.Fatalf("unexpected result %q %v", id, ok)
	}

	if _, ok := ExtractProfileID("https://steamcommunity.com/id/gaben"); ok {
		t.Fatalf("expected no profile id in vanity url")
	}
}

func TestExtractVanityName(t *testing.T) {
	name, ok := ExtractVanityName("https://steamcommunity.com/id/gaben/games")
	if !ok || name != "gaben" {
		t.Fatalf("unexpected result %q %v", name, ok)
	}

	name, ok = ExtractVanityName("https://steamcommunity.com/id/gaben?tab=all")
	if !ok || name != "gaben" {
		t.Fatalf("query must not leak into the vanity name, got %q", name)
	}
}

func TestFallbackArtworkURL(t *testing.T) {
	got := FallbackArtworkURL(10, "abc123")
	want := "https://media.steampowered.com/steamcommunity/public/images/apps/10/abc123.jpg"
	if got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}
