package bandcamp

import (
	"testing"

	"github.com/sydlexius/crossref/internal/provider"
)

func TestParseURL(t *testing.T) {
	p := New()
	tests := []struct {
		name     string
		url      string
		wantType provider.URLType
		wantID   string
	}{
		{"album", "https://cloudkicker.bandcamp.com/album/beacons", provider.TypeAlbum, "cloudkicker/album/beacons"},
		{"track", "https://cloudkicker.bandcamp.com/track/subsume", provider.TypeTrack, "cloudkicker/track/subsume"},
		{"artist", "https://cloudkicker.bandcamp.com", provider.TypeArtist, "cloudkicker"},
		{"artist trailing slash", "https://cloudkicker.bandcamp.com/", provider.TypeArtist, "cloudkicker"},
		{"artist music page", "https://cloudkicker.bandcamp.com/music", provider.TypeArtist, "cloudkicker"},
		{"album with query", "https://cloudkicker.bandcamp.com/album/beacons?from=search", provider.TypeAlbum, "cloudkicker/album/beacons"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ParseURL(tt.url)
			if got == nil {
				t.Fatalf("ParseURL(%q) = nil", tt.url)
			}
			if got.Type != tt.wantType || got.ID != tt.wantID {
				t.Errorf("got %+v, want {%s %s}", got, tt.wantType, tt.wantID)
			}
		})
	}
}

func TestParseURL_NoMatch(t *testing.T) {
	p := New()
	for _, raw := range []string{
		"",
		"https://bandcamp.com/",
		"https://daily.bandcamp.com/features/best-of-2023",
		"https://www.bandcamp.com",
		"https://cloudkicker.bandcamp.com/merch",
		"https://cloudkicker.bandcamp.com/album/",
	} {
		if got := p.ParseURL(raw); got != nil {
			t.Errorf("ParseURL(%q) = %+v, want nil", raw, got)
		}
	}
}

func TestCreateURL(t *testing.T) {
	p := New()
	tests := []struct {
		typ  provider.URLType
		id   string
		want string
	}{
		{provider.TypeAlbum, "cloudkicker/album/beacons", "https://cloudkicker.bandcamp.com/album/beacons"},
		{provider.TypeTrack, "cloudkicker/track/subsume", "https://cloudkicker.bandcamp.com/track/subsume"},
		{provider.TypeArtist, "cloudkicker", "https://cloudkicker.bandcamp.com"},
		{provider.TypeAlbum, "cloudkicker", ""},
		{provider.TypeAlbum, "cloudkicker/track/subsume", ""},
		{provider.TypeArtist, "cloudkicker/album/beacons", ""},
	}
	for _, tt := range tests {
		if got := p.CreateURL(tt.typ, tt.id); got != tt.want {
			t.Errorf("CreateURL(%s, %q) = %q, want %q", tt.typ, tt.id, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	p := New()
	cases := []provider.URLData{
		{Type: provider.TypeArtist, ID: "cloudkicker"},
		{Type: provider.TypeAlbum, ID: "cloudkicker/album/beacons"},
		{Type: provider.TypeTrack, ID: "cloudkicker/track/subsume"},
	}
	for _, c := range cases {
		got := p.ParseURL(p.CreateURL(c.Type, c.ID))
		if got == nil || *got != c {
			t.Errorf("round trip %+v: got %+v", c, got)
		}
	}
}
