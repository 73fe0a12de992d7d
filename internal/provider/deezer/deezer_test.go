package deezer

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
		{"album", "https://www.deezer.com/album/302127", provider.TypeAlbum, "302127"},
		{"track with locale", "https://www.deezer.com/fr/track/3135556", provider.TypeTrack, "3135556"},
		{"artist without www", "https://deezer.com/artist/27", provider.TypeArtist, "27"},
		{"query string", "https://www.deezer.com/en/album/302127?utm_source=x", provider.TypeAlbum, "302127"},
		{"surrounding whitespace", "  https://www.deezer.com/album/1  ", provider.TypeAlbum, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ParseURL(tt.url)
			if got == nil {
				t.Fatalf("ParseURL(%q) = nil", tt.url)
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if got.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}

func TestParseURL_NoMatch(t *testing.T) {
	p := New()
	for _, raw := range []string{
		"",
		"not a url",
		"https://www.deezer.com/playlist/908622995",
		"https://www.deezer.com/album/abc",
		"https://www.deezer.com/album/123abc",
		"https://open.spotify.com/album/1DFixLWuPkv3KT3TnV35m3",
	} {
		if got := p.ParseURL(raw); got != nil {
			t.Errorf("ParseURL(%q) = %+v, want nil", raw, got)
		}
	}
}

func TestCreateURL(t *testing.T) {
	p := New()
	if got := p.CreateURL(provider.TypeAlbum, "302127"); got != "https://www.deezer.com/album/302127" {
		t.Errorf("CreateURL = %q", got)
	}
	if got := p.CreateURL(provider.URLType("playlist"), "1"); got != "" {
		t.Errorf("CreateURL(playlist) = %q, want empty", got)
	}
}

func TestRoundTrip(t *testing.T) {
	p := New()
	for _, typ := range []provider.URLType{provider.TypeArtist, provider.TypeAlbum, provider.TypeTrack} {
		got := p.ParseURL(p.CreateURL(typ, "12345"))
		if got == nil || got.Type != typ || got.ID != "12345" {
			t.Errorf("round trip %s: got %+v", typ, got)
		}
	}
}
