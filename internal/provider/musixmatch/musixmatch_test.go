package musixmatch

import (
	"testing"

	"github.com/sydlexius/crossref/internal/provider"
)

func TestNeverMatches(t *testing.T) {
	p := New()
	if p.Name() != provider.NameMusixmatch {
		t.Errorf("Name = %q", p.Name())
	}
	if got := p.ParseURL("https://www.musixmatch.com/album/Taylor-Swift/Midnights"); got != nil {
		t.Errorf("ParseURL = %+v, want nil", got)
	}
	if got := p.CreateURL(provider.TypeAlbum, "1"); got != "" {
		t.Errorf("CreateURL = %q, want empty", got)
	}
}
