package catalog

import "github.com/sydlexius/crossref/internal/issue"

func strPtr(s string) *string { return &s }
func intPtr(n int) *int { return &n }

func testEntry(name string, status Status, artists ...string) Entry {
	e := Entry{ID: name, Name: name, Status: status}
	for _, a := range artists {
		e.AlbumArtists = append(e.AlbumArtists, PartialArtist{Name: a})
	}
	return e
}

func withIssues(e Entry, ids ...issue.ID) Entry {
	e.AlbumIssues = ids
	return e
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
