// Package catalog turns an aggregated multi-provider catalog into the
// filtered, sorted and search-annotated list shown to the user.
//
// All operations are pure: they never modify the entries they are given and
// return fresh slices, so a single catalog snapshot can be shared across
// concurrent requests.
package catalog

import (
	"slices"

	"github.com/sydlexius/crossref/internal/issue"
	"github.com/sydlexius/crossref/internal/provider"
)

// Status is the reconciliation state of an entry.
type Status string

// Known statuses, from worst to best.
const (
	StatusRed    Status = "red"
	StatusOrange Status = "orange"
	StatusBlue   Status = "blue"
	StatusGreen  Status = "green"
)

// Rank orders statuses red < orange < blue < green. Unknown statuses rank
// before red.
func (s Status) Rank() int {
	switch s {
	case StatusRed:
		return 0
	case StatusOrange:
		return 1
	case StatusBlue:
		return 2
	case StatusGreen:
		return 3
	}
	return -1
}

// SearchReason records which field made an entry (or track) match a query.
type SearchReason string

// Search reasons. The empty reason means "not matched".
const (
	ReasonNone   SearchReason = ""
	ReasonTitle  SearchReason = "title"
	ReasonArtist SearchReason = "artist"
	ReasonTrack  SearchReason = "track"
)

// PartialArtist is an artist credit as reported by one provider.
type PartialArtist struct {
	Name     string                `json:"name"`
	Provider provider.ProviderName `json:"provider,omitempty"`
	ID       string                `json:"id,omitempty"`
}

// Track is one track of an album entry.
type Track struct {
	Number       int          `json:"trackNumber"`
	Name         string       `json:"name"`
	ISRC         string       `json:"isrc,omitempty"`
	Issues       []issue.ID   `json:"trackIssues,omitempty"`
	Highlight    bool         `json:"highlight,omitempty"`
	SearchReason SearchReason `json:"searchReason,omitempty"`
}

// Entry is an aggregated album, artist or track record. Issues are attached
// upstream; this package only reads them.
type Entry struct {
	ID           string                           `json:"id"`
	Type         provider.URLType                 `json:"type,omitempty"`
	Name         string                           `json:"name"`
	Status       Status                           `json:"status"`
	AlbumArtists []PartialArtist                  `json:"albumArtists"`
	ArtistNames  []string                         `json:"artistNames"`
	ReleaseDate  *string                          `json:"releaseDate"`
	TrackCount   *int                             `json:"trackCount"`
	AlbumIssues  []issue.ID                       `json:"albumIssues"`
	Sources      map[provider.ProviderName]string `json:"sources,omitempty"`

	// Track sources. Only one is used at a time; see SearchItems.
	Tracks            []Track `json:"albumTracks,omitempty"`
	MusicBrainzTracks []Track `json:"mbTracks,omitempty"`
	ProviderTracks    []Track `json:"providerTracks,omitempty"`

	SearchReason SearchReason `json:"searchReason,omitempty"`
}

// Clone returns a deep copy of e.
func (e Entry) Clone() Entry {
	out := e
	out.AlbumArtists = slices.Clone(e.AlbumArtists)
	out.ArtistNames = slices.Clone(e.ArtistNames)
	out.AlbumIssues = slices.Clone(e.AlbumIssues)
	out.Tracks = cloneTracks(e.Tracks)
	out.MusicBrainzTracks = cloneTracks(e.MusicBrainzTracks)
	out.ProviderTracks = cloneTracks(e.ProviderTracks)
	if e.ReleaseDate != nil {
		d := *e.ReleaseDate
		out.ReleaseDate = &d
	}
	if e.TrackCount != nil {
		n := *e.TrackCount
		out.TrackCount = &n
	}
	if e.Sources != nil {
		out.Sources = make(map[provider.ProviderName]string, len(e.Sources))
		for k, v := range e.Sources {
			out.Sources[k] = v
		}
	}
	return out
}

// artistNames flattens album artist credits and plain artist names.
func (e Entry) artistNames() []string {
	names := make([]string, 0, len(e.AlbumArtists)+len(e.ArtistNames))
	for _, a := range e.AlbumArtists {
		names = append(names, a.Name)
	}
	return append(names, e.ArtistNames...)
}

func cloneTracks(in []Track) []Track {
	if in == nil {
		return nil
	}
	out := make([]Track, len(in))
	for i, t := range in {
		t.Issues = slices.Clone(t.Issues)
		out[i] = t
	}
	return out
}
