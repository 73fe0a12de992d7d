package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// SearchItems returns the entries matching query, annotated with the reason
// they matched. The query is trimmed and compared case-insensitively as a
// substring. A blank query returns items unchanged.
//
// Each entry is checked against its name, then its artist names, then its
// track names; the first hit decides the entry's SearchReason. For track
// hits, when the aggregated track list was searched, the matching tracks are
// flagged with Highlight. Entries that match nothing are dropped.
//
// The returned entries are copies; items is never modified.
func SearchItems(items []Entry, query string) []Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	m := newMatcher(query)
	out := make([]Entry, 0, len(items))
	for _, item := range items {
		if e, ok := m.match(item); ok {
			out = append(out, e)
		}
	}
	return out
}

type matcher struct {
	fold  cases.Caser
	query string
}

func newMatcher(query string) *matcher {
	m := &matcher{fold: cases.Fold()}
	m.query = m.fold.String(query)
	return m
}

func (m *matcher) contains(s string) bool {
	return strings.Contains(m.fold.String(s), m.query)
}

func (m *matcher) match(item Entry) (Entry, bool) {
	if m.contains(item.Name) {
		e := item.Clone()
		e.SearchReason = ReasonTitle
		return e, true
	}

	for _, name := range item.artistNames() {
		if m.contains(name) {
			e := item.Clone()
			e.SearchReason = ReasonArtist
			return e, true
		}
	}

	tracks, aggregated := trackSource(item)
	matched := make(map[int]bool)
	for _, t := range tracks {
		if m.contains(t.Name) {
			matched[t.Number] = true
		}
	}
	if len(matched) == 0 {
		return Entry{}, false
	}

	e := item.Clone()
	e.SearchReason = ReasonTrack
	if aggregated {
		for i := range e.Tracks {
			if matched[e.Tracks[i].Number] {
				e.Tracks[i].Highlight = true
				// Highlighted tracks report "title": the track's own title
				// is what matched.
				e.Tracks[i].SearchReason = ReasonTitle
			}
		}
	}
	return e, true
}

// trackSource picks the one track list to search: the aggregated tracks when
// present, else the MusicBrainz tracks when their count equals the declared
// track count, else the provider tracks. The boolean reports whether the
// aggregated list was chosen.
func trackSource(e Entry) ([]Track, bool) {
	if len(e.Tracks) > 0 {
		return e.Tracks, true
	}
	if e.TrackCount != nil && len(e.MusicBrainzTracks) == *e.TrackCount {
		return e.MusicBrainzTracks, false
	}
	return e.ProviderTracks, false
}
