package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// variousArtists lists the compilation credits used across providers and
// locales. Matching is case-insensitive.
var variousArtists = []string{
	"Various Artists",
	"Various",
	"VA",
	"V.A.",
	"Verschiedene Interpreten",
	"Verschiedene Künstler",
	"Artistes Divers",
	"Artistes Variés",
	"Varios Artistas",
	"Artisti Vari",
	"Vários Artistas",
	"Diverse Artiesten",
	"Różni Wykonawcy",
	"Сборник",
	"群星",
	"ヴァリアス・アーティスト",
	"여러 아티스트",
}

// isVariousArtists reports whether every album artist is a compilation
// credit. Entries without album artists are not compilations.
func isVariousArtists(e Entry) bool {
	if len(e.AlbumArtists) == 0 {
		return false
	}
	for _, a := range e.AlbumArtists {
		if !isVariousName(a.Name) {
			return false
		}
	}
	return true
}

func isVariousName(name string) bool {
	name = strings.TrimSpace(name)
	for _, va := range variousArtists {
		if strings.EqualFold(name, va) {
			return true
		}
	}
	return false
}

// FilterItems applies every filter option to items and then sorts the
// result. The input slice is not modified.
func FilterItems(items []Entry, fd FilterData) []Entry {
	out := slices.Clone(items)
	for _, f := range filterOptions {
		if !f.applies(fd.Filters) {
			continue
		}
		out = slices.DeleteFunc(out, f.removes)
	}
	sortEntries(out, Sorter(fd.Sort).Key, fd.Ascending)
	return out
}

// sortEntries stable-sorts items in place by key. Descending order reverses
// the comparison, so ties keep their input order in both directions.
func sortEntries(items []Entry, key SortKey, ascending bool) {
	compare := comparator(key)
	slices.SortStableFunc(items, func(a, b Entry) int {
		c := compare(a, b)
		if !ascending {
			c = -c
		}
		return c
	})
}

func comparator(key SortKey) func(a, b Entry) int {
	switch key {
	case SortName:
		// Collators keep scratch buffers, so each sort gets its own.
		col := collate.New(language.Und)
		return func(a, b Entry) int { return col.CompareString(a.Name, b.Name) }
	case SortStatus:
		return func(a, b Entry) int { return cmp.Compare(a.Status.Rank(), b.Status.Rank()) }
	case SortCount:
		return func(a, b Entry) int { return cmp.Compare(trackCount(a), trackCount(b)) }
	default:
		return func(a, b Entry) int { return cmp.Compare(releaseTime(a), releaseTime(b)) }
	}
}

func trackCount(e Entry) int {
	if e.TrackCount == nil {
		return 0
	}
	return *e.TrackCount
}

// dateLayouts are the release date shapes seen from providers, most precise
// first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// releaseTime returns the release date as Unix milliseconds. Missing or
// unparsable dates sort as the epoch.
func releaseTime(e Entry) int64 {
	if e.ReleaseDate == nil {
		return 0
	}
	return parseDate(*e.ReleaseDate)
}

func parseDate(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}
