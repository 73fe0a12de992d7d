package catalog

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// FilterKey names a display filter toggle.
type FilterKey string

// Filter keys.
const (
	FilterShowGreen   FilterKey = "showGreen"
	FilterShowOrange  FilterKey = "showOrange"
	FilterShowRed     FilterKey = "showRed"
	FilterShowVarious FilterKey = "showVarious"
	FilterOnlyIssues  FilterKey = "onlyIssues"
)

// SortKey names a sort order.
type SortKey string

// Sort keys.
const (
	SortName   SortKey = "name"
	SortDate   SortKey = "date"
	SortStatus SortKey = "status"
	SortCount  SortKey = "count"
)

// FilterOption is a named toggle.
//
// Non-exclusive options are opt-out: they are on by default and, when the
// user turns one off, every entry it matches is removed. Exclusive options
// are opt-in: when the user turns one on, every entry it matches is removed.
// In both cases "matches" is decided by the option's removal predicate.
type FilterOption struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Key       FilterKey `json:"key"`
	Exclusive bool      `json:"exclusive,omitempty"`
	Default   bool      `json:"default,omitempty"`

	removes func(Entry) bool
}

// applies reports whether the option's removal predicate runs for the
// selected filter set.
func (f FilterOption) applies(selected []FilterKey) bool {
	on := slices.Contains(selected, f.Key)
	return (on && f.Exclusive) || (!on && !f.Exclusive)
}

// SortOption is one of the fixed total orders.
type SortOption struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Key     SortKey `json:"key"`
	Default bool    `json:"default,omitempty"`
}

// FilterData is the complete user display configuration.
type FilterData struct {
	Filters   []FilterKey `json:"filters"`
	Sort      SortKey     `json:"sort"`
	Ascending bool        `json:"ascending"`
}

var filterOptions = []FilterOption{
	{
		ID:      0,
		Name:    "Show green",
		Key:     FilterShowGreen,
		Default: true,
		removes: statusIs(StatusGreen),
	},
	{
		ID:      1,
		Name:    "Show orange",
		Key:     FilterShowOrange,
		Default: true,
		removes: statusIs(StatusOrange),
	},
	{
		ID:      2,
		Name:    "Show red",
		Key:     FilterShowRed,
		Default: true,
		removes: statusIs(StatusRed),
	},
	{
		ID:      3,
		Name:    "Show Various Artists",
		Key:     FilterShowVarious,
		removes: isVariousArtists,
	},
	{
		ID:        4,
		Name:      "Only show items with issues",
		Key:       FilterOnlyIssues,
		Exclusive: true,
		removes:   func(e Entry) bool { return len(e.AlbumIssues) == 0 },
	},
}

var sortOptions = []SortOption{
	{ID: 0, Name: "Name", Key: SortName},
	{ID: 1, Name: "Release date", Key: SortDate, Default: true},
	{ID: 2, Name: "Status", Key: SortStatus},
	{ID: 3, Name: "Track count", Key: SortCount},
}

func statusIs(s Status) func(Entry) bool {
	return func(e Entry) bool { return e.Status == s }
}

// Filters returns every filter option, or only the options whose keys are
// given. Unknown keys are ignored.
func Filters(selected ...FilterKey) []FilterOption {
	out := make([]FilterOption, 0, len(filterOptions))
	for _, f := range filterOptions {
		if len(selected) == 0 || slices.Contains(selected, f.Key) {
			out = append(out, f)
		}
	}
	return out
}

// Sorters returns every sort option in declared order.
func Sorters() []SortOption {
	return slices.Clone(sortOptions)
}

// Sorter returns the option for key. An unknown or empty key falls back to
// the default option, then to the first declared option.
func Sorter(key SortKey) SortOption {
	for _, s := range sortOptions {
		if s.Key == key {
			return s
		}
	}
	for _, s := range sortOptions {
		if s.Default {
			return s
		}
	}
	return sortOptions[0]
}

// DefaultFilters returns the keys of the filters that are on by default.
func DefaultFilters() []FilterKey {
	var keys []FilterKey
	for _, f := range filterOptions {
		if f.Default {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// DefaultSort returns the default sort key.
func DefaultSort() SortKey {
	return Sorter("").Key
}

// DefaultOptions returns the baked-in display configuration: green, orange
// and red shown, newest first.
func DefaultOptions() FilterData {
	return FilterData{
		Filters:   DefaultFilters(),
		Sort:      DefaultSort(),
		Ascending: false,
	}
}

// Normalize drops unknown and duplicate filter keys and resolves the sort key
// to a declared option.
func (fd FilterData) Normalize() FilterData {
	out := FilterData{
		Filters:   make([]FilterKey, 0, len(fd.Filters)),
		Sort:      Sorter(fd.Sort).Key,
		Ascending: fd.Ascending,
	}
	for _, k := range fd.Filters {
		if validFilterKey(k) && !slices.Contains(out.Filters, k) {
			out.Filters = append(out.Filters, k)
		}
	}
	return out
}

// ParseFilterData reads a FilterData from query parameters: repeated or
// comma-separated "filter" values, "sort" and "asc". A query that sets only
// sort or asc keeps the default filters. The boolean reports whether any of
// those parameters was present.
func ParseFilterData(q url.Values) (FilterData, bool) {
	_, hasFilter := q["filter"]
	_, hasSort := q["sort"]
	_, hasAsc := q["asc"]
	if !hasFilter && !hasSort && !hasAsc {
		return DefaultOptions(), false
	}

	fd := FilterData{Sort: SortKey(q.Get("sort"))}
	if !hasFilter {
		fd.Filters = DefaultFilters()
	}
	for _, v := range q["filter"] {
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				fd.Filters = append(fd.Filters, FilterKey(k))
			}
		}
	}
	if asc, err := strconv.ParseBool(q.Get("asc")); err == nil {
		fd.Ascending = asc
	}
	return fd.Normalize(), true
}

func validFilterKey(k FilterKey) bool {
	for _, f := range filterOptions {
		if f.Key == k {
			return true
		}
	}
	return false
}
