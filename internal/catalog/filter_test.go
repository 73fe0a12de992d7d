package catalog

import (
	"testing"

	"github.com/sydlexius/crossref/internal/issue"
)

func mixedCatalog() []Entry {
	return []Entry{
		withIssues(testEntry("Green One", StatusGreen, "Artist A"), issue.NoUPC),
		testEntry("Orange One", StatusOrange, "Artist B"),
		withIssues(testEntry("Red One", StatusRed, "Artist C"), issue.TrackCountMismatch),
		testEntry("Blue One", StatusBlue, "Artist D"),
		testEntry("Compilation", StatusGreen, "Various Artists"),
		testEntry("Sampler", StatusRed, "群星", "va"),
		testEntry("Split", StatusGreen, "Various Artists", "Artist E"),
	}
}

func TestFilterItems_StatusFilters(t *testing.T) {
	items := mixedCatalog()
	tests := []struct {
		name    string
		filters []FilterKey
		want    []string
	}{
		{
			name:    "defaults hide various artists only",
			filters: DefaultFilters(),
			want:    []string{"Green One", "Orange One", "Red One", "Blue One", "Split"},
		},
		{
			name:    "everything on",
			filters: []FilterKey{FilterShowGreen, FilterShowOrange, FilterShowRed, FilterShowVarious},
			want:    []string{"Green One", "Orange One", "Red One", "Blue One", "Compilation", "Sampler", "Split"},
		},
		{
			name:    "green off",
			filters: []FilterKey{FilterShowOrange, FilterShowRed, FilterShowVarious},
			want:    []string{"Orange One", "Red One", "Blue One", "Sampler"},
		},
		{
			name:    "everything off keeps blue",
			filters: nil,
			want:    []string{"Blue One"},
		},
		{
			name:    "unknown keys ignored",
			filters: []FilterKey{"bogus", FilterShowGreen, FilterShowOrange, FilterShowRed, FilterShowVarious},
			want:    []string{"Green One", "Orange One", "Red One", "Blue One", "Compilation", "Sampler", "Split"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Identical dates and a stable sort keep the input order.
			got := names(FilterItems(items, FilterData{Filters: tt.filters, Sort: SortDate}))
			if !equalStrings(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterItems_OnlyIssues(t *testing.T) {
	items := mixedCatalog()

	fd := FilterData{Filters: append(DefaultFilters(), FilterOnlyIssues), Sort: SortName, Ascending: true}
	got := FilterItems(items, fd)
	if len(got) != 2 {
		t.Fatalf("got %v, want two entries with issues", names(got))
	}
	for _, e := range got {
		if len(e.AlbumIssues) == 0 {
			t.Errorf("%q has no issues but passed onlyIssues", e.Name)
		}
	}

	// Without onlyIssues no issue-based removal happens.
	got = FilterItems(items, FilterData{Filters: DefaultFilters(), Sort: SortName, Ascending: true})
	if len(got) != 5 {
		t.Errorf("got %v, want 5 entries", names(got))
	}
}

func TestFilterItems_Idempotent(t *testing.T) {
	items := mixedCatalog()
	items[0].ReleaseDate = strPtr("2022-10-21")
	items[1].ReleaseDate = strPtr("2019")
	items[3].ReleaseDate = strPtr("not a date")

	for _, sk := range []SortKey{SortName, SortDate, SortStatus, SortCount} {
		for _, asc := range []bool{true, false} {
			fd := FilterData{Filters: DefaultFilters(), Sort: sk, Ascending: asc}
			once := FilterItems(items, fd)
			twice := FilterItems(once, fd)
			if !equalStrings(names(once), names(twice)) {
				t.Errorf("sort=%s asc=%v: once %v, twice %v", sk, asc, names(once), names(twice))
			}
		}
	}
}

func TestFilterItems_DoesNotModifyInput(t *testing.T) {
	items := mixedCatalog()
	before := names(items)
	FilterItems(items, FilterData{Sort: SortName, Ascending: true})
	if !equalStrings(names(items), before) {
		t.Errorf("input reordered: %v", names(items))
	}
}

func TestSortByCount(t *testing.T) {
	items := []Entry{
		{Name: "none", Status: StatusGreen},
		{Name: "five", Status: StatusGreen, TrackCount: intPtr(5)},
		{Name: "two", Status: StatusGreen, TrackCount: intPtr(2)},
	}
	fd := FilterData{Filters: DefaultFilters(), Sort: SortCount, Ascending: true}
	if got := names(FilterItems(items, fd)); !equalStrings(got, []string{"none", "two", "five"}) {
		t.Errorf("ascending = %v, want [none two five]", got)
	}
	fd.Ascending = false
	if got := names(FilterItems(items, fd)); !equalStrings(got, []string{"five", "two", "none"}) {
		t.Errorf("descending = %v, want [five two none]", got)
	}
}

func TestSortByDate(t *testing.T) {
	items := []Entry{
		{Name: "missing", Status: StatusGreen},
		{Name: "2022", Status: StatusGreen, ReleaseDate: strPtr("2022-10-21")},
		{Name: "garbage", Status: StatusGreen, ReleaseDate: strPtr("someday")},
		{Name: "2019", Status: StatusGreen, ReleaseDate: strPtr("2019-08")},
		{Name: "1999", Status: StatusGreen, ReleaseDate: strPtr("1999")},
	}

	got := names(FilterItems(items, DefaultOptions()))
	want := []string{"2022", "2019", "1999", "missing", "garbage"}
	if !equalStrings(got, want) {
		t.Errorf("newest first = %v, want %v", got, want)
	}

	got = names(FilterItems(items, FilterData{Filters: DefaultFilters(), Sort: SortDate, Ascending: true}))
	want = []string{"missing", "garbage", "1999", "2019", "2022"}
	if !equalStrings(got, want) {
		t.Errorf("oldest first = %v, want %v", got, want)
	}
}

func TestSortByStatus(t *testing.T) {
	items := []Entry{
		{Name: "g", Status: StatusGreen},
		{Name: "b", Status: StatusBlue},
		{Name: "r", Status: StatusRed},
		{Name: "o", Status: StatusOrange},
	}
	fd := FilterData{Filters: DefaultFilters(), Sort: SortStatus, Ascending: true}
	if got := names(FilterItems(items, fd)); !equalStrings(got, []string{"r", "o", "b", "g"}) {
		t.Errorf("got %v, want [r o b g]", got)
	}
}

func TestSortByName_LocaleAware(t *testing.T) {
	items := []Entry{
		{Name: "zebra", Status: StatusGreen},
		{Name: "Émile", Status: StatusGreen},
		{Name: "apple", Status: StatusGreen},
		{Name: "Banana", Status: StatusGreen},
	}
	fd := FilterData{Filters: DefaultFilters(), Sort: SortName, Ascending: true}
	want := []string{"apple", "Banana", "Émile", "zebra"}
	if got := names(FilterItems(items, fd)); !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIsVariousArtists(t *testing.T) {
	tests := []struct {
		artists []string
		want    bool
	}{
		{[]string{"Various Artists"}, true},
		{[]string{"various artists"}, true},
		{[]string{"Verschiedene Interpreten"}, true},
		{[]string{"Artistes Divers", "VA"}, true},
		{[]string{"Various Artists", "Daft Punk"}, false},
		{[]string{"Daft Punk"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		e := testEntry("x", StatusGreen, tt.artists...)
		if got := isVariousArtists(e); got != tt.want {
			t.Errorf("isVariousArtists(%v) = %v, want %v", tt.artists, got, tt.want)
		}
	}
}
