package catalog

import (
	"net/url"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	got := DefaultOptions()
	want := []FilterKey{FilterShowGreen, FilterShowOrange, FilterShowRed}
	if len(got.Filters) != len(want) {
		t.Fatalf("Filters = %v, want %v", got.Filters, want)
	}
	for i := range want {
		if got.Filters[i] != want[i] {
			t.Errorf("Filters[%d] = %q, want %q", i, got.Filters[i], want[i])
		}
	}
	if got.Sort != SortDate {
		t.Errorf("Sort = %q, want date", got.Sort)
	}
	if got.Ascending {
		t.Error("Ascending should default to false")
	}
}

func TestFilters(t *testing.T) {
	if n := len(Filters()); n != 5 {
		t.Errorf("Filters() returned %d options, want 5", n)
	}
	got := Filters(FilterOnlyIssues, FilterKey("bogus"))
	if len(got) != 1 || got[0].Key != FilterOnlyIssues || !got[0].Exclusive {
		t.Errorf("Filters(onlyIssues) = %+v", got)
	}
	exclusive := 0
	for _, f := range Filters() {
		if f.Exclusive {
			exclusive++
			if f.Default {
				t.Errorf("exclusive filter %q should not be on by default", f.Key)
			}
		}
	}
	if exclusive != 1 {
		t.Errorf("got %d exclusive filters, want 1", exclusive)
	}
}

func TestSorter(t *testing.T) {
	tests := []struct {
		key  SortKey
		want SortKey
	}{
		{SortName, SortName},
		{SortCount, SortCount},
		{SortStatus, SortStatus},
		{"", SortDate},
		{"popularity", SortDate},
	}
	for _, tt := range tests {
		if got := Sorter(tt.key).Key; got != tt.want {
			t.Errorf("Sorter(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}

	all := Sorters()
	if len(all) != 4 {
		t.Fatalf("Sorters() returned %d options, want 4", len(all))
	}
	defaults := 0
	for _, s := range all {
		if s.Default {
			defaults++
		}
	}
	if defaults != 1 {
		t.Errorf("got %d default sorters, want exactly 1", defaults)
	}
}

func TestNormalize(t *testing.T) {
	fd := FilterData{
		Filters:   []FilterKey{FilterShowRed, "bogus", FilterShowRed, FilterOnlyIssues},
		Sort:      "bogus",
		Ascending: true,
	}.Normalize()

	if !equalStrings(filterStrings(fd.Filters), []string{"showRed", "onlyIssues"}) {
		t.Errorf("Filters = %v", fd.Filters)
	}
	if fd.Sort != SortDate {
		t.Errorf("Sort = %q, want date", fd.Sort)
	}
	if !fd.Ascending {
		t.Error("Ascending should be preserved")
	}
}

func TestParseFilterData(t *testing.T) {
	fd, ok := ParseFilterData(url.Values{})
	if ok {
		t.Error("empty query should report no filter params")
	}
	if fd.Sort != SortDate || len(fd.Filters) != 3 {
		t.Errorf("empty query should yield defaults, got %+v", fd)
	}

	q, _ := url.ParseQuery("filter=showGreen,showRed&filter=onlyIssues&sort=count&asc=true")
	fd, ok = ParseFilterData(q)
	if !ok {
		t.Fatal("expected filter params to be detected")
	}
	if !equalStrings(filterStrings(fd.Filters), []string{"showGreen", "showRed", "onlyIssues"}) {
		t.Errorf("Filters = %v", fd.Filters)
	}
	if fd.Sort != SortCount || !fd.Ascending {
		t.Errorf("got %+v", fd)
	}

	// An explicit empty filter list turns every opt-out filter off.
	q, _ = url.ParseQuery("filter=&sort=name")
	fd, _ = ParseFilterData(q)
	if len(fd.Filters) != 0 || fd.Sort != SortName || fd.Ascending {
		t.Errorf("got %+v", fd)
	}

	// Sort alone keeps the default filters.
	q, _ = url.ParseQuery("sort=status&asc=1")
	fd, ok = ParseFilterData(q)
	if !ok || len(fd.Filters) != 3 || fd.Sort != SortStatus || !fd.Ascending {
		t.Errorf("got %+v, ok=%v", fd, ok)
	}
}

func filterStrings(keys []FilterKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
