// Package issue holds the static taxonomy of catalog data-quality issues.
// Issues are detected elsewhere; this package only describes them.
package issue

// Severity ranks how much an issue matters to the user.
type Severity string

// Severity levels.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ID identifies an issue kind. IDs are attached to catalog entries by the
// aggregation service and must stay stable.
type ID string

// Album-level issues.
const (
	NoUPC               ID = "noUpc"
	UPCMismatch         ID = "upcMismatch"
	MissingRegions      ID = "missingRegions"
	TrackCountMismatch  ID = "trackCountMismatch"
	ReleaseDateMismatch ID = "releaseDateMismatch"
	ArtistMismatch      ID = "artistMismatch"
	NoMusicBrainz       ID = "noMusicBrainz"
	CoverArtMissing     ID = "coverArtMissing"
)

// Track-level issues.
const (
	NoISRC              ID = "noIsrc"
	ISRCMismatch        ID = "isrcMismatch"
	TrackNameMismatch   ID = "trackNameMismatch"
	TrackArtistMismatch ID = "trackArtistMismatch"
	DurationMismatch    ID = "durationMismatch"
)

// Definition describes an issue kind for display.
type Definition struct {
	ID          ID       `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

var albumIssues = []Definition{
	{
		ID:          NoUPC,
		Label:       "Missing UPC",
		Description: "The MusicBrainz release has no barcode although the provider lists one",
		Severity:    SeverityHigh,
	},
	{
		ID:          UPCMismatch,
		Label:       "UPC mismatch",
		Description: "The barcode on MusicBrainz differs from the provider's UPC",
		Severity:    SeverityHigh,
	},
	{
		ID:          MissingRegions,
		Label:       "Missing regions",
		Description: "The release is available in some provider regions only, not region-wide",
		Severity:    SeverityLow,
	},
	{
		ID:          TrackCountMismatch,
		Label:       "Track count mismatch",
		Description: "MusicBrainz and the provider list a different number of tracks",
		Severity:    SeverityHigh,
	},
	{
		ID:          ReleaseDateMismatch,
		Label:       "Release date mismatch",
		Description: "The release date on MusicBrainz differs from the provider's date",
		Severity:    SeverityMedium,
	},
	{
		ID:          ArtistMismatch,
		Label:       "Artist mismatch",
		Description: "The release artist credit differs between MusicBrainz and the provider",
		Severity:    SeverityMedium,
	},
	{
		ID:          NoMusicBrainz,
		Label:       "Not on MusicBrainz",
		Description: "No MusicBrainz release is linked to the provider URL",
		Severity:    SeverityHigh,
	},
	{
		ID:          CoverArtMissing,
		Label:       "Cover art missing",
		Description: "The MusicBrainz release has no front cover in the Cover Art Archive",
		Severity:    SeverityLow,
	},
}

var trackIssues = []Definition{
	{
		ID:          NoISRC,
		Label:       "Missing ISRC",
		Description: "The MusicBrainz recording has no ISRC although the provider lists one",
		Severity:    SeverityHigh,
	},
	{
		ID:          ISRCMismatch,
		Label:       "ISRC mismatch",
		Description: "The ISRC on MusicBrainz differs from the provider's ISRC",
		Severity:    SeverityHigh,
	},
	{
		ID:          TrackNameMismatch,
		Label:       "Track name mismatch",
		Description: "The track name differs between MusicBrainz and the provider",
		Severity:    SeverityMedium,
	},
	{
		ID:          TrackArtistMismatch,
		Label:       "Track artist mismatch",
		Description: "The track artist credit differs between MusicBrainz and the provider",
		Severity:    SeverityMedium,
	},
	{
		ID:          DurationMismatch,
		Label:       "Duration mismatch",
		Description: "The track length differs by more than a few seconds",
		Severity:    SeverityLow,
	},
}

// AlbumIssues returns the album-level issue definitions in display order.
func AlbumIssues() []Definition {
	out := make([]Definition, len(albumIssues))
	copy(out, albumIssues)
	return out
}

// TrackIssues returns the track-level issue definitions in display order.
func TrackIssues() []Definition {
	out := make([]Definition, len(trackIssues))
	copy(out, trackIssues)
	return out
}

// Album returns the album-level definition for id.
func Album(id ID) (Definition, bool) {
	return find(albumIssues, id)
}

// Track returns the track-level definition for id.
func Track(id ID) (Definition, bool) {
	return find(trackIssues, id)
}

// Lookup searches both album and track issues.
func Lookup(id ID) (Definition, bool) {
	if d, ok := Album(id); ok {
		return d, true
	}
	return Track(id)
}

func find(defs []Definition, id ID) (Definition, bool) {
	for _, d := range defs {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
