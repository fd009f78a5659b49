package domain

// Track is a single entry of an album's cue sheet, in sheet order.
type Track struct {
	Number int
	Title  string
}

// Album carries the metadata shared by every track of one album image,
// plus the tracks themselves. Genre and Date stay empty when the cue
// sheet has no matching REM lines; empty values are still written as
// tags rather than omitted.
type Album struct {
	Artist    string
	Title     string
	Genre     string
	Date      string
	ImageFile string
	Tracks    []*Track
}
