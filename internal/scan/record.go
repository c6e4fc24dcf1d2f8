package scan

import "reelsort/internal/titleinfo"

// Record tracks one candidate movie folder through the pipeline. It is
// created during scanning and mutated in place as metadata arrives and the
// folder is moved.
type Record struct {
	Title   string
	Quality titleinfo.Tier
	// Path is the folder's current location. Stages that move the folder
	// update it before the next stage reads it.
	Path string

	// Filled in by the fetch stage; empty when metadata never resolved.
	Genres []string
	Year   string
	Raw    map[string]any

	// Filled in by the organize stage.
	Destination  string
	ManualReview bool
}
