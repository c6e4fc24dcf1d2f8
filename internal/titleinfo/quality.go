package titleinfo

import "strings"

// Tier is an ordinal resolution marker used to rank duplicate folders.
// Higher values win deduplication.
type Tier int

const (
	TierUnspecified Tier = iota
	Tier480p
	Tier576p
	Tier720p
	Tier1080p
	Tier2160p
)

var tierTokens = map[string]Tier{
	"480p":  Tier480p,
	"576p":  Tier576p,
	"720p":  Tier720p,
	"1080p": Tier1080p,
	"2160p": Tier2160p,
}

// tierOrder lists the known quality markers from highest to lowest. Dedup
// normalization strips exactly this set.
var tierOrder = []string{"2160p", "1080p", "720p", "576p", "480p"}

// String returns the on-disk marker for the tier, or "" when unspecified.
func (t Tier) String() string {
	switch t {
	case Tier480p:
		return "480p"
	case Tier576p:
		return "576p"
	case Tier720p:
		return "720p"
	case Tier1080p:
		return "1080p"
	case Tier2160p:
		return "2160p"
	default:
		return ""
	}
}

// TierFromToken maps a single token to its quality tier, case-insensitively.
func TierFromToken(token string) (Tier, bool) {
	tier, ok := tierTokens[strings.ToLower(token)]
	return tier, ok
}
