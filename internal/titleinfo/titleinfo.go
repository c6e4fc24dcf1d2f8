// Package titleinfo extracts a best-effort {title, quality, year} guess from
// a raw media folder name. Extraction is a heuristic: callers must treat "no
// usable title" as a normal, silent outcome, never as an error, and must not
// assume the guess is authoritative.
package titleinfo

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"reelsort/internal/textutil"
)

// Info is the structured guess extracted from a folder name.
type Info struct {
	Title   string
	Quality Tier
	Year    string
}

// separatorReplacer normalizes the separators release names use (dots,
// underscores, dashes, brackets) to plain spaces before tokenizing.
var separatorReplacer = strings.NewReplacer(
	".", " ",
	"_", " ",
	"-", " ",
	"(", " ",
	")", " ",
	"[", " ",
	"]", " ",
	"{", " ",
	"}", " ",
)

// releaseTags are tokens that mark the end of the title portion of a release
// name. Anything from the first tag onward is source/codec noise.
var releaseTags = map[string]struct{}{
	"bluray": {}, "brrip": {}, "bdrip": {}, "dvdrip": {}, "webrip": {},
	"web": {}, "webdl": {}, "hdtv": {}, "hdrip": {}, "remux": {},
	"x264": {}, "x265": {}, "h264": {}, "h265": {}, "hevc": {}, "avc": {},
	"aac": {}, "ac3": {}, "dts": {}, "atmos": {},
	"hdr": {}, "uhd": {}, "10bit": {}, "8bit": {},
	"proper": {}, "repack": {}, "extended": {}, "unrated": {},
	"internal": {}, "limited": {}, "multi": {}, "subbed": {},
	"amzn": {}, "nf": {}, "yify": {}, "rarbg": {},
}

// Parse extracts title, quality tier, and year from a folder name. The
// second return value is false when no usable title could be found.
func Parse(name string) (Info, bool) {
	normalized := textutil.CollapseWhitespace(separatorReplacer.Replace(name))
	if normalized == "" {
		return Info{}, false
	}

	caser := cases.Title(language.English)
	var (
		info       Info
		titleParts []string
		cutoff     bool
	)
	for _, token := range strings.Fields(normalized) {
		if tier, ok := TierFromToken(token); ok {
			if info.Quality == TierUnspecified {
				info.Quality = tier
			}
			cutoff = true
			continue
		}
		if isYearToken(token) && len(titleParts) > 0 {
			if info.Year == "" {
				info.Year = token
			}
			cutoff = true
			continue
		}
		if _, ok := releaseTags[strings.ToLower(token)]; ok {
			cutoff = true
			continue
		}
		if cutoff {
			continue
		}
		if token == strings.ToLower(token) {
			token = caser.String(token)
		}
		titleParts = append(titleParts, token)
	}

	if len(titleParts) == 0 {
		return Info{}, false
	}
	info.Title = strings.Join(titleParts, " ")
	return info, true
}

// NormalizeForDedup produces the key two folder names are compared on during
// deduplication: lower-cased, known quality markers removed, separators and
// whitespace collapsed.
func NormalizeForDedup(name string) string {
	lowered := strings.ToLower(name)
	for _, marker := range tierOrder {
		lowered = strings.ReplaceAll(lowered, marker, "")
	}
	return textutil.CollapseWhitespace(separatorReplacer.Replace(lowered))
}

func isYearToken(token string) bool {
	if len(token) != 4 {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return token >= "1900" && token <= "2099"
}
