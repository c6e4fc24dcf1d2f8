package titleinfo_test

import (
	"testing"

	"reelsort/internal/titleinfo"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		title   string
		quality titleinfo.Tier
		year    string
		ok      bool
	}{
		{"scene release", "Inception.2010.1080p.BluRay.x264", "Inception", titleinfo.Tier1080p, "2010", true},
		{"canonical form", "Inception (1080p)", "Inception", titleinfo.Tier1080p, "", true},
		{"plain name", "B", "B", titleinfo.TierUnspecified, "", true},
		{"dashes", "the-matrix-720p", "The Matrix", titleinfo.Tier720p, "", true},
		{"no quality", "Some Movie", "Some Movie", titleinfo.TierUnspecified, "", true},
		{"year without quality", "Heat 1995", "Heat", titleinfo.TierUnspecified, "1995", true},
		{"year as title", "2012", "2012", titleinfo.TierUnspecified, "", true},
		{"release tags stripped", "Alien_1979_2160p_REMUX_HDR", "Alien", titleinfo.Tier2160p, "1979", true},
		{"empty", "", "", titleinfo.TierUnspecified, "", false},
		{"separators only", "._-", "", titleinfo.TierUnspecified, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info, ok := titleinfo.Parse(tc.in)
			if ok != tc.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if !ok {
				return
			}
			if info.Title != tc.title {
				t.Errorf("title = %q, want %q", info.Title, tc.title)
			}
			if info.Quality != tc.quality {
				t.Errorf("quality = %v, want %v", info.Quality, tc.quality)
			}
			if info.Year != tc.year {
				t.Errorf("year = %q, want %q", info.Year, tc.year)
			}
		})
	}
}

func TestTierOrderingIsStrict(t *testing.T) {
	order := []titleinfo.Tier{
		titleinfo.TierUnspecified,
		titleinfo.Tier480p,
		titleinfo.Tier576p,
		titleinfo.Tier720p,
		titleinfo.Tier1080p,
		titleinfo.Tier2160p,
	}
	for i := 1; i < len(order); i++ {
		if order[i] <= order[i-1] {
			t.Fatalf("tier %v should rank above %v", order[i], order[i-1])
		}
	}
}

func TestTierFromToken(t *testing.T) {
	if tier, ok := titleinfo.TierFromToken("1080P"); !ok || tier != titleinfo.Tier1080p {
		t.Fatalf("TierFromToken(1080P) = %v, %v", tier, ok)
	}
	if _, ok := titleinfo.TierFromToken("4k"); ok {
		t.Fatal("4k is not a recognized marker")
	}
}

func TestNormalizeForDedup(t *testing.T) {
	a := titleinfo.NormalizeForDedup("Inception 1080p")
	b := titleinfo.NormalizeForDedup("Inception.720p")
	if a != b {
		t.Fatalf("normalized keys differ: %q vs %q", a, b)
	}
	if a != "inception" {
		t.Fatalf("normalized key = %q, want %q", a, "inception")
	}
	if got := titleinfo.NormalizeForDedup("A (2160p)"); got != "a" {
		t.Fatalf("NormalizeForDedup(A (2160p)) = %q", got)
	}
}
