package econf

import (
	"math"
	"testing"
)

func mustParse(t *testing.T, conf string) *Configuration {
	t.Helper()
	c, err := Parse(conf)
	if err != nil {
		t.Fatalf("parse %q: %v", conf, err)
	}
	return c
}

func TestParseFullConfiguration(t *testing.T) {
	c := mustParse(t, "1s2 2s2 2p4")
	if got := c.Electrons(); got != 8 {
		t.Fatalf("expected 8 electrons, got %d", got)
	}
	if got := c.MaxN(); got != 2 {
		t.Fatalf("expected max n 2, got %d", got)
	}
	if got := c.Occupancy(2, "p"); got != 4 {
		t.Fatalf("expected 2p occupancy 4, got %d", got)
	}
	if got := c.Occupancy(3, "s"); got != 0 {
		t.Fatalf("expected empty 3s, got %d", got)
	}
}

func TestParseNobleCoreShorthand(t *testing.T) {
	c := mustParse(t, "[Ar] 3d6 4s2")
	if got := c.Electrons(); got != 26 {
		t.Fatalf("expected 26 electrons, got %d", got)
	}
	if got := c.MaxN(); got != 4 {
		t.Fatalf("expected max n 4, got %d", got)
	}
	if got := c.Occupancy(3, "d"); got != 6 {
		t.Fatalf("expected 3d occupancy 6, got %d", got)
	}
	if got := len(c.Subshells()); got != 7 {
		t.Fatalf("expected 7 subshells, got %d", got)
	}
}

func TestParseSingleElectronToken(t *testing.T) {
	c := mustParse(t, "1s")
	if got := c.Occupancy(1, "s"); got != 1 {
		t.Fatalf("expected occupancy 1, got %d", got)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"x2",
		"s2",
		"1q2",
		"2d3",
		"1s99",
		"1s2 1s2",
		"[Zz] 2s2",
		"[He 2s2",
		"[He]",
		"1s0",
	}
	for _, conf := range cases {
		if _, err := Parse(conf); err == nil {
			t.Errorf("expected parse error for %q", conf)
		}
	}
}

func TestMaxL(t *testing.T) {
	c := mustParse(t, "[He] 2s2 2p4")
	o, ok := c.MaxL(2)
	if !ok || o != "p" {
		t.Fatalf("expected p, got %q ok=%v", o, ok)
	}
	if _, ok := c.MaxL(5); ok {
		t.Fatalf("expected empty shell 5")
	}
}

func TestValence(t *testing.T) {
	oxygen := mustParse(t, "[He] 2s2 2p4")
	if got, err := oxygen.Valence("p", 2, ""); err != nil || got != 6 {
		t.Fatalf("oxygen valence = %d, %v", got, err)
	}
	iron := mustParse(t, "[Ar] 3d6 4s2")
	if got, err := iron.Valence("d", 4, ""); err != nil || got != 8 {
		t.Fatalf("iron valence = %d, %v", got, err)
	}
	if got, err := iron.Valence("d", 4, "simple"); err != nil || got != 2 {
		t.Fatalf("iron simple valence = %d, %v", got, err)
	}
	cerium := mustParse(t, "[Xe] 4f 5d 6s2")
	if got, err := cerium.Valence("f", 6, ""); err != nil || got != 2 {
		t.Fatalf("f-block valence = %d, %v", got, err)
	}
	if _, err := oxygen.Valence("q", 2, ""); err == nil {
		t.Fatalf("expected error for unknown block")
	}
}

func TestSlaterScreening(t *testing.T) {
	cases := []struct {
		conf    string
		n       int
		orbital string
		extra   bool
		want    float64
	}{
		{"1s", 1, "s", false, 0.0},
		{"1s2", 1, "s", false, 0.30},
		{"[He] 2s2 2p2", 2, "p", false, 2.75},
		{"[He] 2s2 2p2", 2, "p", true, 3.10},
		{"[Ne] 3s", 3, "s", false, 8.80},
		{"[Ar] 3d6 4s2", 3, "d", false, 19.75},
		{"[Ar] 3d6 4s2", 4, "s", false, 22.25},
	}
	for _, tc := range cases {
		c := mustParse(t, tc.conf)
		got, err := c.SlaterScreening(tc.n, tc.orbital, tc.extra)
		if err != nil {
			t.Fatalf("%s (%d%s): %v", tc.conf, tc.n, tc.orbital, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s (%d%s extra=%v): got %v, want %v", tc.conf, tc.n, tc.orbital, tc.extra, got, tc.want)
		}
	}
}

func TestSlaterScreeningRejectsBadArguments(t *testing.T) {
	c := mustParse(t, "1s2")
	if _, err := c.SlaterScreening(0, "s", false); err == nil {
		t.Fatalf("expected error for non-positive n")
	}
	if _, err := c.SlaterScreening(1, "z", false); err == nil {
		t.Fatalf("expected error for unknown orbital")
	}
}
