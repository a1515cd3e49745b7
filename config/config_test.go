package config

import (
	"testing"
	"time"
)

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in      string
		seconds int
	}{
		{"-07:00", -7 * 3600},
		{"+05:30", 5*3600 + 30*60},
		{"-0800", -8 * 3600},
		{"-7", -7 * 3600},
		{"3", 3 * 3600},
		{"UTC", 0},
		{"", 0},
	}

	ref := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			loc, err := ParseOffset(tt.in)
			if err != nil {
				t.Fatalf("ParseOffset(%q): %v", tt.in, err)
			}
			if _, got := ref.In(loc).Zone(); got != tt.seconds {
				t.Errorf("offset = %d, want %d", got, tt.seconds)
			}
		})
	}
}

func TestParseOffsetInvalid(t *testing.T) {
	for _, in := range []string{"abc", "+25:00", "-07:75", "PST"} {
		if _, err := ParseOffset(in); err == nil {
			t.Errorf("ParseOffset(%q) should fail", in)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REFERENCE_OFFSET", "")
	t.Setenv("INCLUSION_THRESHOLD", "")
	t.Setenv("MAX_RESULTS", "")

	cfg := Load()
	if cfg.ReferenceOffset != "-07:00" {
		t.Errorf("ReferenceOffset = %q", cfg.ReferenceOffset)
	}
	if cfg.InclusionThreshold != 1.0 {
		t.Errorf("InclusionThreshold = %v", cfg.InclusionThreshold)
	}
	if cfg.MaxResults != 1000 {
		t.Errorf("MaxResults = %d", cfg.MaxResults)
	}
	if cfg.TokenFile != "credentials.json" {
		t.Errorf("TokenFile = %q", cfg.TokenFile)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INCLUSION_THRESHOLD", "2.5")
	t.Setenv("FETCH_CONCURRENCY", "8")
	t.Setenv("FETCH_TIMEOUT", "5s")

	cfg := Load()
	if cfg.InclusionThreshold != 2.5 {
		t.Errorf("InclusionThreshold = %v", cfg.InclusionThreshold)
	}
	if cfg.FetchConcurrency != 8 {
		t.Errorf("FetchConcurrency = %d", cfg.FetchConcurrency)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout = %v", cfg.FetchTimeout)
	}
}
