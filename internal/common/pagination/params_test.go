package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestParseQueryParams(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		url     string
		want    Params
		wantErr bool
	}{
		{"defaults when absent", "/reviews", Params{Page: 1, Limit: 10}, false},
		{"explicit page", "/reviews?page=3", Params{Page: 3, Limit: 10}, false},
		{"explicit limit", "/reviews?limit=25", Params{Page: 1, Limit: 25}, false},
		{"page past the end is accepted here", "/reviews?page=999", Params{Page: 999, Limit: 10}, false},
		{"non-numeric page", "/reviews?page=abc", Params{}, true},
		{"zero page", "/reviews?page=0", Params{}, true},
		{"limit above max", "/reviews?limit=999", Params{}, true},
		{"negative limit", "/reviews?limit=-1", Params{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			got, err := ParseQueryParams(r, cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error for %q", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQueryParams err=%v", err)
			}
			if got != tt.want {
				t.Errorf("ParseQueryParams = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadFromEnv_fallsBackOnGarbage(t *testing.T) {
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "not-a-number")
	t.Setenv("PAGINATION_MAX_LIMIT", "30")

	cfg := LoadFromEnv()
	if cfg.DefaultLimit != 10 {
		t.Errorf("DefaultLimit = %d, want fallback 10", cfg.DefaultLimit)
	}
	if cfg.MaxLimit != 30 {
		t.Errorf("MaxLimit = %d, want 30", cfg.MaxLimit)
	}
}
