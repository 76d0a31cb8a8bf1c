package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"venue id", "/venues/123", "/venues/:id"},
		{"another venue id", "/venues/456", "/venues/:id"},
		{"review id", "/reviews/9", "/reviews/:id"},
		{"event id", "/events/3", "/events/:id"},
		{"static health", "/health", "/health"},
		{"static metrics", "/metrics", "/metrics"},
		{"stats endpoint", "/reviews/stats", "/reviews/stats"},
		{"search endpoint", "/events/search", "/events/search"},
		{"query params stripped", "/venues/123?page=2", "/venues/:id"},
		{"trailing slash stripped", "/reviews/45/", "/reviews/:id"},
		{"root", "/", "/"},
		{"unknown passes through", "/unknown/path/123", "/unknown/path/123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
