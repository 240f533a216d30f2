package settings

import "testing"

func TestOverlayPartialFile(t *testing.T) {
	got := overlay(defaultSettings, []byte("default_page_size: 25\n"))

	if got.DefaultPageSize != 25 {
		t.Errorf("default_page_size: got %d, want 25", got.DefaultPageSize)
	}
	// Keys the file does not carry keep their defaults.
	if got.EnableQueryCache != defaultSettings.EnableQueryCache {
		t.Errorf("enable_query_cache changed: %v", got.EnableQueryCache)
	}
	if got.CacheSizeLimitMB != defaultSettings.CacheSizeLimitMB {
		t.Errorf("cache_size_limit_mb changed: %d", got.CacheSizeLimitMB)
	}
}

func TestOverlayIgnoresBadValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"wrong type", "default_page_size: lots\n"},
		{"non-positive", "default_page_size: 0\n"},
		{"malformed yaml", ": : :\n"},
	}
	for _, tc := range cases {
		got := overlay(defaultSettings, []byte(tc.yaml))
		if got != defaultSettings {
			t.Errorf("%s: settings changed to %+v", tc.name, got)
		}
	}
}

func TestOverlayDisablesCache(t *testing.T) {
	got := overlay(defaultSettings, []byte("enable_query_cache: false\n"))
	if got.EnableQueryCache {
		t.Error("enable_query_cache override not applied")
	}
}
