package settings

// Settings holds the tunables that can be overridden by the user's
// settings file. Everything has a working default; a missing or corrupt
// file silently falls back to defaults.
type Settings struct {
	EnableQueryCache bool `yaml:"enable_query_cache" json:"enable_query_cache"`
	// Cache size limit in MB for the query result cache
	CacheSizeLimitMB int `yaml:"cache_size_limit_mb" json:"cache_size_limit_mb"`
	// Default page size for consignee listings when the caller does not set one
	DefaultPageSize int `yaml:"default_page_size" json:"default_page_size"`
	// Minimum query length before name autocomplete returns results
	AutocompleteMinChars int `yaml:"autocomplete_min_chars" json:"autocomplete_min_chars"`
	// Maximum number of autocomplete results
	AutocompleteLimit int `yaml:"autocomplete_limit" json:"autocomplete_limit"`
}

// defaultSettings defines the built-in defaults.
var defaultSettings = Settings{
	EnableQueryCache:     true,
	CacheSizeLimitMB:     100,
	DefaultPageSize:      50,
	AutocompleteMinChars: 2,
	AutocompleteLimit:    50,
}

// Defaults returns a copy of the built-in defaults.
func Defaults() Settings {
	return defaultSettings
}
