package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Settings are the user-tunable knobs, as read from configuration.
type Settings struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       []string
	Blacklist       []string
}

// NewConfig builds a limiter Config from settings, filling zero values with defaults
// and attaching the default endpoint tiers.
func NewConfig(s Settings) *Config {
	if !s.Enabled {
		return &Config{Enabled: false}
	}
	if s.DefaultLimit <= 0 {
		s.DefaultLimit = 1000
	}
	if s.DefaultWindow <= 0 {
		s.DefaultWindow = time.Minute
	}
	if s.CleanupInterval <= 0 {
		s.CleanupInterval = 5 * time.Minute
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    s.DefaultLimit,
		DefaultWindow:   s.DefaultWindow,
		CleanupInterval: s.CleanupInterval,
		Whitelist:       ipSet(s.Whitelist),
		Blacklist:       ipSet(s.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: Authentication (strictest limits)
		{Path: "/api/login", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},
		{Path: "/api/register", Method: "POST", Limit: 5, Window: time.Minute, Burst: 3},

		// Tier 2: Generation endpoints
		{Path: "/api/brand-names", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/logo-generate", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/brand-identity", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/content-generate", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/sentiment-analyze", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/chat", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		// Tier 3: Write operations (moderate limits)
		{Path: "/api/projects", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/projects/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/projects/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/brand-kit", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/brand-kit/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/admin/users/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/admin/users/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},

		// Tier 4: Read operations (more lenient) - handled by default limit
		// Tier 5: Health check (unlimited) - handled by special case in matcher
	}
}

// ipSet turns a list of client identifiers into a lookup set.
func ipSet(list []string) map[string]bool {
	result := make(map[string]bool, len(list))
	for _, ip := range list {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
