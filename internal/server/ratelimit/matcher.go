package ratelimit

import (
	"strings"
)

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found.
// Path matching supports prefix matching (e.g., "/api/" matches "/api/cards/project").
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited
	if path == "/health" && (method == "GET" || method == "HEAD") {
		return &EndpointConfig{Path: path, Method: method}
	}

	// Try exact match first
	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	// Longest prefix wins for paths ending with "/"
	var best *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method || !strings.HasSuffix(config.Path, "/") {
			continue
		}
		if strings.HasPrefix(path, config.Path) && (best == nil || len(config.Path) > len(best.Path)) {
			best = config
		}
	}
	return best
}

// key identifies the bucket an endpoint config governs.
func (c *EndpointConfig) key(path string) string {
	if c.Path != "" {
		return c.Path
	}
	return path
}
