package ratelimit

import (
	"strings"
)

// unlimited lists method+path pairs that are never throttled.
var unlimited = map[string]bool{
	"GET /health": true,
}

// MatchEndpoint returns the configuration for a request, or nil when the
// default limit applies. Exact paths win over prefixes ending in "/", and
// among prefixes the longest wins.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimited[method+" "+path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method || !strings.HasSuffix(c.Path, "/") || !strings.HasPrefix(path, c.Path) {
			continue
		}
		if best == nil || len(c.Path) > len(best.Path) {
			best = c
		}
	}
	return best
}
