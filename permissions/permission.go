package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionFile []byte

type routePermission struct {
	Method    string   `json:"method"`
	Path      string   `json:"path"`
	Positions []string `json:"positions"`
}

type permissionSet struct {
	Routes []routePermission `json:"routes"`
}

var routes []routePermission

func init() {
	var set permissionSet

	if err := json.Unmarshal(permissionFile, &set); err != nil {
		log.Fatal().Err(err).Msg("failed to parse permissions file")
	}

	routes = set.Routes
}

// IsAllowed reports whether the position may call the route. Routes without
// an entry are open to any authenticated staff.
func IsAllowed(method, pattern, position string) bool {
	for _, route := range routes {
		if route.Method != method || route.Path != pattern {
			continue
		}

		return slices.Contains(route.Positions, position)
	}

	return true
}
