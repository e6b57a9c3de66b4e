package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	httpctrl "github.com/lensworks/crewdesk/pkg/controller/http"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// Routes holds the optional TOML file overriding the prefix→role table
type Routes struct {
	path string
}

// Flags returns CLI flags for route table configuration
func (r *Routes) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "routes-config",
			Usage:       "TOML file overriding the built-in role-route table",
			Sources:     cli.EnvVars("CREWDESK_ROUTES_CONFIG"),
			Destination: &r.path,
		},
	}
}

type routesFile struct {
	Routes []routeEntry `toml:"route"`
}

type routeEntry struct {
	Prefix string `toml:"prefix"`
	Role   string `toml:"role"`
}

// Configure loads the role-route table. Without a file the built-in table
// applies.
func (r *Routes) Configure() ([]httpctrl.RoleRoute, error) {
	if r.path == "" {
		return httpctrl.DefaultRoleRoutes(), nil
	}

	// #nosec G304 - path comes from the CLI flag
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read routes config", goerr.V("path", r.path))
	}

	var file routesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse routes config", goerr.V("path", r.path))
	}
	if len(file.Routes) == 0 {
		return nil, goerr.New("routes config contains no route entries", goerr.V("path", r.path))
	}

	routes := make([]httpctrl.RoleRoute, len(file.Routes))
	for i, entry := range file.Routes {
		role, err := types.ParseRole(entry.Role)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid role in routes config",
				goerr.V("path", r.path), goerr.V("prefix", entry.Prefix))
		}
		if entry.Prefix == "" {
			return nil, goerr.New("route prefix must not be empty", goerr.V("path", r.path))
		}
		routes[i] = httpctrl.RoleRoute{Prefix: entry.Prefix, Role: role}
	}

	return routes, nil
}
