package core

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"lifegrid/internal/config"
)

// Driver owns the loop that presents a world and feeds it commands.
type Driver interface {
	Name() string
	Run(ctx context.Context) error
}

// Factory constructs a Driver from the runtime configuration.
type Factory func(cfg *config.Config, log *zap.Logger) (Driver, error)

var drivers = map[string]Factory{}

// Register adds a driver factory under the provided mode name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	drivers[name] = f
}

// Drivers exposes the registry of available driver factories.
func Drivers() map[string]Factory {
	return drivers
}

// DriverNames returns the registered mode names in sorted order.
func DriverNames() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
