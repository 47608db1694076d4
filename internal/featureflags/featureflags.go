// Package featureflags holds the registry of experimental aoc behaviors and
// resolves which ones are on for an invocation.
package featureflags

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Name is the canonical kebab-case identifier of a feature.
type Name string

const (
	// FeatureParallelRun solves selected days concurrently unless --parallel is set explicitly.
	FeatureParallelRun Name = "parallel-run"
)

const envPrefix = "AOC_FEATURE_"

// Definition describes a registered feature.
type Definition struct {
	Name        Name
	Description string
	Default     bool
}

// EnvVar returns the environment variable that turns d on.
func (d Definition) EnvVar() string {
	return envPrefix + strings.ReplaceAll(strings.ToUpper(string(d.Name)), "-", "_")
}

var registry = map[Name]Definition{
	FeatureParallelRun: {
		Name:        FeatureParallelRun,
		Description: "Fan puzzle days out across goroutines by default.",
	},
}

// ErrUnknownFeature is returned for names that are not registered.
var ErrUnknownFeature = errors.New("unknown feature flag")

// Definitions lists registered features by name.
func Definitions() []Definition {
	defs := make([]Definition, 0, len(registry))
	for _, def := range registry {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Flags is the resolved feature set for one invocation.
type Flags struct {
	on map[Name]bool
}

// Enabled reports whether name is on.
func (f Flags) Enabled(name Name) bool {
	return f.on[name]
}

// EnabledNames lists the features that are on, sorted.
func (f Flags) EnabledNames() []Name {
	var names []Name
	for name, on := range f.on {
		if on {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Resolve merges defaults with every source of names (flag values, env).
// Each value may hold several comma-separated names.
func Resolve(sources ...[]string) (Flags, error) {
	on := make(map[Name]bool, len(registry))
	for _, def := range registry {
		if def.Default {
			on[def.Name] = true
		}
	}
	for _, source := range sources {
		for _, value := range source {
			for _, token := range strings.Split(value, ",") {
				token = strings.TrimSpace(token)
				if token == "" {
					continue
				}
				name := Name(strings.ReplaceAll(strings.ToLower(token), "_", "-"))
				if _, ok := registry[name]; !ok {
					return Flags{}, fmt.Errorf("%w: %s", ErrUnknownFeature, token)
				}
				on[name] = true
			}
		}
	}
	return Flags{on: on}, nil
}

// EnabledFromEnv returns feature names switched on through AOC_FEATURE_*
// variables. A nil environ reads the process environment.
func EnabledFromEnv(environ []string) []string {
	if environ == nil {
		environ = os.Environ()
	}
	var names []string
	for _, entry := range environ {
		key, val, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) || !truthy(val) {
			continue
		}
		name := strings.TrimPrefix(key, envPrefix)
		names = append(names, strings.ToLower(strings.ReplaceAll(name, "_", "-")))
	}
	return names
}

type ctxKey struct{}

// ContextWithFlags stores flags on ctx.
func ContextWithFlags(ctx context.Context, flags Flags) context.Context {
	return context.WithValue(ctx, ctxKey{}, flags)
}

// FromContext returns the flags stored on ctx, or an empty set.
func FromContext(ctx context.Context) Flags {
	if ctx == nil {
		return Flags{}
	}
	flags, _ := ctx.Value(ctxKey{}).(Flags)
	return flags
}

func truthy(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	}
	return false
}
