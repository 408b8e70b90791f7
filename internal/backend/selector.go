package backend

import (
	"fmt"
	"sort"
	"strings"
)

type entry struct {
	minArgs int
	build   func(args []string) Config
}

var backends = map[string]entry{
	"relational": {1, func(a []string) Config { return PostgresConfig{DSN: a[0]} }},
	"document":   {2, func(a []string) Config { return CouchDBConfig{URL: a[0], Database: a[1]} }},
	"multimodel": {3, func(a []string) Config { return Neo4jConfig{URI: a[0], Username: a[1], Password: a[2]} }},
	"columnar":   {1, func(a []string) Config { return ClickHouseConfig{DSN: a[0]} }},
	"memory":     {0, func([]string) Config { return MemoryConfig{} }},
}

var aliases = map[string]string{
	"postgres":   "relational",
	"postgresql": "relational",
	"couchdb":    "document",
	"neo4j":      "multimodel",
	"clickhouse": "columnar",
}

// Names lists the canonical backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MatchDatabaseType maps a backend name and its positional arguments to a
// typed Config. Names are case-insensitive and accept engine aliases.
// Arguments beyond the backend's minimum are ignored. It performs no I/O.
func MatchDatabaseType(name string, args []string) (Config, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	b, ok := backends[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown database type %q (want one of %s)",
			ErrInvalidConfig, name, strings.Join(Names(), ", "))
	}
	if len(args) < b.minArgs {
		return nil, fmt.Errorf("%w: %s requires %d argument(s), got %d",
			ErrInvalidConfig, key, b.minArgs, len(args))
	}
	return b.build(args), nil
}
