// Package backend turns a backend name plus positional arguments into a
// typed connection config and opens the matching storage adapter.
package backend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when a backend name is unknown or its
// arguments are missing.
var ErrInvalidConfig = errors.New("invalid backend config")

// Config selects one storage backend together with its connection settings.
// The set of implementations is closed.
type Config interface {
	// Name is the canonical backend name.
	Name() string
	Validate() error
	isConfig()
}

// PostgresConfig configures the relational adapter.
type PostgresConfig struct {
	DSN string
}

// CouchDBConfig configures the document adapter. Database is the prefix of
// the four per-kind databases.
type CouchDBConfig struct {
	URL      string
	Database string
}

// Neo4jConfig configures the multi-model adapter.
type Neo4jConfig struct {
	URI      string
	Username string
	Password string
}

// ClickHouseConfig configures the columnar adapter.
type ClickHouseConfig struct {
	DSN string
}

// MemoryConfig selects the in-process adapter.
type MemoryConfig struct{}

func (PostgresConfig) Name() string   { return "relational" }
func (CouchDBConfig) Name() string    { return "document" }
func (Neo4jConfig) Name() string      { return "multimodel" }
func (ClickHouseConfig) Name() string { return "columnar" }
func (MemoryConfig) Name() string     { return "memory" }

func (PostgresConfig) isConfig()   {}
func (CouchDBConfig) isConfig()    {}
func (Neo4jConfig) isConfig()      {}
func (ClickHouseConfig) isConfig() {}
func (MemoryConfig) isConfig()     {}

func (c PostgresConfig) Validate() error {
	return requireField(c.Name(), "connection string", c.DSN)
}

func (c CouchDBConfig) Validate() error {
	if err := requireField(c.Name(), "url", c.URL); err != nil {
		return err
	}
	return requireField(c.Name(), "database", c.Database)
}

// Validate requires an endpoint; empty credentials are allowed for servers
// running without auth.
func (c Neo4jConfig) Validate() error {
	return requireField(c.Name(), "uri", c.URI)
}

func (c ClickHouseConfig) Validate() error {
	return requireField(c.Name(), "dsn", c.DSN)
}

func (MemoryConfig) Validate() error { return nil }

func requireField(backend, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s requires a %s", ErrInvalidConfig, backend, field)
	}
	return nil
}
