package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"thorchainStore/internal/model"
)

func TestMatchDatabaseType(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		args    []string
		want    Config
		wantErr bool
	}{
		{name: "relational without args", backend: "relational", args: nil, wantErr: true},
		{name: "relational", backend: "relational", args: []string{"conn"}, want: PostgresConfig{DSN: "conn"}},
		{name: "postgres alias", backend: "Postgres", args: []string{"conn"}, want: PostgresConfig{DSN: "conn"}},
		{name: "document short", backend: "document", args: []string{"http://localhost:5984"}, wantErr: true},
		{name: "document", backend: "document", args: []string{"http://localhost:5984", "thor"},
			want: CouchDBConfig{URL: "http://localhost:5984", Database: "thor"}},
		{name: "couchdb alias", backend: "couchdb", args: []string{"u", "d"}, want: CouchDBConfig{URL: "u", Database: "d"}},
		{name: "multimodel short", backend: "multimodel", args: []string{"url", "user"}, wantErr: true},
		{name: "multimodel", backend: "multimodel", args: []string{"neo4j://h:7687", "neo4j", "pw"},
			want: Neo4jConfig{URI: "neo4j://h:7687", Username: "neo4j", Password: "pw"}},
		{name: "extra args ignored", backend: "neo4j", args: []string{"a", "b", "c", "d"},
			want: Neo4jConfig{URI: "a", Username: "b", Password: "c"}},
		{name: "columnar", backend: "clickhouse", args: []string{"clickhouse://h:9000/db"},
			want: ClickHouseConfig{DSN: "clickhouse://h:9000/db"}},
		{name: "columnar without args", backend: "columnar", wantErr: true},
		{name: "memory", backend: "memory", want: MemoryConfig{}},
		{name: "unknown", backend: "unknown", args: []string{"a", "b", "c"}, wantErr: true},
		{name: "empty name", backend: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchDatabaseType(tt.backend, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfig), "error %v should wrap ErrInvalidConfig", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchDatabaseTypeErrorNamesBackend(t *testing.T) {
	_, err := MatchDatabaseType("multimodel", []string{"url", "user"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multimodel")
	assert.Contains(t, err.Error(), "3")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"columnar", "document", "memory", "multimodel", "relational"}, Names())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, PostgresConfig{DSN: "postgres://x"}.Validate())
	assert.ErrorIs(t, PostgresConfig{}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, CouchDBConfig{URL: "http://x"}.Validate(), ErrInvalidConfig)
	assert.NoError(t, Neo4jConfig{URI: "neo4j://x"}.Validate())
	assert.ErrorIs(t, ClickHouseConfig{DSN: "  "}.Validate(), ErrInvalidConfig)
	assert.NoError(t, MemoryConfig{}.Validate())
}

func TestOpenMemory(t *testing.T) {
	ctx := context.Background()
	cfg, err := MatchDatabaseType("memory", nil)
	require.NoError(t, err)

	s, err := Open(ctx, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer s.Close(ctx)

	assert.Equal(t, "memory", s.Backend())
	_, err = s.StoreRunePoolInterval(ctx, model.RunePoolInterval{EndTime: 1, StartTime: 0})
	require.NoError(t, err)
	got, _, err := s.ReadRunePoolIntervals(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	_, err := Open(context.Background(), PostgresConfig{}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Open(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestOpenReportsConnectionFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Open(ctx, PostgresConfig{DSN: "postgres://nobody@127.0.0.1:1/none?connect_timeout=1"}, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}
