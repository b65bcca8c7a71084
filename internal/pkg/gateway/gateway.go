package gateway

import (
	"context"

	"github.com/greenmarket/agridash/internal/domain"
)

// Config identifies the schema queries run against and who runs them.
type Config struct {
	Schema   string
	Identity string
}

// Gateway executes read-only SQL against the warehouse and returns rows.
// Query templates use '?' placeholders; each backend binds args its own
// way. Implementations are not assumed safe for concurrent sessions
// unless the underlying client guarantees it.
type Gateway interface {
	Query(ctx context.Context, sql string, args ...interface{}) (*domain.ResultTable, error)
	Config() Config
}
