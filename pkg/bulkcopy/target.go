package bulkcopy

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Target is the bulk-loading collaborator: anything that can run the
// PostgreSQL COPY protocol over a row cursor. The target owns all
// network I/O, batching, and server-side error reporting; errors it
// returns pass through the generated convenience functions unchanged.
type Target interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

var (
	_ Target = (*pgx.Conn)(nil)
	_ Target = (pgx.Tx)(nil)
	_ Target = (*pgxpool.Pool)(nil)
)
