package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// BatchQuery represents a query in a batch.
type BatchQuery struct {
	SQL  string
	Args []any
}

// ExecBatch sends queries in one round-trip inside the current transaction.
func (m *TxManager) ExecBatch(ctx context.Context, queries []BatchQuery) error {
	tx := m.GetTx(ctx)
	if tx == nil {
		return fmt.Errorf("ExecBatch requires transaction context")
	}

	batch := &pgx.Batch{}
	for _, q := range queries {
		batch.Queue(q.SQL, q.Args...)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := range queries {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch query %d failed: %w", i, err)
		}
	}
	return nil
}

// CopyRows bulk-inserts rows with the COPY protocol inside the current transaction.
func (m *TxManager) CopyRows(ctx context.Context, table pgx.Identifier, columns []string, rows [][]any) (int64, error) {
	tx := m.GetTx(ctx)
	if tx == nil {
		return 0, fmt.Errorf("CopyRows requires transaction context")
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return tx.CopyFrom(ctx, table, columns, pgx.CopyFromRows(rows))
}
