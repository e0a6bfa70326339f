package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL bootstraps the single ledger table. Idempotent; full migration
// tooling is deliberately out of scope. The identity column guarantees ids
// are assigned once and never reused after deletion.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS transactions (
	id            BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	date          DATE NOT NULL DEFAULT CURRENT_DATE,
	time_of_day   TIME(0) NOT NULL DEFAULT LOCALTIME(0),
	from_currency TEXT NOT NULL,
	to_currency   TEXT NOT NULL,
	amount_in     NUMERIC NOT NULL CHECK (amount_in > 0),
	amount_out    NUMERIC NOT NULL CHECK (amount_out >= 0),
	rate          NUMERIC NOT NULL CHECK (rate > 0),
	operation     TEXT NOT NULL,
	customer_name TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date);
`

// EnsureSchema creates the ledger table if it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to ensure ledger schema: %w", err)
	}
	return nil
}
