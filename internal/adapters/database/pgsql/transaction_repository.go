package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
	portsrepo "github.com/dpk-exchange/exchange_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository implements the transaction ledger over pgxpool.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new PgxTransactionRepository.
func newPgxTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

const transactionColumns = `id, date, to_char(time_of_day, 'HH24:MI:SS'), from_currency, to_currency, amount_in, amount_out, rate, operation, customer_name`

// SaveTransaction inserts a new ledger row. The store's clock assigns date
// and time of day exactly once; the generated id, date and time are written
// back into txn.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn *domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // rollback after commit is a no-op

	query := `
		INSERT INTO transactions (
			from_currency, to_currency, amount_in, amount_out, rate, operation, customer_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, date, to_char(time_of_day, 'HH24:MI:SS')
	`
	err = tx.QueryRow(ctx, query,
		txn.FromCurrency, txn.ToCurrency, txn.AmountIn, txn.AmountOut, txn.Rate, txn.Operation, txn.CustomerName,
	).Scan(&txn.ID, &txn.Date, &txn.TimeOfDay)
	if err != nil {
		return fmt.Errorf("error inserting transaction: %w", err)
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction overwrites the revisable fields of a row. Creation date,
// time and currency pair stay untouched; updating a missing id affects zero
// rows and is not an error.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, id int64, update portsrepo.TransactionUpdate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
		UPDATE transactions
		SET amount_in = $1, rate = $2, amount_out = $3, customer_name = $4
		WHERE id = $5
	`
	if _, err := tx.Exec(ctx, query, update.AmountIn, update.Rate, update.AmountOut, update.CustomerName, id); err != nil {
		return fmt.Errorf("error updating transaction %d: %w", id, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes one row; a missing id deletes zero rows.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting transaction %d: %w", id, err)
	}
	return nil
}

// DeleteTransactions removes the given rows in one statement.
func (r *PgxTransactionRepository) DeleteTransactions(ctx context.Context, ids []int64) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("error deleting %d transactions: %w", len(ids), err)
	}
	return nil
}

// DeleteAllTransactions empties the ledger.
func (r *PgxTransactionRepository) DeleteAllTransactions(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("error deleting all transactions: %w", err)
	}
	return nil
}

// FindTransactions lists transactions most-recent-first by id, bounded by the
// period's calendar-day window and an optional exact pair match, capped at
// domain.HistoryLimit rows.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, period domain.Period, pair *domain.PairFilter) ([]domain.Transaction, error) {
	var (
		conds []string
		args  []any
	)

	if lowerBound, bounded := period.LowerBound(time.Now()); bounded {
		args = append(args, lowerBound)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if pair != nil {
		args = append(args, pair.From)
		conds = append(conds, fmt.Sprintf("from_currency = $%d", len(args)))
		args = append(args, pair.To)
		conds = append(conds, fmt.Sprintf("to_currency = $%d", len(args)))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT %d", domain.HistoryLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying transaction history: %w", err)
	}
	defer rows.Close()

	result := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(
			&txn.ID, &txn.Date, &txn.TimeOfDay, &txn.FromCurrency, &txn.ToCurrency,
			&txn.AmountIn, &txn.AmountOut, &txn.Rate, &txn.Operation, &txn.CustomerName,
		); err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		result = append(result, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return result, nil
}

// GetDailyStats aggregates today's per-currency volumes and the people count.
// Guests (blank customer name) count individually; named customers count once
// per distinct name regardless of how many times they visited.
func (r *PgxTransactionRepository) GetDailyStats(ctx context.Context) (*domain.DailyStats, error) {
	stats := domain.NewDailyStats()

	inQuery := `
		SELECT from_currency, SUM(amount_in)
		FROM transactions
		WHERE date = CURRENT_DATE
		GROUP BY from_currency
	`
	rows, err := r.Pool.Query(ctx, inQuery)
	if err != nil {
		return nil, fmt.Errorf("error querying inbound sums: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var code domain.CurrencyCode
		var flow domain.CurrencyFlow
		if err := rows.Scan(&code, &flow.In); err != nil {
			return nil, fmt.Errorf("error scanning inbound sum: %w", err)
		}
		if current, ok := stats.Totals[code]; ok {
			current.In = flow.In
			stats.Totals[code] = current
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inbound sums: %w", err)
	}

	outQuery := `
		SELECT to_currency, SUM(amount_out)
		FROM transactions
		WHERE date = CURRENT_DATE
		GROUP BY to_currency
	`
	rows, err = r.Pool.Query(ctx, outQuery)
	if err != nil {
		return nil, fmt.Errorf("error querying outbound sums: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var code domain.CurrencyCode
		var flow domain.CurrencyFlow
		if err := rows.Scan(&code, &flow.Out); err != nil {
			return nil, fmt.Errorf("error scanning outbound sum: %w", err)
		}
		if current, ok := stats.Totals[code]; ok {
			current.Out = flow.Out
			stats.Totals[code] = current
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outbound sums: %w", err)
	}

	peopleQuery := `
		SELECT
			COUNT(*) FILTER (WHERE customer_name = ''),
			COUNT(DISTINCT customer_name) FILTER (WHERE customer_name <> '')
		FROM transactions
		WHERE date = CURRENT_DATE
	`
	var guests, named int
	if err := r.Pool.QueryRow(ctx, peopleQuery).Scan(&guests, &named); err != nil {
		return nil, fmt.Errorf("error counting people: %w", err)
	}
	stats.PeopleCount = guests + named

	return stats, nil
}
