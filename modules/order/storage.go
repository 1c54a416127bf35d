package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// insertOrderSQL is fully parameterized. This, not the pipeline's SQL
// filter, is the injection defense at the persistence boundary.
const insertOrderSQL = `
INSERT INTO orders (
	id, last_name, first_name, email, phone,
	payment_method, account_name, account_number,
	application_id, application_fee
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// PGStorage persists sanitized orders in PostgreSQL.
type PGStorage struct {
	pool *pgxpool.Pool
}

// NewPGStorage creates a Storage backed by the given pool.
func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{pool: pool}
}

// InsertOrder stores one sanitized order. The SanitizedOrderRecord
// parameter type means unvalidated data cannot arrive here.
func (s *PGStorage) InsertOrder(ctx context.Context, id uuid.UUID, rec SanitizedOrderRecord) error {
	_, err := s.pool.Exec(ctx, insertOrderSQL,
		id, rec.LastName, rec.FirstName, rec.Email, rec.Phone,
		rec.PaymentMethod, rec.AccountName, rec.AccountNumber,
		rec.ApplicationID, rec.ApplicationFee,
	)
	if err != nil {
		return errors.Join(ErrFailedToStoreOrder, err)
	}
	return nil
}
