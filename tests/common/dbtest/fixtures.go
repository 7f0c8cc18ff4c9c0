//go:build unit || integration

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	now := time.Now()

	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, created_at, updated_at) VALUES ($1, $2, $3, $4, $4) ON CONFLICT (email) DO NOTHING",
		userID, name, email, now)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestItem(t *testing.T, db DBLike, ownerID uuid.UUID, name, description string, available bool) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	now := time.Now()

	_, err := db.Exec(context.Background(),
		"INSERT INTO items (id, name, description, available, owner_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $6)",
		itemID, name, description, available, ownerID, now)
	require.NoError(t, err)

	return itemID
}

func CreateTestBooking(t *testing.T, db DBLike, itemID, bookerID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()

	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (id, item_id, booker_id, start_date, end_date, status, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		bookingID, itemID, bookerID, start, end, status, time.Now())
	require.NoError(t, err)

	return bookingID
}

// truncates all application tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE comments, bookings, items, users RESTART IDENTITY CASCADE")
	return err
}
