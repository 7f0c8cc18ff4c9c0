package postgres

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingStore is the single persistent store for the booking aggregate:
// write side (domain entities) and read side (joined views) share the
// same table, so one store serves both sets of ports.
type BookingStore struct {
	pool *pgxpool.Pool
}

func NewBookingStore(pool *pgxpool.Pool) *BookingStore {
	return &BookingStore{pool: pool}
}

func (s *BookingStore) Create(ctx context.Context, b *booking.Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("bookings").
		Columns("id", "item_id", "booker_id", "start_date", "end_date", "status", "created_at").
		Values(b.ID(), b.ItemID(), b.BookerID(), b.Window().Start(), b.Window().End(), b.Status().String(), b.CreatedAt()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build create booking query", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (s *BookingStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.item_id", "i.owner_id", "b.booker_id",
		"b.start_date", "b.end_date", "b.status", "b.created_at",
	).
		From("bookings b").
		Join("items i ON b.item_id = i.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build find booking query", err)
	}

	row := s.pool.QueryRow(ctx, query, args...)

	var (
		bookingID, itemID, ownerID, bookerID uuid.UUID
		start, end, createdAt                time.Time
		status                               string
	)
	if err := row.Scan(&bookingID, &itemID, &ownerID, &bookerID, &start, &end, &status, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return booking.ReconstructBooking(bookingID, itemID, ownerID, bookerID, start, end, booking.Status(status), createdAt), nil
}

// UpdateStatusIfWaiting performs the atomic conditional transition: the
// UPDATE matches only while the stored status is still WAITING, so two
// concurrent decides cannot both win.
func (s *BookingStore) UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("bookings").
		Set("status", status.String()).
		Where(squirrel.Eq{"id": id, "status": booking.StatusWaiting.String()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build decide booking query", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Zero rows: either the booking vanished or a concurrent decide won.
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	return errs.ErrAlreadyDecided
}

func (s *BookingStore) FindLatestEndedApproved(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (*booking.Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.item_id", "i.owner_id", "b.booker_id",
		"b.start_date", "b.end_date", "b.status", "b.created_at",
	).
		From("bookings b").
		Join("items i ON b.item_id = i.id").
		Where(squirrel.Eq{
			"b.item_id":   itemID,
			"b.booker_id": bookerID,
			"b.status":    booking.StatusApproved.String(),
		}).
		Where(squirrel.Lt{"b.end_date": now}).
		OrderBy("b.end_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build ended approved booking query", err)
	}

	row := s.pool.QueryRow(ctx, query, args...)

	var (
		id, item, owner, booker uuid.UUID
		start, end, createdAt   time.Time
		status                  string
	)
	if err := row.Scan(&id, &item, &owner, &booker, &start, &end, &status, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no ended approved booking for item and booker", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ended approved booking", err)
	}

	return booking.ReconstructBooking(id, item, owner, booker, start, end, booking.Status(status), createdAt), nil
}

func (s *BookingStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := viewSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking view query", err)
	}

	view, err := scanBookingView(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view by ID", err)
	}
	return view, nil
}

// FindFiltered builds the single parameterized listing query: role picks the
// user column, bucket picks the temporal/status predicate. Sort order is
// always window start, descending.
func (s *BookingStore) FindFiltered(ctx context.Context, f booking.ListFilter) ([]*queries.BookingView, error) {
	q := viewSelect()

	switch f.Role {
	case booking.RoleOwner:
		q = q.Where(squirrel.Eq{"i.owner_id": f.UserID})
	default:
		q = q.Where(squirrel.Eq{"b.booker_id": f.UserID})
	}

	switch f.Bucket {
	case booking.BucketCurrent:
		q = q.Where(squirrel.LtOrEq{"b.start_date": f.Now}).
			Where(squirrel.GtOrEq{"b.end_date": f.Now})
	case booking.BucketPast:
		q = q.Where(squirrel.Lt{"b.end_date": f.Now})
	case booking.BucketFuture:
		q = q.Where(squirrel.Gt{"b.start_date": f.Now})
	case booking.BucketWaiting:
		q = q.Where(squirrel.Eq{"b.status": booking.StatusWaiting.String()})
	case booking.BucketRejected:
		q = q.Where(squirrel.Eq{"b.status": booking.StatusRejected.String()})
	case booking.BucketAll:
		// no temporal/status predicate
	}

	query, args, err := q.
		OrderBy("b.start_date DESC").
		Offset(uint64(f.Offset)).
		Limit(uint64(f.Limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build filtered bookings query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func (s *BookingStore) FindLastForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingSummaryView, error) {
	return s.findSummary(ctx, itemID,
		squirrel.LtOrEq{"start_date": now},
		"end_date DESC",
	)
}

func (s *BookingStore) FindNextForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingSummaryView, error) {
	return s.findSummary(ctx, itemID,
		squirrel.Gt{"start_date": now},
		"start_date ASC",
	)
}

func (s *BookingStore) findSummary(ctx context.Context, itemID uuid.UUID, timePred squirrel.Sqlizer, order string) (*queries.BookingSummaryView, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "booker_id", "start_date", "end_date").
		From("bookings").
		Where(squirrel.Eq{"item_id": itemID, "status": booking.StatusApproved.String()}).
		Where(timePred).
		OrderBy(order).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking summary query", err)
	}

	var view queries.BookingSummaryView
	row := s.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&view.ID, &view.BookerID, &view.Start, &view.End); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no booking is a valid result
		}
		return nil, infra.WrapRepoErr("failed to find booking summary", err)
	}
	return &view, nil
}

func viewSelect() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.start_date", "b.end_date", "b.status", "b.created_at",
		"u.id", "u.name",
		"i.id", "i.name", "i.owner_id",
	).
		From("bookings b").
		Join("items i ON b.item_id = i.id").
		Join("users u ON b.booker_id = u.id")
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	if err := row.Scan(
		&view.ID, &view.Start, &view.End, &view.Status, &view.CreatedAt,
		&view.Booker.ID, &view.Booker.Name,
		&view.Item.ID, &view.Item.Name, &view.ItemOwnerID,
	); err != nil {
		return nil, err
	}
	return &view, nil
}
