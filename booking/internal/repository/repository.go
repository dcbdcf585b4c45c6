package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Astemirdum/booking-service/booking/internal/errs"
	"github.com/Astemirdum/booking-service/booking/internal/model"
	"github.com/Astemirdum/booking-service/booking/internal/overlap"
	"github.com/Astemirdum/booking-service/pkg/auth"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Repository interface {
	GetCar(ctx context.Context, carUid string) (model.Car, error)

	CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error)
	GetBooking(ctx context.Context, bookingUid string) (model.Booking, error)
	GetBookingsByCustomer(ctx context.Context, customerUid string) ([]model.Booking, error)
	GetBookingsByPartner(ctx context.Context, partnerUid string) ([]model.Booking, error)
	GetBookingsByDriver(ctx context.Context, driverUid string) ([]model.Booking, error)
	GetBookingsByCar(ctx context.Context, carUid string) ([]model.Booking, error)
	// Transition applies fn to the booking under a row lock and persists the
	// result. If fn fails, nothing is written.
	Transition(ctx context.Context, bookingUid string, fn func(b *model.Booking) error) (model.Booking, error)

	DeviceToken(ctx context.Context, role auth.Role, uid string) (string, error)
	CreateNotification(ctx context.Context, n model.Notification) error
	GetNotifications(ctx context.Context, receiverUid string) ([]model.Notification, error)
	DeleteNotifications(ctx context.Context, receiverUid string) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	bookingTableName      = `booking`
	carTableName          = `cars`
	notificationTableName = `notifications`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookingColumns = []string{
	"id", "booking_uid", "car_uid", "customer_uid", "partner_uid", "driver_uid",
	"start_date", "end_date", "duration_units", "rental_unit", "total_amount",
	"status", "partner_approval", "driver_assignment", "payment_status",
	"created_at", "updated_at",
}

func (r *repository) GetCar(ctx context.Context, carUid string) (model.Car, error) {
	q, args, err := qb.Select("id", "car_uid", "partner_uid", "category", "rental_unit", "price_cents").
		From(carTableName).
		Where(sq.Eq{"car_uid": carUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Car{}, err
	}
	var car model.Car
	if err := r.db.GetContext(ctx, &car, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Car{}, errs.ErrNotFound
		}
		return model.Car{}, err
	}
	return car, nil
}

// CreateBooking linearizes the overlap check and the insert per conflict key.
// Both axis keys are locked with pg_advisory_xact_lock in a fixed order
// (car first, then customer), the active intervals are re-read under the
// locks, and only then is the row inserted. The partial exclusion
// constraints on the table remain as a backstop.
func (r *repository) CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	for _, key := range []string{"car:" + b.CarUid, "customer:" + b.CustomerUid} {
		if _, err := tx.ExecContext(ctx, `select pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
			return model.Booking{}, err
		}
	}

	newIv := overlap.Interval{Start: b.StartDate, End: b.EndDate}
	for axis, uid := range map[overlap.Axis]string{
		overlap.AxisCar:      b.CarUid,
		overlap.AxisCustomer: b.CustomerUid,
	} {
		intervals, err := r.activeIntervals(ctx, tx, axis, uid)
		if err != nil {
			return model.Booking{}, err
		}
		if overlap.AnyOverlap(intervals, newIv, "") {
			return model.Booking{}, errs.ErrConflict
		}
	}

	q, args, err := qb.Insert(bookingTableName).
		Columns("booking_uid", "car_uid", "customer_uid", "partner_uid", "driver_uid",
			"start_date", "end_date", "duration_units", "rental_unit", "total_amount",
			"status", "partner_approval", "driver_assignment", "payment_status").
		Values(uuid.New(), b.CarUid, b.CustomerUid, b.PartnerUid, b.DriverUid,
			b.StartDate, b.EndDate, b.DurationUnits, b.RentalUnit, b.TotalAmount,
			b.Status, b.Partner, b.Driver, b.Payment).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var res model.Booking
	if err := tx.GetContext(ctx, &res, q, args...); err != nil {
		r.log.Error("CreateBooking", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.Booking{}, mapPgError(err)
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, mapPgError(err)
	}
	return res, nil
}

// activeIntervals returns the intervals of CREATED/CONFIRMED bookings for
// one axis key, sorted by start date.
func (r *repository) activeIntervals(ctx context.Context, tx *sqlx.Tx, axis overlap.Axis, uid string) ([]overlap.Interval, error) {
	col := "car_uid"
	if axis == overlap.AxisCustomer {
		col = "customer_uid"
	}
	q, args, err := qb.Select("booking_uid", "start_date", "end_date").
		From(bookingTableName).
		Where(sq.Eq{col: uid}).
		Where(sq.Eq{"status": []model.Status{model.StatusCreated, model.StatusConfirmed}}).
		OrderBy("start_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := tx.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intervals []overlap.Interval
	for rows.Next() {
		var iv overlap.Interval
		if err := rows.Scan(&iv.BookingUid, &iv.Start, &iv.End); err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}

func (r *repository) GetBooking(ctx context.Context, bookingUid string) (model.Booking, error) {
	q, args, err := qb.Select(bookingColumns...).
		From(bookingTableName).
		Where(sq.Eq{"booking_uid": bookingUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	if err := r.db.GetContext(ctx, &b, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

func (r *repository) GetBookingsByCustomer(ctx context.Context, customerUid string) ([]model.Booking, error) {
	return r.listBookings(ctx, sq.Eq{"customer_uid": customerUid})
}

func (r *repository) GetBookingsByPartner(ctx context.Context, partnerUid string) ([]model.Booking, error) {
	return r.listBookings(ctx, sq.Eq{"partner_uid": partnerUid})
}

func (r *repository) GetBookingsByDriver(ctx context.Context, driverUid string) ([]model.Booking, error) {
	return r.listBookings(ctx, sq.Eq{"driver_uid": driverUid})
}

func (r *repository) GetBookingsByCar(ctx context.Context, carUid string) ([]model.Booking, error) {
	return r.listBookings(ctx, sq.Eq{"car_uid": carUid})
}

func (r *repository) listBookings(ctx context.Context, pred interface{}) ([]model.Booking, error) {
	q, args, err := qb.Select(bookingColumns...).
		From(bookingTableName).
		Where(pred).
		OrderBy("start_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Booking
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// Transition serializes concurrent axis updates on a single booking via a
// row lock, so fn never applies against a stale read.
func (r *repository) Transition(ctx context.Context, bookingUid string, fn func(b *model.Booking) error) (model.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := fmt.Sprintf(`select * from %s where booking_uid = $1 for update`, bookingTableName)
	var b model.Booking
	if err := tx.GetContext(ctx, &b, q, bookingUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}

	if err := fn(&b); err != nil {
		return model.Booking{}, err
	}

	uq, args, err := qb.Update(bookingTableName).
		Set("driver_uid", b.DriverUid).
		Set("status", b.Status).
		Set("partner_approval", b.Partner).
		Set("driver_assignment", b.Driver).
		Set("payment_status", b.Payment).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"booking_uid": bookingUid}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var res model.Booking
	if err := tx.GetContext(ctx, &res, uq, args...); err != nil {
		r.log.Error("Transition", zap.String("q", uq), zap.Any("args", args), zap.Error(err))
		return model.Booking{}, mapPgError(err)
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, mapPgError(err)
	}
	return res, nil
}

func (r *repository) DeviceToken(ctx context.Context, role auth.Role, uid string) (string, error) {
	table, ok := map[auth.Role]string{
		auth.RoleCustomer: "customers",
		auth.RolePartner:  "partners",
		auth.RoleDriver:   "drivers",
	}[role]
	if !ok {
		return "", errs.ErrNotFound
	}
	q := fmt.Sprintf(`select device_token from %s where uid = $1`, table)
	var token sql.NullString
	if err := r.db.QueryRowContext(ctx, q, uid).Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errs.ErrNotFound
		}
		return "", err
	}
	if !token.Valid || token.String == "" {
		return "", errs.ErrNotFound
	}
	return token.String, nil
}

func (r *repository) CreateNotification(ctx context.Context, n model.Notification) error {
	q, args, err := qb.Insert(notificationTableName).
		Columns("receiver_uid", "role", "title", "body", "booking_uid", "is_read").
		Values(n.ReceiverUid, n.Role, n.Title, n.Body, n.BookingUid, n.IsRead).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) GetNotifications(ctx context.Context, receiverUid string) ([]model.Notification, error) {
	q, args, err := qb.Select("id", "receiver_uid", "role", "title", "body", "booking_uid", "is_read", "created_at").
		From(notificationTableName).
		Where(sq.Eq{"receiver_uid": receiverUid}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Notification
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) DeleteNotifications(ctx context.Context, receiverUid string) error {
	q, args, err := qb.Delete(notificationTableName).
		Where(sq.Eq{"receiver_uid": receiverUid}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

// mapPgError converts a violation of the booking exclusion constraints
// (the database-level backstop for the overlap invariant) into ErrConflict.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
		return errs.ErrConflict
	}
	return err
}
