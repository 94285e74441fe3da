package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/model"
	guestModel "hotelier/internal/domains/guest/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

// ErrRoomUnavailable is returned when the requested room already has a
// booking overlapping the requested stay.
var ErrRoomUnavailable = errors.New("room is already booked for the requested dates")

type Booking interface {
	CreateReservation(ctx context.Context, guest *guestModel.Guest, booking model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetWithGuest(ctx context.Context, filter gDto.FilterGroup) (model.BookingWithGuest, error)
	GetAllWithGuest(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingWithGuest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateAffecting(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	withGuest gRepo.Repository[model.BookingWithGuest]
	guests    gRepo.Repository[guestModel.Guest]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		withGuest:  gRepo.NewRepository[model.BookingWithGuest](model.EntityName, model.TableName, model.FieldID, db, otel),
		guests:     gRepo.NewRepository[guestModel.Guest](guestModel.EntityName, guestModel.TableName, guestModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateReservation persists the booking, and the guest when one is supplied,
// inside a single transaction. The room is re-checked for overlapping stays
// just before the insert so a reservation committed in between still fails
// with ErrRoomUnavailable instead of double booking the room.
func (r *repositoryImpl) CreateReservation(ctx context.Context, guest *guestModel.Guest, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "createReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if guest != nil {
			if err := r.guests.InsertTx(ctx, tx, *guest); err != nil {
				return err
			}
		}

		taken, err := r.existOverlapping(ctx, tx, booking.RoomID, booking.InDate, booking.OutDate)
		if err != nil {
			return err
		}

		if taken {
			return ErrRoomUnavailable
		}

		return r.Repository.InsertTx(ctx, tx, booking)
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
			return ErrRoomUnavailable
		}

		return err
	}

	return nil
}

func (r *repositoryImpl) existOverlapping(ctx context.Context, tx *sqlx.Tx, roomID string, inDate, outDate time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE room_id = :room_id
			  AND in_date < :out_date
			  AND out_date > :in_date
		)
	`

	stmt, err := tx.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("[CreateReservation] failed to prepare overlap check")
		return false, fmt.Errorf("preparing overlap check: %w", err)
	}
	defer stmt.Close()

	args := map[string]any{
		"room_id":  roomID,
		"in_date":  inDate,
		"out_date": outDate,
	}

	var taken bool
	if err := stmt.GetContext(ctx, &taken, args); err != nil {
		log.Error().Err(err).Msg("[CreateReservation] failed to check overlapping bookings")
		return false, fmt.Errorf("checking overlapping bookings: %w", err)
	}

	return taken, nil
}

func (r *repositoryImpl) GetWithGuest(ctx context.Context, filter gDto.FilterGroup) (model.BookingWithGuest, error) {
	return r.withGuest.Get(ctx, filter)
}

func (r *repositoryImpl) GetAllWithGuest(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingWithGuest, error) {
	return r.withGuest.GetAll(ctx, params, filter)
}
