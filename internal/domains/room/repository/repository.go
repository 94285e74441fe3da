package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/room/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindAvailable(ctx context.Context, roomType string, checkIn, checkOut time.Time) ([]model.Room, error)
	RoomTypes(ctx context.Context) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindAvailable lists rooms of the given type that are free for the whole
// stay. Stays are half open intervals, so a room whose booking ends on the
// requested check-in day is free again that day.
func (r *repositoryImpl) FindAvailable(ctx context.Context, roomType string, checkIn, checkOut time.Time) (results []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "findAvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := `
		SELECT *
		FROM rooms
		WHERE room_type = :room_type
		  AND availability = TRUE
		  AND id NOT IN (
			SELECT room_id
			FROM bookings
			WHERE in_date < :check_out
			  AND out_date > :check_in
		  )
		ORDER BY id ASC
	`

	stmt, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("[FindAvailable] failed to prepare statement")
		return nil, fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	args := map[string]any{
		"room_type": roomType,
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	if err := stmt.SelectContext(ctx, &results, args); err != nil {
		log.Error().Err(err).Msg("[FindAvailable] failed to query available rooms")
		return nil, fmt.Errorf("querying available rooms: %w", err)
	}

	return results, nil
}

func (r *repositoryImpl) RoomTypes(ctx context.Context) (results []string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "getRoomTypes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := `SELECT DISTINCT room_type FROM rooms ORDER BY room_type ASC`

	if err := r.db.Read.SelectContext(ctx, &results, query); err != nil {
		log.Error().Err(err).Msg("[RoomTypes] failed to query room types")
		return nil, fmt.Errorf("querying room types: %w", err)
	}

	return results, nil
}
