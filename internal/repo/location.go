// Package repo contains all database access logic for the spot map API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/leggiero/spotmap/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, pgx.Tx
// and pgxmock's pool. Accepting this interface instead of *pgxpool.Pool lets
// integration tests pass a transaction that is rolled back after each test and
// unit tests pass a mock that asserts on the SQL sent.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LocationRepo defines the persistence operations for Locations.
// The service layer depends on this interface, not the Postgres implementation.
type LocationRepo interface {
	// Create inserts a new location and returns the persisted row, including
	// the DB-generated id.
	Create(ctx context.Context, in domain.LocationInput) (domain.Location, error)

	// GetByID retrieves a single location by primary key.
	// Returns domain.ErrNotFound if no location with that id exists.
	GetByID(ctx context.Context, id int64) (domain.Location, error)

	// List returns every location ordered by id.
	List(ctx context.Context) ([]domain.Location, error)
}

// locationColumns is the column list shared by every SELECT and RETURNING
// clause; scanLocation depends on this order.
const locationColumns = `id, name, lat, lng, type, description,
	vehicle_accessibility, vehicle_accessibility_note,
	water_availability, water_availability_note`

var tableAttrs = trace.WithAttributes(
	attribute.String("db.system", "postgresql"),
	attribute.String("db.sql.table", "locations"),
)

// pgLocationRepo is the Postgres implementation of LocationRepo.
type pgLocationRepo struct {
	db     db
	logger *slog.Logger
	tracer trace.Tracer
}

// NewLocationRepo constructs a LocationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx or a pgxmock pool.
func NewLocationRepo(db db, logger *slog.Logger) LocationRepo {
	return &pgLocationRepo{
		db:     db,
		logger: logger.With(slog.String("repo", "locations")),
		tracer: otel.Tracer("github.com/leggiero/spotmap/internal/repo"),
	}
}

// Create inserts a location row and returns the full persisted record.
// Nil optional fields are written as NULL.
func (r *pgLocationRepo) Create(ctx context.Context, in domain.LocationInput) (domain.Location, error) {
	ctx, span := r.tracer.Start(ctx, "LocationRepo.Create", tableAttrs)
	defer span.End()

	q, args, err := squirrel.Insert("locations").
		Columns(
			"name", "lat", "lng", "description", "type",
			"water_availability", "water_availability_note",
			"vehicle_accessibility", "vehicle_accessibility_note",
		).
		Values(
			in.Name, in.Lat, in.Lng, in.Description, in.Type,
			in.WaterAvailability, in.WaterAvailabilityNote,
			in.VehicleAccessibility, in.VehicleAccessibilityNote,
		).
		Suffix("RETURNING " + locationColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.Create: build query: %w", err)
	}

	result, err := scanLocation(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.Create: %w", err)
	}

	span.SetAttributes(attribute.Int64("location.id", result.ID))
	r.logger.DebugContext(ctx, "location created", slog.Int64("id", result.ID))
	return result, nil
}

// GetByID retrieves a location by primary key.
func (r *pgLocationRepo) GetByID(ctx context.Context, id int64) (domain.Location, error) {
	ctx, span := r.tracer.Start(ctx, "LocationRepo.GetByID", tableAttrs,
		trace.WithAttributes(attribute.Int64("location.id", id)))
	defer span.End()

	const q = `SELECT ` + locationColumns + `
		FROM locations
		WHERE id = $1
		LIMIT 1`

	result, err := scanLocation(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "select failed")
		}
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all locations. There is no filtering or paging: the map shows
// every spot at once.
func (r *pgLocationRepo) List(ctx context.Context) ([]domain.Location, error) {
	ctx, span := r.tracer.Start(ctx, "LocationRepo.List", tableAttrs)
	defer span.End()

	const q = `SELECT ` + locationColumns + `
		FROM locations
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, fmt.Errorf("repo.LocationRepo.List: %w", err)
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.LocationRepo.List: scan: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("repo.LocationRepo.List: rows: %w", err)
	}

	r.logger.DebugContext(ctx, "locations listed", slog.Int("count", len(locations)))
	return locations, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanLocation to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanLocation maps a single database row into a domain.Location.
// Nullable text columns become nil pointers.
func scanLocation(s scanner) (domain.Location, error) {
	var (
		l                  domain.Location
		kind, description  pgtype.Text
		vehicle, vehicleNt pgtype.Text
		water, waterNt     pgtype.Text
	)

	err := s.Scan(&l.ID, &l.Name, &l.Lat, &l.Lng, &kind, &description,
		&vehicle, &vehicleNt, &water, &waterNt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Location{}, domain.ErrNotFound
		}
		return domain.Location{}, err
	}

	l.Type = textPtr(kind)
	l.Description = textPtr(description)
	l.VehicleAccessibility = textPtr(vehicle)
	l.VehicleAccessibilityNote = textPtr(vehicleNt)
	l.WaterAvailability = textPtr(water)
	l.WaterAvailabilityNote = textPtr(waterNt)
	return l, nil
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
