package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"campusbook/infras/otel"
	"campusbook/infras/postgres"
	"campusbook/internal/domains/booking/model"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
	"campusbook/shared/logger"
	gRepo "campusbook/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	SubmitIfAvailable(ctx context.Context, booking model.Booking, capacity int) error
	UpdateStatusIf(ctx context.Context, id, expectedStatus string, fields map[string]any) (bool, error)
	GetDemandHistory(ctx context.Context) ([]model.DemandRecord, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SubmitIfAvailable runs the admission check and the insert in one
// transaction. A per-resource advisory lock serializes concurrent submits
// against the same resource so two requests cannot both pass the capacity
// check and jointly over-allocate.
func (repo *repositoryImpl) SubmitIfAvailable(ctx context.Context, booking model.Booking, capacity int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SubmitIfAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", booking.ResourceID)
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock resource for admission: %w", err)
		}

		// Half-open interval overlap: [s, e) and [start, end) overlap
		// iff NOT (end <= s OR start >= e).
		query := `SELECT COALESCE(SUM(GREATEST(quantity, 1)), 0)
			FROM ` + model.TableName + `
			WHERE resource_id = $1
			AND status IN ($2, $3)
			AND NOT (end_time <= $4 OR start_time >= $5)`

		var allocated int

		err = tx.GetContext(ctx, &allocated, query,
			booking.ResourceID,
			model.StatusRequest,
			model.StatusOngoing,
			booking.StartTime,
			booking.EndTime,
		)
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to sum overlapping bookings: %w", err)
		}

		if allocated+booking.EffectiveQuantity() > capacity {
			return failure.Conflict(fmt.Sprintf(
				"resource capacity exceeded: %d of %d units already allocated in the requested window",
				allocated, capacity,
			)) //nolint:wrapcheck
		}

		return repo.InsertTx(ctx, tx, booking) //nolint:wrapcheck
	})
}

// UpdateStatusIf applies fields to the booking only when its status still
// equals expectedStatus (compare-and-swap). Returns false when no row
// matched, either because the booking does not exist or because its status
// changed concurrently.
func (repo *repositoryImpl) UpdateStatusIf(ctx context.Context, id, expectedStatus string, fields map[string]any) (updated bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatusIf")
	defer scope.End()
	defer scope.TraceIfError(err)

	setClauses := []string{}
	for col := range maps.Keys(fields) {
		setClauses = append(setClauses, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = :cas_id AND %s = :cas_expected_status",
		model.TableName,
		strings.Join(setClauses, ", "),
		model.FieldID,
		model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"cas_id":              id,
		"cas_expected_status": expectedStatus,
	}
	maps.Copy(args, fields)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// GetDemandHistory returns the start time, quantity, and status of every
// non-canceled booking for the forecaster.
func (repo *repositoryImpl) GetDemandHistory(ctx context.Context) (records []model.DemandRecord, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetDemandHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT start_time, quantity, status
		FROM ` + model.TableName + `
		WHERE status != $1
		ORDER BY start_time`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &records, query, model.StatusCancel)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get demand history: %w", err)
	}

	return records, nil
}
