package missionrepo

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/mission"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormMissionRepository struct {
	db *gorm.DB
}

func NewGormMissionRepository(db *gorm.DB) *GormMissionRepository {
	return &GormMissionRepository{db: db}
}

func (r *GormMissionRepository) Add(ctx context.Context, aggregate *mission.Mission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectNotFoundErrorWithCause("order", aggregate.OrderID().String(), err)
		}
		return err
	}

	return nil
}

// Update stores the status and destination of aggregate. A completion time
// already stored is kept.
func (r *GormMissionRepository) Update(ctx context.Context, aggregate *mission.Mission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MissionDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":                  dto.Status,
			"completed_at":            gorm.Expr("COALESCE(completed_at, ?)", dto.CompletedAt),
			"destination_latitude":    dto.Destination.Latitude,
			"destination_longitude":   dto.Destination.Longitude,
			"destination_observed_at": dto.Destination.ObservedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("mission", aggregate.ID().String())
	}

	return nil
}

// UpdateDestination writes only the destination columns, and only while the
// stored mission is still open. Otherwise a ConflictError is returned.
func (r *GormMissionRepository) UpdateDestination(ctx context.Context, aggregate *mission.Mission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.Destination() == nil {
		return errs.NewValueIsRequiredError("destination")
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MissionDTO{}).
		Where("id = ? AND completed_at IS NULL", dto.ID).
		Updates(map[string]any{
			"destination_latitude":    dto.Destination.Latitude,
			"destination_longitude":   dto.Destination.Longitude,
			"destination_observed_at": dto.Destination.ObservedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("mission", "is completed or deleted")
	}

	return nil
}

func (r *GormMissionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MissionDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("mission", id.String())
	}

	return nil
}

func (r *GormMissionRepository) Get(ctx context.Context, id kernel.UUID) (*mission.Mission, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormMissionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*mission.Mission, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormMissionRepository) get(db *gorm.DB, id kernel.UUID) (*mission.Mission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MissionDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mission", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormMissionRepository) GetAllTrackable(ctx context.Context) ([]ports.TrackedMission, error) {
	db := r.db.WithContext(ctx)

	var rows []struct {
		ID             uuid.UUID
		VesselCallsign string
	}
	if err := db.
		Table("drone_missions AS m").
		Select("m.id AS id, u.vessel_callsign AS vessel_callsign").
		Joins("JOIN orders o ON o.id = m.order_id").
		Joins("JOIN users u ON u.id = o.customer_id").
		Where("m.completed_at IS NULL").
		Where("u.vessel_callsign IS NOT NULL AND u.vessel_callsign <> ''").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	callsigns := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
		callsigns[row.ID] = row.VesselCallsign
	}

	var dtos []MissionDTO
	if err := db.Where("id IN ?", ids).Order("created_at").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tracked := make([]ports.TrackedMission, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tracked = append(tracked, ports.TrackedMission{Mission: m, VesselCallsign: callsigns[dto.ID]})
	}

	return tracked, nil
}
