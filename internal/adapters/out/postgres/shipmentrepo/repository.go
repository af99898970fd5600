package shipmentrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database and assigns the generated
// identifier back onto the aggregate.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateError("shipment", err)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database. Lines removed from the
// aggregate are deleted first so the stored line set mirrors the aggregate
// exactly; remaining lines are upserted with the head.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	keptLineNos := make([]int, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		keptLineNos = append(keptLineNos, line.LineNo)
	}

	q := r.db.WithContext(ctx).Where("shipment_no = ?", dto.ID)
	if len(keptLineNos) > 0 {
		q = q.Where("line_no NOT IN ?", keptLineNos)
	}
	if err := q.Delete(&LineDTO{}).Error; err != nil {
		return translateError("shipment", err)
	}

	result := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&dto)
	if result.Error != nil {
		return translateError("shipment", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID with its lines ordered by line number.
func (r *GormShipmentRepository) Get(ctx context.Context, id uint64) (*shipment.Shipment, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no")
		}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPackageID retrieves the shipment a package is linked to.
// Returns (nil, nil) when the package is not linked to any shipment.
func (r *GormShipmentRepository) GetByPackageID(ctx context.Context, packageID uint64) (*shipment.Shipment, error) {
	if packageID == 0 {
		return nil, errs.NewValueIsRequiredError("packageID")
	}

	var line LineDTO
	err := r.db.WithContext(ctx).First(&line, "package_no = ?", packageID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.Get(ctx, line.ShipmentNo)
}

// translateError maps storage constraint failures onto the error taxonomy.
// Requires TranslateError enabled on the GORM connection.
func translateError(paramName string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return errs.NewConstraintViolationErrorWithCause(paramName, err)
	}
	return err
}
