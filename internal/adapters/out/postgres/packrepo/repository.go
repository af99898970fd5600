package packrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/pack"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new package to the database and assigns the generated
// identifier back onto the aggregate.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *pack.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateError("package", err)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing package to the database. Lines removed from the
// aggregate are deleted first so the stored line set mirrors the aggregate
// exactly; remaining lines are upserted with the head.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *pack.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	keptLineNos := make([]int, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		keptLineNos = append(keptLineNos, line.LineNo)
	}

	q := r.db.WithContext(ctx).Where("package_no = ?", dto.ID)
	if len(keptLineNos) > 0 {
		q = q.Where("line_no NOT IN ?", keptLineNos)
	}
	if err := q.Delete(&LineDTO{}).Error; err != nil {
		return translateError("package", err)
	}

	result := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&dto)
	if result.Error != nil {
		return translateError("package", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a package by ID with its lines ordered by line number.
func (r *GormPackageRepository) Get(ctx context.Context, id uint64) (*pack.Package, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto PackageDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no")
		}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a package head together with its lines.
func (r *GormPackageRepository) Delete(ctx context.Context, id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}

	if err := r.db.WithContext(ctx).Delete(&LineDTO{}, "package_no = ?", id).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PackageDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("package", id)
	}

	return nil
}

// MarkShipped stamps the given packages with the shipment number and the
// shipped status in one statement. Per-package status validation is skipped
// on purpose: shipping the parent seals every linked package.
func (r *GormPackageRepository) MarkShipped(ctx context.Context, packageIDs []uint64, number string) error {
	if len(packageIDs) == 0 {
		return nil
	}
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}

	return r.db.WithContext(ctx).
		Model(&PackageDTO{}).
		Where("id IN ?", packageIDs).
		Updates(map[string]any{
			"status":          pack.Shipped.String(),
			"shipment_number": number,
		}).Error
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
