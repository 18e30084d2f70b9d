// internal/repository/snapshot.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/leolimasa/leolang/internal/domain"
	"github.com/leolimasa/leolang/internal/model"
	"gorm.io/gorm"
)

type SnapshotRepositoryIface interface {
	Create(ctx context.Context, snapshot *model.Snapshot) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Snapshot, error)
	FindByNameAndDigest(ctx context.Context, name, digest string) (*model.Snapshot, error)
	FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Snapshot, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Create inserts the snapshot. A snapshot with the same name and digest
// already stored yields domain.ErrSnapshotExists.
func (r *SnapshotRepository) Create(ctx context.Context, snapshot *model.Snapshot) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := tx.Create(snapshot).Error; err != nil {
		rollback(tx, err)
		if isUniqueViolation(err) {
			return domain.ErrSnapshotExists
		}
		return fmt.Errorf("failed to create snapshot: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Snapshot, error) {
	var snapshot model.Snapshot
	result := r.db.WithContext(ctx).First(&snapshot, "id = ?", id)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to find snapshot: %w", result.Error)
	}
	return &snapshot, nil
}

func (r *SnapshotRepository) FindByNameAndDigest(ctx context.Context, name, digest string) (*model.Snapshot, error) {
	var snapshot model.Snapshot
	result := r.db.WithContext(ctx).
		Where("name = ? AND digest = ?", name, digest).
		First(&snapshot)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to find snapshot: %w", result.Error)
	}
	return &snapshot, nil
}

// FindAllPaginated returns a page of snapshots, newest first, with the total count
func (r *SnapshotRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Snapshot, int64, error) {
	var snapshots []*model.Snapshot
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Snapshot{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count snapshots: %w", err)
	}

	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&snapshots)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find snapshots: %w", result.Error)
	}

	return snapshots, total, nil
}

func (r *SnapshotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Snapshot{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete snapshot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSnapshotNotFound
	}
	return nil
}
