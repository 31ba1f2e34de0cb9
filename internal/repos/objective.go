package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/initium-os/axiom-backend/internal/logger"
	"github.com/initium-os/axiom-backend/internal/types"
)

// ObjectiveRepo is the only way objective rows are touched. Every query
// carries the owning user id so per-user isolation holds at the store
// boundary rather than per handler.
type ObjectiveRepo interface {
	Create(ctx context.Context, tx *gorm.DB, objectives []*types.Objective) ([]*types.Objective, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, activeOnly bool, limit int) ([]*types.Objective, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, objectiveID uuid.UUID) (*types.Objective, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, userID, objectiveID uuid.UUID, fields map[string]interface{}) (bool, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, userID, objectiveID uuid.UUID) (bool, error)
}

type objectiveRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewObjectiveRepo(db *gorm.DB, baseLog *logger.Logger) ObjectiveRepo {
	repoLog := baseLog.With("repo", "ObjectiveRepo")
	return &objectiveRepo{db: db, log: repoLog}
}

func (r *objectiveRepo) Create(ctx context.Context, tx *gorm.DB, objectives []*types.Objective) ([]*types.Objective, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(objectives) == 0 {
		return []*types.Objective{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&objectives).Error; err != nil {
		return nil, err
	}
	return objectives, nil
}

func (r *objectiveRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, activeOnly bool, limit int) ([]*types.Objective, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	query := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	var results []*types.Objective
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *objectiveRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, objectiveID uuid.UUID) (*types.Objective, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Objective
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", objectiveID, userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *objectiveRepo) UpdateFields(ctx context.Context, tx *gorm.DB, userID, objectiveID uuid.UUID, fields map[string]interface{}) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	fields["updated_at"] = time.Now().UTC()
	result := transaction.WithContext(ctx).
		Model(&types.Objective{}).
		Where("id = ? AND user_id = ?", objectiveID, userID).
		Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *objectiveRepo) SoftDelete(ctx context.Context, tx *gorm.DB, userID, objectiveID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	// is_active = true in the predicate: re-deleting an inactive objective
	// must report zero rows modified, matching the non-idempotent contract.
	result := transaction.WithContext(ctx).
		Model(&types.Objective{}).
		Where("id = ? AND user_id = ? AND is_active = ?", objectiveID, userID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
