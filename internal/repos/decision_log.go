package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/initium-os/axiom-backend/internal/logger"
	"github.com/initium-os/axiom-backend/internal/types"
)

type DecisionLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*types.DecisionLog) ([]*types.DecisionLog, error)
}

type decisionLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDecisionLogRepo(db *gorm.DB, baseLog *logger.Logger) DecisionLogRepo {
	repoLog := baseLog.With("repo", "DecisionLogRepo")
	return &decisionLogRepo{db: db, log: repoLog}
}

func (r *decisionLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.DecisionLog) ([]*types.DecisionLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(logs) == 0 {
		return []*types.DecisionLog{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
