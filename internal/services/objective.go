package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/initium-os/axiom-backend/internal/logger"
	"github.com/initium-os/axiom-backend/internal/repos"
	"github.com/initium-os/axiom-backend/internal/requestdata"
	"github.com/initium-os/axiom-backend/internal/types"
)

// Callers needing more than this must filter client-side; there is no
// pagination on the objectives surface.
const maxListObjectives = 100

type ObjectiveService interface {
	Create(ctx context.Context, input *types.ObjectiveInput) (*types.Objective, error)
	List(ctx context.Context, activeOnly bool) ([]*types.Objective, error)
	Get(ctx context.Context, objectiveID uuid.UUID) (*types.Objective, error)
	Update(ctx context.Context, objectiveID uuid.UUID, input *types.ObjectiveInput) (*types.Objective, error)
	Delete(ctx context.Context, objectiveID uuid.UUID) error
}

type objectiveService struct {
	db            *gorm.DB
	log           *logger.Logger
	objectiveRepo repos.ObjectiveRepo
}

var validHorizons = map[string]struct{}{
	"short":  {},
	"medium": {},
	"long":   {},
}

var validObjectiveTypes = map[string]struct{}{
	"growth":       {},
	"survival":     {},
	"optimization": {},
	"discipline":   {},
}

func NewObjectiveService(db *gorm.DB, log *logger.Logger, objectiveRepo repos.ObjectiveRepo) ObjectiveService {
	serviceLog := log.With("service", "ObjectiveService")
	return &objectiveService{
		db:            db,
		log:           serviceLog,
		objectiveRepo: objectiveRepo,
	}
}

func validateObjectiveInput(input *types.ObjectiveInput) error {
	if input == nil {
		return fmt.Errorf("%w: body required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if input.Importance < 1 || input.Importance > 10 {
		return fmt.Errorf("%w: importance must be between 1 and 10", ErrInvalidInput)
	}
	if _, ok := validHorizons[input.Horizon]; !ok {
		return fmt.Errorf("%w: horizon must be one of short, medium, long", ErrInvalidInput)
	}
	if _, ok := validObjectiveTypes[input.Type]; !ok {
		return fmt.Errorf("%w: type must be one of growth, survival, optimization, discipline", ErrInvalidInput)
	}
	return nil
}

func (os *objectiveService) Create(ctx context.Context, input *types.ObjectiveInput) (*types.Objective, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if err := validateObjectiveInput(input); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	objective := &types.Objective{
		ID:          uuid.New(),
		UserID:      rd.UserID,
		Name:        input.Name,
		Description: input.Description,
		Importance:  input.Importance,
		Horizon:     input.Horizon,
		Type:        input.Type,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := os.objectiveRepo.Create(ctx, nil, []*types.Objective{objective})
	if err != nil {
		os.log.Warn("Failed to create objective", "error", err)
		return nil, fmt.Errorf("failed to create objective: %w", err)
	}
	return created[0], nil
}

func (os *objectiveService) List(ctx context.Context, activeOnly bool) ([]*types.Objective, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	objectives, err := os.objectiveRepo.ListByUser(ctx, nil, rd.UserID, activeOnly, maxListObjectives)
	if err != nil {
		os.log.Warn("Failed to list objectives", "error", err)
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}
	return objectives, nil
}

func (os *objectiveService) Get(ctx context.Context, objectiveID uuid.UUID) (*types.Objective, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	objective, err := os.objectiveRepo.GetByID(ctx, nil, rd.UserID, objectiveID)
	if err != nil {
		os.log.Warn("Failed to fetch objective", "error", err)
		return nil, fmt.Errorf("failed to fetch objective: %w", err)
	}
	if objective == nil {
		return nil, ErrNotFound
	}
	return objective, nil
}

func (os *objectiveService) Update(ctx context.Context, objectiveID uuid.UUID, input *types.ObjectiveInput) (*types.Objective, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if err := validateObjectiveInput(input); err != nil {
		return nil, err
	}
	var updated *types.Objective
	err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		changed, uErr := os.objectiveRepo.UpdateFields(ctx, tx, rd.UserID, objectiveID, map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
			"importance":  input.Importance,
			"horizon":     input.Horizon,
			"type":        input.Type,
		})
		if uErr != nil {
			return fmt.Errorf("failed to update objective: %w", uErr)
		}
		if !changed {
			return ErrNotFound
		}
		objective, gErr := os.objectiveRepo.GetByID(ctx, tx, rd.UserID, objectiveID)
		if gErr != nil {
			return fmt.Errorf("failed to reload objective: %w", gErr)
		}
		if objective == nil {
			return ErrNotFound
		}
		updated = objective
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (os *objectiveService) Delete(ctx context.Context, objectiveID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return ErrUnauthenticated
	}
	deleted, err := os.objectiveRepo.SoftDelete(ctx, nil, rd.UserID, objectiveID)
	if err != nil {
		os.log.Warn("Failed to delete objective", "error", err)
		return fmt.Errorf("failed to delete objective: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
