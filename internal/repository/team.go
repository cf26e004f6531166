package repository

import (
	"context"

	"fantasy-league-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams and their rosters
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team together with its roster rows
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team with its roster by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).Preload("Players").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with their rosters
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).Preload("Players").Order("name").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// GetByManagerName retrieves a team with its roster by manager name
func (r *TeamRepository) GetByManagerName(ctx context.Context, managerName string) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).Preload("Players").First(&team, "manager_name = ?", managerName).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Update persists the whole aggregate in one transaction. The roster rows are
// rewritten from the in-memory state so removals are reflected too; Save alone
// would leave orphaned membership rows behind.
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":         team.Name,
			"manager_name": team.ManagerName,
			"budget":       team.Budget,
			"total_points": team.TotalPoints,
		}
		if err := tx.Model(&models.Team{}).Where("id = ?", team.ID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("team_id = ?", team.ID).Delete(&models.TeamPlayer{}).Error; err != nil {
			return err
		}
		if len(team.Players) > 0 {
			for i := range team.Players {
				team.Players[i].ID = 0
				team.Players[i].TeamID = team.ID
			}
			if err := tx.Create(&team.Players).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a team; roster rows go with it via the FK cascade
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&models.TeamPlayer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, "id = ?", id).Error
	})
}
