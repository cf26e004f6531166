package service

import (
	"context"
	"errors"
	"fmt"

	"fantasy-league-backend/internal/database/models"
	apperrors "fantasy-league-backend/internal/errors"
	"fantasy-league-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService orchestrates roster changes over the Team aggregate. Every
// mutation loads the aggregate, applies the entity-level rules, and persists
// the whole aggregate before returning; there is no partial-success state.
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		playerRepo: playerRepo,
		validator:  validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	ManagerName string `json:"manager_name" validate:"required,min=1,max=100"`
}

// AddPlayerRequest represents the request to add a player to a roster
type AddPlayerRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
}

// UpdateTeamPointsRequest represents a delta applied to a team's total points
type UpdateTeamPointsRequest struct {
	Points int `json:"points"`
}

// TeamResponse represents the response for team operations. Players holds the
// resolved roster; ids that no longer resolve are dropped, not errors.
type TeamResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	ManagerName string           `json:"manager_name"`
	Budget      float64          `json:"budget"`
	TotalPoints int              `json:"total_points"`
	Players     []PlayerResponse `json:"players"`
}

// Create creates a new team with the initial budget
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := models.NewTeam(req.Name, req.ManagerName)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(ctx, team)
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponse(ctx, team)
}

// GetAll retrieves all teams with their resolved rosters
func (s *TeamService) GetAll(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		resp, err := s.toResponse(ctx, &teams[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// GetByManagerName retrieves a team by its manager's name
func (s *TeamService) GetByManagerName(ctx context.Context, managerName string) (*TeamResponse, error) {
	team, err := s.repo.GetByManagerName(ctx, managerName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponse(ctx, team)
}

// AddPlayer adds a player to the team's roster. An absent team and an absent
// player are distinct failures: ErrTeamNotFound vs ErrPlayerNotFound, so the
// boundary can map them to different responses.
func (s *TeamService) AddPlayer(ctx context.Context, teamID, playerID uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if err := team.AddPlayer(player); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(ctx, team)
}

// RemovePlayer removes a player from the roster, refunding the player's
// current price (not the price paid when they were added).
func (s *TeamService) RemovePlayer(ctx context.Context, teamID, playerID uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if err := team.RemovePlayer(playerID, player.Price); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(ctx, team)
}

// UpdatePoints adds a delta to the team's total points
func (s *TeamService) UpdatePoints(ctx context.Context, id uuid.UUID, req *UpdateTeamPointsRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	team.UpdatePoints(req.Points)

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(ctx, team)
}

// Delete removes a team and its roster rows
func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func (s *TeamService) toResponse(ctx context.Context, team *models.Team) (*TeamResponse, error) {
	players := make([]PlayerResponse, 0, len(team.Players))
	for _, tp := range team.Players {
		player, err := s.playerRepo.GetByID(ctx, tp.PlayerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// stale roster reference, drop it from the view
				continue
			}
			return nil, fmt.Errorf("failed to resolve roster player: %w", err)
		}
		players = append(players, PlayerResponse{
			ID:          player.ID,
			Name:        player.Name,
			Position:    player.Position,
			Club:        player.Club,
			Price:       player.Price,
			Points:      player.Points,
			GoalsScored: player.GoalsScored,
			Assists:     player.Assists,
			CleanSheets: player.CleanSheets,
		})
	}

	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		ManagerName: team.ManagerName,
		Budget:      team.Budget,
		TotalPoints: team.TotalPoints,
		Players:     players,
	}, nil
}
