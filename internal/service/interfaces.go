package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	Create(ctx context.Context, req *CreatePlayerRequest) (*PlayerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PlayerResponse, error)
	GetAll(ctx context.Context) ([]PlayerResponse, error)
	GetByPosition(ctx context.Context, position string) ([]PlayerResponse, error)
	UpdateStats(ctx context.Context, id uuid.UUID, req *UpdatePlayerStatsRequest) (*PlayerResponse, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, req *UpdatePlayerPriceRequest) (*PlayerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error)
	GetAll(ctx context.Context) ([]TeamResponse, error)
	GetByManagerName(ctx context.Context, managerName string) (*TeamResponse, error)
	AddPlayer(ctx context.Context, teamID, playerID uuid.UUID) (*TeamResponse, error)
	RemovePlayer(ctx context.Context, teamID, playerID uuid.UUID) (*TeamResponse, error)
	UpdatePoints(ctx context.Context, id uuid.UUID, req *UpdateTeamPointsRequest) (*TeamResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GameWeekServiceInterface defines the interface for game week service
type GameWeekServiceInterface interface {
	Create(ctx context.Context, req *CreateGameWeekRequest) (*GameWeekResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GameWeekResponse, error)
	GetAll(ctx context.Context) ([]GameWeekResponse, error)
	GetActive(ctx context.Context) (*GameWeekResponse, error)
	Activate(ctx context.Context, id uuid.UUID) (*GameWeekResponse, error)
	Complete(ctx context.Context, id uuid.UUID) (*GameWeekResponse, error)
}

// MatchResultServiceInterface defines the interface for match result service
type MatchResultServiceInterface interface {
	Create(ctx context.Context, req *CreateMatchResultRequest) (*MatchResultResponse, error)
}
