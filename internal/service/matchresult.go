package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MatchResultService produces match-result records. The records are not
// persisted; the HTTP boundary broadcasts them to the event publisher
// best-effort and returns them to the caller.
type MatchResultService struct {
	validator *validator.Validate
}

// NewMatchResultService creates a new match result service
func NewMatchResultService(validator *validator.Validate) *MatchResultService {
	return &MatchResultService{validator: validator}
}

// CreateMatchResultRequest represents the request to record a match result
type CreateMatchResultRequest struct {
	HomeTeamID uuid.UUID  `json:"home_team_id" validate:"required"`
	AwayTeamID uuid.UUID  `json:"away_team_id" validate:"required"`
	HomeScore  int        `json:"home_score"`
	AwayScore  int        `json:"away_score"`
	MatchDate  *time.Time `json:"match_date,omitempty"`
}

// MatchResultResponse represents a recorded match result
type MatchResultResponse struct {
	MatchID    uuid.UUID `json:"match_id"`
	MatchDate  time.Time `json:"match_date"`
	HomeTeamID uuid.UUID `json:"home_team_id"`
	AwayTeamID uuid.UUID `json:"away_team_id"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
}

// Create builds a match-result record with a fresh id, defaulting the match
// date to now when the caller omits it. Team ids and scores are taken as-is.
func (s *MatchResultService) Create(ctx context.Context, req *CreateMatchResultRequest) (*MatchResultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	matchDate := time.Now().UTC()
	if req.MatchDate != nil {
		matchDate = *req.MatchDate
	}

	return &MatchResultResponse{
		MatchID:    uuid.New(),
		MatchDate:  matchDate,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
	}, nil
}
