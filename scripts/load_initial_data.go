package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fantasy-league-backend/internal/config"
	"fantasy-league-backend/internal/database"
	"fantasy-league-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type PlayerData struct {
	Name        string  `yaml:"name"`
	Position    string  `yaml:"position"`
	Club        string  `yaml:"club"`
	Price       float64 `yaml:"price"`
	GoalsScored int     `yaml:"goals_scored,omitempty"`
	Assists     int     `yaml:"assists,omitempty"`
	CleanSheets int     `yaml:"clean_sheets,omitempty"`
}

type TeamData struct {
	Name        string   `yaml:"name"`
	ManagerName string   `yaml:"manager_name"`
	Players     []string `yaml:"players,omitempty"` // player names, resolved on load
}

type GameWeekData struct {
	WeekNumber int       `yaml:"week_number"`
	StartDate  time.Time `yaml:"start_date"`
	EndDate    time.Time `yaml:"end_date"`
	IsActive   bool      `yaml:"is_active,omitempty"`
}

// File structures
type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type GameWeeksFile struct {
	GameWeeks []GameWeekData `yaml:"game_weeks"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	players, err := loadPlayers(db, dataDir)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	if err := loadTeams(db, dataDir, players); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	if err := loadGameWeeks(db, dataDir); err != nil {
		return fmt.Errorf("failed to load game weeks: %w", err)
	}

	return nil
}

// loadPlayers upserts players by name and returns them keyed by name for roster resolution
func loadPlayers(db *gorm.DB, dataDir string) (map[string]*models.Player, error) {
	var file PlayersFile
	if err := readYAMLFile(filepath.Join(dataDir, "players.yaml"), &file); err != nil {
		return nil, err
	}

	byName := make(map[string]*models.Player, len(file.Players))
	for _, data := range file.Players {
		var existing models.Player
		err := db.First(&existing, "name = ?", data.Name).Error
		if err == nil {
			byName[data.Name] = &existing
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}

		player, err := models.NewPlayer(data.Name, data.Position, data.Club, data.Price)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", data.Name, err)
		}
		if err := player.UpdateStats(data.GoalsScored, data.Assists, data.CleanSheets); err != nil {
			return nil, fmt.Errorf("player %q: %w", data.Name, err)
		}
		if err := db.Create(player).Error; err != nil {
			return nil, err
		}
		byName[data.Name] = player
		log.Printf("Created player: %s (%s, %s)", player.Name, player.Position, player.Club)
	}
	return byName, nil
}

// loadTeams creates teams and rosters them through the aggregate so the budget
// and capacity rules hold for seed data too
func loadTeams(db *gorm.DB, dataDir string, players map[string]*models.Player) error {
	var file TeamsFile
	if err := readYAMLFile(filepath.Join(dataDir, "teams.yaml"), &file); err != nil {
		return err
	}

	for _, data := range file.Teams {
		var existing models.Team
		err := db.First(&existing, "manager_name = ?", data.ManagerName).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		team, err := models.NewTeam(data.Name, data.ManagerName)
		if err != nil {
			return fmt.Errorf("team %q: %w", data.Name, err)
		}
		if err := db.Create(team).Error; err != nil {
			return err
		}

		for _, playerName := range data.Players {
			player, ok := players[playerName]
			if !ok {
				return fmt.Errorf("team %q: unknown player %q", data.Name, playerName)
			}
			if err := team.AddPlayer(player); err != nil {
				return fmt.Errorf("team %q: add %q: %w", data.Name, playerName, err)
			}
		}
		if len(team.Players) > 0 {
			if err := db.Create(&team.Players).Error; err != nil {
				return err
			}
			if err := db.Model(&models.Team{}).Where("id = ?", team.ID).
				Update("budget", team.Budget).Error; err != nil {
				return err
			}
		}
		log.Printf("Created team: %s (manager %s, %d players)", team.Name, team.ManagerName, len(team.Players))
	}
	return nil
}

// loadGameWeeks upserts game weeks by week number
func loadGameWeeks(db *gorm.DB, dataDir string) error {
	var file GameWeeksFile
	if err := readYAMLFile(filepath.Join(dataDir, "game_weeks.yaml"), &file); err != nil {
		return err
	}

	for _, data := range file.GameWeeks {
		var existing models.GameWeek
		err := db.First(&existing, "week_number = ?", data.WeekNumber).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		gameWeek, err := models.NewGameWeek(data.WeekNumber, data.StartDate, data.EndDate)
		if err != nil {
			return fmt.Errorf("game week %d: %w", data.WeekNumber, err)
		}
		if data.IsActive {
			if err := gameWeek.Activate(); err != nil {
				return fmt.Errorf("game week %d: %w", data.WeekNumber, err)
			}
		}
		if err := db.Create(gameWeek).Error; err != nil {
			return err
		}
		log.Printf("Created game week %d", gameWeek.WeekNumber)
	}
	return nil
}

func readYAMLFile(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Skipping %s: file not found", path)
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
