package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"football-voting-backend/internal/config"
	"football-voting-backend/internal/database"
	"football-voting-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML fixture files
type TeamData struct {
	Name    string       `yaml:"name"`
	Players []PlayerData `yaml:"players,omitempty"`
}

type PlayerData struct {
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
}

type MatchData struct {
	Team1          string `yaml:"team1"`
	Team2          string `yaml:"team2"`
	Date           string `yaml:"date"`
	Team1Formation string `yaml:"team1_formation,omitempty"`
	Team2Formation string `yaml:"team2_formation,omitempty"`
	IsActive       *bool  `yaml:"is_active,omitempty"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type MatchesFile struct {
	Matches []MatchData `yaml:"matches"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Suppress GORM query logging during data loading
	db, err := database.Initialize(cfg.DatabasePath, &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// loadDataFromYAMLFiles seeds teams, players and matches. Seeding only runs
// against an empty ledger; a database that already holds teams is live
// state and is left untouched.
func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var teamCount int64
	if err := db.Model(&models.Team{}).Count(&teamCount).Error; err != nil {
		return fmt.Errorf("failed to inspect teams table: %w", err)
	}
	if teamCount > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	teamsFile, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	matchesFile, err := loadMatches(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load matches: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		teamID, playerID := 1, 1
		for _, teamData := range teamsFile.Teams {
			team := models.Team{ID: teamID, Name: teamData.Name}
			if err := tx.Select("*").Create(&team).Error; err != nil {
				return fmt.Errorf("failed to create team %q: %w", teamData.Name, err)
			}
			for _, playerData := range teamData.Players {
				player := models.Player{
					ID:       playerID,
					Name:     playerData.Name,
					Position: playerData.Position,
					TeamID:   teamID,
				}
				if err := tx.Select("*").Create(&player).Error; err != nil {
					return fmt.Errorf("failed to create player %q: %w", playerData.Name, err)
				}
				playerID++
			}
			log.Printf("Created team %q with %d players", teamData.Name, len(teamData.Players))
			teamID++
		}

		for matchID, matchData := range matchesFile.Matches {
			match := models.Match{
				ID:             matchID + 1,
				Team1:          matchData.Team1,
				Team2:          matchData.Team2,
				Date:           matchData.Date,
				IsActive:       matchData.IsActive == nil || *matchData.IsActive,
				Team1Formation: matchData.Team1Formation,
				Team2Formation: matchData.Team2Formation,
			}
			if match.Team1Formation == "" {
				match.Team1Formation = models.DefaultFormation
			}
			if match.Team2Formation == "" {
				match.Team2Formation = models.DefaultFormation
			}
			if err := tx.Select("*").Create(&match).Error; err != nil {
				return fmt.Errorf("failed to create match %s vs %s: %w", matchData.Team1, matchData.Team2, err)
			}
			stats := models.DefaultMatchStats(match)
			if err := tx.Select("*").Create(&stats).Error; err != nil {
				return fmt.Errorf("failed to create stats for match %d: %w", match.ID, err)
			}
			log.Printf("Created match %s vs %s", matchData.Team1, matchData.Team2)
		}

		return nil
	})
}

func loadTeams(dataDir string) (*TeamsFile, error) {
	var file TeamsFile
	if err := readYAMLFile(filepath.Join(dataDir, "teams.yaml"), &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// loadMatches tolerates a missing matches.yaml; fixtures may seed teams only
func loadMatches(dataDir string) (*MatchesFile, error) {
	var file MatchesFile
	err := readYAMLFile(filepath.Join(dataDir, "matches.yaml"), &file)
	if os.IsNotExist(err) {
		return &MatchesFile{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func readYAMLFile(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
