// Package store keeps a history of finished runs in a local SQLite file.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"strandsim/internal/arena"
)

// Run is one finished simulation.
type Run struct {
	ID         uint      `gorm:"primarykey"`
	CreatedAt  time.Time `gorm:"index"`
	Seed       int64
	Aggression string `gorm:"size:16;index"`
	Duration   float64
	Survivors  int
	Defeated   int
	Ultimates  string `gorm:"type:text"` // json kind -> count
	Standing   string `gorm:"type:text"` // json survivor names
}

func (Run) TableName() string { return "runs" }

type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open connects to the SQLite file at path. An empty path keeps the
// history in memory for the lifetime of the process.
func Open(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open run store: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql interface: %w", err)
	}
	// one connection so an in-memory db is shared by every query
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("migrate run store: %w", err)
	}
	if path != "" {
		log.Info().Str("path", path).Msg("Using local SQLite run store")
	}
	return &Store{db: db, log: log}, nil
}

// Save records res and returns the stored row.
func (s *Store) Save(seed int64, aggression string, res arena.SimResult) (Run, error) {
	ults, err := json.Marshal(res.Ultimates)
	if err != nil {
		return Run{}, err
	}
	standing, err := json.Marshal(res.Survivors)
	if err != nil {
		return Run{}, err
	}
	run := Run{
		Seed:       seed,
		Aggression: aggression,
		Duration:   res.Duration,
		Survivors:  len(res.Survivors),
		Defeated:   len(res.Defeated),
		Ultimates:  string(ults),
		Standing:   string(standing),
	}
	if err := s.db.Create(&run).Error; err != nil {
		return Run{}, fmt.Errorf("save run: %w", err)
	}
	s.log.Debug().Uint("id", run.ID).Int64("seed", seed).Msg("run saved")
	return run, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	var runs []Run
	err := s.db.Order("id desc").Limit(limit).Find(&runs).Error
	return runs, err
}

// Stats aggregates the stored runs of one aggression level.
type Stats struct {
	Runs         int64
	AvgDuration  float64
	AvgSurvivors float64
}

func (s *Store) Stats(aggression string) (Stats, error) {
	var st Stats
	err := s.db.Model(&Run{}).
		Select("count(*) as runs, coalesce(avg(duration), 0) as avg_duration, coalesce(avg(survivors), 0) as avg_survivors").
		Where("aggression = ?", aggression).
		Scan(&st).Error
	return st, err
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
