// Package store persists calculation scenarios: a named snapshot of the
// calculation inputs, optionally with the computed projection, keyed by an
// opaque id and a user id. Inputs are stored as the serialized JSON form so
// they round-trip through the database without decimal precision loss.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/config"
)

// ErrNotFound is returned when no scenario exists for the given id.
var ErrNotFound = errors.New("scenario not found")

// Scenario is a persisted calculation snapshot.
type Scenario struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	UserID     string         `gorm:"index" json:"userId"`
	Name       string         `json:"name"`
	Inputs     datatypes.JSON `json:"inputs"`
	Projection datatypes.JSON `json:"projection,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// ScenarioStore is the persistence contract the API depends on.
type ScenarioStore interface {
	Create(ctx context.Context, scenario *Scenario) error
	Get(ctx context.Context, id string) (*Scenario, error)
	ListByUser(ctx context.Context, userID string) ([]Scenario, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

// GormStore implements ScenarioStore on a postgres database.
type GormStore struct {
	db *gorm.DB
}

// Connect opens the database connection and migrates the scenario table.
func Connect(cfg *config.ServerConfig) (*GormStore, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Europe/Copenhagen",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Scenario{}); err != nil {
		return nil, fmt.Errorf("failed to migrate scenario table: %w", err)
	}

	return &GormStore{db: db}, nil
}

// Create inserts a scenario, assigning an id when none is set.
func (s *GormStore) Create(ctx context.Context, scenario *Scenario) error {
	if scenario.ID == "" {
		scenario.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(scenario).Error
}

// Get loads one scenario by id.
func (s *GormStore) Get(ctx context.Context, id string) (*Scenario, error) {
	var scenario Scenario
	err := s.db.WithContext(ctx).First(&scenario, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &scenario, nil
}

// ListByUser returns all scenarios belonging to a user, newest first.
func (s *GormStore) ListByUser(ctx context.Context, userID string) ([]Scenario, error) {
	var scenarios []Scenario
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&scenarios).Error
	return scenarios, err
}

// Rename changes the display name of a scenario.
func (s *GormStore) Rename(ctx context.Context, id, name string) error {
	result := s.db.WithContext(ctx).Model(&Scenario{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a scenario.
func (s *GormStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&Scenario{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
