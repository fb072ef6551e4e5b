package service

import (
	"database/sql"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/database"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/version"
)

// SystemService answers the operational endpoints: liveness of the
// database connection and the running build's version.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService over the shared connection.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// CheckHealth pings the database and reports any connectivity failure.
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the application version string.
func (s *SystemService) CheckVersion() string {
	return version.Version
}
