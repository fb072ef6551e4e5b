package model

import "time"

// PortfolioSnapshot is a pre-calculated portfolio aggregate stored in the
// portfolio_snapshot table. It backs the fast overview path: reading the
// latest snapshot avoids re-running the full valuation pass on every request.
// Snapshots are replaced wholesale, never updated in place, so readers
// observe either the previous snapshot or the new one in full.
type PortfolioSnapshot struct {
	ID                 string    // Primary key
	TotalNetWorth      float64   // Sum of net realizable values
	TotalPhysicalValue float64   // Liveweight value component
	TotalHeadCount     int       // Head across all active herds
	HerdCount          int       // Active herd records (mobs and individuals)
	CalculatedAt       time.Time // When this snapshot was computed
}
