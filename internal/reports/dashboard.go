package reports

import (
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"homely/internal/models"
)

// DashboardStats summarizes one landowner's portfolio for the manager
// dashboard.
type DashboardStats struct {
	TotalProperties     int64             `json:"totalProperties"`
	MaintenanceRequests int64             `json:"maintenanceRequests"`
	ExpiringLeases      int64             `json:"expiringLeases"`
	OccupancyRate       int               `json:"occupancyRate"`
	RecentProperties    []models.Property `json:"recentProperties"`
}

const leaseExpiryHorizon = 60 * 24 * time.Hour

// BuildDashboard issues the four counter queries concurrently; they are
// independent reads with no ordering requirement.
func BuildDashboard(db *gorm.DB, ownerID string) (*DashboardStats, error) {
	var (
		pendingReports int64
		expiringLeases int64
		total          int64
		rented         int64
		recent         []models.Property
	)

	var g errgroup.Group
	g.Go(func() error {
		return db.Model(&models.MaintenanceReport{}).
			Where("landowner_id = ? AND status = ?", ownerID, models.ReportPending).
			Count(&pendingReports).Error
	})
	g.Go(func() error {
		horizon := time.Now().Add(leaseExpiryHorizon)
		return db.Model(&models.Lease{}).
			Where("landowner_id = ? AND status = ? AND end_date < ?", ownerID, models.LeaseActive, horizon).
			Count(&expiringLeases).Error
	})
	g.Go(func() error {
		if err := db.Model(&models.Property{}).
			Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
			return err
		}
		return db.Model(&models.Property{}).
			Where("owner_id = ? AND rented = ?", ownerID, true).Count(&rented).Error
	})
	g.Go(func() error {
		return db.Where("owner_id = ?", ownerID).
			Order("created_at DESC").Limit(3).Find(&recent).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProperties:     total,
		MaintenanceRequests: pendingReports,
		ExpiringLeases:      expiringLeases,
		OccupancyRate:       OccupancyRate(rented, total),
		RecentProperties:    recent,
	}, nil
}

// OccupancyRate is the integer percentage of rented properties, 0 when
// the portfolio is empty.
func OccupancyRate(rented, total int64) int {
	if total == 0 {
		return 0
	}
	return int(float64(rented) / float64(total) * 100)
}
