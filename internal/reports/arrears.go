package reports

import (
	"sort"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"homely/internal/models"
)

// ArrearsView is everything the landowner's arrears page shows: unpaid
// bills, payments awaiting review, recently approved payments and the
// tenants currently on active leases (for the billing picker).
type ArrearsView struct {
	OverdueBills    []models.Bill     `json:"overdueBills"`
	PendingPayments []models.Payment  `json:"pendingPayments"`
	RecentPayments  []models.Payment  `json:"recentPayments"`
	OverdueCount    int               `json:"overdueCount"`
	PendingCount    int               `json:"pendingCount"`
	ActiveTenants   map[string]string `json:"activeTenants"`
}

// BuildArrears assembles the arrears page. The three payment/bill reads
// are independent and issued concurrently.
func BuildArrears(db *gorm.DB, ownerID string) (*ArrearsView, error) {
	var (
		overdue []models.Bill
		pending []models.Payment
		recent  []models.Payment
	)

	var g errgroup.Group
	g.Go(func() error {
		return db.Where("landowner_id = ? AND status = ?", ownerID, models.BillUnpaid).
			Find(&overdue).Error
	})
	g.Go(func() error {
		return db.Where("landowner_id = ? AND status = ?", ownerID, models.PaymentPending).
			Find(&pending).Error
	})
	g.Go(func() error {
		return db.Where("landowner_id = ? AND status = ?", ownerID, models.PaymentApproved).
			Order("created_at DESC").Limit(20).Find(&recent).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tenantIDs := make([]string, 0, len(overdue)+len(pending)+len(recent))
	for _, b := range overdue {
		tenantIDs = append(tenantIDs, b.TenantID)
	}
	for _, p := range pending {
		tenantIDs = append(tenantIDs, p.UserID)
	}
	for _, p := range recent {
		tenantIDs = append(tenantIDs, p.UserID)
	}
	tenants, err := ResolveUserNames(db, tenantIDs)
	if err != nil {
		return nil, err
	}
	for i := range overdue {
		overdue[i].TenantName = tenants[overdue[i].TenantID]
	}
	for i := range pending {
		pending[i].TenantName = tenants[pending[i].UserID]
	}
	for i := range recent {
		recent[i].TenantName = tenants[recent[i].UserID]
	}

	sort.Slice(overdue, func(i, j int) bool { return overdue[i].DueDate.Before(overdue[j].DueDate) })
	sort.Slice(pending, func(i, j int) bool { return pending[i].CreatedAt.Before(pending[j].CreatedAt) })

	var activeLeases []models.Lease
	if err := db.Where("landowner_id = ? AND status = ?", ownerID, models.LeaseActive).
		Find(&activeLeases).Error; err != nil {
		return nil, err
	}
	activeIDs := make([]string, 0, len(activeLeases))
	for _, l := range activeLeases {
		activeIDs = append(activeIDs, l.TenantID)
	}
	activeTenants, err := ResolveUserNames(db, activeIDs)
	if err != nil {
		return nil, err
	}

	return &ArrearsView{
		OverdueBills:    overdue,
		PendingPayments: pending,
		RecentPayments:  recent,
		OverdueCount:    len(overdue),
		PendingCount:    len(pending),
		ActiveTenants:   activeTenants,
	}, nil
}
