package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"homely/internal/models"
)

// Report type names as the admin portal submits them.
const (
	TypeUserActivity        = "User Activity"
	TypeMaintenanceRequests = "Maintenance Requests"
	TypeFinancialSummary    = "Financial Summary"
)

// ChartData is one labelled value in a generated report dataset.
type ChartData struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// BuildReport produces the dataset for one report type. A non-nil since
// restricts maintenance requests to reports filed after that instant.
func BuildReport(db *gorm.DB, reportType string, since *time.Time) ([]ChartData, error) {
	switch reportType {
	case TypeUserActivity:
		return usersByRole(db)
	case TypeMaintenanceRequests:
		return reportsByStatus(db, since)
	case TypeFinancialSummary:
		return paidBillsByMonth(db, since)
	default:
		return []ChartData{}, nil
	}
}

func usersByRole(db *gorm.DB) ([]ChartData, error) {
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, u := range users {
		role := u.Role
		if role == "" {
			role = "Unknown"
		}
		counts[role]++
	}
	return toSortedChartData(counts, func(c int) float64 { return float64(c) }), nil
}

func reportsByStatus(db *gorm.DB, since *time.Time) ([]ChartData, error) {
	query := db.Model(&models.MaintenanceReport{})
	if since != nil {
		query = query.Where("created_at > ?", *since)
	}
	var reports []models.MaintenanceReport
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, r := range reports {
		status := r.Status
		if status == "" {
			status = "Unknown"
		}
		counts[status]++
	}
	return toSortedChartData(counts, func(c int) float64 { return float64(c) }), nil
}

// paidBillsByMonth sums PAID bill amounts per due-month label "YYYY-MM".
// Amounts that do not parse count as zero.
func paidBillsByMonth(db *gorm.DB, since *time.Time) ([]ChartData, error) {
	query := db.Where("status = ?", models.BillPaid)
	if since != nil {
		query = query.Where("due_date > ?", *since)
	}
	var bills []models.Bill
	if err := query.Find(&bills).Error; err != nil {
		return nil, err
	}
	sums := map[string]decimal.Decimal{}
	for _, b := range bills {
		month := b.DueDate.Format("2006-01")
		amount, err := decimal.NewFromString(b.Amount)
		if err != nil {
			amount = decimal.Zero
		}
		sums[month] = sums[month].Add(amount)
	}
	data := make([]ChartData, 0, len(sums))
	for label, sum := range sums {
		data = append(data, ChartData{Label: label, Value: sum.InexactFloat64()})
	}
	sort.Slice(data, func(i, j int) bool { return data[i].Label < data[j].Label })
	return data, nil
}

func toSortedChartData(counts map[string]int, value func(int) float64) []ChartData {
	data := make([]ChartData, 0, len(counts))
	for label, count := range counts {
		data = append(data, ChartData{Label: label, Value: value(count)})
	}
	sort.Slice(data, func(i, j int) bool { return data[i].Label < data[j].Label })
	return data
}

// SinceForRange translates the portal's date-range picker values into a
// cutoff. Unknown values and "all" mean no cutoff.
func SinceForRange(dateRange string, now time.Time) *time.Time {
	var days int
	switch dateRange {
	case "7days":
		days = 7
	case "30days":
		days = 30
	case "90days":
		days = 90
	default:
		return nil
	}
	since := now.AddDate(0, 0, -days)
	return &since
}
