package service

import (
	"context"
	"math"
	"time"

	"bperformance_backend/internals/features/operations/reports/model"

	"gorm.io/gorm"
)

var statusColors = map[string]string{
	"COMP": "#2ecc71", "BLOCK": "#e74c3c", "PEND": "#f1c40f",
	"HOLD": "#95a5a6", "CALL": "#e67e22", "WAIT_ST": "#3498db", "WAIT_CL": "#9b59b6",
}

type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
	Color string `json:"color,omitempty"`
}

type ResponseAvg struct {
	Label   string `json:"label"`
	AvgWait int    `json:"avg_wait"`
}

// PeriodStats is the chart payload for one dashboard tab.
type PeriodStats struct {
	Total         int64         `json:"total"`
	Hours         float64       `json:"hours"`
	TravelHours   float64       `json:"travel_hours"`
	ByStatus      []LabelCount  `json:"by_status"`
	ByCategory    []LabelCount  `json:"by_category"` // top 5
	ByClient      []LabelCount  `json:"by_client"`   // top 5
	ByStaff       []LabelCount  `json:"by_staff"`    // top 5
	ByWorkType    []LabelCount  `json:"by_work_type,omitempty"`
	ResponseTimes []ResponseAvg `json:"response_times"` // avg wait per staff, fastest first
}

// DashboardStats covers the overview plus one tab per work type.
type DashboardStats struct {
	PeriodLabel string       `json:"period_label"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	Overview    *PeriodStats `json:"overview"`
	External    *PeriodStats `json:"ext"`
	Internal    *PeriodStats `json:"int"`
	Remote      *PeriodStats `json:"rem"`
	Admin       *PeriodStats `json:"adm"`

	ManagerLogs []model.DailyReportModel `json:"manager_logs"`
}

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// ResolvePeriod maps a period keyword to a date window ending today.
func ResolvePeriod(period string, now time.Time) (time.Time, time.Time, string) {
	switch period {
	case "daily":
		return now, now, "Today's Performance"
	case "weekly":
		return now.AddDate(0, 0, -7), now, "Last 7 Days"
	case "yearly":
		return now.AddDate(0, 0, -365), now, "Last 365 Days"
	default:
		return now.AddDate(0, 0, -30), now, "Last 30 Days"
	}
}

func (s *DashboardService) Build(ctx context.Context, from, to time.Time, label string) (*DashboardStats, error) {
	stats := &DashboardStats{
		PeriodLabel: label,
		StartDate:   from.Format("2006-01-02"),
		EndDate:     to.Format("2006-01-02"),
	}

	var err error
	if stats.Overview, err = s.periodStats(ctx, from, to, ""); err != nil {
		return nil, err
	}
	if stats.External, err = s.periodStats(ctx, from, to, model.WorkTypeExternal); err != nil {
		return nil, err
	}
	if stats.Internal, err = s.periodStats(ctx, from, to, model.WorkTypeInternal); err != nil {
		return nil, err
	}
	if stats.Remote, err = s.periodStats(ctx, from, to, model.WorkTypeRemote); err != nil {
		return nil, err
	}
	if stats.Admin, err = s.periodStats(ctx, from, to, model.WorkTypeAdmin); err != nil {
		return nil, err
	}

	// Daily reports with manager commentary in the window, newest first.
	if err := s.DB.WithContext(ctx).
		Where("daily_report_date BETWEEN ? AND ? AND daily_report_manager_notes <> ''", from, to).
		Order("daily_report_date DESC").
		Find(&stats.ManagerLogs).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *DashboardService) periodStats(ctx context.Context, from, to time.Time, workType model.WorkTypeEnum) (*PeriodStats, error) {
	db := s.DB.WithContext(ctx)

	reportIDs := db.Model(&model.DailyReportModel{}).
		Select("daily_report_id").
		Where("daily_report_date BETWEEN ? AND ?", from, to)

	base := func() *gorm.DB {
		q := db.Model(&model.TicketEntryModel{}).
			Where("ticket_entry_report_id IN (?)", reportIDs)
		if workType != "" {
			q = q.Where("ticket_entry_work_type = ?", workType)
		}
		return q
	}

	stats := &PeriodStats{}
	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if stats.Total == 0 {
		return nil, nil
	}

	var sums struct {
		WorkMins   int64
		TravelMins int64
	}
	if err := base().
		Select("COALESCE(SUM(ticket_entry_total_work_minutes), 0) AS work_mins, COALESCE(SUM(ticket_entry_travel_minutes), 0) AS travel_mins").
		Scan(&sums).Error; err != nil {
		return nil, err
	}
	stats.Hours = math.Round(float64(sums.WorkMins)/60*100) / 100
	stats.TravelHours = math.Round(float64(sums.TravelMins)/60*100) / 100

	if err := base().
		Select("ticket_entry_status AS label, COUNT(*) AS count").
		Group("ticket_entry_status").
		Scan(&stats.ByStatus).Error; err != nil {
		return nil, err
	}
	for i := range stats.ByStatus {
		if color, ok := statusColors[stats.ByStatus[i].Label]; ok {
			stats.ByStatus[i].Color = color
		} else {
			stats.ByStatus[i].Color = "#7f8c8d"
		}
	}

	if err := base().
		Select("categories.category_name AS label, categories.category_color AS color, COUNT(*) AS count").
		Joins("JOIN categories ON categories.category_id = ticket_entries.ticket_entry_category_id").
		Group("categories.category_name, categories.category_color").
		Order("count DESC").Limit(5).
		Scan(&stats.ByCategory).Error; err != nil {
		return nil, err
	}

	if err := base().
		Select("clients.client_name AS label, clients.client_color AS color, COUNT(*) AS count").
		Joins("JOIN clients ON clients.client_id = ticket_entries.ticket_entry_client_id").
		Group("clients.client_name, clients.client_color").
		Order("count DESC").Limit(5).
		Scan(&stats.ByClient).Error; err != nil {
		return nil, err
	}

	if err := base().
		Select("staff_profiles.staff_profile_full_name AS label, COUNT(*) AS count").
		Joins("JOIN staff_profiles ON staff_profiles.staff_profile_id = ticket_entries.ticket_entry_staff_id").
		Group("staff_profiles.staff_profile_full_name").
		Order("count DESC").Limit(5).
		Scan(&stats.ByStaff).Error; err != nil {
		return nil, err
	}

	if workType == "" {
		if err := base().
			Select("ticket_entry_work_type AS label, COUNT(*) AS count").
			Group("ticket_entry_work_type").
			Scan(&stats.ByWorkType).Error; err != nil {
			return nil, err
		}
	}

	// Average requested-to-start wait per staff member, fastest first.
	// Negative responses (started before requested) are excluded.
	var resp []struct {
		Label   string
		AvgWait float64
	}
	if err := base().
		Select("staff_profiles.staff_profile_full_name AS label, AVG(ticket_entry_response_minutes) AS avg_wait").
		Joins("JOIN staff_profiles ON staff_profiles.staff_profile_id = ticket_entries.ticket_entry_staff_id").
		Where("ticket_entry_response_minutes >= 0").
		Group("staff_profiles.staff_profile_full_name").
		Order("avg_wait ASC").
		Scan(&resp).Error; err != nil {
		return nil, err
	}
	for _, r := range resp {
		stats.ResponseTimes = append(stats.ResponseTimes, ResponseAvg{Label: r.Label, AvgWait: int(r.AvgWait)})
	}

	return stats, nil
}
