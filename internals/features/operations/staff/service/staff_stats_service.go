package service

import (
	"context"
	"time"

	mastermodel "bperformance_backend/internals/features/operations/masterdata/model"
	reportmodel "bperformance_backend/internals/features/operations/reports/model"
	helper "bperformance_backend/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type CriteriaAverage struct {
	Criteria string  `json:"criteria"`
	AvgScore float64 `json:"avg_score"`
}

// StaffStats aggregates a staff member's tickets and metric scores over a
// date range, the numbers shown on the detail page and the PDF export.
type StaffStats struct {
	StartDate        string            `json:"start_date"`
	EndDate          string            `json:"end_date"`
	TotalTickets     int64             `json:"total_tickets"`
	UniqueClients    int64             `json:"unique_clients"`
	AvgResolution    string            `json:"avg_resolution"` // "Xh Ym"
	AvgResponse      string            `json:"avg_response"`
	StatusBreakdown  []StatusCount     `json:"status_breakdown"`
	CriteriaAverages []CriteriaAverage `json:"criteria_averages"`
}

type StaffStatsService struct {
	DB *gorm.DB
}

func NewStaffStatsService(db *gorm.DB) *StaffStatsService {
	return &StaffStatsService{DB: db}
}

// StatsForRange computes ticket volume, client spread, average work/response
// minutes, a status breakdown and per-criteria score averages for tickets
// whose daily report falls in [from, to].
func (s *StaffStatsService) StatsForRange(ctx context.Context, staffID uuid.UUID, from, to time.Time) (*StaffStats, error) {
	db := s.DB.WithContext(ctx)

	reportIDs := db.Model(&reportmodel.DailyReportModel{}).
		Select("daily_report_id").
		Where("daily_report_date BETWEEN ? AND ?", from, to)

	tickets := db.Model(&reportmodel.TicketEntryModel{}).
		Where("ticket_entry_staff_id = ? AND ticket_entry_report_id IN (?)", staffID, reportIDs)

	stats := &StaffStats{
		StartDate: from.Format(helper.DateLayout),
		EndDate:   to.Format(helper.DateLayout),
	}

	if err := tickets.Session(&gorm.Session{}).Count(&stats.TotalTickets).Error; err != nil {
		return nil, err
	}
	if err := tickets.Session(&gorm.Session{}).
		Distinct("ticket_entry_client_id").Count(&stats.UniqueClients).Error; err != nil {
		return nil, err
	}

	var avgs struct {
		AvgWork     float64
		AvgResponse float64
	}
	if err := tickets.Session(&gorm.Session{}).
		Select("COALESCE(AVG(ticket_entry_total_work_minutes), 0) AS avg_work, COALESCE(AVG(ticket_entry_response_minutes), 0) AS avg_response").
		Scan(&avgs).Error; err != nil {
		return nil, err
	}
	stats.AvgResolution = helper.FormatMinutes(int(avgs.AvgWork))
	stats.AvgResponse = helper.FormatMinutes(int(avgs.AvgResponse))

	if err := tickets.Session(&gorm.Session{}).
		Select("ticket_entry_status AS status, COUNT(*) AS count").
		Group("ticket_entry_status").
		Scan(&stats.StatusBreakdown).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&reportmodel.StaffMetricModel{}).
		Select("rating_criteria.rating_criteria_name AS criteria, ROUND(AVG(staff_metrics.staff_metric_score), 1) AS avg_score").
		Joins("JOIN rating_criteria ON rating_criteria.rating_criteria_id = staff_metrics.staff_metric_criteria_id").
		Where("staff_metrics.staff_metric_staff_id = ? AND staff_metrics.staff_metric_report_id IN (?)", staffID, reportIDs).
		Group("rating_criteria.rating_criteria_name").
		Scan(&stats.CriteriaAverages).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// Last30Days is the default window used by the staff detail page.
func (s *StaffStatsService) Last30Days(ctx context.Context, staffID uuid.UUID) (*StaffStats, error) {
	end := time.Now()
	return s.StatsForRange(ctx, staffID, end.AddDate(0, 0, -30), end)
}

// TicketsForRange lists a staff member's tickets in the window, newest report
// first, for the PDF export.
func (s *StaffStatsService) TicketsForRange(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]reportmodel.TicketEntryModel, error) {
	reportIDs := s.DB.WithContext(ctx).Model(&reportmodel.DailyReportModel{}).
		Select("daily_report_id").
		Where("daily_report_date BETWEEN ? AND ?", from, to)

	var out []reportmodel.TicketEntryModel
	err := s.DB.WithContext(ctx).
		Where("ticket_entry_staff_id = ? AND ticket_entry_report_id IN (?)", staffID, reportIDs).
		Order("ticket_entry_created_at DESC").
		Find(&out).Error
	return out, err
}

// ClientNameIndex maps client ids to names for display rows.
func (s *StaffStatsService) ClientNameIndex(ctx context.Context) (map[uuid.UUID]string, error) {
	var clients []mastermodel.ClientModel
	if err := s.DB.WithContext(ctx).Find(&clients).Error; err != nil {
		return nil, err
	}
	idx := make(map[uuid.UUID]string, len(clients))
	for i := range clients {
		idx[clients[i].ClientID] = clients[i].ClientName
	}
	return idx, nil
}
