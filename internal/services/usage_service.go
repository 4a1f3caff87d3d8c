package services

import (
	"sort"
	"time"

	"github.com/wegnite/saasTemplate/internal/models"

	"gorm.io/gorm"
)

// UsageSummary aggregates a user's credit consumption over a period.
type UsageSummary struct {
	TotalUsage float64            `json:"totalUsage"`
	ByType     map[string]float64 `json:"byType"`
	ByDate     map[string]float64 `json:"byDate"`
}

// ToolUsage ranks a feature by how often it was used.
type ToolUsage struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// TrendPoint is one day of the credits-usage trend. Days without usage are
// zero-filled.
type TrendPoint struct {
	Date    string  `json:"date"`
	Credits float64 `json:"credits"`
}

// UsageService reads the append-only usage log. It never writes: log rows
// are created only by the ledger transaction.
type UsageService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewUsageService(db *gorm.DB) *UsageService {
	return &UsageService{db: db, now: time.Now}
}

func periodStart(now time.Time, period string) time.Time {
	switch period {
	case "day":
		return now.AddDate(0, 0, -1)
	case "week":
		return now.AddDate(0, 0, -7)
	case "year":
		return now.AddDate(-1, 0, 0)
	default: // month
		return now.AddDate(0, -1, 0)
	}
}

// Stats summarizes consumption in the given period ("day", "week",
// "month", "year"; anything else falls back to month).
func (s *UsageService) Stats(userID uint, period string) (*UsageSummary, error) {
	var logs []models.UsageLog
	start := periodStart(s.now(), period)
	err := s.db.Where("user_id = ? AND created_at >= ?", userID, start).
		Order("created_at asc").Find(&logs).Error
	if err != nil {
		return nil, err
	}

	summary := &UsageSummary{
		ByType: make(map[string]float64),
		ByDate: make(map[string]float64),
	}
	for _, log := range logs {
		summary.TotalUsage += log.CreditsUsed
		summary.ByType[string(log.Type)] += log.CreditsUsed
		summary.ByDate[log.CreatedAt.Format("2006-01-02")] += log.CreditsUsed
	}

	return summary, nil
}

// MostUsedTools returns the top feature types by event count.
func (s *UsageService) MostUsedTools(userID uint, limit int) ([]ToolUsage, error) {
	var logs []models.UsageLog
	if err := s.db.Where("user_id = ?", userID).Find(&logs).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, log := range logs {
		counts[string(log.Type)]++
	}

	tools := make([]ToolUsage, 0, len(counts))
	for t, c := range counts {
		tools = append(tools, ToolUsage{Type: t, Count: c})
	}
	sort.Slice(tools, func(i, j int) bool {
		if tools[i].Count != tools[j].Count {
			return tools[i].Count > tools[j].Count
		}
		return tools[i].Type < tools[j].Type
	})

	if limit > 0 && len(tools) > limit {
		tools = tools[:limit]
	}
	return tools, nil
}

// CreditsTrend returns a zero-filled per-day spend series covering the
// last `days` days plus today.
func (s *UsageService) CreditsTrend(userID uint, days int) ([]TrendPoint, error) {
	now := s.now()
	start := now.AddDate(0, 0, -days)

	var logs []models.UsageLog
	err := s.db.Where("user_id = ? AND created_at >= ?", userID, start).
		Order("created_at asc").Find(&logs).Error
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]float64, days+1)
	for i := 0; i <= days; i++ {
		byDate[now.AddDate(0, 0, -i).Format("2006-01-02")] = 0
	}
	for _, log := range logs {
		date := log.CreatedAt.Format("2006-01-02")
		if _, ok := byDate[date]; ok {
			byDate[date] += log.CreditsUsed
		}
	}

	points := make([]TrendPoint, 0, len(byDate))
	for date, credits := range byDate {
		points = append(points, TrendPoint{Date: date, Credits: credits})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return points, nil
}

// History returns the user's credit consumption log, newest first.
func (s *UsageService) History(userID uint, page, pageSize int) ([]models.UsageLog, int64, error) {
	var logs []models.UsageLog
	var total int64

	query := s.db.Model(&models.UsageLog{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at desc").Limit(pageSize).Offset(offset).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
