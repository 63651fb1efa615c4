package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Lokitha-S/NutriNova/models"
	"github.com/Lokitha-S/NutriNova/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{db: db} }

// ---------- Payload shapes ----------

type EntrySummary struct {
	ID       uint    `json:"id"`
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
}

type DayData struct {
	Calories float64        `json:"calories"`
	Protein  float64        `json:"protein"`
	Carbs    float64        `json:"carbs"`
	Fat      float64        `json:"fat"`
	Entries  []EntrySummary `json:"entries"`
}

type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type ReportRecommendation struct {
	Type     string `json:"type"`
	Nutrient string `json:"nutrient,omitempty"`
	Status   string `json:"status"`
	Text     string `json:"text"`
}

type ReportPayload struct {
	ReportType      string                 `json:"report_type"`
	StartDate       string                 `json:"start_date"`
	EndDate         string                 `json:"end_date"`
	DailyData       map[string]*DayData    `json:"daily_data"`
	Totals          NutrientTotals         `json:"totals"`
	Recommendations []ReportRecommendation `json:"recommendations"`
}

const (
	lowProteinText = "Your protein intake is below recommended levels. Consider adding more lean meats, fish, or plant-based proteins."
	lowCalorieText = "Your calorie intake is below recommended levels. Make sure you are eating enough to fuel your body."
)

// DeriveRange maps a report type and anchor date onto the covered
// calendar range. Both bounds are UTC midnights, inclusive. Unknown
// types fall back to a daily range.
func DeriveRange(reportType string, anchor time.Time) (start, end time.Time) {
	day := dayStartUTC(anchor)
	switch reportType {
	case "weekly":
		wd := (int(day.Weekday()) + 6) % 7 // Monday = 0
		start = day.AddDate(0, 0, -wd)
		end = start.AddDate(0, 0, 6)
	case "monthly":
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	default:
		start, end = day, day
	}
	return start, end
}

// Get serves a report under the cache-or-compute policy. A cached row
// with a non-empty payload is returned verbatim, even when entries
// changed after it was written.
func (s *ReportService) Get(ctx context.Context, userID uint, reportType string, anchor time.Time) (*ReportPayload, error) {
	start, end := DeriveRange(reportType, anchor)

	var cached models.NutritionReport
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND report_type = ? AND start_date = ? AND end_date = ?",
			userID, reportType, start, end).
		First(&cached).Error
	if err == nil && len(cached.ReportData) > 0 {
		var payload ReportPayload
		if errDecode := json.Unmarshal(cached.ReportData, &payload); errDecode != nil {
			return nil, errDecode
		}
		utils.ReportCacheHits.WithLabelValues("hit").Inc()
		return &payload, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	utils.ReportCacheHits.WithLabelValues("miss").Inc()

	payload, err := s.compute(ctx, userID, reportType, start, end)
	if err != nil {
		return nil, err
	}

	return s.store(ctx, userID, reportType, start, end, payload)
}

func (s *ReportService) compute(ctx context.Context, userID uint, reportType string, start, end time.Time) (*ReportPayload, error) {
	var entries []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date BETWEEN ? AND ?", userID, start, end).
		Order("entry_date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	payload := &ReportPayload{
		ReportType:      reportType,
		StartDate:       start.Format("2006-01-02"),
		EndDate:         end.Format("2006-01-02"),
		DailyData:       map[string]*DayData{},
		Recommendations: []ReportRecommendation{},
	}

	for _, e := range entries {
		key := e.EntryDate.Format("2006-01-02")
		day := payload.DailyData[key]
		if day == nil {
			day = &DayData{Entries: []EntrySummary{}}
			payload.DailyData[key] = day
		}

		cal := deref(e.Calories)
		pro := deref(e.Protein)
		carb := deref(e.Carbs)
		fat := deref(e.Fat)

		day.Calories += cal
		day.Protein += pro
		day.Carbs += carb
		day.Fat += fat
		day.Entries = append(day.Entries, EntrySummary{
			ID:       e.ID,
			FoodName: e.FoodName,
			Quantity: e.Quantity,
			Unit:     e.Unit,
			Calories: cal,
		})

		payload.Totals.Calories += cal
		payload.Totals.Protein += pro
		payload.Totals.Carbs += carb
		payload.Totals.Fat += fat
	}

	// days is the exclusive span (end - start), not the inclusive day
	// count. The thresholds below depend on that.
	days := int(end.Sub(start).Hours() / 24)

	if payload.Totals.Protein < float64(50*days+50) {
		payload.Recommendations = append(payload.Recommendations, ReportRecommendation{
			Type:     "nutrient",
			Nutrient: "Protein",
			Status:   "low",
			Text:     lowProteinText,
		})
	}
	if payload.Totals.Calories < float64(1500*days+1500) {
		payload.Recommendations = append(payload.Recommendations, ReportRecommendation{
			Type:   "calorie",
			Status: "low",
			Text:   lowCalorieText,
		})
	}

	return payload, nil
}

// store persists the computed payload as the cache row for this key.
// The composite unique index plus ON CONFLICT DO NOTHING serializes
// concurrent misses; the loser re-reads and serves the winning row.
func (s *ReportService) store(ctx context.Context, userID uint, reportType string, start, end time.Time, payload *ReportPayload) (*ReportPayload, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	report := models.NutritionReport{
		UserID:     userID,
		ReportType: reportType,
		StartDate:  start,
		EndDate:    end,
		ReportData: datatypes.JSON(raw),
	}

	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "report_type"}, {Name: "start_date"}, {Name: "end_date"},
		},
		DoNothing: true,
	}).Create(&report)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		var winner models.NutritionReport
		err := s.db.WithContext(ctx).
			Where("user_id = ? AND report_type = ? AND start_date = ? AND end_date = ?",
				userID, reportType, start, end).
			First(&winner).Error
		if err == nil && len(winner.ReportData) > 0 {
			var p ReportPayload
			if json.Unmarshal(winner.ReportData, &p) == nil {
				return &p, nil
			}
		}
		return payload, nil
	}

	// Advisories feed the dashboard's unread list. Written only when our
	// cache row won, so a report key produces them at most once.
	for _, rec := range payload.Recommendations {
		row := models.NutritionRecommendation{
			UserID:             userID,
			RecommendationType: rec.Type,
			RecommendationText: rec.Text,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
	}

	return payload, nil
}

// ---------- internals ----------

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func dayStartUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
