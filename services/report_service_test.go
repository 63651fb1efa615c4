package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/Lokitha-S/NutriNova/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestDeriveRange(t *testing.T) {
	cases := []struct {
		name       string
		reportType string
		anchor     string
		wantStart  string
		wantEnd    string
	}{
		{"daily", "daily", "2024-03-01", "2024-03-01", "2024-03-01"},
		{"unknown type falls back to daily", "bogus", "2024-03-01", "2024-03-01", "2024-03-01"},
		{"weekly midweek", "weekly", "2024-03-07", "2024-03-04", "2024-03-10"},
		{"weekly anchored on monday", "weekly", "2024-03-04", "2024-03-04", "2024-03-10"},
		{"weekly anchored on sunday", "weekly", "2024-03-10", "2024-03-04", "2024-03-10"},
		{"monthly leap february", "monthly", "2024-02-15", "2024-02-01", "2024-02-29"},
		{"monthly 30-day month", "monthly", "2024-04-10", "2024-04-01", "2024-04-30"},
		{"monthly december rollover", "monthly", "2023-12-25", "2023-12-01", "2023-12-31"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := DeriveRange(tc.reportType, mustDate(t, tc.anchor))
			if got := start.Format("2006-01-02"); got != tc.wantStart {
				t.Fatalf("start = %s, want %s", got, tc.wantStart)
			}
			if got := end.Format("2006-01-02"); got != tc.wantEnd {
				t.Fatalf("end = %s, want %s", got, tc.wantEnd)
			}
		})
	}
}

func TestDeriveRange_WeeklyAlwaysSpansMondayWeek(t *testing.T) {
	anchor := mustDate(t, "2024-01-01")
	for i := 0; i < 60; i++ {
		day := anchor.AddDate(0, 0, i)
		start, end := DeriveRange("weekly", day)

		if start.Weekday() != time.Monday {
			t.Fatalf("anchor %s: week starts on %s", day.Format("2006-01-02"), start.Weekday())
		}
		if end.Sub(start) != 6*24*time.Hour {
			t.Fatalf("anchor %s: span %v, want 6 days", day.Format("2006-01-02"), end.Sub(start))
		}
		if day.Before(start) || day.After(end) {
			t.Fatalf("anchor %s outside derived range [%s, %s]",
				day.Format("2006-01-02"), start.Format("2006-01-02"), end.Format("2006-01-02"))
		}
	}
}

func TestDailyReport_ChickenSalad(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := seedUser(t, db, "alice")

	seedEntry(t, db, user.ID, "2024-03-01", "Chicken Salad", f64(400), f64(30), f64(10), f64(20))

	payload, err := svc.Get(context.Background(), user.ID, "daily", mustDate(t, "2024-03-01"))
	if err != nil {
		t.Fatalf("get report: %v", err)
	}

	want := NutrientTotals{Calories: 400, Protein: 30, Carbs: 10, Fat: 20}
	if payload.Totals != want {
		t.Fatalf("totals = %+v, want %+v", payload.Totals, want)
	}
	if payload.StartDate != "2024-03-01" || payload.EndDate != "2024-03-01" {
		t.Fatalf("range = [%s, %s]", payload.StartDate, payload.EndDate)
	}

	day := payload.DailyData["2024-03-01"]
	if day == nil {
		t.Fatalf("missing daily bucket for 2024-03-01")
	}
	if len(day.Entries) != 1 || day.Entries[0].FoodName != "Chicken Salad" || day.Entries[0].Calories != 400 {
		t.Fatalf("unexpected entry summaries: %+v", day.Entries)
	}

	// 400 kcal < 1500 and 30 g < 50 g both trigger advisories.
	if len(payload.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2: %+v", len(payload.Recommendations), payload.Recommendations)
	}
	if payload.Recommendations[0].Type != "nutrient" || payload.Recommendations[0].Nutrient != "Protein" {
		t.Fatalf("first recommendation = %+v, want low-protein", payload.Recommendations[0])
	}
	if payload.Recommendations[1].Type != "calorie" {
		t.Fatalf("second recommendation = %+v, want low-calorie", payload.Recommendations[1])
	}
}

func TestWeeklyReport_SummationInvariant(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := seedUser(t, db, "bob")

	// Week of 2024-03-04 (Monday) through 2024-03-10.
	seedEntry(t, db, user.ID, "2024-03-04", "Oatmeal", f64(300), f64(10), f64(50), f64(5))
	seedEntry(t, db, user.ID, "2024-03-04", "Steak", f64(700), f64(60), f64(0), f64(40))
	seedEntry(t, db, user.ID, "2024-03-06", "Pasta", f64(600), f64(20), f64(90), f64(15))
	seedEntry(t, db, user.ID, "2024-03-10", "Soup", f64(250), f64(12), f64(30), f64(8))
	// Outside the range; must not be counted.
	seedEntry(t, db, user.ID, "2024-03-11", "Burger", f64(900), f64(40), f64(60), f64(50))

	payload, err := svc.Get(context.Background(), user.ID, "weekly", mustDate(t, "2024-03-07"))
	if err != nil {
		t.Fatalf("get report: %v", err)
	}

	want := NutrientTotals{Calories: 1850, Protein: 102, Carbs: 170, Fat: 68}
	if payload.Totals != want {
		t.Fatalf("totals = %+v, want %+v", payload.Totals, want)
	}

	var bucketed NutrientTotals
	entryCount := 0
	for _, day := range payload.DailyData {
		bucketed.Calories += day.Calories
		bucketed.Protein += day.Protein
		bucketed.Carbs += day.Carbs
		bucketed.Fat += day.Fat
		entryCount += len(day.Entries)
	}
	if bucketed != payload.Totals {
		t.Fatalf("per-day sums %+v != totals %+v", bucketed, payload.Totals)
	}
	if entryCount != 4 {
		t.Fatalf("bucketed %d entries, want 4", entryCount)
	}
	if len(payload.DailyData) != 3 {
		t.Fatalf("got %d day buckets, want 3", len(payload.DailyData))
	}
}

func TestReport_CacheIdempotence(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := seedUser(t, db, "carol")

	seedEntry(t, db, user.ID, "2024-03-01", "Chicken Salad", f64(400), f64(30), f64(10), f64(20))

	first, err := svc.Get(context.Background(), user.ID, "daily", mustDate(t, "2024-03-01"))
	if err != nil {
		t.Fatalf("first get: %v", err)
	}

	// New entries after caching must not affect the served report.
	seedEntry(t, db, user.ID, "2024-03-01", "Brownie", f64(500), f64(5), f64(70), f64(25))

	second, err := svc.Get(context.Background(), user.ID, "daily", mustDate(t, "2024-03-01"))
	if err != nil {
		t.Fatalf("second get: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached payload differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if second.Totals.Calories != 400 {
		t.Fatalf("stale cache not preserved, totals = %+v", second.Totals)
	}

	var count int64
	if err := db.Model(&models.NutritionReport{}).Count(&count).Error; err != nil {
		t.Fatalf("count reports: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 cache row, got %d", count)
	}
}

func TestReport_ThresholdBoundaries(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := seedUser(t, db, "dave")

	// Daily range: days = 0, so thresholds are 50 g protein and 1500 kcal.
	seedEntry(t, db, user.ID, "2024-05-01", "At threshold", f64(1500), f64(50), f64(0), f64(0))
	atLimit, err := svc.Get(context.Background(), user.ID, "daily", mustDate(t, "2024-05-01"))
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if len(atLimit.Recommendations) != 0 {
		t.Fatalf("equal-to-threshold intake triggered advisories: %+v", atLimit.Recommendations)
	}

	seedEntry(t, db, user.ID, "2024-05-02", "Just under", f64(1499), f64(49.5), f64(0), f64(0))
	under, err := svc.Get(context.Background(), user.ID, "daily", mustDate(t, "2024-05-02"))
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if len(under.Recommendations) != 2 {
		t.Fatalf("just-under intake should trigger both advisories, got %+v", under.Recommendations)
	}
}

func TestWeeklyReport_ThresholdUsesExclusiveDayCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := seedUser(t, db, "erin")

	// Weekly range: days = 6, thresholds 50*6+50 = 350 g and
	// 1500*6+1500 = 10500 kcal.
	seedEntry(t, db, user.ID, "2024-03-04", "Bulk", f64(10500), f64(350), f64(0), f64(0))
	ok, err := svc.Get(context.Background(), user.ID, "weekly", mustDate(t, "2024-03-04"))
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if len(ok.Recommendations) != 0 {
		t.Fatalf("weekly intake at thresholds triggered advisories: %+v", ok.Recommendations)
	}

	// Next week, one gram and one kcal short.
	seedEntry(t, db, user.ID, "2024-03-11", "Short", f64(10499), f64(349), f64(0), f64(0))
	short, err := svc.Get(context.Background(), user.ID, "weekly", mustDate(t, "2024-03-11"))
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if len(short.Recommendations) != 2 {
		t.Fatalf("weekly intake under thresholds should trigger both advisories, got %+v", short.Recommendations)
	}
}

func TestReport_NilNutrientsCountAsZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := seedUser(t, db, "frank")

	seedEntry(t, db, user.ID, "2024-06-01", "Mystery Dish", nil, nil, nil, nil)

	payload, err := svc.Get(context.Background(), user.ID, "daily", mustDate(t, "2024-06-01"))
	if err != nil {
		t.Fatalf("get report: %v", err)
	}

	if payload.Totals != (NutrientTotals{}) {
		t.Fatalf("totals = %+v, want zeros", payload.Totals)
	}
	day := payload.DailyData["2024-06-01"]
	if day == nil || len(day.Entries) != 1 {
		t.Fatalf("entry with nil nutrients missing from bucket: %+v", payload.DailyData)
	}
	if day.Entries[0].Calories != 0 {
		t.Fatalf("nil calories should read as 0, got %v", day.Entries[0].Calories)
	}
}

func TestReport_PersistsAdvisoryRowsOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := seedUser(t, db, "grace")

	seedEntry(t, db, user.ID, "2024-03-01", "Chicken Salad", f64(400), f64(30), f64(10), f64(20))

	if _, err := svc.Get(context.Background(), user.ID, "daily", mustDate(t, "2024-03-01")); err != nil {
		t.Fatalf("first get: %v", err)
	}

	var count int64
	if err := db.Model(&models.NutritionRecommendation{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count recommendations: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 advisory rows after compute, got %d", count)
	}

	// Cache hit must not create more rows.
	if _, err := svc.Get(context.Background(), user.ID, "daily", mustDate(t, "2024-03-01")); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if err := db.Model(&models.NutritionRecommendation{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count recommendations: %v", err)
	}
	if count != 2 {
		t.Fatalf("cache hit created advisory rows, total %d", count)
	}
}

func TestReport_ScopedToUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	alice := seedUser(t, db, "alice")
	mallory := seedUser(t, db, "mallory")

	seedEntry(t, db, alice.ID, "2024-03-01", "Chicken Salad", f64(400), f64(30), f64(10), f64(20))
	seedEntry(t, db, mallory.ID, "2024-03-01", "Pizza", f64(1200), f64(45), f64(120), f64(55))

	payload, err := svc.Get(context.Background(), alice.ID, "daily", mustDate(t, "2024-03-01"))
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if payload.Totals.Calories != 400 {
		t.Fatalf("report leaked other user's entries: %+v", payload.Totals)
	}
}
