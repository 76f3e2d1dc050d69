package labor

import (
	"math"
	"reflect"
	"testing"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

func testEmployees() []models.Employee {
	return []models.Employee{
		{ID: "emp_1", Name: "Cook One", Role: models.RoleCook, HourlyRate: 20, Active: true},
		{ID: "emp_2", Name: "Server One", Role: models.RoleServer, HourlyRate: 15, Active: true},
		{ID: "emp_3", Name: "Driver One", Role: models.RoleDelivery, HourlyRate: 16, Active: true},
	}
}

func testShifts() []models.Shift {
	return []models.Shift{
		{ID: "s1", EmployeeID: "emp_1", Date: "2025-11-24", StartTime: "16:00", EndTime: "22:00", Role: models.RoleCook, ShiftType: models.ShiftDinner},
		{ID: "s2", EmployeeID: "emp_2", Date: "2025-11-24", StartTime: "11:00", EndTime: "15:00", Role: models.RoleServer, ShiftType: models.ShiftLunch},
		{ID: "s3", EmployeeID: "emp_3", Date: "2025-11-25", StartTime: "20:00", EndTime: "00:00", Role: models.RoleDelivery, ShiftType: models.ShiftLateNight},
		{ID: "s4", EmployeeID: "emp_1", Date: "2025-11-25", StartTime: "08:00", EndTime: "12:00", Role: models.RoleCook, ShiftType: models.ShiftMorningPrep},
	}
}

func testForecasts() []models.DailyForecast {
	return []models.DailyForecast{
		{Date: "2025-11-24", RevenueEstimate: 2000},
		{Date: "2025-11-25", RevenueEstimate: 1500},
	}
}

func TestAnalyzeTotals(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	analysis := analyzer.Analyze(testShifts(), testEmployees(), testForecasts())

	// emp_1: 6h*20 + 4h*20 = 200; emp_2: 4h*15 = 60; emp_3: 4h*16 = 64.
	if analysis.TotalCost != 324 {
		t.Errorf("TotalCost = %v, want 324", analysis.TotalCost)
	}
	if analysis.TotalHours != 18 {
		t.Errorf("TotalHours = %v, want 18", analysis.TotalHours)
	}
	// 324 / 3500 * 100 = 9.257... rounds to 9.3.
	if analysis.LaborPercentage != 9.3 {
		t.Errorf("LaborPercentage = %v, want 9.3", analysis.LaborPercentage)
	}
}

func TestAnalyzeOrderIndependence(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	shifts := testShifts()
	reversed := make([]models.Shift, len(shifts))
	for i, shift := range shifts {
		reversed[len(shifts)-1-i] = shift
	}
	rotated := append(shifts[2:], shifts[:2]...)

	base := analyzer.Analyze(shifts, testEmployees(), testForecasts())
	for name, variant := range map[string][]models.Shift{"reversed": reversed, "rotated": rotated} {
		got := analyzer.Analyze(variant, testEmployees(), testForecasts())
		if !reflect.DeepEqual(base, got) {
			t.Errorf("%s input changed the analysis:\nbase: %+v\ngot:  %+v", name, base, got)
		}
	}
}

func TestAnalyzeGroupedSumsMatchTotals(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	analysis := analyzer.Analyze(testShifts(), testEmployees(), testForecasts())

	var roleCost, dayCost float64
	for _, role := range analysis.ByRole {
		roleCost += role.Cost
	}
	for _, day := range analysis.ByDay {
		dayCost += day.Cost
	}

	if math.Abs(roleCost-analysis.TotalCost) > 0.01*float64(len(analysis.ByRole)) {
		t.Errorf("sum(byRole.cost) = %v, total = %v", roleCost, analysis.TotalCost)
	}
	if math.Abs(dayCost-analysis.TotalCost) > 0.01*float64(len(analysis.ByDay)) {
		t.Errorf("sum(byDay.cost) = %v, total = %v", dayCost, analysis.TotalCost)
	}
}

func TestAnalyzeByDayStaffCount(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	shifts := testShifts()
	// Second shift for emp_1 on the 24th must not inflate the distinct count.
	shifts = append(shifts, models.Shift{
		ID: "s5", EmployeeID: "emp_1", Date: "2025-11-24",
		StartTime: "08:00", EndTime: "12:00", Role: models.RoleCook, ShiftType: models.ShiftMorningPrep,
	})

	analysis := analyzer.Analyze(shifts, testEmployees(), testForecasts())
	for _, day := range analysis.ByDay {
		if day.Date == "2025-11-24" && day.StaffCount != 2 {
			t.Errorf("StaffCount on 2025-11-24 = %d, want 2 distinct employees", day.StaffCount)
		}
	}
}

func TestAnalyzeSkipsUnknownEmployee(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	shifts := []models.Shift{
		{ID: "s1", EmployeeID: "emp_ghost", Date: "2025-11-24", StartTime: "16:00", EndTime: "22:00", Role: models.RoleCook, ShiftType: models.ShiftDinner},
	}

	analysis := analyzer.Analyze(shifts, testEmployees(), testForecasts())
	if analysis.TotalCost != 0 || analysis.TotalHours != 0 {
		t.Errorf("unknown employee contributed to aggregates: %+v", analysis)
	}
	if len(analysis.ByRole) != 0 || len(analysis.ByDay) != 0 {
		t.Errorf("unknown employee produced breakdowns: %+v", analysis)
	}
}

func TestAnalyzeZeroRevenue(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	analysis := analyzer.Analyze(testShifts(), testEmployees(), nil)
	if analysis.LaborPercentage != 0 {
		t.Errorf("LaborPercentage with zero revenue = %v, want 0", analysis.LaborPercentage)
	}
	if analysis.TotalCost != 324 {
		t.Errorf("TotalCost = %v, want 324", analysis.TotalCost)
	}
}

func TestAnalyzeEmptyShifts(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	analysis := analyzer.Analyze(nil, testEmployees(), testForecasts())
	if analysis.TotalCost != 0 || analysis.TotalHours != 0 || analysis.LaborPercentage != 0 {
		t.Errorf("empty shift set produced nonzero metrics: %+v", analysis)
	}
}

func TestAnalyzeOvernightShift(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	shifts := []models.Shift{
		{ID: "s1", EmployeeID: "emp_2", Date: "2025-11-24", StartTime: "20:00", EndTime: "00:00", Role: models.RoleServer, ShiftType: models.ShiftLateNight},
	}

	analysis := analyzer.Analyze(shifts, testEmployees(), testForecasts())
	if analysis.TotalHours != 4 {
		t.Errorf("overnight shift hours = %v, want 4", analysis.TotalHours)
	}
	if analysis.TotalCost != 60 {
		t.Errorf("overnight shift cost = %v, want 60", analysis.TotalCost)
	}
}
