package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

// ExportCSV renders a schedule and its roster into a flat tabular report.
// Hours and cost are recomputed per row with the same formulas the analyzer
// uses, so rows sum to the schedule aggregates modulo rounding. Shifts
// referencing unknown employees are skipped, matching the analyzer's policy.
func ExportCSV(schedule models.Schedule, employees []models.Employee) string {
	byID := make(map[string]models.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	var b strings.Builder
	b.WriteString("Employee,Role,Date,Day,Start,End,Hours,Rate,Cost\n")

	for _, shift := range schedule.Shifts {
		emp, ok := byID[shift.EmployeeID]
		if !ok {
			continue
		}

		hours, err := shift.Hours()
		if err != nil {
			continue
		}
		cost := hours * emp.HourlyRate

		b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s,$%s,$%.2f\n",
			emp.Name,
			shift.Role,
			shift.Date,
			models.DayName(shift.Date),
			shift.StartTime,
			shift.EndTime,
			formatNumber(hours),
			formatNumber(emp.HourlyRate),
			cost))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total Labor Hours,%s\n", formatNumber(schedule.TotalLaborHours)))
	b.WriteString(fmt.Sprintf("Total Labor Cost,$%.2f\n", schedule.TotalLaborCost))
	b.WriteString(fmt.Sprintf("Projected Revenue,$%.2f\n", schedule.ProjectedRevenue))
	b.WriteString(fmt.Sprintf("Labor Percentage,%.1f%%\n", schedule.LaborPercentage))

	return b.String()
}

// formatNumber prints a float without trailing zeros, so whole hours render
// as "4" rather than "4.000000".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
