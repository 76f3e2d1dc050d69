package anthropic

import (
	"encoding/json"
	"fmt"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

// buildPrompt renders the scheduling optimizer prompt around the planning
// context JSON.
func buildPrompt(planning models.PlanningContext) (string, error) {
	contextJSON, err := json.MarshalIndent(planning, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal planning context: %w", err)
	}

	return fmt.Sprintf(`You are PizzAI's scheduling optimizer. Generate an optimal weekly staff schedule.

Context Data:
%s

IMPORTANT INSTRUCTIONS:
1. Match staffing levels to demand forecasts (higher demand = more staff)
2. Account for special events and their impact multipliers
3. Respect employee availability and max hours
4. Try to keep labor cost within %.0f%% of projected revenue
5. Ensure minimum coverage for each role during operating hours
6. Prioritize experienced staff (earlier hire dates) for high-demand shifts
7. Balance shifts fairly across the week for each employee
8. Consider peak windows when scheduling roles (e.g., more delivery drivers during peak)
9. For Super Bowl or major events (multiplier > 2.0), schedule ALL available staff
10. For slow days (multiplier < 0.5), schedule minimal staff

Generate a JSON response with this structure:
{
  "shifts": [
    {
      "employee_id": "emp_001",
      "date": "2025-11-24",
      "start_time": "16:00",
      "end_time": "22:00",
      "role": "cook",
      "shift_type": "dinner"
    }
  ],
  "recommendations": [
    "Recommendation 1",
    "Recommendation 2"
  ],
  "warnings": [
    "Warning about understaffing, over-budget, etc."
  ]
}

Respond with ONLY the JSON object, no markdown or explanation.`, contextJSON, planning.Constraints.TargetLaborPercentage), nil
}
