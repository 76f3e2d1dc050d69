package roster

import (
	"context"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

// StaticRoster serves the built-in development roster, used when no Google
// Sheet is configured and in tests.
type StaticRoster struct{}

// NewStaticRoster returns the development roster source.
func NewStaticRoster() *StaticRoster {
	return &StaticRoster{}
}

// ListEmployees returns a copy of the development roster.
func (r *StaticRoster) ListEmployees(_ context.Context) ([]models.Employee, error) {
	employees := make([]models.Employee, len(devRoster))
	copy(employees, devRoster)
	return employees, nil
}

var devRoster = []models.Employee{
	{
		ID:         "emp_001",
		Name:       "Marco Rossi",
		Role:       models.RoleCook,
		HourlyRate: 22.0,
		Availability: models.Availability{
			models.Monday: true, models.Tuesday: true, models.Wednesday: true,
			models.Thursday: true, models.Friday: true, models.Saturday: false, models.Sunday: false,
		},
		MaxHoursPerWeek: 40,
		Skills:          []string{"pizza_specialist", "oven_certified"},
		HireDate:        "2023-01-15",
		Active:          true,
	},
	{
		ID:         "emp_002",
		Name:       "Sofia Chen",
		Role:       models.RoleCook,
		HourlyRate: 20.0,
		Availability: models.Availability{
			models.Monday: false, models.Tuesday: false, models.Wednesday: true,
			models.Thursday: true, models.Friday: true, models.Saturday: true, models.Sunday: true,
		},
		MaxHoursPerWeek: 35,
		Skills:          []string{"pizza_specialist"},
		HireDate:        "2023-06-01",
		Active:          true,
	},
	{
		ID:         "emp_003",
		Name:       "James Wilson",
		Role:       models.RoleServer,
		HourlyRate: 15.0,
		Availability: models.Availability{
			models.Monday: true, models.Tuesday: true, models.Wednesday: true,
			models.Thursday: true, models.Friday: true, models.Saturday: true, models.Sunday: false,
		},
		MaxHoursPerWeek: 30,
		Skills:          []string{"cashier", "customer_service"},
		HireDate:        "2024-02-10",
		Active:          true,
	},
	{
		ID:         "emp_004",
		Name:       "Emma Rodriguez",
		Role:       models.RoleDelivery,
		HourlyRate: 16.0,
		Availability: models.Availability{
			models.Monday: false, models.Tuesday: false, models.Wednesday: true,
			models.Thursday: true, models.Friday: true, models.Saturday: true, models.Sunday: true,
		},
		MaxHoursPerWeek: 25,
		Skills:          []string{"driver_license", "navigation"},
		HireDate:        "2024-03-20",
		Active:          true,
	},
	{
		ID:         "emp_005",
		Name:       "Alex Kumar",
		Role:       models.RoleDelivery,
		HourlyRate: 16.0,
		Availability: models.Availability{
			models.Monday: true, models.Tuesday: true, models.Wednesday: true,
			models.Thursday: true, models.Friday: false, models.Saturday: false, models.Sunday: false,
		},
		MaxHoursPerWeek: 25,
		Skills:          []string{"driver_license", "navigation"},
		HireDate:        "2024-05-15",
		Active:          true,
	},
	{
		ID:         "emp_006",
		Name:       "Olivia Taylor",
		Role:       models.RolePrep,
		HourlyRate: 17.0,
		Availability: models.Availability{
			models.Monday: true, models.Tuesday: true, models.Wednesday: true,
			models.Thursday: true, models.Friday: true, models.Saturday: false, models.Sunday: false,
		},
		MaxHoursPerWeek: 30,
		Skills:          []string{"food_prep", "inventory"},
		HireDate:        "2023-09-01",
		Active:          true,
	},
	{
		ID:         "emp_007",
		Name:       "Michael Brown",
		Role:       models.RoleManager,
		HourlyRate: 28.0,
		Availability: models.Availability{
			models.Monday: true, models.Tuesday: true, models.Wednesday: true,
			models.Thursday: true, models.Friday: true, models.Saturday: true, models.Sunday: true,
		},
		MaxHoursPerWeek: 45,
		Skills:          []string{"management", "scheduling", "inventory", "customer_service"},
		HireDate:        "2022-03-01",
		Active:          true,
	},
	{
		ID:         "emp_008",
		Name:       "Isabella Martinez",
		Role:       models.RoleServer,
		HourlyRate: 15.0,
		Availability: models.Availability{
			models.Monday: false, models.Tuesday: false, models.Wednesday: false,
			models.Thursday: true, models.Friday: true, models.Saturday: true, models.Sunday: true,
		},
		MaxHoursPerWeek: 28,
		Skills:          []string{"cashier", "customer_service"},
		HireDate:        "2024-01-05",
		Active:          true,
	},
}
