package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/config"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

// rosterRange is the sheet holding one employee per row:
// ID, Name, Role, HourlyRate, MaxHoursPerWeek, AvailableDays, Skills, HireDate, Active.
const rosterRange = "Roster!A2:I"

// SheetRoster loads the employee roster from a Google Sheet. The scheduler
// only ever reads it; roster edits happen in the spreadsheet.
type SheetRoster struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewSheetRoster builds a Google Sheets backed roster source.
func NewSheetRoster(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*SheetRoster, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &SheetRoster{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// ListEmployees fetches and parses the roster rows. Malformed rows are
// skipped with a debug log rather than failing the whole roster.
func (r *SheetRoster) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, rosterRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read roster range %s: %w", rosterRange, err)
	}

	var employees []models.Employee
	for i, row := range resp.Values {
		emp, err := parseEmployeeRow(row)
		if err != nil {
			r.logger.Debug("skip malformed roster row", zap.Int("row", i+2), zap.Error(err))
			continue
		}
		employees = append(employees, emp)
	}

	r.logger.Info("roster loaded from sheet", zap.Int("employees", len(employees)))
	return employees, nil
}

func parseEmployeeRow(row []interface{}) (models.Employee, error) {
	if len(row) < 9 {
		return models.Employee{}, fmt.Errorf("expected 9 columns, got %d", len(row))
	}

	cells := make([]string, 9)
	for i := 0; i < 9; i++ {
		cells[i] = strings.TrimSpace(fmt.Sprint(row[i]))
	}

	role := models.Role(strings.ToLower(cells[2]))
	if !role.Valid() {
		return models.Employee{}, fmt.Errorf("unknown role %q", cells[2])
	}

	rate, err := strconv.ParseFloat(cells[3], 64)
	if err != nil || rate < 0 {
		return models.Employee{}, fmt.Errorf("invalid hourly rate %q", cells[3])
	}

	maxHours, err := strconv.ParseFloat(cells[4], 64)
	if err != nil || maxHours <= 0 {
		return models.Employee{}, fmt.Errorf("invalid max hours %q", cells[4])
	}

	availability := make(models.Availability, len(models.Weekdays))
	for _, day := range models.Weekdays {
		availability[day] = false
	}
	for _, token := range strings.Split(cells[5], ",") {
		day := models.DayOfWeek(strings.ToLower(strings.TrimSpace(token)))
		if _, ok := availability[day]; ok {
			availability[day] = true
		}
	}

	var skills []string
	for _, token := range strings.Split(cells[6], ",") {
		if skill := strings.TrimSpace(token); skill != "" {
			skills = append(skills, skill)
		}
	}

	active := strings.EqualFold(cells[8], "true") || cells[8] == "1" || strings.EqualFold(cells[8], "yes")

	return models.Employee{
		ID:              cells[0],
		Name:            cells[1],
		Role:            role,
		HourlyRate:      rate,
		Availability:    availability,
		MaxHoursPerWeek: maxHours,
		Skills:          skills,
		HireDate:        cells[7],
		Active:          active,
	}, nil
}
