package roster

import (
	"context"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

// Provider supplies the full employee roster. The scheduler never writes
// back through it.
type Provider interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
}
