// Package seed inserts baseline reference data on startup.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/repositories"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
	"github.com/ardiansetya/coursehub/internal/pkg/logger"
)

// defaultCategories are created once so course creation works out of the box
var defaultCategories = []string{
	"Frontend Development",
	"Backend Development",
	"Fullstack Development",
	"UI/UX Design",
	"Data Science",
	"DevOps",
}

// Categories inserts the default categories that do not exist yet
func Categories(ctx context.Context, categories *repositories.CategoryRepository) error {
	for _, name := range defaultCategories {
		_, err := categories.GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrCategoryNotFound) {
			return fmt.Errorf("error checking category %q: %w", name, err)
		}

		if err := categories.Create(ctx, &models.Category{Name: name}); err != nil {
			return fmt.Errorf("error seeding category %q: %w", name, err)
		}
		logger.Info().Str("category", name).Msg("Seeded category")
	}

	return nil
}
