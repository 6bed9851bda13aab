package technician

import (
	"errors"
	"strings"

	technicianRepo "homefix/database/repository/technician"
	"homefix/models"
	"homefix/utils"
)

func translate(err error, action string) error {
	switch {
	case errors.Is(err, technicianRepo.ErrNotFound):
		return utils.NewNotFoundError("technician not found")
	case errors.Is(err, technicianRepo.ErrDuplicateProfile):
		return utils.NewConflictError("technician profile already exists")
	}
	return utils.NewDependencyError("failed to "+action, err)
}

func validateSpecializations(specs []models.Specialization) error {
	if len(specs) == 0 {
		return utils.NewValidationError("at least one specialization is required")
	}
	for _, s := range specs {
		if !s.Valid() {
			return utils.NewValidationError("invalid specialization %q", s)
		}
	}
	return nil
}

func validateExperience(years int) error {
	if years < 0 {
		return utils.NewValidationError("experience cannot be negative")
	}
	return nil
}

func cleanLocation(loc string) string {
	return strings.TrimSpace(loc)
}
