package booking

import (
	"errors"

	bookingRepo "homefix/database/repository/booking"
	catalogRepo "homefix/database/repository/catalog"
	technicianRepo "homefix/database/repository/technician"
	userRepo "homefix/database/repository/user"
	"homefix/utils"
)

func translate(err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrNotFound):
		return utils.NewNotFoundError("booking not found")
	case errors.Is(err, bookingRepo.ErrStale):
		return utils.NewConflictError("booking was modified by another request, please retry")
	case errors.Is(err, catalogRepo.ErrNotFound):
		return utils.NewNotFoundError("service not found")
	case errors.Is(err, technicianRepo.ErrNotFound):
		return utils.NewNotFoundError("technician not found")
	case errors.Is(err, userRepo.ErrNotFound):
		return utils.NewNotFoundError("user not found")
	default:
		return utils.NewDependencyError("booking operation failed", err)
	}
}
