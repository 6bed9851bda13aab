package user

import (
	"errors"

	userRepo "homefix/database/repository/user"
	"homefix/utils"
)

var errInvalidCredentials = utils.NewUnauthorizedError("invalid email or password")

// translate maps repository failures onto client-facing error kinds.
func translate(err error, action string) error {
	switch {
	case errors.Is(err, userRepo.ErrNotFound):
		return utils.NewNotFoundError("user not found")
	case errors.Is(err, userRepo.ErrDuplicateEmail):
		return utils.NewConflictError("user already exists")
	default:
		return utils.NewDependencyError(action+" failed, please try again", err)
	}
}
