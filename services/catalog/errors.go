package catalog

import (
	"errors"

	catalogRepo "homefix/database/repository/catalog"
	"homefix/utils"
)

func translate(err error, what string) error {
	if errors.Is(err, catalogRepo.ErrNotFound) {
		return utils.NewNotFoundError("%s not found", what)
	}
	return utils.NewDependencyError("failed to access "+what, err)
}
