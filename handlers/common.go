package handlers

import (
	"io"
	"path/filepath"
	"strconv"

	"homefix/middleware"
	"homefix/models"
	"homefix/utils"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps multipart uploads.
const maxUploadBytes = 5 << 20

// caller returns the authenticated identity or writes 401.
func caller(c *gin.Context) (models.Identity, bool) {
	id, ok := middleware.Identity(c)
	if !ok {
		utils.RespondError(c, utils.NewUnauthorizedError("authentication required"))
	}
	return id, ok
}

// bindJSON decodes the body into v or writes 400.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request body: %v", err))
		return false
	}
	return true
}

func queryBool(c *gin.Context, key string) bool {
	b, _ := strconv.ParseBool(c.Query(key))
	return b
}

// formFile opens the named multipart file, enforcing the upload cap.
func formFile(c *gin.Context, field string) (string, io.ReadCloser, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("%s file is required", field))
		return "", nil, false
	}
	if fh.Size > maxUploadBytes {
		utils.RespondError(c, utils.NewValidationError("%s must be at most %d MB", field, maxUploadBytes>>20))
		return "", nil, false
	}
	f, err := fh.Open()
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("could not read %s", field))
		return "", nil, false
	}
	return filepath.Base(fh.Filename), f, true
}
