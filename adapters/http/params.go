package http

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/pkg/apperror"
)

// openUpload returns the multipart file under field, rejecting anything over
// maxImageSize.
func openUpload(c *gin.Context, field string) (multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, apperror.NewInvalidInput("file is required", errors.New("multipart field \""+field+"\" is required"))
	}
	if header.Size > maxImageSize {
		return nil, apperror.NewInvalidInput("file too large", fmt.Errorf("file must be at most %d MB", maxImageSize>>20))
	}
	file, err := header.Open()
	if err != nil {
		return nil, apperror.NewInternal("failed to open uploaded file", err)
	}
	return file, nil
}

func parseIDParam(c *gin.Context, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.NewInvalidInput("invalid "+resource+" ID", fmt.Errorf("invalid %s ID", resource))
	}
	return id, nil
}
