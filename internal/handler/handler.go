package handler

import (
	"errors"
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service failures onto the error taxonomy:
// validation failures answer 400 with the first violation message,
// everything else is a persistence failure answering 500.
func respondServiceError(c *gin.Context, err error) {
	var verr service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.Error(verr.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
}
