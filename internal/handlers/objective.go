package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/initium-os/axiom-backend/internal/services"
	"github.com/initium-os/axiom-backend/internal/types"
)

type ObjectiveHandler struct {
	objectiveService services.ObjectiveService
}

func NewObjectiveHandler(objectiveService services.ObjectiveService) *ObjectiveHandler {
	return &ObjectiveHandler{objectiveService: objectiveService}
}

func (oh *ObjectiveHandler) Create(c *gin.Context) {
	var input types.ObjectiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	objective, err := oh.objectiveService.Create(c.Request.Context(), &input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, objective)
}

func (oh *ObjectiveHandler) List(c *gin.Context) {
	activeOnly := true
	if raw := c.Query("active_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "validation_error", fmt.Errorf("active_only must be a boolean"))
			return
		}
		activeOnly = parsed
	}
	objectives, err := oh.objectiveService.List(c.Request.Context(), activeOnly)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, objectives)
}

func (oh *ObjectiveHandler) Get(c *gin.Context) {
	objectiveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot belong to anyone.
		RespondError(c, http.StatusNotFound, "not_found", services.ErrNotFound)
		return
	}
	objective, err := oh.objectiveService.Get(c.Request.Context(), objectiveID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, objective)
}

func (oh *ObjectiveHandler) Update(c *gin.Context) {
	objectiveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "not_found", services.ErrNotFound)
		return
	}
	var input types.ObjectiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	objective, err := oh.objectiveService.Update(c.Request.Context(), objectiveID, &input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, objective)
}

func (oh *ObjectiveHandler) Delete(c *gin.Context) {
	objectiveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "not_found", services.ErrNotFound)
		return
	}
	if err := oh.objectiveService.Delete(c.Request.Context(), objectiveID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
