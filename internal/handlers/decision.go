package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/initium-os/axiom-backend/internal/services"
	"github.com/initium-os/axiom-backend/internal/types"
)

type DecisionHandler struct {
	decisionService services.DecisionService
}

func NewDecisionHandler(decisionService services.DecisionService) *DecisionHandler {
	return &DecisionHandler{decisionService: decisionService}
}

func (dh *DecisionHandler) Analyze(c *gin.Context) {
	var req types.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	result, err := dh.decisionService.Analyze(c.Request.Context(), &req)
	if err != nil {
		var aiErr *services.AIAnalysisError
		if errors.As(err, &aiErr) {
			RespondError(c, http.StatusInternalServerError, aiErr.Kind, aiErr)
			return
		}
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
