package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seongmin-h/decisionlog/backend/internal/apierror"
	"github.com/seongmin-h/decisionlog/backend/internal/logger"
	"github.com/seongmin-h/decisionlog/backend/internal/models"
	"github.com/seongmin-h/decisionlog/backend/internal/repository"
	"github.com/seongmin-h/decisionlog/backend/internal/service"
)

type DecisionHandler struct {
	decisionService service.DecisionService
}

// NewDecisionHandler creates a new decision handler
func NewDecisionHandler(decisionService service.DecisionService) *DecisionHandler {
	return &DecisionHandler{decisionService: decisionService}
}

// userID extracts the authenticated user from the gin context. The auth
// middleware guarantees it for every route in the protected group.
func userID(c *gin.Context) (string, bool) {
	id, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return "", false
	}
	return id.(string), true
}

// writeServiceError maps service and repository failures onto problem
// responses, hiding internal details from the client.
func writeServiceError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)

	switch {
	case errors.Is(err, repository.ErrNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "decision", c.Param("id")))
	case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrInvalidResult):
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), err.Error()))
	default:
		logger.Ctx(c.Request.Context()).Error("decision request failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// ListDecisions handles GET /api/v1/decisions
func (h *DecisionHandler) ListDecisions(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	list, err := h.decisionService.ListDecisions(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// CreateDecision handles POST /api/v1/decisions
func (h *DecisionHandler) CreateDecision(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.CreateDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(
			apierror.GetRequestID(c), err.Error(), "Invalid request body"))
		return
	}

	decision, err := h.decisionService.CreateDecision(c.Request.Context(), uid, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, decision)
}

// GetDecision handles GET /api/v1/decisions/:id
func (h *DecisionHandler) GetDecision(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	decision, err := h.decisionService.GetDecision(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}

// UpdateDecision handles PATCH /api/v1/decisions/:id
//
// Two modes are supported: a body with "result" records an outcome
// (optionally adjusting confidence and meta), any other body edits the
// decision's details.
func (h *DecisionHandler) UpdateDecision(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.UpdateDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(
			apierror.GetRequestID(c), err.Error(), "Invalid request body"))
		return
	}

	decision, err := h.decisionService.UpdateDecision(c.Request.Context(), uid, c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}

// DeleteDecision handles DELETE /api/v1/decisions/:id
func (h *DecisionHandler) DeleteDecision(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.decisionService.DeleteDecision(c.Request.Context(), uid, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
