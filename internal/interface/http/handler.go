package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/cosmic-blueprint/internal/domain/lifestage"
	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
	apperrors "github.com/yanqian/cosmic-blueprint/pkg/errors"
)

// Handler wires the HTTP transport to the reading service.
type Handler struct {
	readingSvc reading.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(readingSvc reading.Service, logger *slog.Logger) *Handler {
	return &Handler{
		readingSvc: readingSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// GenerateReading computes a profile and asks the model for the narrative.
func (h *Handler) GenerateReading(c *gin.Context) {
	var req reading.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, errMessage(err), err))
		return
	}

	resp, err := h.readingSvc.Generate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetReading returns an archived reading.
func (h *Handler) GetReading(c *gin.Context) {
	resp, err := h.readingSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CalculateProfile returns the calculation-only profile.
func (h *Handler) CalculateProfile(c *gin.Context) {
	var req reading.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, errMessage(err), err))
		return
	}

	profile, err := h.readingSvc.Profile(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

type lifeStageOption struct {
	Key   lifestage.Stage `json:"key"`
	Label string          `json:"label"`
	Icon  string          `json:"icon"`
}

// LifeStages lists the accepted lifeStage values for input forms.
func (h *Handler) LifeStages(c *gin.Context) {
	stages := lifestage.Stages()
	out := make([]lifeStageOption, 0, len(stages))
	for _, s := range stages {
		out = append(out, lifeStageOption{Key: s, Label: lifestage.Label(s), Icon: lifestage.Icon(s)})
	}
	c.JSON(http.StatusOK, gin.H{"lifeStages": out})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
