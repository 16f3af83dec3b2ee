package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"big5-analyzer/internal/domain"
)

// Scorer produce los cinco puntajes para un texto.
type Scorer func(text string) domain.Big5Scores

// PredictHandler atiende POST /predict en el stub de desarrollo.
type PredictHandler struct {
	logger *zap.Logger
	scorer Scorer
}

// NewPredictHandler crea el handler con el scorer indicado.
func NewPredictHandler(logger *zap.Logger, scorer Scorer) *PredictHandler {
	return &PredictHandler{
		logger: logger,
		scorer: scorer,
	}
}

// Predict maneja POST /predict y responde {"scores": {...}, "profiles": [...]}.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid predict request", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request"})
		return
	}

	scores := h.scorer(req.Text)
	c.JSON(http.StatusOK, gin.H{
		"scores":   scores.Map(),
		"profiles": scores.ProfileRules(),
	})
}

// Health maneja GET /healthz.
func (h *PredictHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
