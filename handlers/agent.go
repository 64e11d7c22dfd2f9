package handlers

import (
	"net/http"

	"checkingo/services/intake"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgentHandler exposes the password gate and the lead dashboard.
type AgentHandler struct {
	Service intake.WizardService
	Logger  *zap.Logger
}

func NewAgentHandler(service intake.WizardService, logger *zap.Logger) *AgentHandler {
	return &AgentHandler{Service: service, Logger: logger}
}

// Login checks the shared passphrase. A wrong passphrase is not an HTTP
// error: the session comes back with its passwordError flag set and the
// prompt still open.
func (h *AgentHandler) Login(c *gin.Context) {
	var input struct {
		Passphrase string `json:"passphrase"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SubmitPassphrase(c.Param("id"), input.Passphrase)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if session.PasswordError {
		h.Logger.Warn("agent login rejected", zap.String("sessionId", session.SessionID))
	}
	c.JSON(http.StatusOK, session)
}

// Cancel closes the password prompt and discards the typed input.
func (h *AgentHandler) Cancel(c *gin.Context) {
	session, err := h.Service.CancelPrompt(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Back leaves the dashboard for the landing screen.
func (h *AgentHandler) Back(c *gin.Context) {
	session, err := h.Service.AgentBack(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Leads returns the dashboard list, newest first.
func (h *AgentHandler) Leads(c *gin.Context) {
	leads, err := h.Service.Leads(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// LeadDetail returns one submission with its derived contact link.
func (h *AgentHandler) LeadDetail(c *gin.Context) {
	detail, err := h.Service.LeadDetail(c.Param("id"), c.Param("leadId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
