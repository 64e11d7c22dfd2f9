package handlers

import (
	"net/http"

	"checkingo/services/intake"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the traveler-facing wizard flow.
type WizardHandler struct {
	Service intake.WizardService
	Logger  *zap.Logger
}

func NewWizardHandler(service intake.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Service: service, Logger: logger}
}

// StartSession creates a new wizard session on the landing screen.
func (h *WizardHandler) StartSession(c *gin.Context) {
	session := h.Service.StartSession()
	c.JSON(http.StatusCreated, session)
}

// GetSession returns the current session view.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Start routes the landing choice: traveler goes straight to the form,
// agent opens the password prompt overlay.
func (h *WizardHandler) Start(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id := c.Param("id")
	switch input.Role {
	case "traveler":
		session, err := h.Service.ChooseTraveler(id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	case "agent":
		session, err := h.Service.OpenAgentPrompt(id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be traveler or agent"})
	}
}

// ApplyField writes one form input event.
func (h *WizardHandler) ApplyField(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Value   string `json:"value"`
		Checked bool   `json:"checked"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.ApplyFieldInput(c.Param("id"), input.Name, input.Value, input.Checked)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// FinderQuestions returns the fixed finder question list for rendering.
func (h *WizardHandler) FinderQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": intake.FinderQuestions()})
}

// SelectFinderOption answers the current finder question; the final
// answer blocks on the advisor call and returns the suggestions.
func (h *WizardHandler) SelectFinderOption(c *gin.Context) {
	var input struct {
		Key   string `json:"key" binding:"required"`
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectFinderOption(c.Request.Context(), c.Param("id"), input.Key, input.Value)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AcceptSuggestion adopts one of the pending AI suggestions.
func (h *WizardHandler) AcceptSuggestion(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.AcceptSuggestion(c.Param("id"), input.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Submit finalizes the profile and moves to the success screen.
func (h *WizardHandler) Submit(c *gin.Context) {
	session, err := h.Service.Submit(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Reset returns the session to the landing screen.
func (h *WizardHandler) Reset(c *gin.Context) {
	session, err := h.Service.Reset(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Tips returns the post-submission travel tips for the success screen.
func (h *WizardHandler) Tips(c *gin.Context) {
	tips, err := h.Service.Tips(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

// Plans returns the upsell tiers with personalized WhatsApp links.
func (h *WizardHandler) Plans(c *gin.Context) {
	plans, err := h.Service.Plans(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}
