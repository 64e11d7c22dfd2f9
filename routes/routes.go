package routes

import (
	"strings"
	"time"

	"checkingo/config"
	"checkingo/handlers"
	"checkingo/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the CORS policy and every endpoint of the wizard
// service onto the router.
func RegisterRoutes(r *gin.Engine, wizard *handlers.WizardHandler, agent *handlers.AgentHandler) {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	origins := config.AppConfig.AllowedOrigins
	if origins == "" || origins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", handlers.Health)

	api := r.Group("/api/sessions")
	{
		api.POST("", wizard.StartSession)

		session := api.Group("/:id")
		session.Use(middleware.SessionIDMiddleware())
		{
			session.GET("", wizard.GetSession)
			session.POST("/start", wizard.Start)
			session.POST("/reset", wizard.Reset)

			session.POST("/agent/login", agent.Login)
			session.POST("/agent/cancel", agent.Cancel)
			session.POST("/agent/back", agent.Back)
			session.GET("/agent/leads", agent.Leads)
			session.GET("/agent/leads/:leadId", agent.LeadDetail)

			session.POST("/form/field", wizard.ApplyField)
			session.GET("/form/finder", wizard.FinderQuestions)
			session.POST("/form/finder/select", wizard.SelectFinderOption)
			session.POST("/form/suggestion", wizard.AcceptSuggestion)
			session.POST("/form/submit", wizard.Submit)

			session.GET("/tips", wizard.Tips)
			session.GET("/plans", wizard.Plans)
		}
	}
}
