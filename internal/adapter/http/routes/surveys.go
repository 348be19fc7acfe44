package routes

import (
	"levantamiento_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSurveys = "/surveys"
	PathBudget  = "/budget"
)

func addSurveyRoutes(rg *gin.RouterGroup, surveyHandler *handlers.SurveyHandler) {
	surveys := rg.Group(PathSurveys)
	{
		surveys.GET("/:id", surveyHandler.GetSurvey)
		surveys.PATCH("/:id/blocks/:block/approve", surveyHandler.ApproveBlock)
		surveys.PATCH("/:id/blocks/:block/reject", surveyHandler.RejectBlock)
		surveys.POST("/:id/approve-all", surveyHandler.ApproveAll)
		surveys.POST("/:id/reopen", surveyHandler.Reopen)
		surveys.GET("/:id/history", surveyHandler.History)
		surveys.GET("/:id/export", surveyHandler.Export)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	rg.POST(PathBudget+"/adjustment", budgetHandler.Adjust)
}
