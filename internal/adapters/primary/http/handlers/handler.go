package handlers

import (
	"tokenomics-lab/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	simulationSvc  *services.SimulationService
	scenarioSvc    *services.ScenarioService
	analysisSvc    *services.AnalysisService
	reportSvc      *services.ReportService
	environmentSvc *services.EnvironmentService
}

func New(
	simulationSvc *services.SimulationService,
	scenarioSvc *services.ScenarioService,
	analysisSvc *services.AnalysisService,
	reportSvc *services.ReportService,
	environmentSvc *services.EnvironmentService,
) *Handler {
	return &Handler{
		simulationSvc:  simulationSvc,
		scenarioSvc:    scenarioSvc,
		analysisSvc:    analysisSvc,
		reportSvc:      reportSvc,
		environmentSvc: environmentSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Ad-hoc Simulation & Analysis
	r.POST("/simulate", h.Simulate)
	r.POST("/analyze", h.Analyze)

	// Environment
	r.GET("/environment", h.GetEnvironment)

	// Scenarios
	r.GET("/scenarios", h.ListScenarios)
	r.GET("/scenarios/:id", h.GetScenario)
	r.POST("/scenarios", h.CreateScenario)
	r.PATCH("/scenarios/:id", h.UpdateScenario)
	r.DELETE("/scenarios/:id", h.DeleteScenario)

	// Simulation Runs (nested under scenario)
	r.GET("/scenarios/:id/runs", h.ListRuns)
	r.POST("/scenarios/:id/runs", h.ExecuteRun)

	// Simulation Runs (direct access)
	r.GET("/runs/:id", h.GetRun)
	r.DELETE("/runs/:id", h.DeleteRun)

	// Reports
	r.GET("/reports", h.ListReports)
	r.GET("/reports/:id", h.GetReport)
	r.POST("/reports", h.GenerateReport)
	r.DELETE("/reports/:id", h.DeleteReport)
}
