package services

import (
	"concept-visualizer/internal/logger"
	"concept-visualizer/internal/models"
)

// AssessmentService runs prediction checks and logs their outcome.
type AssessmentService struct {
	table  *models.AssessmentTable
	logger logger.Logger
}

func NewAssessmentService(table *models.AssessmentTable, log logger.Logger) *AssessmentService {
	return &AssessmentService{
		table:  table,
		logger: log,
	}
}

func (as *AssessmentService) Check(name, text string) models.CheckResult {
	result := as.table.CheckPrediction(name, text)

	as.logger.Debug("AssessmentService", "prediction checked", map[string]interface{}{
		"simulation": name,
		"input":      text,
		"outcome":    result.Outcome.String(),
	})
	return result
}
