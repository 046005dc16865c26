package dto

import (
	"skill-gap/internal/pipeline"
	"skill-gap/internal/usecase"
)

type AnalyzeRequest struct {
	Text    string `json:"text" validate:"max=200000"`
	URL     string `json:"url" validate:"omitempty,url,max=2048"`
	Persist *bool  `json:"persist"`
}

type ExtractRequest struct {
	Text string `json:"text" validate:"max=200000"`
}

type LearningPathRequest struct {
	Skills []string `json:"skills" validate:"max=100,dive,max=100"`
}

type CurrentAnalysisResponse struct {
	State  usecase.SessionState    `json:"state"`
	Result *usecase.AnalysisResult `json:"result"`
}

type HistoryResponse struct {
	Items []usecase.AnalysisResult `json:"items"`
	Total int                      `json:"total"`
}

type LearningPathResponse struct {
	pipeline.LearningPath
	Source string `json:"source"`
}
