package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-emotive/analysis"
	"go-emotive/langdetect"
	"go-emotive/types"
)

type Analyzer interface {
	Analyze(ctx context.Context, text string) (types.AnalysisResult, error)
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeHandler runs the full pipeline on the posted text.
func AnalyzeHandler(c *gin.Context, analyzer Analyzer) {
	var request analyzeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := analyzer.Analyze(c.Request.Context(), request.Text)
	if err != nil {
		c.Error(err)
		c.JSON(analysisStatus(err), gin.H{"error": analysisMessage(err), "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// analysisStatus maps pipeline errors onto HTTP status codes.
func analysisStatus(err error) int {
	if errors.Is(err, analysis.ErrEmptyInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, langdetect.ErrUndetermined) {
		return http.StatusUnprocessableEntity
	}
	var se *analysis.StageError
	if errors.As(err, &se) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func analysisMessage(err error) string {
	if errors.Is(err, analysis.ErrEmptyInput) {
		return "Please enter some text"
	}
	var se *analysis.StageError
	if errors.As(err, &se) {
		switch se.Stage {
		case analysis.StageDetect:
			if errors.Is(err, langdetect.ErrUndetermined) {
				return "Could not detect the language of the text"
			}
			return "Language detection failed"
		case analysis.StageTranslate:
			return "Translation failed"
		default:
			return "Model inference failed"
		}
	}
	return "Analysis failed"
}
