package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-emotive/export"
	"go-emotive/types"
)

type exportRequest struct {
	Labels  []string             `json:"labels"`
	Scores  []float64            `json:"scores"`
	Emotion *types.EmotionResult `json:"emotion"`
}

// ExportHandler renders emotion probabilities as a CSV (default) or JSON download.
func ExportHandler(c *gin.Context) {
	var request exportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	labels, scores := request.Labels, request.Scores
	if len(labels) == 0 && len(scores) == 0 && request.Emotion != nil {
		labels, scores = request.Emotion.Labels, request.Emotion.Scores
	}

	var (
		buf         bytes.Buffer
		err         error
		filename    string
		contentType string
	)
	switch format := c.DefaultQuery("format", "csv"); format {
	case "csv":
		err = export.WriteCSV(&buf, labels, scores)
		filename, contentType = export.CSVFilename, "text/csv; charset=utf-8"
	case "json":
		err = export.WriteJSON(&buf, labels, scores)
		filename, contentType = export.JSONFilename, "application/json; charset=utf-8"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported format %q", format)})
		return
	}

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, export.ErrLengthMismatch) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": "Failed to export emotions", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
