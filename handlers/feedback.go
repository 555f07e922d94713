package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-emotive/feedback"
	"go-emotive/types"
)

type FeedbackSubmitter interface {
	Submit(ctx context.Context, text string) error
}

func FeedbackHandler(c *gin.Context, submitter FeedbackSubmitter) {
	var request types.Feedback
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if strings.TrimSpace(request.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter some feedback before submitting"})
		return
	}

	if err := submitter.Submit(c.Request.Context(), request.Text); err != nil {
		c.Error(err)
		body := gin.H{"error": "Failed to submit feedback", "details": err.Error()}
		var se *feedback.SubmitError
		if errors.As(err, &se) {
			body["upstreamStatus"] = se.StatusCode
		}
		c.JSON(http.StatusBadGateway, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your feedback!"})
}
