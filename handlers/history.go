package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-emotive/db"
)

// HistoryHandler lists recent analyses. A nil store means history is off.
func HistoryHandler(c *gin.Context, store db.Store) {
	if store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": db.ErrDisabled.Error()})
		return
	}

	limit := db.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	results, err := store.Recent(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(results), "results": results})
}
