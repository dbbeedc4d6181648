package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats serves listing counts and rate limiter state.
func (h *Handler) GetStats(c *gin.Context) {
	counts, err := h.db.CountProperties()
	if err != nil {
		h.log.WithError(err).Error("stats query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties": counts,
		"rate_limit": h.limiter.StatsFor(c.ClientIP()),
	})
}

// TriggerReindex rebuilds the search index from the database on
// demand.
func (h *Handler) TriggerReindex(c *gin.Context) {
	if h.scheduler == nil || h.search == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search is not configured"})
		return
	}

	go func() {
		if err := h.scheduler.RunNow(); err != nil {
			h.log.WithError(err).Error("manual reindex failed")
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"message": "Reindex started"})
}
