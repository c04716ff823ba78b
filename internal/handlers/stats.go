package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	stats StatsProvider
}

func NewStatsHandler(stats StatsProvider) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Dashboard handles GET /stats
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		handleRepositoryError(c, err, "Stats", "fetch")
		return
	}
	c.JSON(http.StatusOK, stats)
}
