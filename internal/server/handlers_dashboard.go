package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"max.ks1230/finance-tracker/internal/model/reports"
)

func (s *Server) handleDashboard(c *gin.Context) {
	period := reports.ParsePeriod(c.Query("period"))

	d, err := s.dashboard.Dashboard(c.Request.Context(), period, s.clock.Today())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
