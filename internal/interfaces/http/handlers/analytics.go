// internal/interfaces/http/handlers/analytics.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/retail-insights/internal/config"
	"github.com/your-org/retail-insights/internal/dataset"
	"github.com/your-org/retail-insights/internal/domain/analytics"
)

// AnalyticsHandler handles the dashboard analytics endpoints
type AnalyticsHandler struct {
	analyticsService *analytics.Service
	config           *config.Config
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(store *dataset.Store, cfg *config.Config) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analytics.NewService(store, cfg),
		config:           cfg,
	}
}

// yearParam parses the optional ?year= filter. Zero means all years.
func yearParam(c *gin.Context) (int, error) {
	raw := c.Query("year")
	if raw == "" || raw == "All" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid year: %q", raw)
	}
	return year, nil
}

// GetOverview handles GET /overview
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Overview retrieved successfully",
		"data":    h.analyticsService.GetOverview(year),
	})
}

// GetSalesReport handles GET /analytics/sales
func (h *AnalyticsHandler) GetSalesReport(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sales report retrieved successfully",
		"data":    h.analyticsService.GetSalesReport(year),
	})
}

// GetRevenueReport handles GET /revenue
func (h *AnalyticsHandler) GetRevenueReport(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	topN, _ := strconv.Atoi(c.DefaultQuery("top_n", "10"))
	if topN <= 0 || topN > 50 {
		topN = 10
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Revenue report retrieved successfully",
		"data":    h.analyticsService.GetRevenueReport(year, topN),
	})
}

// ExportSalesReport handles GET /analytics/sales/export. The response
// is a CSV attachment of the profit trend rows.
func (h *AnalyticsHandler) ExportSalesReport(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	filename := "sales_report.csv"
	if year != 0 {
		filename = fmt.Sprintf("sales_report_%d.csv", year)
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := analytics.WriteTrendCSV(c.Writer, h.analyticsService.GetTrend(year)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to export sales report",
		})
		return
	}
}
