package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careermatch/models"
	"careermatch/utils"
)

// ListOpportunities serves the feed with optional type and latest filters.
func ListOpportunities(c *gin.Context) {
	category := c.Query("category")
	switch category {
	case "", "hackathon", "internship", "job":
	default:
		utils.BadRequestError(c, "Unknown category", nil)
		return
	}

	latestOnly := c.Query("latest") == "true"

	opportunities := models.FilterCatalog(category, latestOnly)
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"opportunities": opportunities,
		"total":         len(opportunities),
	})
}

// GetOpportunity serves a single posting by id.
func GetOpportunity(c *gin.Context) {
	op, found := models.CatalogByID(c.Param("id"))
	if !found {
		utils.NotFoundError(c, "Opportunity not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"opportunity": op,
	})
}
