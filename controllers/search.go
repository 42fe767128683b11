// controllers/search.go
package controllers

import (
	"net/http"
	"securetrack-backend/config"
	"securetrack-backend/models"
	"securetrack-backend/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

// SearchResult pairs a purchase with the serial that matched the query.
type SearchResult struct {
	models.PurchasedItem
	MatchedSerialNumber string `json:"matched_serial_number"`
}

// SearchSerials finds every purchase whose serial list contains the queried
// serial exactly. Serial lists are stored as JSON text, so containment is a
// match on the quoted element.
func SearchSerials(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	var purchases []models.PurchasedItem
	pattern := `%"` + query + `"%`
	if err := config.DB.Preload("Shop").
		Where("serial_numbers LIKE ?", pattern).
		Find(&purchases).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Search failed")
		return
	}

	results := make([]SearchResult, 0, len(purchases))
	for _, p := range purchases {
		// The LIKE match is a prefilter; confirm exact membership.
		for _, sn := range p.SerialNumbers {
			if sn == query {
				results = append(results, SearchResult{PurchasedItem: p, MatchedSerialNumber: sn})
				break
			}
		}
	}

	c.JSON(http.StatusOK, results)
}
