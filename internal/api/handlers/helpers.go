package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rishikesh183/auction-tracker/internal/auction"
)

// respondSuccess writes the standard {success, data} envelope
func respondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// respondError maps a gateway error onto the wire: validation failures carry
// their message with a 400, anything else is logged and flattened to a
// generic 500 so store details never leak to viewers.
func respondError(c *gin.Context, err error, fallback string) {
	if auction.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[API] %s: %v", fallback, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
