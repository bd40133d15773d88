package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination reads the skip/limit query parameters every list endpoint
// accepts, falling back to 0/100 on absent or malformed values.
func Pagination(c *gin.Context) (skip, limit int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	return skip, limit
}
