package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoCache disables client and proxy caching. New joins and referrals must
// show on the leaderboard immediately.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
