package server

import (
	"github.com/gin-gonic/gin"
)

// AdminRequired only lets authenticated administrators through.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := s.sessions.Current(c)
		if !ok || !sess.Admin {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		c.Next()
	}
}
