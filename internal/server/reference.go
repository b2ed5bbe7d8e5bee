package server

import (
	"net/http"

	"github.com/flusio/soutenir/internal/reference"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"countries": reference.Countries()})
}
