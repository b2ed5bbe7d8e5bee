package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

// RenderInvoice materializes the PDF invoice of a payment under the
// configured invoices directory.
func (s *Server) RenderInvoice(c *gin.Context) {
	paymentID, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil || paymentID == 0 {
		AbortWithError(c, ErrNotFound)
		return
	}

	path := filepath.Join(s.cfg.InvoicesDir, fmt.Sprintf("facture_%s.pdf", paymentID))
	if err := s.invoiceSvc.CreatePDFForPayment(c.Request.Context(), paymentID, path); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"path": path})
}
