package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

type createPotUsageRequest struct {
	Amount    int64  `form:"amount" json:"amount"`
	Frequency string `form:"frequency" json:"frequency"`
}

type movePotUsagesRequest struct {
	UsageIDs  []string `json:"usage_ids"`
	AccountID string   `json:"account_id"`
}

// ShowPotAmount returns the amount currently available in the common pot.
func (s *Server) ShowPotAmount(c *gin.Context) {
	amount, err := s.potSvc.AvailableAmount(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"amount": amount})
}

// CreatePotUsage draws from the common pot for the current user.
func (s *Server) CreatePotUsage(c *gin.Context) {
	sess, ok := s.sessions.Current(c)
	if !ok || sess.Admin {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req createPotUsageRequest
	if err := c.ShouldBind(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	usage, err := s.potSvc.CreateUsage(c.Request.Context(), sess.AccountID, req.Amount, req.Frequency)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pot_usage": usage})
}

// MovePotUsages reassigns pot usages to another account, as an
// administrative correction.
func (s *Server) MovePotUsages(c *gin.Context) {
	var req movePotUsagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	accountID, err := snowflake.ParseString(strings.TrimSpace(req.AccountID))
	if err != nil || accountID == 0 {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	usageIDs := make([]snowflake.ID, 0, len(req.UsageIDs))
	for _, raw := range req.UsageIDs {
		id, err := snowflake.ParseString(strings.TrimSpace(raw))
		if err != nil || id == 0 {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		usageIDs = append(usageIDs, id)
	}

	if err := s.potSvc.MoveToAccountID(c.Request.Context(), usageIDs, accountID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
