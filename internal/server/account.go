package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	AccountID   string `form:"account_id" json:"account_id"`
	AccessToken string `form:"access_token" json:"access_token"`
}

// ShowAccount renders the account of the current user. Administrators have
// no account of their own and are rejected.
func (s *Server) ShowAccount(c *gin.Context) {
	sess, ok := s.sessions.Current(c)
	if !ok || sess.Admin {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	account, err := s.accountSvc.GetByID(c.Request.Context(), sess.AccountID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// Login signs a user in with the account id and access token. A user who is
// already signed in (and is not an administrator) is redirected as is.
func (s *Server) Login(c *gin.Context) {
	if sess, ok := s.sessions.Current(c); ok && !sess.Admin {
		c.Redirect(http.StatusFound, "/account")
		return
	}

	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	account, err := s.accountSvc.Login(c.Request.Context(), req.AccountID, req.AccessToken)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.LogIn(c, account.ID, false)
	c.Redirect(http.StatusFound, "/account")
}
