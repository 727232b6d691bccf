package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"max.ks1230/finance-tracker/internal/model/auth"
)

type loginRequest struct {
	Pin flexString `json:"pin"`
}

type changePinRequest struct {
	CurrentPin flexString `json:"current_pin"`
	NewPin     flexString `json:"new_pin"`
}

func (s *Server) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, token, maxAge, "/", "", s.secureCookie, true)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON")
		return
	}

	token, err := s.auth.Login(c.Request.Context(), req.Pin.String())
	if err != nil {
		respondError(c, err)
		return
	}

	// zero max age keeps it a browser-session cookie
	s.setSessionCookie(c, token, int(s.sessionTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"message": "Logged in successfully"})
}

func (s *Server) handleLogout(c *gin.Context) {
	s.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (s *Server) handleMe(c *gin.Context) {
	token, _ := c.Cookie(s.cookieName)
	_, err := s.auth.Verify(token)
	c.JSON(http.StatusOK, gin.H{"authenticated": err == nil})
}

func (s *Server) handleChangePin(c *gin.Context) {
	var req changePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON")
		return
	}

	session, _ := auth.SessionFrom(c.Request.Context())
	err := s.auth.ChangePin(c.Request.Context(), session, req.CurrentPin.String(), req.NewPin.String())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PIN updated successfully"})
}
