package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// credentialsRequest is the body of both /login and /register.
type credentialsRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *RESTServer) loginHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "missing name or password")
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		s.logger.Warn(c.Request.Context(), "login failed", "name", req.Name, "error", err.Error())
		respondServiceError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "login ok", "name", req.Name)
	respondOK(c, http.StatusOK, gin.H{"token": token})
}

func (s *RESTServer) registerHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "missing name or password")
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		s.logger.Error(c.Request.Context(), "registration failed", "name", req.Name, "error", err.Error())
		respondServiceError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "registered", "name", user.Name)
	// Only the public fields leave the server; the hash never does.
	respondOK(c, http.StatusOK, gin.H{"user": user.Name})
}
