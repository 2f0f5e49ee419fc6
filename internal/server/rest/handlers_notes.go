package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// noteChangeset is the body of note create and update requests.
type noteChangeset struct {
	Text string `json:"text" binding:"required"`
}

func (s *RESTServer) listNotesHandler(c *gin.Context) {
	notes, err := s.notes.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "listing notes failed", "error", err.Error())
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (s *RESTServer) getNoteHandler(c *gin.Context) {
	note, err := s.notes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (s *RESTServer) createNoteHandler(c *gin.Context) {
	var req noteChangeset
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "missing text")
		return
	}

	note, err := s.notes.Create(c.Request.Context(), req.Text)
	if err != nil {
		s.logger.Error(c.Request.Context(), "creating note failed", "error", err.Error())
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (s *RESTServer) updateNoteHandler(c *gin.Context) {
	var req noteChangeset
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "missing text")
		return
	}

	note, err := s.notes.Update(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (s *RESTServer) deleteNoteHandler(c *gin.Context) {
	if err := s.notes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
