package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aldenmarsh/fitcoach/internal/assistant"
	"github.com/aldenmarsh/fitcoach/internal/domain"
	"github.com/aldenmarsh/fitcoach/internal/llm"
	"github.com/aldenmarsh/fitcoach/internal/repository"
	"github.com/aldenmarsh/fitcoach/internal/service"
)

func (s *Server) createProfile(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	p, err := s.profiles.GetOrCreateByName(c.Request.Context(), req.Name)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfilePayload(p))
}

func (s *Server) listProfiles(c *gin.Context) {
	names, err := s.profiles.ListNames(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"names": names})
}

func (s *Server) getProfile(c *gin.Context) {
	p, err := s.lookup(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfilePayload(p))
}

func (s *Server) deleteProfile(c *gin.Context) {
	if err := s.profiles.DeleteByName(c.Request.Context(), c.Param("name")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) updateGeneral(c *gin.Context) {
	p, err := s.lookup(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	var req generalPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.profiles.SaveGeneral(c.Request.Context(), p.ID, req.toDomain()); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) updateGoals(c *gin.Context) {
	p, err := s.lookup(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	var req struct {
		Goals []string `json:"goals"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.profiles.SaveGoals(c.Request.Context(), p.ID, req.Goals); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) updateNutrition(c *gin.Context) {
	p, err := s.lookup(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	var req nutritionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.profiles.SaveNutrition(c.Request.Context(), p.ID, req.toDomain()); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) addNote(c *gin.Context) {
	p, err := s.lookup(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	n, err := s.notes.Add(c.Request.Context(), p.ID, req.Text)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toNotePayload(n))
}

func (s *Server) listNotes(c *gin.Context) {
	p, err := s.lookup(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	notes, err := s.notes.ListByUser(c.Request.Context(), p.ID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	payloads := make([]notePayload, 0, len(notes))
	for _, n := range notes {
		payloads = append(payloads, toNotePayload(n))
	}
	c.JSON(http.StatusOK, gin.H{"notes": payloads})
}

func (s *Server) deleteNote(c *gin.Context) {
	if err := s.notes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) ask(c *gin.Context) {
	p, err := s.lookup(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	var req struct {
		Question string        `json:"question"`
		History  []turnPayload `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	answer, err := s.coach.Ask(c.Request.Context(), req.Question, p, toTurns(req.History))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

func (s *Server) generateMacros(c *gin.Context) {
	p, err := s.lookup(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	m, err := s.macros.Generate(c.Request.Context(), p.General, p.Goals)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// lookup resolves the :name path parameter to an existing profile.
func (s *Server) lookup(c *gin.Context) (*domain.Profile, error) {
	return s.profiles.GetByName(c.Request.Context(), c.Param("name"))
}

func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrEmptyNote),
		errors.Is(err, assistant.ErrEmptyQuestion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, llm.ErrProviderUnavailable),
		errors.Is(err, llm.ErrTimeout),
		errors.Is(err, llm.ErrEmptyResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		s.log.Errorw("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
