// Package api exposes the coaching core over HTTP as a JSON API.
package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aldenmarsh/fitcoach/internal/assistant"
	"github.com/aldenmarsh/fitcoach/internal/service"
)

type Server struct {
	engine   *gin.Engine
	profiles service.ProfileService
	notes    service.NoteService
	coach    *assistant.Coach
	macros   *assistant.MacroGenerator
	log      *zap.SugaredLogger
}

func NewServer(profiles service.ProfileService, notes service.NoteService, coach *assistant.Coach, macros *assistant.MacroGenerator, log *zap.SugaredLogger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	engine.Use(cors.New(corsCfg))

	s := &Server{
		engine:   engine,
		profiles: profiles,
		notes:    notes,
		coach:    coach,
		macros:   macros,
		log:      log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.engine.Group("/api")

	api.POST("/profiles", s.createProfile)
	api.GET("/profiles", s.listProfiles)
	api.GET("/profiles/:name", s.getProfile)
	api.DELETE("/profiles/:name", s.deleteProfile)

	api.PUT("/profiles/:name/general", s.updateGeneral)
	api.PUT("/profiles/:name/goals", s.updateGoals)
	api.PUT("/profiles/:name/nutrition", s.updateNutrition)

	api.POST("/profiles/:name/notes", s.addNote)
	api.GET("/profiles/:name/notes", s.listNotes)
	api.DELETE("/notes/:id", s.deleteNote)

	api.POST("/profiles/:name/ask", s.ask)
	api.POST("/profiles/:name/macros", s.generateMacros)
}

// Run blocks serving HTTP on the given address.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the underlying engine for tests.
func (s *Server) Handler() *gin.Engine {
	return s.engine
}
