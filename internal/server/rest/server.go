// Package rest exposes the HTTP surface of the notes backend: the
// authentication endpoints, the notes CRUD endpoints, and the token-checking
// middleware that gates mutating routes.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgeapi/notes/internal/logging"
	"github.com/forgeapi/notes/internal/server/models"
)

// UserService is the authentication service consumed by the handlers.
type UserService interface {
	Register(ctx context.Context, name, password string) (*models.User, error)
	Login(ctx context.Context, name, password string) (string, error)
}

// NoteService is the notes CRUD service consumed by the handlers.
type NoteService interface {
	List(ctx context.Context) ([]models.Note, error)
	Get(ctx context.Context, id string) (*models.Note, error)
	Create(ctx context.Context, text string) (*models.Note, error)
	Update(ctx context.Context, id string, text string) (*models.Note, error)
	Delete(ctx context.Context, id string) error
}

type RESTServer struct {
	address   string
	logger    logging.Logger
	users     UserService
	notes     NoteService
	jwtSecret []byte
}

func NewRESTServer(a string, l logging.Logger, us UserService, ns NoteService, secretKey string) *RESTServer {
	return &RESTServer{
		address:   a,
		logger:    l.With("module", "rest_server"),
		users:     us,
		notes:     ns,
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the gin engine with all routes registered. Only the mutating
// note routes sit behind the auth middleware; login, register and the read
// endpoints stay public.
func (s *RESTServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/login", s.loginHandler)
	r.POST("/register", s.registerHandler)

	r.GET("/notes", s.listNotesHandler)
	r.POST("/notes", s.createNoteHandler)
	r.GET("/notes/:id", s.getNoteHandler)

	protected := r.Group("/notes", s.authRequired())
	protected.PUT("/:id", s.updateNoteHandler)
	protected.DELETE("/:id", s.deleteNoteHandler)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *RESTServer) Run(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
