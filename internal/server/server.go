package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abhisek/mathtutor/internal/tutor"
	"github.com/abhisek/mathtutor/web"
)

// Server exposes the tutoring service over HTTP JSON endpoints and serves
// the embedded browser UI. Anyone holding a session identifier may query
// or submit against it; there are no accounts.
type Server struct {
	svc    *tutor.Service
	engine *gin.Engine
}

// New builds the router. Endpoints are stateless; every request stands
// alone against the store and the model.
func New(svc *tutor.Service) *Server {
	s := &Server{svc: svc}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.POST("/problem", s.generateProblem)
	r.GET("/problem/:sessionId", s.getProblem)
	r.POST("/problem/submit", s.submitAnswer)
	r.POST("/problem/reveal", s.revealAnswer)
	r.POST("/problem/history", s.history)

	r.GET("/", servePage("index.html"))
	r.GET("/history", servePage("history.html"))

	s.engine = r
	return s
}

// Run starts the HTTP server on addr. Blocks until the server stops.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler returns the underlying handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// servePage serves an embedded UI page.
func servePage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := web.Static.ReadFile("static/" + name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "page not found"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", b)
	}
}
