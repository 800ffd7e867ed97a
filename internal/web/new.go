package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/minutes"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server is the upload form in front of the summarizer.
type Server struct {
	summarizer     minutes.Summarizer
	logger         logger.Logger
	router         *gin.Engine
	addr           string
	maxUploadBytes int64
	httpServer     *http.Server
}

// New builds the router and its routes. Call Run to start listening.
func New(s minutes.Summarizer, cfg config.ServerConfig, log logger.Logger) *Server {
	srv := &Server{
		summarizer:     s,
		logger:         log,
		addr:           cfg.Addr,
		maxUploadBytes: cfg.MaxUploadBytes,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.MaxUploadBytes
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	router.GET("/", srv.index)
	router.POST("/", srv.generate)
	router.GET("/healthz", srv.health)

	srv.router = router
	return srv
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
