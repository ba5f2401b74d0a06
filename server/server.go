// Package server exposes the PDF-to-Excel conversion over HTTP: a multipart
// upload endpoint that runs a conversion job and a download endpoint for
// the produced workbook.
//
// Every upload is an independent job with its own working directory and
// its own converter; requests run on separate goroutines and share no
// mutable state.
package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	hbapdf "github.com/ODET-hub/HBA-PDF-to-EXCEL"
)

// Config holds server configuration
type Config struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// WorkDir is the root for per-job upload directories
	WorkDir string

	// OutputDir holds produced workbooks served for download
	OutputDir string

	// MaxUploadBytes caps the accepted PDF size
	// Default: 32 MiB
	MaxUploadBytes int64

	// Language is the OCR language passed to each job
	Language string
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		WorkDir:        "uploads",
		OutputDir:      "output",
		MaxUploadBytes: 32 << 20,
		Language:       "eng",
	}
}

// Server handles conversion requests
type Server struct {
	config Config
	log    *logrus.Logger
	engine *gin.Engine
}

// New creates a server and registers its routes. The work and output
// directories are created if missing.
func New(config Config, log *logrus.Logger) (*Server, error) {
	if config.MaxUploadBytes <= 0 {
		config.MaxUploadBytes = 32 << 20
	}
	if log == nil {
		log = logrus.New()
	}

	for _, dir := range []string{config.WorkDir, config.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	s := &Server{
		config: config,
		log:    log,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.engine.MaxMultipartMemory = config.MaxUploadBytes

	s.engine.GET("/healthz", s.handleHealth)
	s.engine.POST("/convert", s.handleConvert)
	s.engine.GET("/output/:filename", s.handleDownload)

	return s, nil
}

// Handler returns the HTTP handler, for tests and custom servers
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the server on the configured address and blocks
func (s *Server) Run() error {
	s.log.WithField("addr", s.config.Addr).Info("listening")
	return s.engine.Run(s.config.Addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleConvert accepts a multipart "file" field holding a PDF, converts
// it, and responds with the produced workbook's download path and the
// document summary.
func (s *Server) handleConvert(c *gin.Context) {
	upload, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}

	name := sanitizeFilename(upload.Filename)
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .pdf uploads are accepted"})
		return
	}
	if upload.Size > s.config.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	jobID := uuid.NewString()
	jobDir := filepath.Join(s.config.WorkDir, jobID)
	if err := os.MkdirAll(jobDir, 0o755); err != nil {
		s.log.WithError(err).Error("failed to create job dir")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	defer os.RemoveAll(jobDir)

	pdfPath := filepath.Join(jobDir, name)
	if err := c.SaveUploadedFile(upload, pdfPath); err != nil {
		s.log.WithError(err).Error("failed to store upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	outName := strings.TrimSuffix(name, filepath.Ext(name)) + "_" + jobID[:8] + ".xlsx"
	outPath := filepath.Join(s.config.OutputDir, outName)

	log := s.log.WithFields(logrus.Fields{"job": jobID, "file": name})
	log.Info("conversion started")

	doc, err := hbapdf.Open(pdfPath).
		Language(s.config.Language).
		Convert(outPath)
	if err != nil {
		log.WithError(err).Warn("conversion failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	summary := doc.Summary()
	log.WithFields(logrus.Fields{
		"blocks": doc.BlockCount(),
		"tables": summary.Tables,
		"empty":  doc.IsEmpty(),
	}).Info("conversion finished")

	c.JSON(http.StatusOK, gin.H{
		"download": "/output/" + outName,
		"empty":    doc.IsEmpty(),
		"summary": gin.H{
			"tables":     summary.Tables,
			"lists":      summary.Lists,
			"headers":    summary.Headers,
			"paragraphs": summary.Paragraphs,
		},
	})
}

// handleDownload serves a produced workbook as an attachment
func (s *Server) handleDownload(c *gin.Context) {
	name := sanitizeFilename(c.Param("filename"))
	path := filepath.Join(s.config.OutputDir, name)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.FileAttachment(path, name)
}

// sanitizeFilename strips any path components from an untrusted filename
func sanitizeFilename(name string) string {
	name = filepath.Base(filepath.Clean(name))
	name = strings.ReplaceAll(name, "..", "")
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
