package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const formField = "transcript_file"

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// generate reads the uploaded transcript and renders the minutes.
// Upload problems are shown on the form; generation is not attempted.
func (s *Server) generate(c *gin.Context) {
	ctx := c.Request.Context()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes+1<<20)

	fh, err := c.FormFile(formField)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			s.formError(c, fmt.Sprintf("Error processing file: upload exceeds %d bytes", s.maxUploadBytes))
		case errors.Is(err, http.ErrMissingFile) && s.fieldSentEmpty(c):
			s.formError(c, "No file selected.")
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			s.formError(c, "No file uploaded.")
		default:
			s.formError(c, fmt.Sprintf("Error processing file: %v", err))
		}
		return
	}
	if fh.Filename == "" {
		s.formError(c, "No file selected.")
		return
	}

	transcript, err := readTranscript(fh, s.maxUploadBytes)
	if err != nil {
		s.logger.Warn(ctx, "Rejected upload %s: %v", fh.Filename, err)
		s.formError(c, fmt.Sprintf("Error processing file: %v", err))
		return
	}

	s.logger.Info(ctx, "Generating minutes for %s (%d bytes)", fh.Filename, len(transcript))

	// once started, generation runs to completion even if the client goes away
	text := s.summarizer.Generate(context.WithoutCancel(ctx), transcript)

	c.HTML(http.StatusOK, "result.html", gin.H{"Minutes": text})
}

// fieldSentEmpty reports whether the browser posted the file input with no
// file chosen; such a part has an empty filename and parses as a plain value.
func (s *Server) fieldSentEmpty(c *gin.Context) bool {
	form := c.Request.MultipartForm
	if form == nil {
		return false
	}
	_, ok := form.Value[formField]
	return ok
}

func (s *Server) formError(c *gin.Context, msg string) {
	c.HTML(http.StatusBadRequest, "index.html", gin.H{"Error": msg})
}

// readTranscript reads an uploaded file and requires valid UTF-8.
func readTranscript(fh *multipart.FileHeader, limit int64) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("upload exceeds %d bytes", limit)
	}
	if !utf8.Valid(data) {
		return "", errors.New("transcript is not valid UTF-8 text")
	}
	return string(data), nil
}
