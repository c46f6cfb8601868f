package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/signbridge/signbridge/internal/compose"
)

// textRequest is the /beautify body.
type textRequest struct {
	Text string `json:"text" binding:"required"`
}

// structuredRequest is the /process-words body. Context defaults to
// "medical"; the timestamp is accepted but currently unused.
type structuredRequest struct {
	Words     []string `json:"words" binding:"required"`
	Context   string   `json:"context"`
	Timestamp string   `json:"timestamp"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Sign Language Grammar Corrector API is running"})
}

// handleBeautify runs grammar correction directly on the raw text. It does
// not route through the medical sentence rules; the composer is reachable
// only via /process-words.
func (s *Server) handleBeautify(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s.corrector == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "grammar correction is not configured"})
		return
	}

	corrected, err := s.corrector.Correct(c.Request.Context(), req.Text)
	if err != nil {
		s.log.Error("grammar correction failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "grammar correction failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"input":      req.Text,
		"beautified": corrected,
	})
}

// handleProcessWords runs the structured composer over a recognized gloss
// word sequence.
func (s *Server) handleProcessWords(c *gin.Context) {
	var req structuredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Context == "" {
		req.Context = "medical"
	}

	result, err := s.composer.ComposeWords(c.Request.Context(), req.Words, req.Context)
	if err != nil {
		s.log.Error("compose words failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "sentence composition failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"input_words":  req.Words,
		"context":      req.Context,
		"beautified":   result,
		"word_count":   len(req.Words),
		"unique_words": compose.Unique(req.Words),
	})
}
