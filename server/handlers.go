package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cardgen-ai/cardgen/llm"
	"github.com/cardgen-ai/cardgen/logger"
	"github.com/cardgen-ai/cardgen/model"
)

type generateRequest struct {
	ProductName     string `json:"productName"`
	ProductCategory string `json:"productCategory"`
	ProductFeatures string `json:"productFeatures"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: s.service,
		Version: s.version,
	})
}

func (s *Server) handleGenerateProduct(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input := model.ProductInput{
		Name:     strings.TrimSpace(req.ProductName),
		Category: strings.TrimSpace(req.ProductCategory),
		Features: strings.TrimSpace(req.ProductFeatures),
	}
	if !input.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productName and productCategory are required"})
		return
	}

	if s.generator == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": llm.ErrMissingAPIKey.Error()})
		return
	}

	result, err := s.generator.Generate(c.Request.Context(), input)
	if err != nil {
		logger.Errorf("Generation failed for request %s: %v", c.GetString(requestIDKey), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
