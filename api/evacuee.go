package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/floodrelief/relief-api/parser"
	"github.com/floodrelief/relief-api/schema"
	"github.com/floodrelief/relief-api/store"
)

const evacueeStatsCacheKey = "evacuee-stats"

func (s *Server) searchEvacuees(c *gin.Context) {
	evacuees, err := s.store.SearchEvacuees(c.Request.Context(), c.Query("q"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"evacuees": evacuees})
}

func (s *Server) evacueeStats(c *gin.Context) {
	if stats, ok := s.statsCache.Get(evacueeStatsCacheKey); ok {
		c.JSON(http.StatusOK, stats)
		return
	}

	stats, err := s.store.EvacueeStats(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	s.statsCache.Set(evacueeStatsCacheKey, stats, cache.DefaultExpiration)
	c.JSON(http.StatusOK, stats)
}

// parseRoster reads a pasted shelter roster, one evacuee per line
func (s *Server) parseRoster(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}

	evacuees := parser.ParseRoster(text)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    evacuees,
		"count":   len(evacuees),
	})
}

func (s *Server) importEvacuees(c *gin.Context) {
	var params struct {
		Evacuees []schema.Evacuee `json:"evacuees"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if len(params.Evacuees) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorNoEvacuees)
		return
	}

	now := time.Now().UTC()
	for i := range params.Evacuees {
		params.Evacuees[i].PrepareImport(now)
	}

	result := s.store.BulkInsertEvacuees(c.Request.Context(), params.Evacuees)
	s.statsCache.Delete(evacueeStatsCacheKey)

	log.WithFields(logrus.Fields{
		"success": result.SuccessCount,
		"failed":  result.ErrorCount,
	}).Info("import evacuees")

	c.JSON(http.StatusOK, struct {
		Message string `json:"message"`
		store.BulkResult
	}{
		Message:    "Import completed",
		BulkResult: result,
	})
}
