package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/floodrelief/relief-api/external/llm"
	"github.com/floodrelief/relief-api/parser"
	"github.com/floodrelief/relief-api/schema"
	"github.com/floodrelief/relief-api/utils"
)

type parseParams struct {
	Text string `json:"text"`
}

// bindText reads the pasted text of a parse call. It aborts the request and
// returns false when the text is missing.
func bindText(c *gin.Context) (string, bool) {
	var params parseParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return "", false
	}

	if strings.TrimSpace(params.Text) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorTextRequired)
		return "", false
	}

	return params.Text, true
}

func (s *Server) parseRequests(c *gin.Context) {
	s.extractWith(c, s.ruleExtractor)
}

func (s *Server) parseRequestsWithAI(c *gin.Context) {
	s.extractWith(c, s.aiExtractor)
}

func (s *Server) extractWith(c *gin.Context, e parser.Extractor) {
	text, ok := bindText(c)
	if !ok {
		return
	}

	candidates, err := e.Extract(c.Request.Context(), text)
	if err != nil {
		var parseErr *llm.ParseError

		switch {
		case errors.Is(err, llm.ErrMissingAPIKey):
			log.Error("llm api key is missing")
			abortWithEncoding(c, http.StatusInternalServerError,
				errorLLMNotConfigured.withDetails("Configuration Error", "llm api key is missing on server"), err)
		case errors.As(err, &parseErr):
			sentry.CaptureException(err)
			title := "AI parsing failed"
			if errors.Is(err, llm.ErrNoJSONArray) {
				title = "AI did not return valid JSON"
			}
			abortWithEncoding(c, http.StatusInternalServerError,
				errorLLMReplyUnreadable.withDetails(title, parseErr.Fragment), err)
		default:
			sentry.CaptureException(err)
			abortWithEncoding(c, http.StatusInternalServerError,
				errorLLMUnavailable.withDetails("AI parsing failed", err.Error()), err)
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    candidates,
		"count":   len(candidates),
	})
}

// exportCandidates returns reviewed candidates as a CSV download
func (s *Server) exportCandidates(c *gin.Context) {
	var params struct {
		Requests []schema.HelpRequestCandidate `json:"requests"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	var buf bytes.Buffer
	if err := utils.WriteCandidatesCSV(&buf, params.Requests); shouldInterupt(err, c) {
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="parsed-requests-%d.csv"`, time.Now().UnixNano()/int64(time.Millisecond)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
