package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/floodrelief/relief-api/geo"
	"github.com/floodrelief/relief-api/parser"
	"github.com/floodrelief/relief-api/store"
	"github.com/floodrelief/relief-api/utils"
)

const defaultStatsTTL = 30 * time.Second

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.MongoStore

	// Extractors turning pasted posts into help request candidates
	ruleExtractor parser.Extractor
	aiExtractor   parser.Extractor

	// optional, nil when geocoding is not configured
	locationResolver geo.LocationResolver

	statsCache *cache.Cache
}

// NewServer new instance of server
func NewServer(
	mongoStore store.MongoStore,
	aiExtractor parser.Extractor,
	locationResolver geo.LocationResolver) *Server {
	ttl := viper.GetDuration("stats.ttl")
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}

	return &Server{
		store:            mongoStore,
		ruleExtractor:    parser.RuleExtractor{},
		aiExtractor:      aiExtractor,
		locationResolver: locationResolver,
		statsCache:       cache.New(ttl, 2*ttl),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept-Language"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}

	if origins := viper.GetStringSlice("server.cors.origins"); len(origins) > 0 {
		config.AllowOrigins = origins
		config.AllowCredentials = true
	} else {
		config.AllowAllOrigins = true
	}

	return config
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(corsConfig()))

	apiRoute := r.Group("/api")
	apiRoute.Use(Ginrus("API"))

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.GET("", s.listHelpRequests)
		requestRoute.POST("", s.createHelpRequest)
		requestRoute.POST("/bulk", s.bulkCreateHelpRequests)
		requestRoute.PATCH("/:id", s.updateHelpRequest)
		requestRoute.DELETE("/:id", s.deleteHelpRequest)
	}

	apiRoute.POST("/parse", s.parseRequests)
	apiRoute.POST("/parse/export", s.exportCandidates)
	apiRoute.POST("/parse-ai", s.parseRequestsWithAI)

	evacueeRoute := apiRoute.Group("/evacuees")
	{
		evacueeRoute.GET("", s.searchEvacuees)
		evacueeRoute.GET("/stats", s.evacueeStats)
		evacueeRoute.POST("/parse", s.parseRoster)
		evacueeRoute.POST("/import", s.importEvacuees)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

// localizeMessage translates the message of obj to the language asked for by
// the client. The english message is kept when no translation is found.
func localizeMessage(c *gin.Context, obj ErrorResponse) string {
	id, ok := errorMessageIDs[obj.Code]
	if !ok {
		return obj.Message
	}

	loc := utils.NewLocalizer(c.GetHeader("Accept-Language"), "en")
	if loc == nil {
		return obj.Message
	}

	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return obj.Message
	}
	return msg
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	obj.Message = localizeMessage(c, obj)

	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
