package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/floodrelief/relief-api/consts"
	"github.com/floodrelief/relief-api/parser"
	"github.com/floodrelief/relief-api/schema"
	"github.com/floodrelief/relief-api/store"
	"github.com/floodrelief/relief-api/utils"
)

var validHelpStatus = map[string]bool{
	schema.HelpPending:    true,
	schema.HelpInProgress: true,
	schema.HelpCompleted:  true,
}

var validUnits = map[schema.Unit]bool{
	schema.UnitMedical:     true,
	schema.UnitWaterRescue: true,
	schema.UnitSupply:      true,
	schema.UnitGeneral:     true,
}

func (s *Server) listHelpRequests(c *gin.Context) {
	helps, err := s.store.ListHelpRequests(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, helps)
}

// createHelpRequest stores a request submitted from the public form. The
// responding unit and priority are derived from the needs.
func (s *Server) createHelpRequest(c *gin.Context) {
	var params struct {
		Name        string           `json:"name"`
		Phone       string           `json:"phone"`
		Location    *schema.Location `json:"location"`
		PeopleCount int              `json:"peopleCount"`
		Needs       []string         `json:"needs"`
		Note        string           `json:"note"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if strings.TrimSpace(params.Name) == "" || strings.TrimSpace(params.Phone) == "" ||
		params.Location == nil || strings.TrimSpace(params.Location.Address) == "" || params.Needs == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("missing required fields or invalid needs format"))
		return
	}

	if params.PeopleCount < 1 {
		params.PeopleCount = consts.DefaultPeopleCount
	}

	unit, priority := utils.AssignUnit(params.Needs)
	help := schema.HelpRequest{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(params.Name),
		Phone:        strings.TrimSpace(params.Phone),
		Location:     s.resolveLocation(c, *params.Location),
		PeopleCount:  params.PeopleCount,
		Needs:        params.Needs,
		Note:         params.Note,
		Status:       schema.HelpPending,
		AssignedUnit: unit,
		Priority:     priority,
		Timestamp:    time.Now().UTC(),
	}

	if err := s.store.CreateHelpRequest(c.Request.Context(), help); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, help)
}

// resolveLocation adds coordinates when a geocoder is configured. A failed
// lookup keeps the location as it was.
func (s *Server) resolveLocation(c *gin.Context, loc schema.Location) schema.Location {
	if s.locationResolver == nil {
		return loc
	}

	resolved, err := s.locationResolver.Resolve(c.Request.Context(), loc)
	if err != nil {
		log.WithField("address", loc.Address).Warnf("resolve location: %s", err)
		return loc
	}
	return resolved
}

func (s *Server) updateHelpRequest(c *gin.Context) {
	id := c.Param("id")

	var update schema.HelpRequestUpdate
	if err := c.BindJSON(&update); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if update.Status != nil && !validHelpStatus[*update.Status] ||
		update.AssignedUnit != nil && !validUnits[*update.AssignedUnit] ||
		update.Priority != nil && *update.Priority != schema.PriorityHigh && *update.Priority != schema.PriorityNormal ||
		update.PeopleCount != nil && *update.PeopleCount < 1 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	help, err := s.store.UpdateHelpRequest(c.Request.Context(), id, update)
	if err != nil {
		switch err {
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
		case store.ErrEmptyUpdate:
			abortWithEncoding(c, http.StatusBadRequest, errorEmptyUpdate, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}

		return
	}

	c.JSON(http.StatusOK, help)
}

func (s *Server) deleteHelpRequest(c *gin.Context) {
	id := c.Param("id")

	if err := s.store.DeleteHelpRequest(c.Request.Context(), id); err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// bulkCreateHelpRequests stores reviewed candidates from the import page
func (s *Server) bulkCreateHelpRequests(c *gin.Context) {
	var params struct {
		Requests []schema.HelpRequestCandidate `json:"requests"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if len(params.Requests) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("no requests to import"))
		return
	}

	now := time.Now().UTC()
	helps := make([]schema.HelpRequest, 0, len(params.Requests))
	for _, r := range params.Requests {
		candidate := parser.Normalize(r)
		helps = append(helps, schema.HelpRequest{
			ID:           uuid.New().String(),
			Name:         candidate.Name,
			Phone:        candidate.Phone,
			Location:     candidate.Location,
			PeopleCount:  candidate.PeopleCount,
			Needs:        candidate.Needs,
			Note:         candidate.Note,
			Status:       schema.HelpPending,
			AssignedUnit: schema.UnitGeneral,
			Priority:     candidate.Priority,
			Timestamp:    now,
		})
	}

	result := s.store.BulkCreateHelpRequests(c.Request.Context(), helps)
	log.WithFields(logrus.Fields{
		"success": result.SuccessCount,
		"failed":  result.ErrorCount,
	}).Info("bulk create help requests")

	c.JSON(http.StatusOK, result)
}
