// SPDX-License-Identifier: MIT
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/gpx"
	"github.com/katalvlaran/campusnav/meeting"
	"github.com/katalvlaran/campusnav/navigator"
)

// RouteRequest is the body of POST /v1/routes.
type RouteRequest struct {
	Person1 string `json:"person1" binding:"required,max=200"`
	Person2 string `json:"person2" binding:"required,max=200"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
	Person int          `json:"person,omitempty"`
	Query  string       `json:"query,omitempty"`
	Tried  int          `json:"tried,omitempty"`
}

// FieldError reports one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// BuildingsResponse is the body of GET /v1/buildings.
type BuildingsResponse struct {
	Count     int               `json:"count"`
	Buildings []campus.Building `json:"buildings"`
}

// GPXContentType is served for ?format=gpx.
const GPXContentType = "application/gpx+xml"

func (s *Server) handleBuildings(c *gin.Context) {
	found := s.nav.Directory().Search(c.Query("q"))
	if found == nil {
		found = []campus.Building{}
	}
	c.JSON(http.StatusOK, BuildingsResponse{Count: len(found), Buildings: found})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.stats)
}

func (s *Server) handleRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))

		return
	}
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "gpx" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "format must be json or gpx"})

		return
	}

	route, err := s.nav.FindRoute(c.Request.Context(), req.Person1, req.Person2)
	if err != nil {
		status, body := routeError(err)
		c.JSON(status, body)

		return
	}

	if format == "gpx" {
		var buf bytes.Buffer
		if err = gpx.Write(&buf, route); err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})

			return
		}
		c.Data(http.StatusOK, GPXContentType, buf.Bytes())

		return
	}
	c.JSON(http.StatusOK, route)
}

func bindError(err error) ErrorResponse {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return ErrorResponse{Error: "invalid request body: " + err.Error()}
	}
	out := ErrorResponse{Error: "invalid request body"}
	for _, fe := range ve {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}

	return out
}

func routeError(err error) (int, ErrorResponse) {
	var (
		bnf *navigator.BuildingNotFoundError
		nre *meeting.NoReachableError
	)
	switch {
	case errors.As(err, &bnf):
		return http.StatusNotFound, ErrorResponse{Error: err.Error(), Person: bnf.Person, Query: bnf.Query}
	case errors.As(err, &nre):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Tried: nre.Tried}
	case errors.Is(err, meeting.ErrUnplaceable):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: err.Error()}
}
