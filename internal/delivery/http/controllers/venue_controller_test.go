package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fyyur/internal/delivery/http/helpers"
	"fyyur/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeEnvelope decodes the response envelope and, when dst is non-nil, its data.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dst any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if dst != nil {
		require.Nil(t, envelope.Error, "success response must have error nil")
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(dataBytes, dst))
	}
	return envelope
}

const validVenueBody = `{"name":"The Musical Hop","city":"San Francisco","state":"CA","address":"1015 Folsom Street","phone":"123-123-1234","genres":["Jazz"," Reggae "]}`

func TestVenueController_ListVenues(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeDirectoryService{groups: []domain.LocationGroup{
			{City: "San Francisco", State: "CA", Venues: []domain.VenueSummary{{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2}}},
		}}
		ctrl := NewVenueController(testLogger, fake, &fakeBookingService{})
		rr := httptest.NewRecorder()

		ctrl.ListVenues(rr, httptest.NewRequest(http.MethodGet, "/venues", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var groups []domain.LocationGroup
		decodeEnvelope(t, rr, &groups)
		require.Len(t, groups, 1)
		assert.Equal(t, "CA", groups[0].State)
		assert.Equal(t, 2, groups[0].Venues[0].NumUpcomingShows)
	})

	t.Run("consistency error", func(t *testing.T) {
		fake := &fakeDirectoryService{err: fmt.Errorf("aggregate: %w", domain.ErrConsistency)}
		ctrl := NewVenueController(testLogger, fake, &fakeBookingService{})
		rr := httptest.NewRecorder()

		ctrl.ListVenues(rr, httptest.NewRequest(http.MethodGet, "/venues", nil))

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		envelope := decodeEnvelope(t, rr, nil)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeConsistency, envelope.Error.Code)
	})
}

func TestVenueController_SearchVenues(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantTerm       string
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"search_term":"Hop"}`,
			wantStatus: http.StatusOK,
			wantTerm:   "Hop",
		},
		{
			name:       "empty term",
			body:       `{"search_term":""}`,
			wantStatus: http.StatusOK,
			wantTerm:   "",
		},
		{
			name:           "empty body",
			body:           ``,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "request body is empty",
		},
		{
			name:           "unknown field rejected",
			body:           `{"q":"Hop"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "service error hides cause",
			body:           `{"search_term":"Hop"}`,
			fakeErr:        errors.New("connection reset"),
			wantStatus:     http.StatusInternalServerError,
			wantTerm:       "Hop",
			wantBodySubstr: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeDirectoryService{
				search: &domain.SearchResult{Count: 1, Data: []domain.SearchItem{{ID: 1, Name: "The Musical Hop"}}},
				err:    tt.fakeErr,
			}
			ctrl := NewVenueController(testLogger, fake, &fakeBookingService{})
			req := httptest.NewRequest(http.MethodPost, "/venues/search", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.SearchVenues(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantTerm, fake.lastTerm)
			if tt.wantStatus == http.StatusOK {
				var result domain.SearchResult
				decodeEnvelope(t, rr, &result)
				assert.Equal(t, 1, result.Count)
				return
			}
			envelope := decodeEnvelope(t, rr, nil)
			require.NotNil(t, envelope.Error)
			assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			assert.NotContains(t, envelope.Error.Message, "connection reset")
		})
	}
}

func TestVenueController_GetVenue(t *testing.T) {
	tests := []struct {
		name       string
		pathID     string
		fakeErr    error
		wantStatus int
		wantCode   string
		wantID     int64
	}{
		{name: "success", pathID: "1", wantStatus: http.StatusOK, wantID: 1},
		{name: "not found", pathID: "99", fakeErr: fmt.Errorf("get venue: %w", domain.ErrNotFound), wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound, wantID: 99},
		{name: "malformed id", pathID: "abc", wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "non-positive id", pathID: "0", wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeDirectoryService{
				venueDetail: &domain.VenueDetail{
					Venue:         &domain.Venue{ID: 1, Name: "The Musical Hop", Genres: []string{}},
					PastShows:     []domain.VenueShow{},
					UpcomingShows: []domain.VenueShow{},
				},
				err: tt.fakeErr,
			}
			ctrl := NewVenueController(testLogger, fake, &fakeBookingService{})
			req := httptest.NewRequest(http.MethodGet, "/venues/"+tt.pathID, nil)
			req.SetPathValue("venueID", tt.pathID)
			rr := httptest.NewRecorder()

			ctrl.GetVenue(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantID, fake.lastID)
			if tt.wantStatus == http.StatusOK {
				var detail map[string]any
				decodeEnvelope(t, rr, &detail)
				assert.Equal(t, "The Musical Hop", detail["name"])
				assert.Contains(t, detail, "past_shows")
				assert.Contains(t, detail, "upcoming_shows_count")
				return
			}
			envelope := decodeEnvelope(t, rr, nil)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}

func TestVenueController_CreateVenue(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		wantCalled     bool
	}{
		{
			name:       "success",
			body:       validVenueBody,
			wantStatus: http.StatusCreated,
			wantCalled: true,
		},
		{
			name:           "missing fields",
			body:           `{"name":"The Musical Hop"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "city is required",
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "persistence failure",
			body:           validVenueBody,
			fakeErr:        fmt.Errorf("create venue: %w: %w", domain.ErrPersistence, errors.New("commit failed")),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "internal server error",
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBookingService{err: tt.fakeErr}
			ctrl := NewVenueController(testLogger, &fakeDirectoryService{}, fake)
			req := httptest.NewRequest(http.MethodPost, "/venues", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateVenue(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.wantCalled, fake.lastVenueInput != nil)
			if tt.wantStatus == http.StatusCreated {
				var venue domain.Venue
				decodeEnvelope(t, rr, &venue)
				assert.Equal(t, int64(7), venue.ID)
				assert.Equal(t, []string{"Jazz", "Reggae"}, venue.Genres)
				return
			}
			envelope := decodeEnvelope(t, rr, nil)
			require.NotNil(t, envelope.Error)
			assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
		})
	}
}

func TestVenueController_UpdateVenue(t *testing.T) {
	tests := []struct {
		name       string
		pathID     string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "success", pathID: "3", body: validVenueBody, wantStatus: http.StatusOK},
		{name: "not found", pathID: "42", body: validVenueBody, fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "validation error from service", pathID: "3", body: validVenueBody, fakeErr: domain.NewValidationError([]string{"name is required"}), wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "malformed id", pathID: "x", body: validVenueBody, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBookingService{err: tt.fakeErr}
			ctrl := NewVenueController(testLogger, &fakeDirectoryService{}, fake)
			req := httptest.NewRequest(http.MethodPut, "/venues/"+tt.pathID, bytes.NewBufferString(tt.body))
			req.SetPathValue("venueID", tt.pathID)
			rr := httptest.NewRecorder()

			ctrl.UpdateVenue(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var venue domain.Venue
				decodeEnvelope(t, rr, &venue)
				assert.Equal(t, int64(3), venue.ID)
				assert.Equal(t, "The Musical Hop", venue.Name)
				return
			}
			envelope := decodeEnvelope(t, rr, nil)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}

func TestVenueController_DeleteVenue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeBookingService{}
		ctrl := NewVenueController(testLogger, &fakeDirectoryService{}, fake)
		req := httptest.NewRequest(http.MethodDelete, "/venues/5", nil)
		req.SetPathValue("venueID", "5")
		rr := httptest.NewRecorder()

		ctrl.DeleteVenue(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp DeleteResponse
		decodeEnvelope(t, rr, &resp)
		assert.Equal(t, "deleted", resp.Status)
		assert.Equal(t, []int64{5}, fake.deleted)
	})

	t.Run("not found", func(t *testing.T) {
		fake := &fakeBookingService{err: fmt.Errorf("delete venue: %w", domain.ErrNotFound)}
		ctrl := NewVenueController(testLogger, &fakeDirectoryService{}, fake)
		req := httptest.NewRequest(http.MethodDelete, "/venues/5", nil)
		req.SetPathValue("venueID", "5")
		rr := httptest.NewRecorder()

		ctrl.DeleteVenue(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		envelope := decodeEnvelope(t, rr, nil)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "venue not found", envelope.Error.Message)
	})
}
