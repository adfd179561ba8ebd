package controllers

import (
	"log/slog"
	"net/http"

	"fyyur/internal/delivery/http/helpers"
	"fyyur/internal/domain"
)

// VenueSuccessResponse is the success response envelope for venue mutations.
type VenueSuccessResponse struct {
	Data  *domain.Venue     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// VenueDetailSuccessResponse is the success response envelope for GET /venues/{venueID} (200).
type VenueDetailSuccessResponse struct {
	Data  *domain.VenueDetail `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// LocationGroupsSuccessResponse is the success response envelope for GET /venues (200).
type LocationGroupsSuccessResponse struct {
	Data  []domain.LocationGroup `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type VenueController struct {
	Logger    *slog.Logger
	Directory domain.DirectoryService
	Booking   domain.BookingService
}

func NewVenueController(logger *slog.Logger, directory domain.DirectoryService, booking domain.BookingService) *VenueController {
	return &VenueController{
		Logger:    logger,
		Directory: directory,
		Booking:   booking,
	}
}

// ListVenues godoc
// @Summary List venues by location
// @Description Venues grouped by (city, state), each with its number of upcoming shows. Groups are sorted by state, then city.
// @Tags venues
// @Produce json
// @Success 200 {object} controllers.LocationGroupsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error or consistency_error"
// @Router /venues [get]
func (c *VenueController) ListVenues(w http.ResponseWriter, r *http.Request) {
	groups, err := c.Directory.ListVenuesByLocation(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, groups)
}

// SearchVenues godoc
// @Summary Search venues by name
// @Description Case-insensitive substring match on the venue name. An empty term returns every venue.
// @Tags venues
// @Accept json
// @Produce json
// @Param body body SearchRequest true "Search term"
// @Success 200 {object} controllers.SearchSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues/search [post]
func (c *VenueController) SearchVenues(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Directory.SearchVenues(r.Context(), req.SearchTerm)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// GetVenue godoc
// @Summary Get a venue with its shows
// @Description Returns the venue with its shows split into past (start at or before now) and upcoming.
// @Tags venues
// @Produce json
// @Param venueID path int true "Venue ID"
// @Success 200 {object} controllers.VenueDetailSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues/{venueID} [get]
func (c *VenueController) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "venueID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	detail, err := c.Directory.GetVenueWithShows(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "venue not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// CreateVenue godoc
// @Summary Create a venue
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venue body domain.VenueInput true "Venue data"
// @Success 201 {object} controllers.VenueSuccessResponse "data contains the created venue"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues [post]
func (c *VenueController) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateVenueInput
	if !helpers.DecodeAndValidate(w, r, &in) {
		return
	}
	venue, err := c.Booking.CreateVenue(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, venue)
}

// UpdateVenue godoc
// @Summary Replace a venue
// @Description Every writable field is replaced; the id is stable.
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venueID path int true "Venue ID"
// @Param venue body domain.VenueInput true "Venue data"
// @Success 200 {object} controllers.VenueSuccessResponse "data contains the updated venue"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues/{venueID} [put]
func (c *VenueController) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "venueID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	var in domain.UpdateVenueInput
	if !helpers.DecodeAndValidate(w, r, &in) {
		return
	}
	venue, err := c.Booking.UpdateVenue(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "venue not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venue)
}

// DeleteVenue godoc
// @Summary Delete a venue
// @Description Deletes the venue and every show booked at it in one transaction.
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param venueID path int true "Venue ID"
// @Success 200 {object} helpers.APIResponse "data.status: deleted"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues/{venueID} [delete]
func (c *VenueController) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "venueID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if err := c.Booking.DeleteVenue(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err, "venue not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}
