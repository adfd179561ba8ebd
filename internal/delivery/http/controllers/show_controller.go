package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"fyyur/internal/delivery/http/helpers"
	"fyyur/internal/domain"
)

// CreateShowRequest is the request body for POST /shows. start_time is RFC 3339
// or "YYYY-MM-DD HH:MM:SS", the latter read as UTC.
type CreateShowRequest struct {
	VenueID   int64  `json:"venue_id"`
	ArtistID  int64  `json:"artist_id"`
	StartTime string `json:"start_time"`
}

// Validate implements Validator.
func (s CreateShowRequest) Validate() []string {
	var errs []string
	if s.VenueID <= 0 {
		errs = append(errs, "venue_id is required")
	}
	if s.ArtistID <= 0 {
		errs = append(errs, "artist_id is required")
	}
	if strings.TrimSpace(s.StartTime) == "" {
		errs = append(errs, "start_time is required")
	} else if _, err := helpers.ParseTimestamp(strings.TrimSpace(s.StartTime)); err != nil {
		errs = append(errs, err.Error())
	}
	return errs
}

// ShowSuccessResponse is the success response envelope for POST /shows (201).
type ShowSuccessResponse struct {
	Data  *domain.Show      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ShowListSuccessResponse is the success response envelope for GET /shows (200).
type ShowListSuccessResponse struct {
	Data  []*domain.ShowListing `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type ShowController struct {
	Logger    *slog.Logger
	Directory domain.DirectoryService
	Booking   domain.BookingService
}

func NewShowController(logger *slog.Logger, directory domain.DirectoryService, booking domain.BookingService) *ShowController {
	return &ShowController{
		Logger:    logger,
		Directory: directory,
		Booking:   booking,
	}
}

// ListShows godoc
// @Summary List shows
// @Description Every show with its venue and artist, ordered by start time.
// @Tags shows
// @Produce json
// @Success 200 {object} controllers.ShowListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shows [get]
func (c *ShowController) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := c.Directory.ListShows(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, shows)
}

// CreateShow godoc
// @Summary Book a show
// @Description Books an artist at a venue. Both must exist. Overlapping bookings are not checked.
// @Tags shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param show body CreateShowRequest true "Show data"
// @Success 201 {object} controllers.ShowSuccessResponse "data contains the created show"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable_entity"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shows [post]
func (c *ShowController) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req CreateShowRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	start, _ := helpers.ParseTimestamp(strings.TrimSpace(req.StartTime))
	show, err := c.Booking.CreateShow(r.Context(), domain.CreateShowInput{
		VenueID:   req.VenueID,
		ArtistID:  req.ArtistID,
		StartTime: start,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, show)
}
