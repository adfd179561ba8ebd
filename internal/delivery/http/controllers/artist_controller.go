package controllers

import (
	"log/slog"
	"net/http"

	"fyyur/internal/delivery/http/helpers"
	"fyyur/internal/domain"
)

// ArtistSuccessResponse is the success response envelope for artist mutations.
type ArtistSuccessResponse struct {
	Data  *domain.Artist    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ArtistDetailSuccessResponse is the success response envelope for GET /artists/{artistID} (200).
type ArtistDetailSuccessResponse struct {
	Data  *domain.ArtistDetail `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ArtistListSuccessResponse is the success response envelope for GET /artists (200).
type ArtistListSuccessResponse struct {
	Data  []domain.ArtistSummary `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type ArtistController struct {
	Logger    *slog.Logger
	Directory domain.DirectoryService
	Booking   domain.BookingService
}

func NewArtistController(logger *slog.Logger, directory domain.DirectoryService, booking domain.BookingService) *ArtistController {
	return &ArtistController{
		Logger:    logger,
		Directory: directory,
		Booking:   booking,
	}
}

// ListArtists godoc
// @Summary List artists
// @Tags artists
// @Produce json
// @Success 200 {object} controllers.ArtistListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists [get]
func (c *ArtistController) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := c.Directory.ListArtists(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, artists)
}

// SearchArtists godoc
// @Summary Search artists by name
// @Description Case-insensitive substring match on the artist name. An empty term returns every artist.
// @Tags artists
// @Accept json
// @Produce json
// @Param body body SearchRequest true "Search term"
// @Success 200 {object} controllers.SearchSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists/search [post]
func (c *ArtistController) SearchArtists(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Directory.SearchArtists(r.Context(), req.SearchTerm)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// GetArtist godoc
// @Summary Get an artist with their shows
// @Description Returns the artist with their shows split into past (start at or before now) and upcoming.
// @Tags artists
// @Produce json
// @Param artistID path int true "Artist ID"
// @Success 200 {object} controllers.ArtistDetailSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists/{artistID} [get]
func (c *ArtistController) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "artistID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	detail, err := c.Directory.GetArtistWithShows(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "artist not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// CreateArtist godoc
// @Summary Create an artist
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param artist body domain.ArtistInput true "Artist data"
// @Success 201 {object} controllers.ArtistSuccessResponse "data contains the created artist"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists [post]
func (c *ArtistController) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateArtistInput
	if !helpers.DecodeAndValidate(w, r, &in) {
		return
	}
	artist, err := c.Booking.CreateArtist(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, artist)
}

// UpdateArtist godoc
// @Summary Replace an artist
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param artistID path int true "Artist ID"
// @Param artist body domain.ArtistInput true "Artist data"
// @Success 200 {object} controllers.ArtistSuccessResponse "data contains the updated artist"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists/{artistID} [put]
func (c *ArtistController) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "artistID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	var in domain.UpdateArtistInput
	if !helpers.DecodeAndValidate(w, r, &in) {
		return
	}
	artist, err := c.Booking.UpdateArtist(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "artist not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, artist)
}

// DeleteArtist godoc
// @Summary Delete an artist
// @Description Deletes the artist and every show they are booked for in one transaction.
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Param artistID path int true "Artist ID"
// @Success 200 {object} helpers.APIResponse "data.status: deleted"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists/{artistID} [delete]
func (c *ArtistController) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "artistID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if err := c.Booking.DeleteArtist(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err, "artist not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}
