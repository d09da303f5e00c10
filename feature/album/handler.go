package album

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"music-catalog/core/apperr"
	"music-catalog/core/logger"
)

// Handler handles HTTP requests for albums.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the album routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/albums/top", h.HandleTopAlbums)
	app.Get("/albums/latest", h.HandleLatestAlbums)
	app.Get("/album", h.HandleGetAlbum)
	app.Post("/albums", h.HandleCreateAlbum)
	app.Put("/albums/:id", h.HandleUpdateAlbum)
	app.Delete("/albums", h.HandleDeleteAlbums)
}

// HandleGetAlbum resolves an album by id, or by artist and album name.
// @Summary Get Album
// @Description Resolve an album by id or by (artistName, albumName), pulling missing data from the catalog provider when needed.
// @Tags albums
// @Accept json
// @Produce json
// @Param id query int false "Album ID"
// @Param artistName query string false "Artist name; empty or 'Various Artists' selects the compilation branch"
// @Param albumName query string false "Album name"
// @Success 200 {object} models.Album "Album with artist and tracks"
// @Failure 404 {object} map[string]string "Album Not Found"
// @Failure 502 {object} map[string]string "Catalog Provider Error"
// @Router /album [get]
func (h *Handler) HandleGetAlbum(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if idParam := c.Query("id"); idParam != "" {
		id, err := strconv.ParseUint(idParam, 10, 64)
		if err != nil {
			return apperr.Respond(c, apperr.Validation("invalid album id", map[string]string{
				"id": "id must be a positive integer",
			}))
		}

		album, err := h.service.GetAlbumByID(c.Context(), uint(id))
		if err != nil {
			l.Warn("Album lookup by id failed", zap.Uint64("id", id), zap.Error(err))
			return apperr.Respond(c, err)
		}
		return c.JSON(album)
	}

	albumName := c.Query("albumName")
	if albumName == "" {
		return apperr.Respond(c, apperr.Validation("invalid album query", map[string]string{
			"albumName": "albumName is required when no id is given",
		}))
	}

	album, err := h.service.GetAlbum(c.Context(), c.Query("artistName"), albumName)
	if err != nil {
		l.Warn("Album lookup failed", zap.String("album", albumName), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(album)
}

// HandleTopAlbums returns the most popular albums.
// @Summary Top Albums
// @Description List the most popular albums that have at least five tracks.
// @Tags albums
// @Produce json
// @Success 200 {array} models.Album "Top Albums"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /albums/top [get]
func (h *Handler) HandleTopAlbums(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	albums, err := h.service.TopAlbums(c.Context())
	if err != nil {
		l.Error("Top albums lookup failed", zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(albums)
}

// HandleLatestAlbums returns the latest releases.
// @Summary Latest Albums
// @Description List the latest releases, live from the catalog provider when latest_albums_strict is set.
// @Tags albums
// @Produce json
// @Success 200 {array} models.Album "Latest Albums"
// @Failure 502 {object} map[string]string "Catalog Provider Error"
// @Router /albums/latest [get]
func (h *Handler) HandleLatestAlbums(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	albums, err := h.service.LatestAlbums(c.Context())
	if err != nil {
		l.Error("Latest albums lookup failed", zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(albums)
}

// HandleCreateAlbum creates an album under an existing artist.
// @Summary Create Album
// @Description Create a new album. The artist must already exist and the name must be free under that artist.
// @Tags albums
// @Accept json
// @Produce json
// @Param album body CreateInput true "Album payload"
// @Success 201 {object} models.Album "Created Album"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 422 {object} map[string]string "Validation Error"
// @Router /albums [post]
func (h *Handler) HandleCreateAlbum(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body", nil))
	}

	album, err := h.service.Create(c.Context(), input)
	if err != nil {
		l.Warn("Album create failed", zap.String("album", input.Name), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(album)
}

// HandleUpdateAlbum updates an album's own fields.
// @Summary Update Album
// @Description Update name, release date, image or popularity of an album. Artist and tracks are not editable here.
// @Tags albums
// @Accept json
// @Produce json
// @Param id path int true "Album ID"
// @Param album body UpdateInput true "Fields to change"
// @Success 200 {object} models.Album "Updated Album"
// @Failure 404 {object} map[string]string "Album Not Found"
// @Failure 422 {object} map[string]string "Validation Error"
// @Router /albums/{id} [put]
func (h *Handler) HandleUpdateAlbum(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid album id", map[string]string{
			"id": "id must be a positive integer",
		}))
	}

	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body", nil))
	}

	album, err := h.service.Update(c.Context(), uint(id), input)
	if err != nil {
		l.Warn("Album update failed", zap.Uint64("id", id), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(album)
}

// DeleteRequest is the body of a bulk album delete.
type DeleteRequest struct {
	Items []uint `json:"items"`
}

// HandleDeleteAlbums deletes a batch of albums and their tracks.
// @Summary Delete Albums
// @Description Delete the given albums and their tracks. Unknown ids are skipped.
// @Tags albums
// @Accept json
// @Produce json
// @Param request body DeleteRequest true "Album IDs"
// @Success 200 {object} map[string]int "Number of deleted albums"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /albums [delete]
func (h *Handler) HandleDeleteAlbums(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body", nil))
	}

	deleted, err := h.service.Delete(c.Context(), req.Items)
	if err != nil {
		l.Error("Album delete failed", zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{"deleted": deleted})
}
