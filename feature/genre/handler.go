package genre

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"music-catalog/core/apperr"
	"music-catalog/core/logger"
)

// Handler handles HTTP requests for genres.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the genre routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/genres")
	group.Get("/", h.HandleGetGenres)
	group.Get("/:name/artists", h.HandleGenreArtists)
}

// HandleGetGenres lists genres.
// @Summary List Genres
// @Description List genres from the tags provider, or local genres selected by comma-separated names.
// @Tags genres
// @Produce json
// @Param names query string false "Comma-separated genre names (local listing)"
// @Param limit query int false "Artists per genre in the local listing" default(20)
// @Success 200 {array} genre.View "Genres"
// @Failure 404 {object} map[string]string "No Matching Genres"
// @Failure 502 {object} map[string]string "Tags Provider Error"
// @Router /genres [get]
func (h *Handler) HandleGetGenres(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	views, err := h.service.GetGenres(c.Context(), c.Query("names"), c.QueryInt("limit"))
	if err != nil {
		l.Warn("Genre listing failed", zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(views)
}

// HandleGenreArtists returns one page of a genre's artists.
// @Summary Genre Artists
// @Description Paginate the artists of a genre, refreshing the roster from the tags provider when configured.
// @Tags genres
// @Produce json
// @Param name path string true "Genre name"
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Artists per page" default(20)
// @Success 200 {object} genre.ArtistsPage "Artist Page"
// @Failure 404 {object} map[string]string "Genre Not Found"
// @Router /genres/{name}/artists [get]
func (h *Handler) HandleGenreArtists(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name := c.Params("name")
	page, err := h.service.PaginateArtists(c.Context(), name, c.QueryInt("page", 1), c.QueryInt("perPage", 20))
	if err != nil {
		l.Warn("Genre artist page failed", zap.String("genre", name), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(page)
}
