package catalog

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/health", h.health)
	app.Get("/catalog", h.getCatalog)
	app.Get("/categories/:grupa", h.getCategoryTree)
	app.Get("/suggestions", h.getSuggestions)
}

// getCatalog serves the single read operation: ?sku= returns one product or
// null, ?kategoria= returns the matching listing, no filters returns the full
// merged catalog.
func (h *Handler) getCatalog(c *fiber.Ctx) error {
	if sku := c.Query("sku"); sku != "" {
		p, err := h.service.BySKU(c.UserContext(), sku)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(p)
	}

	if kategoria := c.Query("kategoria"); kategoria != "" {
		products, err := h.service.ByCategory(c.UserContext(), kategoria)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(products)
	}

	products, err := h.service.List(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) getCategoryTree(c *fiber.Ctx) error {
	tree, err := h.service.CategoryTree(c.UserContext(), c.Params("grupa"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(tree)
}

func (h *Handler) getSuggestions(c *fiber.Ctx) error {
	return c.JSON(Suggestions)
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func internalError(c *fiber.Ctx, err error) error {
	log.Errorf("catalog: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
