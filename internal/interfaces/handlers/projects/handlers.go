package projects

import (
	"context"
	"strconv"
	"strings"

	catalogsvc "archcatalog-backend/internal/application/catalog"
	projectsvc "archcatalog-backend/internal/application/projects"
	"archcatalog-backend/internal/domain"
	"archcatalog-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Repository is the read side the page handlers need from the project store.
type Repository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Project, bool)
	GetByID(ctx context.Context, id int64) (*domain.Project, bool)
	ListByCountry(ctx context.Context, code string) []domain.Project
	ListDistinctTypes(ctx context.Context) []string
}

// Handlers serve the page data behind the beta gate.
type Handlers struct {
	Catalog  *catalogsvc.Service
	Projects Repository
}

// Map GET /map
func (h *Handlers) Map(c *fiber.Ctx) error {
	listing := h.Catalog.MapItems(c.UserContext())
	return response.Success(c, "Map projects fetched successfully", listing.Items, listingMeta(listing.Source, listing.Total))
}

// Grid GET /projects?type=
func (h *Handlers) Grid(c *fiber.Ctx) error {
	listing := h.Catalog.GridItems(c.UserContext(), gridFilter(c))
	return response.Success(c, "Projects fetched successfully", listing.Items, listingMeta(listing.Source, listing.Total))
}

// Types GET /projects/types
func (h *Handlers) Types(c *fiber.Ctx) error {
	return response.Success(c, "Project types fetched successfully", h.Projects.ListDistinctTypes(c.UserContext()), nil)
}

// Explorer GET /explorer: grid cards plus the type facets in one call.
func (h *Handlers) Explorer(c *fiber.Ctx) error {
	ctx := c.UserContext()
	listing := h.Catalog.GridItems(ctx, gridFilter(c))
	return response.Success(c, "Explorer fetched successfully", fiber.Map{
		"projects": listing.Items,
		"types":    h.Projects.ListDistinctTypes(ctx),
	}, listingMeta(listing.Source, listing.Total))
}

// BySlug GET /project/:slug
func (h *Handlers) BySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return response.NotFound(c, "Project not found")
	}
	project, ok := h.Projects.GetBySlug(c.UserContext(), slug)
	if !ok {
		return response.NotFound(c, "Project not found")
	}
	return response.Success(c, "Project fetched successfully", project, nil)
}

// ByID GET /project/id/:id
func (h *Handlers) ByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.NotFound(c, "Project not found")
	}
	project, ok := h.Projects.GetByID(c.UserContext(), id)
	if !ok {
		return response.NotFound(c, "Project not found")
	}
	return response.Success(c, "Project fetched successfully", project, nil)
}

// ByCountry GET /country/:code
func (h *Handlers) ByCountry(c *fiber.Ctx) error {
	code := domain.NormalizeCountryCode(c.Params("code"))
	projects := h.Projects.ListByCountry(c.UserContext(), code)
	return response.Success(c, "Projects fetched successfully", projects, fiber.Map{
		"country": code,
		"total":   len(projects),
	})
}

func gridFilter(c *fiber.Ctx) *projectsvc.GridFilter {
	t := strings.TrimSpace(c.Query("type"))
	if t == "" {
		return nil
	}
	return &projectsvc.GridFilter{Type: t}
}

func listingMeta(source string, total int) fiber.Map {
	return fiber.Map{"source": source, "total": total}
}
