package projects

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	catalogsvc "archcatalog-backend/internal/application/catalog"
	projectsvc "archcatalog-backend/internal/application/projects"
	"archcatalog-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo serves a fixed set of projects; an empty set behaves like an unreachable store.
type fakeRepo struct {
	projects []domain.Project
}

func (f *fakeRepo) ListForMap(ctx context.Context) []domain.MapItem {
	return domain.MapItems(f.projects)
}

func (f *fakeRepo) ListForGrid(ctx context.Context, filter *projectsvc.GridFilter) []domain.GridItem {
	var out []domain.Project
	for _, p := range f.projects {
		if filter == nil || p.Type == filter.Type {
			out = append(out, p)
		}
	}
	return domain.GridItems(out)
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*domain.Project, bool) {
	for i := range f.projects {
		if f.projects[i].Slug == slug {
			p := f.projects[i]
			return &p, true
		}
	}
	return nil, false
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Project, bool) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			p := f.projects[i]
			return &p, true
		}
	}
	return nil, false
}

func (f *fakeRepo) ListByCountry(ctx context.Context, code string) []domain.Project {
	out := []domain.Project{}
	for _, p := range f.projects {
		if p.CountryCode == code {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakeRepo) ListDistinctTypes(ctx context.Context) []string {
	types := make([]string, 0, len(f.projects))
	for _, p := range f.projects {
		types = append(types, p.Type)
	}
	return domain.DistinctTypes(types)
}

var fallbackRecords = []domain.FallbackRecord{
	{ID: 1, Name: "Casa Lluvia", Location: "Valdivia, Chile", Coordinates: domain.NewCoordinates(-73.24, -39.81), Type: "Residential", Zoom: domain.DefaultZoom, Image: "/img/1.jpg"},
	{ID: 2, Name: "Centro Cultural", Location: "Lima, Peru", Coordinates: domain.NewCoordinates(-77.04, -12.05), Type: "Cultural", Zoom: domain.DefaultZoom, Image: "/img/2.jpg"},
}

func remoteProjects() []domain.Project {
	return []domain.Project{
		{ID: 10, Name: "Pavilhão Verde", Slug: "pavilhao-verde", Location: "São Paulo, Brazil", CountryCode: "BRA", Coordinates: domain.NewCoordinates(-46.63, -23.55), Type: "Civic", Year: 2021, Materials: []string{"timber"}, Certifications: []string{}, Zoom: 14},
		{ID: 11, Name: "Escuela Bambú", Slug: "escuela-bambu", Location: "Cali, Colombia", CountryCode: "COL", Coordinates: domain.NewCoordinates(-76.53, 3.45), Type: "Educational", Materials: []string{"bamboo"}, Certifications: []string{}, Zoom: domain.DefaultZoom},
	}
}

func setupProjectsApp(repo *fakeRepo) *fiber.App {
	h := &Handlers{
		Catalog:  &catalogsvc.Service{Projects: repo, Fallback: fallbackRecords},
		Projects: repo,
	}
	app := fiber.New()
	app.Get("/map", h.Map)
	app.Get("/projects", h.Grid)
	app.Get("/projects/types", h.Types)
	app.Get("/explorer", h.Explorer)
	app.Get("/project/id/:id", h.ByID)
	app.Get("/project/:slug", h.BySlug)
	app.Get("/country/:code", h.ByCountry)
	return app
}

type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata map[string]any  `json:"metadata"`
}

func get(t *testing.T, app *fiber.App, path string) (int, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestMap_RemoteRows(t *testing.T) {
	app := setupProjectsApp(&fakeRepo{projects: remoteProjects()})
	status, env := get(t, app, "/map")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, catalogsvc.SourceRemote, env.Metadata["source"])
	assert.EqualValues(t, 2, env.Metadata["total"])

	var items []domain.MapItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "BRA", items[0].Country)
	assert.Equal(t, -46.63, items[0].Coordinates.Longitude())
	assert.Equal(t, -23.55, items[0].Coordinates.Latitude())
}

func TestMap_EmptyStoreServesFallback(t *testing.T) {
	app := setupProjectsApp(&fakeRepo{})
	status, env := get(t, app, "/map")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, catalogsvc.SourceFallback, env.Metadata["source"])

	var items []domain.MapItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Casa Lluvia", items[0].Name)
	assert.Empty(t, items[0].Country)
}

func TestGrid_TypeFilter(t *testing.T) {
	app := setupProjectsApp(&fakeRepo{projects: remoteProjects()})
	_, env := get(t, app, "/projects?type=Civic")
	var items []domain.GridItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Pavilhão Verde", items[0].Title)
	assert.Equal(t, catalogsvc.SourceRemote, env.Metadata["source"])
}

func TestGrid_FallbackHonoursFilter(t *testing.T) {
	app := setupProjectsApp(&fakeRepo{})
	_, env := get(t, app, "/projects?type=Cultural")
	var items []domain.GridItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Centro Cultural", items[0].Title)
	assert.NotNil(t, items[0].Materials)
	assert.Equal(t, catalogsvc.SourceFallback, env.Metadata["source"])
}

func TestTypes(t *testing.T) {
	app := setupProjectsApp(&fakeRepo{projects: remoteProjects()})
	_, env := get(t, app, "/projects/types")
	var types []string
	require.NoError(t, json.Unmarshal(env.Data, &types))
	assert.Equal(t, []string{"Civic", "Educational"}, types)
}

func TestExplorer_CombinesGridAndTypes(t *testing.T) {
	app := setupProjectsApp(&fakeRepo{projects: remoteProjects()})
	_, env := get(t, app, "/explorer")
	var data struct {
		Projects []domain.GridItem `json:"projects"`
		Types    []string          `json:"types"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Projects, 2)
	assert.Equal(t, []string{"Civic", "Educational"}, data.Types)
}

func TestBySlug(t *testing.T) {
	app := setupProjectsApp(&fakeRepo{projects: remoteProjects()})

	status, env := get(t, app, "/project/escuela-bambu")
	require.Equal(t, fiber.StatusOK, status)
	var p domain.Project
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.EqualValues(t, 11, p.ID)
	assert.Equal(t, []string{"bamboo"}, p.Materials)

	status, env = get(t, app, "/project/nonexistent-slug")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "error", env.Status)
}

func TestByID(t *testing.T) {
	app := setupProjectsApp(&fakeRepo{projects: remoteProjects()})

	status, _ := get(t, app, "/project/id/10")
	assert.Equal(t, fiber.StatusOK, status)

	for _, path := range []string{"/project/id/999", "/project/id/abc", "/project/id/-1"} {
		status, _ = get(t, app, path)
		assert.Equal(t, fiber.StatusNotFound, status, path)
	}
}

func TestByCountry_NormalizesCode(t *testing.T) {
	app := setupProjectsApp(&fakeRepo{projects: remoteProjects()})

	status, env := get(t, app, "/country/bra")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "BRA", env.Metadata["country"])
	assert.EqualValues(t, 1, env.Metadata["total"])

	_, env = get(t, app, "/country/ZZZ")
	var projects []domain.Project
	require.NoError(t, json.Unmarshal(env.Data, &projects))
	assert.Empty(t, projects)
	assert.NotNil(t, projects)
}
