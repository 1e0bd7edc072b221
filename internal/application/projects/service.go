package projects

import (
	"context"
	"database/sql"
	"strings"

	"archcatalog-backend/internal/domain"
	"archcatalog-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SourceErrorRecorder receives data-source failures that callers never see.
type SourceErrorRecorder interface {
	RecordSourceError(ctx context.Context, op string, err error)
}

// GridFilter narrows the grid listing. A zero Type means unfiltered.
type GridFilter struct {
	Type string
}

// Service is a read-only facade over the projects table. Every read degrades to an
// empty or absent result on failure; errors are logged and recorded, never returned.
type Service struct {
	DB     *gorm.DB
	Errors SourceErrorRecorder
}

// ListForMap returns every project as a map item, ordered by id.
func (s *Service) ListForMap(ctx context.Context) []domain.MapItem {
	rows, err := s.findRows(ctx, nil, "id ASC")
	if err != nil {
		s.sourceFailed(ctx, "list_for_map", err)
		return []domain.MapItem{}
	}
	return domain.MapItems(ToProjects(rows))
}

// GetBySlug returns the project whose slug matches exactly. Zero or several matches
// are both reported as absent.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Project, bool) {
	return s.getOne(ctx, "get_by_slug", "slug = ?", slug)
}

// GetByID returns the project with the given identifier.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Project, bool) {
	return s.getOne(ctx, "get_by_id", "id = ?", id)
}

// ListByCountry returns the projects of one country, ordered by name.
func (s *Service) ListByCountry(ctx context.Context, code string) []domain.Project {
	code = domain.NormalizeCountryCode(code)
	if code == "" {
		return []domain.Project{}
	}
	rows, err := s.findRows(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("country_code = ?", code)
	}, "name ASC")
	if err != nil {
		s.sourceFailed(ctx, "list_by_country", err)
		return []domain.Project{}
	}
	projects := ToProjects(rows)
	for i := range projects {
		projects[i] = domain.ToDetail(projects[i])
	}
	return projects
}

// ListForGrid returns grid cards ordered by id, optionally filtered by building type.
func (s *Service) ListForGrid(ctx context.Context, filter *GridFilter) []domain.GridItem {
	var scope func(*gorm.DB) *gorm.DB
	if filter != nil && strings.TrimSpace(filter.Type) != "" {
		t := strings.TrimSpace(filter.Type)
		// Facets are trimmed in ListDistinctTypes, so compare trimmed values here too.
		scope = func(q *gorm.DB) *gorm.DB {
			return q.Where("TRIM(type) = ?", t)
		}
	}
	rows, err := s.findRows(ctx, scope, "id ASC")
	if err != nil {
		s.sourceFailed(ctx, "list_for_grid", err)
		return []domain.GridItem{}
	}
	return domain.GridItems(ToProjects(rows))
}

// ListDistinctTypes returns the sorted set of non-empty building types.
func (s *Service) ListDistinctTypes(ctx context.Context) []string {
	if s.DB == nil {
		s.sourceFailed(ctx, "list_distinct_types", ErrSourceNotConfigured)
		return []string{}
	}
	var raw []sql.NullString
	if err := s.DB.WithContext(ctx).Model(&models.ProjectRow{}).Pluck("type", &raw).Error; err != nil {
		s.sourceFailed(ctx, "list_distinct_types", err)
		return []string{}
	}
	types := make([]string, 0, len(raw))
	for _, t := range raw {
		if t.Valid {
			types = append(types, strings.TrimSpace(t.String))
		}
	}
	return domain.DistinctTypes(types)
}

func (s *Service) getOne(ctx context.Context, op, cond string, arg interface{}) (*domain.Project, bool) {
	if s.DB == nil {
		s.sourceFailed(ctx, op, ErrSourceNotConfigured)
		return nil, false
	}
	// Limit 2 is enough to tell a single match from an ambiguous one.
	var rows []models.ProjectRow
	if err := s.DB.WithContext(ctx).Where(cond, arg).Limit(2).Find(&rows).Error; err != nil {
		s.sourceFailed(ctx, op, err)
		return nil, false
	}
	if len(rows) != 1 {
		if len(rows) > 1 {
			log.Warn().Str("op", op).Interface("key", arg).Msg("projects: ambiguous lookup, treating as absent")
		}
		return nil, false
	}
	p := domain.ToDetail(ToProject(rows[0]))
	return &p, true
}

func (s *Service) findRows(ctx context.Context, scope func(*gorm.DB) *gorm.DB, order string) ([]models.ProjectRow, error) {
	if s.DB == nil {
		return nil, ErrSourceNotConfigured
	}
	q := s.DB.WithContext(ctx).Model(&models.ProjectRow{})
	if scope != nil {
		q = scope(q)
	}
	var rows []models.ProjectRow
	if err := q.Order(order).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) sourceFailed(ctx context.Context, op string, err error) {
	log.Warn().Err(err).Str("op", op).Msg("projects: data source unavailable, degrading to empty result")
	if s.Errors != nil {
		s.Errors.RecordSourceError(ctx, op, err)
	}
}
