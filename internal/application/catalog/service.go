package catalog

import (
	"context"

	"archcatalog-backend/internal/application/projects"
	"archcatalog-backend/internal/domain"

	"github.com/rs/zerolog/log"
)

const (
	SourceRemote   = "remote"
	SourceFallback = "fallback"
)

// Source is the primary listing the catalog reads before considering the snapshot.
type Source interface {
	ListForMap(ctx context.Context) []domain.MapItem
	ListForGrid(ctx context.Context, filter *projects.GridFilter) []domain.GridItem
}

// Listing is a page of items together with where they came from.
type Listing[T any] struct {
	Items  []T    `json:"items"`
	Source string `json:"source"`
	Total  int    `json:"total"`
}

// Service applies the fallback policy: the snapshot replaces an empty primary listing
// as a whole and is never merged with remote rows.
type Service struct {
	Projects Source
	Fallback []domain.FallbackRecord
}

// MapItems returns the remote map items, or the snapshot when there are none.
func (s *Service) MapItems(ctx context.Context) Listing[domain.MapItem] {
	items := s.primaryMap(ctx)
	if len(items) > 0 {
		return listing(items, SourceRemote)
	}
	log.Info().Int("fallback_records", len(s.Fallback)).Msg("catalog: no remote map items, serving fallback snapshot")
	return listing(domain.FallbackMapItems(s.Fallback), SourceFallback)
}

// GridItems returns the remote grid cards, or the snapshot when there are none.
// A type filter is applied to the snapshot the same way it is applied remotely.
func (s *Service) GridItems(ctx context.Context, filter *projects.GridFilter) Listing[domain.GridItem] {
	items := s.primaryGrid(ctx, filter)
	if len(items) > 0 {
		return listing(items, SourceRemote)
	}
	records := s.Fallback
	if filter != nil && filter.Type != "" {
		records = make([]domain.FallbackRecord, 0, len(s.Fallback))
		for _, r := range s.Fallback {
			if r.Type == filter.Type {
				records = append(records, r)
			}
		}
	}
	log.Info().Int("fallback_records", len(records)).Msg("catalog: no remote grid items, serving fallback snapshot")
	return listing(domain.FallbackGridItems(records), SourceFallback)
}

func (s *Service) primaryMap(ctx context.Context) []domain.MapItem {
	if s.Projects == nil {
		return nil
	}
	return s.Projects.ListForMap(ctx)
}

func (s *Service) primaryGrid(ctx context.Context, filter *projects.GridFilter) []domain.GridItem {
	if s.Projects == nil {
		return nil
	}
	return s.Projects.ListForGrid(ctx, filter)
}

func listing[T any](items []T, source string) Listing[T] {
	return Listing[T]{Items: items, Source: source, Total: len(items)}
}
