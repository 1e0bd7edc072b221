package projects

import (
	"encoding/json"
	"strings"

	"archcatalog-backend/internal/domain"
	"archcatalog-backend/internal/models"

	"gorm.io/datatypes"
)

// ToProject maps a raw table row onto the canonical entity. Nullable columns become
// zero values; coordinates are reordered to [longitude, latitude].
func ToProject(row models.ProjectRow) domain.Project {
	zoom := domain.DefaultZoom
	if row.Zoom != nil {
		zoom = *row.Zoom
	}
	year := 0
	if row.Year != nil {
		year = *row.Year
	}
	return domain.Project{
		ID:             row.ID,
		Name:           row.Name,
		Slug:           row.Slug,
		Location:       row.Location,
		CountryCode:    domain.NormalizeCountryCode(row.CountryCode),
		Coordinates:    domain.NewCoordinates(row.Longitude, row.Latitude),
		Type:           strings.TrimSpace(row.Type),
		Architect:      str(row.Architect),
		Year:           year,
		Materials:      stringList(row.Materials),
		ClimateZone:    str(row.ClimateZone),
		CO2Reduction:   str(row.CO2Reduction),
		Certifications: stringList(row.Certifications),
		Description:    str(row.Description),
		ImageURL:       str(row.ImageURL),
		Zoom:           zoom,
	}
}

// ToProjects maps rows in order.
func ToProjects(rows []models.ProjectRow) []domain.Project {
	out := make([]domain.Project, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToProject(r))
	}
	return out
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// stringList decodes a JSON array column. Some rows store a comma separated string
// instead of an array; those are split. Anything else decodes to an empty list.
func stringList(raw datatypes.JSON) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, v := range list {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		for _, v := range strings.Split(joined, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
