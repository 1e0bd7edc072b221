package domain

// MapItem is the minimal shape needed to place a project marker.
type MapItem struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
	Type        string      `json:"type"`
	Zoom        float64     `json:"zoom"`
	Image       string      `json:"image"`
}

// GridItem is the card shown in the catalog grid. It carries no coordinates.
type GridItem struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Architect      string   `json:"architect"`
	Location       string   `json:"location"`
	Year           int      `json:"year"`
	Type           string   `json:"type"`
	Materials      []string `json:"materials"`
	Climate        string   `json:"climate"`
	CO2            string   `json:"co2"`
	Image          string   `json:"image"`
	Description    string   `json:"description"`
	Certifications []string `json:"certifications"`
}

// ToMapItem projects a project onto its map marker.
func ToMapItem(p Project) MapItem {
	return MapItem{
		ID:          p.ID,
		Name:        p.Name,
		Location:    p.Location,
		Country:     p.CountryCode,
		Coordinates: p.Coordinates,
		Type:        p.Type,
		Zoom:        p.Zoom,
		Image:       p.ImageURL,
	}
}

// ToGridItem projects a project onto its grid card. Slices are copied.
func ToGridItem(p Project) GridItem {
	return GridItem{
		ID:             p.ID,
		Title:          p.Name,
		Architect:      p.Architect,
		Location:       p.Location,
		Year:           p.Year,
		Type:           p.Type,
		Materials:      cloneStrings(p.Materials),
		Climate:        p.ClimateZone,
		CO2:            p.CO2Reduction,
		Image:          p.ImageURL,
		Description:    p.Description,
		Certifications: cloneStrings(p.Certifications),
	}
}

// ToDetail returns the unabridged entity, detached from the source slices.
func ToDetail(p Project) Project {
	p.Materials = cloneStrings(p.Materials)
	p.Certifications = cloneStrings(p.Certifications)
	return p
}

// MapItems projects a list in order.
func MapItems(projects []Project) []MapItem {
	out := make([]MapItem, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToMapItem(p))
	}
	return out
}

// GridItems projects a list in order.
func GridItems(projects []Project) []GridItem {
	out := make([]GridItem, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToGridItem(p))
	}
	return out
}
