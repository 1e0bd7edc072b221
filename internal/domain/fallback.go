package domain

// FallbackRecord is one entry of the bundled snapshot. It is a strict subset of Project.
type FallbackRecord struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Coordinates Coordinates `json:"coordinates"`
	Type        string      `json:"type"`
	Zoom        float64     `json:"zoom"`
	Image       string      `json:"image"`
}

// FallbackToMapItem reshapes a snapshot record; the snapshot has no country.
func FallbackToMapItem(r FallbackRecord) MapItem {
	return MapItem{
		ID:          r.ID,
		Name:        r.Name,
		Location:    r.Location,
		Coordinates: r.Coordinates,
		Type:        r.Type,
		Zoom:        r.Zoom,
		Image:       r.Image,
	}
}

// FallbackToGridItem reshapes a snapshot record; fields the snapshot lacks stay zero.
func FallbackToGridItem(r FallbackRecord) GridItem {
	return GridItem{
		ID:             r.ID,
		Title:          r.Name,
		Location:       r.Location,
		Type:           r.Type,
		Image:          r.Image,
		Materials:      []string{},
		Certifications: []string{},
	}
}

func FallbackMapItems(records []FallbackRecord) []MapItem {
	out := make([]MapItem, 0, len(records))
	for _, r := range records {
		out = append(out, FallbackToMapItem(r))
	}
	return out
}

func FallbackGridItems(records []FallbackRecord) []GridItem {
	out := make([]GridItem, 0, len(records))
	for _, r := range records {
		out = append(out, FallbackToGridItem(r))
	}
	return out
}
