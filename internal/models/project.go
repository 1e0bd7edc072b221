package models

import (
	"gorm.io/datatypes"
)

// ProjectRow is one row of the hosted projects table. Descriptive columns are nullable;
// materials and certifications are JSON arrays of strings.
type ProjectRow struct {
	ID             int64          `gorm:"column:id;primaryKey" json:"id"`
	Name           string         `gorm:"column:name;not null" json:"name"`
	Slug           string         `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Location       string         `gorm:"column:location" json:"location"`
	CountryCode    string         `gorm:"column:country_code;index" json:"country_code"`
	Latitude       float64        `gorm:"column:latitude" json:"latitude"`
	Longitude      float64        `gorm:"column:longitude" json:"longitude"`
	Type           string         `gorm:"column:type;index" json:"type"`
	Zoom           *float64       `gorm:"column:zoom" json:"zoom"`
	Architect      *string        `gorm:"column:architect" json:"architect"`
	Year           *int           `gorm:"column:year" json:"year"`
	Materials      datatypes.JSON `gorm:"column:materials" json:"materials"`
	ClimateZone    *string        `gorm:"column:climate_zone" json:"climate_zone"`
	CO2Reduction   *string        `gorm:"column:co2_reduction" json:"co2_reduction"`
	Certifications datatypes.JSON `gorm:"column:certifications" json:"certifications"`
	Description    *string        `gorm:"column:description" json:"description"`
	ImageURL       *string        `gorm:"column:image_url" json:"image_url"`
}

func (ProjectRow) TableName() string {
	return "projects"
}
