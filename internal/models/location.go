package models

import "time"

// ParkingType describes how worshippers can park at a location.
type ParkingType string

const (
	// ParkingTypeStreet indicates on-street parking only.
	ParkingTypeStreet ParkingType = "Street"
	// ParkingTypeDedicated indicates the mosque has its own car park.
	ParkingTypeDedicated ParkingType = "Dedicated"
)

// Location is a published, publicly searchable Taraweeh prayer location.
// Locations are created by approving a submission or directly by an admin;
// they keep no back-reference to the submission that produced them.
type Location struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	Name              string       `gorm:"size:120;not null" json:"name"`
	Address           string       `gorm:"size:255;not null" json:"address"`
	Suburb            string       `gorm:"size:80;not null;index" json:"suburb"`
	State             string       `gorm:"size:3;not null;index" json:"state"`
	Time              string       `gorm:"size:40;not null" json:"time"`
	Rakaat            int          `gorm:"not null" json:"rakaat"`
	HasWomensArea     bool         `gorm:"not null;default:false" json:"has_womens_area"`
	HasWuduFacilities bool         `gorm:"not null;default:false" json:"has_wudu_facilities"`
	HasParking        bool         `gorm:"not null;default:false" json:"has_parking"`
	ParkingType       *ParkingType `gorm:"type:varchar(20)" json:"parking_type,omitempty"`
	Latitude          *float64     `json:"latitude,omitempty"`
	Longitude         *float64     `json:"longitude,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`

	// Distance in kilometres from a caller-supplied origin, filled at
	// query time and never persisted.
	Distance *float64 `gorm:"-" json:"distance,omitempty"`
}

// TableName specifies the table name for GORM.
func (Location) TableName() string {
	return "locations"
}
