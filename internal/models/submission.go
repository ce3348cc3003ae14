package models

import "time"

// SubmissionStatus defines lifecycle states for community submissions.
type SubmissionStatus string

const (
	// SubmissionStatusPending indicates the submission is awaiting review.
	SubmissionStatusPending SubmissionStatus = "pending"
	// SubmissionStatusApproved indicates the submission was published as a location.
	SubmissionStatusApproved SubmissionStatus = "approved"
	// SubmissionStatusRejected indicates the submission was declined.
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// Submission is a community-proposed prayer location awaiting admin review.
// Submitters control the initial field values; every status transition after
// that belongs to the admin review workflow.
type Submission struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	MosqueName        string           `gorm:"size:120;not null" json:"mosque_name"`
	Address           string           `gorm:"size:255;not null" json:"address"`
	Suburb            string           `gorm:"size:80;not null" json:"suburb"`
	State             string           `gorm:"size:3;not null" json:"state"`
	Time              string           `gorm:"size:40;not null" json:"time"`
	Rakaat            int              `gorm:"not null" json:"rakaat"`
	HasWomensArea     bool             `gorm:"not null;default:false" json:"has_womens_area"`
	HasWuduFacilities bool             `gorm:"not null;default:false" json:"has_wudu_facilities"`
	HasParking        bool             `gorm:"not null;default:false" json:"has_parking"`
	ParkingType       *ParkingType     `gorm:"type:varchar(20)" json:"parking_type,omitempty"`
	SubmitterName     string           `gorm:"size:120;not null" json:"submitter_name"`
	SubmitterEmail    string           `gorm:"size:255;not null" json:"submitter_email"`
	AdditionalInfo    string           `gorm:"type:text" json:"additional_info"`
	Status            SubmissionStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Submission) TableName() string {
	return "submissions"
}

// ToLocation projects an approved submission into the location it publishes.
// Fields are copied verbatim; the location gets its own identity.
func (s *Submission) ToLocation() Location {
	return Location{
		Name:              s.MosqueName,
		Address:           s.Address,
		Suburb:            s.Suburb,
		State:             s.State,
		Time:              s.Time,
		Rakaat:            s.Rakaat,
		HasWomensArea:     s.HasWomensArea,
		HasWuduFacilities: s.HasWuduFacilities,
		HasParking:        s.HasParking,
		ParkingType:       s.ParkingType,
	}
}
