// Package validation contains field-level validation for community submissions.
package validation

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"

	"taraweeh/internal/models"
)

// States lists the accepted region codes for the state field.
var States = []string{"NSW", "VIC", "QLD", "WA", "SA", "TAS", "ACT", "NT"}

// Common rakaat counts offered by the submission form. Other positive values
// are accepted via the "other" option.
var CommonRakaat = []string{"8", "20", "36"}

// ValidateMosqueName requires at least 2 characters.
func ValidateMosqueName(name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return errors.New("mosque name must be at least 2 characters")
	}
	return nil
}

// ValidateAddress requires at least 5 characters.
func ValidateAddress(address string) error {
	if len(strings.TrimSpace(address)) < 5 {
		return errors.New("address must be at least 5 characters")
	}
	return nil
}

// ValidateSuburb requires at least 2 characters.
func ValidateSuburb(suburb string) error {
	if len(strings.TrimSpace(suburb)) < 2 {
		return errors.New("suburb must be at least 2 characters")
	}
	return nil
}

// ValidateState requires one of the fixed region codes.
func ValidateState(state string) error {
	for _, s := range States {
		if state == s {
			return nil
		}
	}
	return errors.New("state must be one of " + strings.Join(States, ", "))
}

// ValidateTime requires a non-empty prayer time. The value is free text
// ("8:00 PM", "After Isha") so no format is enforced.
func ValidateTime(t string) error {
	if strings.TrimSpace(t) == "" {
		return errors.New("prayer time is required")
	}
	return nil
}

// ValidateRakaat parses the form's rakaat selection into an integer count.
// The form offers the common counts plus an "other" free entry; any positive
// integer is accepted.
func ValidateRakaat(rakaat string) (int, error) {
	if strings.TrimSpace(rakaat) == "" {
		return 0, errors.New("rakaat is required")
	}
	n, err := strconv.Atoi(strings.TrimSpace(rakaat))
	if err != nil || n <= 0 {
		return 0, errors.New("rakaat must be a positive number")
	}
	return n, nil
}

// ValidateSubmitterName requires at least 2 characters.
func ValidateSubmitterName(name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return errors.New("your name must be at least 2 characters")
	}
	return nil
}

// ValidateEmail requires a well-formed address.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.New("a valid email address is required")
	}
	return nil
}

// ValidateParkingType accepts an empty value or one of the parking enum values.
func ValidateParkingType(parkingType string) error {
	switch models.ParkingType(parkingType) {
	case "", models.ParkingTypeStreet, models.ParkingTypeDedicated:
		return nil
	}
	return errors.New("parking type must be Street or Dedicated")
}
