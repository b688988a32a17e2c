package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BusinessType classifies the legal form of an organizer's company.
type BusinessType string

const (
	BusinessPT         BusinessType = "pt"
	BusinessCV         BusinessType = "cv"
	BusinessFirma      BusinessType = "firma"
	BusinessKoperasi   BusinessType = "koperasi"
	BusinessIndividual BusinessType = "individual"
	BusinessOther      BusinessType = "other"
)

// ParseBusinessType validates a business type string.
func ParseBusinessType(s string) (BusinessType, error) {
	switch BusinessType(s) {
	case BusinessPT, BusinessCV, BusinessFirma, BusinessKoperasi, BusinessIndividual, BusinessOther:
		return BusinessType(s), nil
	default:
		return "", fmt.Errorf("unknown business type %q", s)
	}
}

// OrganizerProfile extends a user with company and personal details. Owned
// 1:1 by a user with the organizer role; Verified is flipped by staff.
type OrganizerProfile struct {
	ID                 uuid.UUID    `json:"id"`
	UserID             uuid.UUID    `json:"user_id"`
	Name               string       `json:"name"`
	Position           string       `json:"position"`
	Bio                string       `json:"bio"`
	CompanyName        string       `json:"company_name"`
	RegistrationNumber string       `json:"registration_number"`
	BusinessType       BusinessType `json:"business_type"`
	Address            string       `json:"address"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	Verified           bool         `json:"verified"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}
