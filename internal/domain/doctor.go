package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Doctor-specific validation errors
var (
	// ErrDoctorNameEmpty is returned when a doctor's name is empty.
	ErrDoctorNameEmpty = errors.New("doctor name cannot be empty")
)

// Doctor holds a physician's identity and the ordered list of specialties
// they offer. The specialty list may grow after registration; entries are
// never removed and duplicates are not collapsed.
type Doctor struct {
	Name        string    `json:"name"`
	LicenseID   LicenseID `json:"license_id"`
	specialties []*Specialty
}

// NewDoctor creates a new Doctor with the given name and license ID and an
// empty specialty list. Returns an error if validation fails.
func NewDoctor(name string, licenseID LicenseID) (*Doctor, error) {
	doctor := &Doctor{
		Name:      name,
		LicenseID: licenseID,
	}

	if err := doctor.Validate(); err != nil {
		return nil, err
	}

	return doctor, nil
}

// Validate checks if the Doctor has valid data.
func (d *Doctor) Validate() error {
	if d.Name == "" {
		return ErrDoctorNameEmpty
	}

	return d.LicenseID.Validate()
}

// AddSpecialty appends the specialty to the doctor's list, preserving
// insertion order. A nil specialty is ignored.
func (d *Doctor) AddSpecialty(specialty *Specialty) {
	if specialty == nil {
		return
	}
	d.specialties = append(d.specialties, specialty)
}

// SpecialtiesOfferedOn returns the names of every specialty the doctor
// offers on the given weekday, in insertion order. A doctor may hold more
// than one specialty active on the same day, so all matches are returned,
// not just the first. The day comparison is case-insensitive. Returns an
// empty result if the doctor does not attend on that day at all.
func (d *Doctor) SpecialtiesOfferedOn(day string) []string {
	day = strings.ToLower(day)

	var names []string
	for _, specialty := range d.specialties {
		if specialty.OfferedOn(day) {
			names = append(names, specialty.Name)
		}
	}
	return names
}

// Specialties returns a copy of the doctor's specialty list in insertion
// order.
func (d *Doctor) Specialties() []*Specialty {
	specialties := make([]*Specialty, len(d.specialties))
	copy(specialties, d.specialties)
	return specialties
}

func (d *Doctor) String() string {
	if len(d.specialties) == 0 {
		return fmt.Sprintf("Doctor: %s, license: %s, specialties: none", d.Name, d.LicenseID)
	}

	rendered := make([]string, len(d.specialties))
	for i, specialty := range d.specialties {
		rendered[i] = specialty.String()
	}
	return fmt.Sprintf("Doctor: %s, license: %s, specialties: [%s]",
		d.Name, d.LicenseID, strings.Join(rendered, ", "))
}
