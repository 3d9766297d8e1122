package cli

// Input forms validated at the menu boundary before any domain object is
// built or any service call is made.

type patientForm struct {
	Name       string `validate:"required"`
	NationalID string `validate:"required"`
	BirthDate  string
}

type doctorForm struct {
	Name      string `validate:"required"`
	LicenseID string `validate:"required"`
}

type appointmentForm struct {
	PatientID string `validate:"required"`
	DoctorID  string `validate:"required"`
	DateTime  string `validate:"required"`
	Specialty string `validate:"required"`
}

type prescriptionForm struct {
	PatientID   string   `validate:"required"`
	DoctorID    string   `validate:"required"`
	Medications []string `validate:"min=1,dive,required"`
}
