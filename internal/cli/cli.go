// Package cli implements the interactive text menu that drives the clinic
// service. The front-end prompts for raw input, builds domain value
// objects, calls the service, and renders results or failures; it holds no
// business rules of its own.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/medrano/clinic-registry/internal/domain"
	"github.com/medrano/clinic-registry/internal/service"
)

// errInputClosed signals that the input stream ended mid-interaction.
var errInputClosed = errors.New("input closed")

// CLI is the interactive menu session.
type CLI struct {
	service  service.ClinicService
	scanner  *bufio.Scanner
	out      io.Writer
	validate *validator.Validate
}

// New creates a menu session reading from in and writing to out.
func New(svc service.ClinicService, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		service:  svc,
		scanner:  bufio.NewScanner(in),
		out:      out,
		validate: validator.New(),
	}
}

// Run loops over the menu until the user quits or the input stream ends.
// Domain failures are rendered and the loop continues; they never
// terminate the session.
func (c *CLI) Run(ctx context.Context) error {
	for {
		c.printMenu()

		choice, err := c.prompt("Select an option: ")
		if err != nil {
			return nil
		}

		if choice == "0" {
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}

		if err := c.dispatch(ctx, choice); err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
}

func (c *CLI) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return c.addPatient(ctx)
	case "2":
		return c.addDoctor(ctx)
	case "3":
		return c.scheduleAppointment(ctx)
	case "4":
		return c.addSpecialtyToDoctor(ctx)
	case "5":
		return c.issuePrescription(ctx)
	case "6":
		return c.viewHistory(ctx)
	case "7":
		return c.listAppointments(ctx)
	case "8":
		return c.listPatients(ctx)
	case "9":
		return c.listDoctors(ctx)
	default:
		fmt.Fprintln(c.out, "Invalid option, try again.")
		return nil
	}
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out, "\n--- Clinic Menu ---")
	fmt.Fprintln(c.out, "1. Add patient")
	fmt.Fprintln(c.out, "2. Add doctor")
	fmt.Fprintln(c.out, "3. Schedule appointment")
	fmt.Fprintln(c.out, "4. Add specialty to existing doctor")
	fmt.Fprintln(c.out, "5. Issue prescription")
	fmt.Fprintln(c.out, "6. View patient medical history")
	fmt.Fprintln(c.out, "7. List appointments")
	fmt.Fprintln(c.out, "8. List patients")
	fmt.Fprintln(c.out, "9. List doctors")
	fmt.Fprintln(c.out, "0. Quit")
}

// prompt prints the label and reads one trimmed line of input. Returns
// errInputClosed when the input stream has ended.
func (c *CLI) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.scanner.Scan() {
		return "", errInputClosed
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

func (c *CLI) addPatient(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Add Patient ---")

	var form patientForm
	var err error
	if form.Name, err = c.prompt("Full name: "); err != nil {
		return err
	}
	if form.NationalID, err = c.prompt("National ID: "); err != nil {
		return err
	}
	if form.BirthDate, err = c.prompt("Birth date (DD/MM/YYYY): "); err != nil {
		return err
	}

	if err := c.validate.Struct(form); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	patient, err := domain.NewPatient(form.Name, domain.NationalID(form.NationalID), form.BirthDate)
	if err != nil {
		return err
	}
	if err := c.service.RegisterPatient(ctx, patient); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Patient %s (%s) registered.\n", patient.Name, patient.NationalID)
	return nil
}

func (c *CLI) addDoctor(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Add Doctor ---")

	var form doctorForm
	var err error
	if form.Name, err = c.prompt("Full name: "); err != nil {
		return err
	}
	if form.LicenseID, err = c.prompt("License ID: "); err != nil {
		return err
	}

	if err := c.validate.Struct(form); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	doctor, err := domain.NewDoctor(form.Name, domain.LicenseID(form.LicenseID))
	if err != nil {
		return err
	}

	for {
		more, err := c.prompt("Add a specialty to this doctor? (y/n): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(more, "y") {
			break
		}

		specialty, err := c.promptSpecialty()
		if err != nil {
			return err
		}
		if specialty == nil {
			continue
		}
		doctor.AddSpecialty(specialty)
		fmt.Fprintf(c.out, "Specialty %q added to %s.\n", specialty.Name, doctor.Name)
	}

	if err := c.service.RegisterDoctor(ctx, doctor); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Doctor %s (%s) registered.\n", doctor.Name, doctor.LicenseID)
	return nil
}

func (c *CLI) addSpecialtyToDoctor(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Add Specialty to Existing Doctor ---")

	licenseID, err := c.prompt("License ID: ")
	if err != nil {
		return err
	}

	doctor, err := c.service.FindDoctor(ctx, domain.LicenseID(licenseID))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Doctor found: %s\n", doctor.Name)

	specialty, err := c.promptSpecialty()
	if err != nil {
		return err
	}
	if specialty == nil {
		return nil
	}

	if _, err := c.service.AddDoctorSpecialty(ctx, doctor.LicenseID, specialty); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Specialty %q added to %s.\n", specialty.Name, doctor.Name)
	return nil
}

func (c *CLI) scheduleAppointment(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Schedule Appointment ---")

	var form appointmentForm
	var err error
	if form.PatientID, err = c.prompt("Patient national ID: "); err != nil {
		return err
	}
	if form.DoctorID, err = c.prompt("Doctor license ID: "); err != nil {
		return err
	}
	if form.DateTime, err = c.prompt("Date and time (YYYY-MM-DD HH:MM): "); err != nil {
		return err
	}
	if form.Specialty, err = c.prompt("Specialty: "); err != nil {
		return err
	}

	if err := c.validate.Struct(form); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	appointment, err := c.service.ScheduleAppointment(ctx,
		domain.NationalID(form.PatientID),
		domain.LicenseID(form.DoctorID),
		form.DateTime,
		form.Specialty)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Appointment scheduled: %s\n", appointment)
	return nil
}

func (c *CLI) issuePrescription(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Issue Prescription ---")

	var form prescriptionForm
	var err error
	if form.PatientID, err = c.prompt("Patient national ID: "); err != nil {
		return err
	}
	if form.DoctorID, err = c.prompt("Doctor license ID: "); err != nil {
		return err
	}

	raw, err := c.prompt("Medications (comma-separated): ")
	if err != nil {
		return err
	}
	for _, medication := range strings.Split(raw, ",") {
		if medication = strings.TrimSpace(medication); medication != "" {
			form.Medications = append(form.Medications, medication)
		}
	}

	if err := c.validate.Struct(form); err != nil {
		return fmt.Errorf("at least one medication is required: %w", err)
	}

	prescription, err := c.service.IssuePrescription(ctx,
		domain.NationalID(form.PatientID),
		domain.LicenseID(form.DoctorID),
		form.Medications)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s\n", prescription)
	return nil
}

func (c *CLI) viewHistory(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Patient Medical History ---")

	nationalID, err := c.prompt("Patient national ID: ")
	if err != nil {
		return err
	}

	history, err := c.service.GetHistory(ctx, domain.NationalID(nationalID))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Medical history of %s:\n", history.Patient().Name)

	appointments := history.Appointments()
	if len(appointments) == 0 {
		fmt.Fprintln(c.out, "No appointments.")
	} else {
		fmt.Fprintln(c.out, "Appointments:")
		for _, appointment := range appointments {
			fmt.Fprintf(c.out, "  %s\n", appointment)
		}
	}

	prescriptions := history.Prescriptions()
	if len(prescriptions) == 0 {
		fmt.Fprintln(c.out, "No prescriptions.")
	} else {
		fmt.Fprintln(c.out, "Prescriptions:")
		for _, prescription := range prescriptions {
			fmt.Fprintf(c.out, "  %s\n", prescription)
		}
	}

	return nil
}

func (c *CLI) listAppointments(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Appointments ---")

	appointments, err := c.service.ListAppointments(ctx)
	if err != nil {
		return err
	}
	if len(appointments) == 0 {
		fmt.Fprintln(c.out, "No appointments scheduled.")
		return nil
	}
	for _, appointment := range appointments {
		fmt.Fprintf(c.out, "- %s\n", appointment)
	}
	return nil
}

func (c *CLI) listPatients(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Patients ---")

	patients, err := c.service.ListPatients(ctx)
	if err != nil {
		return err
	}
	if len(patients) == 0 {
		fmt.Fprintln(c.out, "No patients registered.")
		return nil
	}
	for _, patient := range patients {
		fmt.Fprintf(c.out, "- %s\n", patient)
	}
	return nil
}

func (c *CLI) listDoctors(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Doctors ---")

	doctors, err := c.service.ListDoctors(ctx)
	if err != nil {
		return err
	}
	if len(doctors) == 0 {
		fmt.Fprintln(c.out, "No doctors registered.")
		return nil
	}
	for _, doctor := range doctors {
		fmt.Fprintf(c.out, "- %s\n", doctor)
	}
	return nil
}

// promptSpecialty reads a specialty name and weekday list. Unknown weekday
// tokens are warned about and skipped; if no valid day remains the
// specialty is not built and (nil, nil) is returned.
func (c *CLI) promptSpecialty() (*domain.Specialty, error) {
	name, err := c.prompt("Specialty name: ")
	if err != nil {
		return nil, err
	}
	raw, err := c.prompt("Days offered (e.g. monday,wednesday,friday): ")
	if err != nil {
		return nil, err
	}

	days := c.filterDayTokens(raw)
	if len(days) == 0 {
		fmt.Fprintln(c.out, "No valid days entered; the specialty will not be added.")
		return nil, nil
	}

	return domain.NewSpecialty(name, days)
}

// filterDayTokens keeps the tokens naming weekdays, lower-cased, in input
// order. Unknown tokens get a warning and are excluded; that is not an
// error.
func (c *CLI) filterDayTokens(raw string) []string {
	var days []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if !domain.IsWeekdayToken(token) {
			fmt.Fprintf(c.out, "Warning: day %q not recognized, skipping.\n", token)
			continue
		}
		days = append(days, strings.ToLower(token))
	}
	return days
}
