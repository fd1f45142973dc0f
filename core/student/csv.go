package student

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vidyasetu/vidyasetu/core"
)

// CSVHeader is the fixed roster column set, in export order.
var CSVHeader = []string{
	"rollNumber", "firstName", "surname", "fatherName", "batch", "course",
	"semester", "dob", "gender", "category", "address", "contact", "email",
}

// ImportCSV reads a roster where the first row names the columns and each
// following row binds values positionally to those names. Rows get a fresh id;
// semester is parsed as an integer. Every row is parsed and validated before
// any is persisted, so a rejected import leaves the roster untouched.
func (svc *Service) ImportCSV(r io.Reader) ([]Student, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // ragged rows surface as missing-field validation errors

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, core.NewImportFormatError(err)
	}
	if len(rows) == 0 {
		return nil, core.NewImportFormatError(errors.New("empty file"))
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = core.CleanString(h)
	}

	newStudents := make([]NewStudent, 0, len(rows)-1)
	for i, row := range rows[1:] {
		fields := make(map[string]string, len(headers))
		for j, h := range headers {
			if j < len(row) {
				fields[h] = core.CleanString(row[j])
			}
		}

		ns := NewStudent{
			RollNumber: fields["rollNumber"],
			FirstName:  fields["firstName"],
			Surname:    fields["surname"],
			FatherName: fields["fatherName"],
			Batch:      fields["batch"],
			Course:     core.Course(fields["course"]),
			DOB:        fields["dob"],
			Gender:     Gender(fields["gender"]),
			Category:   Category(fields["category"]),
			Address:    fields["address"],
			Contact:    fields["contact"],
			Email:      fields["email"],
		}
		if sem := fields["semester"]; sem != "" {
			ns.Semester, err = strconv.Atoi(sem)
			if err != nil {
				return nil, core.NewImportFormatError(errors.Wrapf(err, "row %d", i+2))
			}
		}
		if err = ns.Validate(); err != nil {
			return nil, core.NewImportFormatError(errors.Wrapf(err, "row %d", i+2))
		}
		newStudents = append(newStudents, ns)
	}

	students := make([]Student, 0, len(newStudents))
	for _, ns := range newStudents {
		st, err := svc.Create(ns)
		if err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, nil
}

// ImportJSON reads a roster exported as a JSON array of students. Records
// missing an id get a fresh one.
func (svc *Service) ImportJSON(r io.Reader) ([]Student, error) {
	var students []Student
	if err := json.NewDecoder(r).Decode(&students); err != nil {
		return nil, core.NewImportFormatError(err)
	}
	imported := make([]Student, 0, len(students))
	for _, st := range students {
		if st.ID == "" {
			st.ID = core.NewID()
		}
		st, err := svc.repo.CreateStudent(st)
		if err != nil {
			return nil, err
		}
		imported = append(imported, st)
	}
	return imported, nil
}

// ExportCSV writes the full roster with the fixed header row.
func (svc *Service) ExportCSV(w io.Writer) error {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(CSVHeader); err != nil {
		return errors.Wrap(err, "writing roster header")
	}
	for _, s := range students {
		row := []string{
			s.RollNumber, s.FirstName, s.Surname, s.FatherName, s.Batch,
			string(s.Course), strconv.Itoa(s.Semester), s.DOB, string(s.Gender),
			string(s.Category), s.Address, s.Contact, s.Email,
		}
		if err = cw.Write(row); err != nil {
			return errors.Wrap(err, "writing roster row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing roster")
}
