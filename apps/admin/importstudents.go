package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

func (cli *commandLine) importStudents(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening roster")
	}
	defer f.Close()

	var imported int
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		students, err := cli.studentSvc.ImportJSON(f)
		if err != nil {
			return err
		}
		imported = len(students)
	} else {
		students, err := cli.studentSvc.ImportCSV(f)
		if err != nil {
			return err
		}
		imported = len(students)
	}

	fmt.Fprintf(stdout, "Successfully imported %d students\n", imported)
	return nil
}

func (cli *commandLine) exportStudents(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating roster file")
	}
	defer f.Close()

	if err = cli.studentSvc.ExportCSV(f); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Roster exported to %s\n", path)
	return nil
}
