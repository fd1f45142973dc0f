package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func (cli *commandLine) backup(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating backup file")
	}
	defer f.Close()

	if err = cli.db.Export(f); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Backup written to %s\n", path)
	return nil
}

func (cli *commandLine) restore(path string) error {
	if err := cli.confirm("This will replace all existing data with the backup. Are you sure?"); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening backup")
	}
	defer f.Close()

	if err = cli.db.Import(f); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Data restored successfully")
	return nil
}

func (cli *commandLine) clear() error {
	if err := cli.confirm("Are you sure you want to clear all data? This action cannot be undone."); err != nil {
		return err
	}
	if err := cli.confirm("This will delete ALL students, faculty, lectures, attendance, and marks. Are you absolutely sure?"); err != nil {
		return err
	}

	if err := cli.db.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "All data cleared successfully")
	return nil
}
