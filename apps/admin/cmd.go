package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vidyasetu/vidyasetu/core/attendance"
	"github.com/vidyasetu/vidyasetu/core/department"
	"github.com/vidyasetu/vidyasetu/core/faculty"
	"github.com/vidyasetu/vidyasetu/core/lecture"
	"github.com/vidyasetu/vidyasetu/core/marks"
	"github.com/vidyasetu/vidyasetu/core/student"
	"github.com/vidyasetu/vidyasetu/storage/document"
)

var (
	stdin  io.Reader = os.Stdin // mockable
	stdout io.Writer = os.Stdout

	errHelp    = errors.New("help provided")
	errAborted = errors.New("aborted")
)

type commandLine struct {
	db            *document.DB
	deptSvc       *department.Service
	studentSvc    *student.Service
	facultySvc    *faculty.Service
	lectureSvc    *lecture.Service
	attendanceSvc *attendance.Service
	markSvc       *marks.Service

	in *bufio.Reader // shared across prompts; lazily wraps stdin
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintln(stdout, "  importstudents -file ROSTER.csv - import a student roster (CSV or JSON)")
	fmt.Fprintln(stdout, "  exportstudents -file ROSTER.csv - export the student roster as CSV")
	fmt.Fprintln(stdout, "  backup -file BACKUP.json        - export all data as a JSON backup")
	fmt.Fprintln(stdout, "  restore -file BACKUP.json       - replace all data with a JSON backup")
	fmt.Fprintln(stdout, "  stats                           - print collection counts")
	fmt.Fprintln(stdout, "  clear                           - delete all data and reseed")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	importCmd := flag.NewFlagSet("importstudents", flag.ExitOnError)
	importFile := importCmd.String("file", "", "The roster file to import; .json is parsed as JSON, anything else as CSV.")

	exportCmd := flag.NewFlagSet("exportstudents", flag.ExitOnError)
	exportFile := exportCmd.String("file", "", "The CSV file to write the roster to.")

	backupCmd := flag.NewFlagSet("backup", flag.ExitOnError)
	backupFile := backupCmd.String("file", "", "The JSON file to write the backup to.")

	restoreCmd := flag.NewFlagSet("restore", flag.ExitOnError)
	restoreFile := restoreCmd.String("file", "", "The JSON backup to restore. Replaces all existing data.")

	switch args[1] {
	case "importstudents":
		if err := importCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *importFile == "" {
			importCmd.Usage()
			return errHelp
		}
		return cli.importStudents(*importFile)
	case "exportstudents":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportFile == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.exportStudents(*exportFile)
	case "backup":
		if err := backupCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *backupFile == "" {
			backupCmd.Usage()
			return errHelp
		}
		return cli.backup(*backupFile)
	case "restore":
		if err := restoreCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *restoreFile == "" {
			restoreCmd.Usage()
			return errHelp
		}
		return cli.restore(*restoreFile)
	case "stats":
		return cli.stats()
	case "clear":
		return cli.clear()
	default:
		cli.printUsage()
		return errHelp
	}
}

// confirm prompts for an explicit yes and aborts on anything else. A single
// reader serves every prompt; a fresh one per call would drop whatever piped
// input the previous read buffered past its newline.
func (cli *commandLine) confirm(prompt string) error {
	if cli.in == nil {
		cli.in = bufio.NewReader(stdin)
	}
	fmt.Fprintf(stdout, "%s [y/N]: ", prompt)
	answer, err := cli.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		return errAborted
	}
	return nil
}
