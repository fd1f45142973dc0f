package main

import (
	"fmt"
)

func (cli *commandLine) stats() error {
	students, err := cli.studentSvc.QueryAll()
	if err != nil {
		return err
	}
	members, err := cli.facultySvc.QueryAll()
	if err != nil {
		return err
	}
	lectures, err := cli.lectureSvc.QueryAll()
	if err != nil {
		return err
	}
	att, err := cli.attendanceSvc.QueryAll()
	if err != nil {
		return err
	}
	mks, err := cli.markSvc.QueryAll()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Students:           %d\n", len(students))
	fmt.Fprintf(stdout, "Faculty:            %d\n", len(members))
	fmt.Fprintf(stdout, "Lectures:           %d\n", len(lectures))
	fmt.Fprintf(stdout, "Attendance records: %d\n", len(att))
	fmt.Fprintf(stdout, "Mark records:       %d\n", len(mks))
	return nil
}
