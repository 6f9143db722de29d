package main

import (
	"context"
	"fmt"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

// addSubject adds a subject to the catalog.
func (cli *commandLine) addSubject(code, name, description string, credits int) error {
	ns := school.NewSubject{
		Code:        code,
		Name:        name,
		Description: description,
		Credits:     credits,
	}
	if err := ns.Validate(); err != nil {
		return err
	}

	res := cli.subjectSvc.CreateSubject(context.Background(), ns)
	if !res.Success {
		return fmt.Errorf("addsubject: %s", res.Message)
	}
	logger.Printf("%s (id=%d)", res.Message, *res.SubjectID)
	return nil
}
