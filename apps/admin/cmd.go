package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db            *sql.DB
	repo          school.Repository
	enrollmentSvc *school.EnrollmentService
	classSvc      *school.ClassService
	subjectSvc    *school.SubjectService
	accountSvc    *school.AccountService
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [args] - run a goose migration command (up, down, status, ...)")
	fmt.Println("  addsubject -code CODE -name NAME -credits N [-description TEXT] - add a subject to the catalog")
	fmt.Println("  provision -account ID -role student|teacher|admin -name \"FULL NAME\" - create the profile for an account")
	fmt.Println("  sampledata - seed the database with sample subjects, profiles, classes and enrollments")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addSubjectCmd := flag.NewFlagSet("addsubject", flag.ExitOnError)
	addSubjectCode := addSubjectCmd.String("code", "", "The subject code, eg. CS101.")
	addSubjectName := addSubjectCmd.String("name", "", "The subject name.")
	addSubjectCredits := addSubjectCmd.Int("credits", 0, "The subject's credit hours (1-10).")
	addSubjectDescr := addSubjectCmd.String("description", "", "An optional description.")

	provisionCmd := flag.NewFlagSet("provision", flag.ExitOnError)
	provisionAccount := provisionCmd.Int("account", 0, "The identity account id.")
	provisionRole := provisionCmd.String("role", "", "The account role: student, teacher or admin.")
	provisionName := provisionCmd.String("name", "", "The person's full name.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "addsubject":
		if err := addSubjectCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addSubjectCode == "" || *addSubjectName == "" || *addSubjectCredits == 0 {
			addSubjectCmd.Usage()
			return errHelp
		}
		return cli.addSubject(*addSubjectCode, *addSubjectName, *addSubjectDescr, *addSubjectCredits)
	case "provision":
		if err := provisionCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *provisionAccount == 0 || *provisionRole == "" || *provisionName == "" {
			provisionCmd.Usage()
			return errHelp
		}
		return cli.provision(*provisionAccount, *provisionRole, *provisionName)
	case "sampledata":
		return cli.sampleData()
	default:
		cli.printUsage()
		return errHelp
	}
}
