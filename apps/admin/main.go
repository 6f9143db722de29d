package main

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core"
	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
	logsvc "github.com/Guilherme-Bernal/distributed-programming-final-project/services/logger"
	"github.com/Guilherme-Bernal/distributed-programming-final-project/storage/database"
	sqlxrepos "github.com/Guilherme-Bernal/distributed-programming-final-project/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(db.Ping())

	// set up services
	svcLogger := logsvc.NewConsoleLogger(logger)
	repo := sqlxrepos.NewRepository(sqlx.NewDb(db, conf.Database.Engine))
	cli := commandLine{
		db:            db,
		repo:          repo,
		enrollmentSvc: school.NewEnrollmentService(repo, svcLogger),
		classSvc:      school.NewClassService(repo, svcLogger),
		subjectSvc:    school.NewSubjectService(repo, svcLogger),
		accountSvc:    school.NewAccountService(repo, svcLogger),
	}

	// start CLI
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
