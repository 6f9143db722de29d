package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	echoweb "github.com/Guilherme-Bernal/distributed-programming-final-project/apps/web/echo"
	"github.com/Guilherme-Bernal/distributed-programming-final-project/core"
	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
	logsvc "github.com/Guilherme-Bernal/distributed-programming-final-project/services/logger"
	"github.com/Guilherme-Bernal/distributed-programming-final-project/storage/database"
	sqlxrepos "github.com/Guilherme-Bernal/distributed-programming-final-project/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, "WEB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	db, err := setUpDB(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error("failed to close DB", err)
		}
	}()

	repo := sqlxrepos.NewRepository(sqlx.NewDb(db, conf.Database.Engine))
	enrollmentSvc := school.NewEnrollmentService(repo, logger)
	classSvc := school.NewClassService(repo, logger)
	subjectSvc := school.NewSubjectService(repo, logger)

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	server := echoweb.NewServer(
		echoweb.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			EnrollmentSvc: enrollmentSvc,
			ClassSvc:      classSvc,
			SubjectSvc:    subjectSvc,
		},
	)

	go func() {
		server.Start()
	}()

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sql.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
