package main

import (
	"github.com/pressly/goose/v3"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/migrations"
)

var gooseRunFunc = goose.Run // mockable

func (cli *commandLine) migrate(args []string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	goose.SetBaseFS(migrations.FS)
	return cli.gooseRun(args[0], args[1:]...)
}

func (cli *commandLine) gooseRun(command string, args ...string) error {
	return gooseRunFunc(command, cli.db, ".", args...)
}
