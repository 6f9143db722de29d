package main

import (
	"context"
	"strings"
)

// provision creates the Student or Teacher profile for an identity account.
func (cli *commandLine) provision(accountID int, role, fullName string) error {
	role = strings.ToLower(strings.TrimSpace(role))
	if err := cli.accountSvc.ProvisionProfile(context.Background(), accountID, role, fullName); err != nil {
		return err
	}
	logger.Printf("provisioned %s profile for account %d", role, accountID)
	return nil
}
