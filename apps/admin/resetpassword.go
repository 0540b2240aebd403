package main

import (
	"time"

	"github.com/newlifekgl/cellhub/core"
)

func (cli *commandLine) resetPassword(email, pwd string) error {
	usr, err := cli.users.GetUserByEmail(core.CleanString(email, true /* lower */))
	if err != nil {
		return err
	}
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	usr.UpdatedAt = time.Now().UTC()
	_, err = cli.users.UpdateUser(usr)
	return err
}
