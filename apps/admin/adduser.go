package main

import (
	"time"

	"github.com/newlifekgl/cellhub/core"
	"github.com/newlifekgl/cellhub/core/user"
)

// addAdmin creates an ADMIN user, or promotes the user already registered
// under the email. An ADMIN never carries a cell.
func (cli *commandLine) addAdmin(name, email, pwd string) error {
	name = core.CleanString(name)
	email = core.CleanString(email, true /* lower */)
	now := time.Now().UTC()

	usr, err := cli.users.GetUserByEmail(email)
	if err != nil {
		if err != user.ErrNotFound {
			return err
		}
		usr = user.User{Name: name, Email: email, Role: user.RoleAdmin, CreatedAt: now, UpdatedAt: now}
		if err := usr.SetPassword(pwd); err != nil {
			return err
		}
		_, err = cli.users.CreateUser(usr)
		return err
	}

	usr.Name = name
	usr.Role = user.RoleAdmin
	usr.UpdatedAt = now
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	if _, err := cli.users.UpdateUser(usr); err != nil {
		return err
	}
	return cli.users.SetUserCell(usr.ID, "")
}
