package main

import (
	"log"
	"os"

	"github.com/newlifekgl/cellhub/storage/database/inmem"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// the store is process local; the CLI works on a freshly seeded copy,
	// which makes it a bootstrap and dry-run tool rather than a remote admin
	db, err := inmemdb.Open()
	errAndDie(err)
	errAndDie(inmemdb.Seed(db))

	cli := commandLine{users: inmemdb.NewUserRepository(db)}
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
