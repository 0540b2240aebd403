package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newlifekgl/cellhub/apps/api/echo"
	"github.com/newlifekgl/cellhub/core"
	"github.com/newlifekgl/cellhub/core/attendance"
	"github.com/newlifekgl/cellhub/core/cell"
	"github.com/newlifekgl/cellhub/core/member"
	"github.com/newlifekgl/cellhub/core/resource"
	"github.com/newlifekgl/cellhub/core/user"
	"github.com/newlifekgl/cellhub/services/email"
	"github.com/newlifekgl/cellhub/services/logger"
	"github.com/newlifekgl/cellhub/storage/database/inmem"
)

func main() {
	std := log.New(os.Stdout, core.Conf.AppName+" ", log.LstdFlags|log.Lshortfile)

	// set up DB & repos
	db, err := inmemdb.Open()
	errAndDie(err)
	usrRepo := inmemdb.NewUserRepository(db)
	cellRepo := inmemdb.NewCellRepository(db)
	memberRepo := inmemdb.NewMemberRepository(db)
	attRepo := inmemdb.NewAttendanceRepository(db)
	resRepo := inmemdb.NewResourceRepository(db)
	errAndDie(inmemdb.Seed(db))

	// set up services
	var logger core.Logger
	var mailSvc core.EmailService
	if core.Conf.Debug {
		logger = logsvc.NewStdLogger(std)
		mailSvc = emailsvc.NewConsoleService()
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	usrSvc := user.NewService(usrRepo)
	cellSvc := cell.NewService(cellRepo, usrRepo)
	memberSvc := member.NewService(memberRepo)
	attSvc := attendance.NewService(attRepo, memberRepo, cellRepo)
	resSvc := resource.NewService(resRepo, usrRepo, mailSvc)

	// start API server; shutdown fires on OS signals and on integrity
	// errors caught by the HTTP error handler
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(
		&echoapi.Options{
			Address:       core.Conf.ServerAddress(),
			Shutdown:      shutdown,
			Logger:        logger,
			UserSvc:       usrSvc,
			CellSvc:       cellSvc,
			MemberSvc:     memberSvc,
			AttendanceSvc: attSvc,
			ResourceSvc:   resSvc,
		},
	)
	go app.Start()

	<-shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Error("stopping server", err)
	}
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
