package echoapi

import (
	"context"
	"net/http"
	"os"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/newlifekgl/cellhub/core"
	"github.com/newlifekgl/cellhub/core/attendance"
	"github.com/newlifekgl/cellhub/core/cell"
	"github.com/newlifekgl/cellhub/core/member"
	"github.com/newlifekgl/cellhub/core/resource"
	"github.com/newlifekgl/cellhub/core/user"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		// Shutdown receives a SIGTERM when the error handler catches an
		// integrity error the app cannot recover from.
		Shutdown chan os.Signal

		Logger        core.Logger
		UserSvc       *user.Service
		CellSvc       *cell.Service
		MemberSvc     *member.Service
		AttendanceSvc *attendance.Service
		ResourceSvc   *resource.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerUserAPI(v1, jwt, s.opts.UserSvc)
	registerCellAPI(v1, jwt, s.opts.CellSvc, s.opts.AttendanceSvc)
	registerMemberAPI(v1, jwt, s.opts.MemberSvc, s.opts.AttendanceSvc)
	registerAttendanceAPI(v1, jwt, s.opts.AttendanceSvc)
	registerResourceAPI(v1, jwt, s.opts.ResourceSvc)
}

func (s *server) Start() {
	if err := s.app.Start(s.opts.Address); err != nil && err != http.ErrServerClosed {
		s.app.Logger.Fatal(err)
	}
}

func (s *server) signalShutdown() {
	if s.opts.Shutdown != nil {
		s.opts.Shutdown <- syscall.SIGTERM
	}
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to CellHub API!")
}
