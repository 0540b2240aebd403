package echoapi

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newlifekgl/cellhub/core"
	"github.com/newlifekgl/cellhub/core/attendance"
	"github.com/newlifekgl/cellhub/core/cell"
	"github.com/newlifekgl/cellhub/core/member"
	"github.com/newlifekgl/cellhub/core/resource"
	"github.com/newlifekgl/cellhub/core/user"
	emailsvc "github.com/newlifekgl/cellhub/services/email"
	logsvc "github.com/newlifekgl/cellhub/services/logger"
	"github.com/newlifekgl/cellhub/storage/database/inmem"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

type testEnv struct {
	server  Server
	users   user.Repository
	cells   cell.Repository
	members member.Repository
	records attendance.Repository
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	core.Conf.Debug = false
	core.Conf.TestMode = true

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open(): %v", err)
	}
	usrRepo := inmemdb.NewUserRepository(db)
	cellRepo := inmemdb.NewCellRepository(db)
	memberRepo := inmemdb.NewMemberRepository(db)
	attRepo := inmemdb.NewAttendanceRepository(db)
	resRepo := inmemdb.NewResourceRepository(db)

	usrSvc := user.NewService(usrRepo)
	cellSvc := cell.NewService(cellRepo, usrRepo)
	memberSvc := member.NewService(memberRepo)
	attSvc := attendance.NewService(attRepo, memberRepo, cellRepo)
	resSvc := resource.NewService(resRepo, usrRepo, emailsvc.NewConsoleServiceMock())

	app := NewServer(&Options{
		DisableReqLogs: true,
		Logger:         logsvc.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags)),
		UserSvc:        usrSvc,
		CellSvc:        cellSvc,
		MemberSvc:      memberSvc,
		AttendanceSvc:  attSvc,
		ResourceSvc:    resSvc,
	})
	return &testEnv{
		server:  app,
		users:   usrRepo,
		cells:   cellRepo,
		members: memberRepo,
		records: attRepo,
	}
}

func (env *testEnv) createUser(t *testing.T, name, email, role, cellID string) user.User {
	t.Helper()
	usr := user.User{Name: name, Email: email, Role: role, CellID: cellID}
	if err := usr.SetPassword("password123"); err != nil {
		t.Fatalf("SetPassword(): %v", err)
	}
	usr, err := env.users.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser(): %v", err)
	}
	return usr
}

func (env *testEnv) createCell(t *testing.T, name string, leader user.User) cell.Cell {
	t.Helper()
	c, err := env.cells.CreateCell(cell.Cell{
		Name: name, LeaderID: leader.ID, LeaderName: leader.Name,
		Location: "Kigali", MeetingDay: "Wednesday",
	})
	if err != nil {
		t.Fatalf("CreateCell(): %v", err)
	}
	if leader.ID != "" {
		if err = env.users.SetUserCell(leader.ID, c.ID); err != nil {
			t.Fatalf("SetUserCell(): %v", err)
		}
	}
	return c
}

func (env *testEnv) createMember(t *testing.T, name, cellID string) member.Member {
	t.Helper()
	m, err := env.members.CreateMember(member.Member{
		FullName: name, Phone: "0788000000", Gender: "Female", AgeRange: "25-35",
		CellID: cellID, Status: member.StatusActive, JoinedDate: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("CreateMember(): %v", err)
	}
	return m
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	claims := GetUserClaims(usr)
	token, err := GenerateToken(claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
