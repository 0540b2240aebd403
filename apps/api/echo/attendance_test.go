package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/newlifekgl/cellhub/core/attendance"
	"github.com/newlifekgl/cellhub/core/user"
)

func Test_attendanceApi_saveAndQuery(t *testing.T) {
	env := setup(t)
	leader := env.createUser(t, "Uwase Marie", "uwase@newlifekigali.org", user.RoleLeader, "")
	kabeza := env.createCell(t, "Kabeza Cell", leader)
	leader.CellID = kabeza.ID
	m1 := env.createMember(t, "Keza Sandrine", kabeza.ID)
	m2 := env.createMember(t, "Nshimiyimana Eric", kabeza.ID)
	token := getToken(t, leader)

	register := []attendance.Record{
		{Date: "2024-03-06", CellID: kabeza.ID, MemberID: m1.ID, Status: attendance.StatusPresent},
		{Date: "2024-03-06", CellID: kabeza.ID, MemberID: m2.ID, Status: attendance.StatusAbsent, Notes: "travelling"},
	}

	t.Run("save register", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/attendance", token, marchallObj(t, register))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("save code = %v; want %v; body %v", rec.Code, http.StatusNoContent, rec.Body.String())
		}
	})

	t.Run("query saved day", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/attendance?date=2024-03-06", token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("query code = %v; want %v; body %v", rec.Code, http.StatusOK, rec.Body.String())
		}

		var records []attendance.Record
		if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
			t.Fatalf("unmarshalling records: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("got %d records; want 2", len(records))
		}
		for _, r := range records {
			if r.ID == "" || r.CellID != kabeza.ID || r.Date != "2024-03-06" {
				t.Errorf("unexpected record: %+v", r)
			}
		}
	})

	t.Run("session log", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/attendance/sessions", token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("sessions code = %v; want %v; body %v", rec.Code, http.StatusOK, rec.Body.String())
		}

		want := marchallList(t, attendance.SessionSummary{Date: "2024-03-06", Present: 1, Absent: 1, Total: 2})
		if ok, err := jsonBytesEqual(t, rec.Body.Bytes(), want); err != nil || !ok {
			t.Errorf("failed! data = %v; wantData %v (err %v)", rec.Body.String(), string(want), err)
		}
	})

	t.Run("member last attended advanced", func(t *testing.T) {
		m, err := env.members.GetMemberByID(m1.ID)
		if err != nil {
			t.Fatalf("GetMemberByID(): %v", err)
		}
		if m.LastAttendedDate != "2024-03-06" {
			t.Errorf("LastAttendedDate = %q; want %q", m.LastAttendedDate, "2024-03-06")
		}
	})
}

func Test_attendanceApi_leaderScoping(t *testing.T) {
	env := setup(t)
	admin := env.createUser(t, "Pastor Jean Gatera", "gatera@newlifekigali.org", user.RoleAdmin, "")
	uwase := env.createUser(t, "Uwase Marie", "uwase@newlifekigali.org", user.RoleLeader, "")
	mugabo := env.createUser(t, "Mugabo David", "mugabo@newlifekigali.org", user.RoleLeader, "")
	kabeza := env.createCell(t, "Kabeza Cell", uwase)
	kanombe := env.createCell(t, "Kanombe Cell", mugabo)
	uwase.CellID = kabeza.ID
	m := env.createMember(t, "Mutoni Alice", kanombe.ID)

	foreignRegister := marchallObj(t, []attendance.Record{
		{Date: "2024-03-06", CellID: kanombe.ID, MemberID: m.ID, Status: attendance.StatusPresent},
	})
	forbidden := marchallObj(t, httpErr{Error: "permission denied"})

	tests := []httpTest{
		{
			name: "leader cannot save another cell's register", method: http.MethodPost, path: "/v1/attendance",
			token: getToken(t, uwase), body: foreignRegister,
			wantCode: http.StatusForbidden, wantData: forbidden,
		},
		{
			name: "leader cannot read another cell's day", method: http.MethodGet,
			path: "/v1/attendance?cell_id=" + kanombe.ID, token: getToken(t, uwase),
			wantCode: http.StatusForbidden, wantData: forbidden,
		},
		{
			name: "leader cannot read another cell's sessions", method: http.MethodGet,
			path: "/v1/attendance/sessions?cell_id=" + kanombe.ID, token: getToken(t, uwase),
			wantCode: http.StatusForbidden, wantData: forbidden,
		},
		{
			name: "weekly stats is admin only", method: http.MethodGet, path: "/v1/attendance/weekly-stats",
			token: getToken(t, uwase), wantCode: http.StatusForbidden, wantData: forbidden,
		},
		{
			name: "admin may save any cell's register", method: http.MethodPost, path: "/v1/attendance",
			token: getToken(t, admin), body: foreignRegister, wantCode: http.StatusNoContent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_attendanceApi_invalidRegister(t *testing.T) {
	env := setup(t)
	admin := env.createUser(t, "Pastor Jean Gatera", "gatera@newlifekigali.org", user.RoleAdmin, "")
	leader := env.createUser(t, "Uwase Marie", "uwase@newlifekigali.org", user.RoleLeader, "")
	kabeza := env.createCell(t, "Kabeza Cell", leader)
	m := env.createMember(t, "Keza Sandrine", kabeza.ID)
	token := getToken(t, admin)

	body := marchallObj(t, []attendance.Record{
		{Date: "March 6th", CellID: kabeza.ID, MemberID: m.ID, Status: "MAYBE"},
	})
	req, rec := newAuthRequest(http.MethodPost, "/v1/attendance", token, body)
	env.server.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("save code = %v; want %v; body %v", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	var fldErrs map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &fldErrs); err != nil {
		t.Fatalf("unmarshalling field errors: %v", err)
	}
	if _, ok := fldErrs["date"]; !ok {
		t.Errorf("missing field error for date; got %v", fldErrs)
	}
	if _, ok := fldErrs["status"]; !ok {
		t.Errorf("missing field error for status; got %v", fldErrs)
	}
}
