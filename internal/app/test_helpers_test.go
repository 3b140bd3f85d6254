package app

import (
	"time"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// Shared fixtures. Project windows are anchored around the wall clock so
// in-window checks hold whenever the tests run.

func openWindowDate(daysFromNow int) string {
	return time.Now().AddDate(0, 0, daysFromNow).Format(dateLayout)
}

func testManager() *secondary.UserRecord {
	return &secondary.UserRecord{
		NRIC:          "S5000001A",
		Name:          "Michael",
		Password:      "password",
		Age:           45,
		MaritalStatus: "MARRIED",
		Role:          "MANAGER",
	}
}

func testOfficer() *secondary.UserRecord {
	return &secondary.UserRecord{
		NRIC:          "T2109876H",
		Name:          "Daniel",
		Password:      "password",
		Age:           36,
		MaritalStatus: "SINGLE",
		Role:          "OFFICER",
	}
}

func testApplicantMarried() *secondary.UserRecord {
	return &secondary.UserRecord{
		NRIC:          "S1234567A",
		Name:          "John",
		Password:      "password",
		Age:           35,
		MaritalStatus: "MARRIED",
		Role:          "APPLICANT",
	}
}

func testApplicantSingle() *secondary.UserRecord {
	return &secondary.UserRecord{
		NRIC:          "T7654321B",
		Name:          "Sarah",
		Password:      "password",
		Age:           40,
		MaritalStatus: "SINGLE",
		Role:          "APPLICANT",
	}
}

// testProject is an open, visible project managed by testManager with
// two-room and three-room units.
func testProject() *secondary.ProjectRecord {
	return &secondary.ProjectRecord{
		ID:           "PROJ-001",
		Name:         "Acacia Breeze",
		Neighborhood: "Yishun",
		OpenDate:     openWindowDate(-7),
		CloseDate:    openWindowDate(7),
		ManagerNRIC:  "S5000001A",
		OfficerSlots: 3,
		Visible:      true,
		Units: []secondary.UnitRecord{
			{FlatType: "TWO_ROOM", Total: 2, Available: 2},
			{FlatType: "THREE_ROOM", Total: 3, Available: 3},
		},
	}
}
