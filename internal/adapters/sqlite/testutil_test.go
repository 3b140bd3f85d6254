// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup loads the schema through db.GetSchemaSQL() so the tests run
// against the authoritative schema - a repository referencing a column that
// does not exist there fails immediately with "no such column" instead of
// drifting against a hand-copied CREATE TABLE.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedUser inserts a test user and returns its NRIC.
func seedUser(t *testing.T, db *sql.DB, nric, role, maritalStatus string, age int) string {
	t.Helper()
	if nric == "" {
		nric = "S1234567A"
	}
	if role == "" {
		role = "APPLICANT"
	}
	if maritalStatus == "" {
		maritalStatus = "MARRIED"
	}
	if age == 0 {
		age = 35
	}
	_, err := db.Exec(
		"INSERT INTO users (nric, name, password, age, marital_status, role) VALUES (?, 'Test User', 'password', ?, ?, ?)",
		nric, age, maritalStatus, role,
	)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return nric
}

// seedProject inserts a test project with unit inventory and returns its ID.
// The manager row must already exist.
func seedProject(t *testing.T, db *sql.DB, id, managerNRIC string) string {
	t.Helper()
	if id == "" {
		id = "PROJ-001"
	}
	if managerNRIC == "" {
		managerNRIC = "S5000001A"
	}
	_, err := db.Exec(
		"INSERT INTO projects (id, name, neighborhood, open_date, close_date, manager_nric, officer_slots, visible) VALUES (?, 'Acacia Breeze', 'Yishun', '2026-08-01', '2026-12-31', ?, 3, 1)",
		id, managerNRIC,
	)
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	for _, u := range []struct {
		flatType         string
		total, available int
	}{
		{"TWO_ROOM", 2, 2},
		{"THREE_ROOM", 3, 3},
	} {
		_, err := db.Exec(
			"INSERT INTO project_units (project_id, flat_type, total, available) VALUES (?, ?, ?, ?)",
			id, u.flatType, u.total, u.available,
		)
		if err != nil {
			t.Fatalf("failed to seed project units: %v", err)
		}
	}
	return id
}

// seedApplication inserts a test application and returns its ID.
func seedApplication(t *testing.T, db *sql.DB, id, applicantNRIC, projectID, status string) string {
	t.Helper()
	if id == "" {
		id = "APP-001"
	}
	if applicantNRIC == "" {
		applicantNRIC = "S1234567A"
	}
	if projectID == "" {
		projectID = "PROJ-001"
	}
	if status == "" {
		status = "PENDING"
	}
	_, err := db.Exec(
		"INSERT INTO applications (id, applicant_nric, project_id, flat_type, status) VALUES (?, ?, ?, 'TWO_ROOM', ?)",
		id, applicantNRIC, projectID, status,
	)
	if err != nil {
		t.Fatalf("failed to seed application: %v", err)
	}
	return id
}
