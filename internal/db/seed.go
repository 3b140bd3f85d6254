package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with development fixtures: a manager,
// two officers and three applicants covering both marital statuses, plus an
// open project with inventory in both flat types.
func SeedFixtures(database *sql.DB) error {
	users := []struct {
		nric, name, password string
		age                  int
		marital, role        string
	}{
		{"S5000001A", "Michael", "password", 45, "MARRIED", "MANAGER"},
		{"S5000002B", "Jessica", "password", 40, "SINGLE", "MANAGER"},
		{"T2109876H", "Daniel", "password", 36, "SINGLE", "OFFICER"},
		{"T1234567J", "Emily", "password", 28, "MARRIED", "OFFICER"},
		{"S1234567A", "John", "password", 35, "MARRIED", "APPLICANT"},
		{"T7654321B", "Sarah", "password", 40, "SINGLE", "APPLICANT"},
		{"S9876543C", "Grace", "password", 24, "MARRIED", "APPLICANT"},
	}
	for _, u := range users {
		if _, err := database.Exec(
			"INSERT INTO users (nric, name, password, age, marital_status, role) VALUES (?, ?, ?, ?, ?, ?)",
			u.nric, u.name, u.password, u.age, u.marital, u.role,
		); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	projects := []struct {
		id, name, neighborhood     string
		openDate, closeDate        string
		managerNRIC                string
		officerSlots               int
		visible                    int
	}{
		{"PROJ-001", "Acacia Breeze", "Yishun", "2026-08-01", "2026-12-31", "S5000001A", 3, 1},
		{"PROJ-002", "Bishan Heights", "Bishan", "2026-09-01", "2026-11-30", "S5000002B", 5, 1},
	}
	for _, p := range projects {
		if _, err := database.Exec(
			"INSERT INTO projects (id, name, neighborhood, open_date, close_date, manager_nric, officer_slots, visible) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			p.id, p.name, p.neighborhood, p.openDate, p.closeDate, p.managerNRIC, p.officerSlots, p.visible,
		); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}
	}

	units := []struct {
		projectID, flatType string
		total, available    int
	}{
		{"PROJ-001", "TWO_ROOM", 2, 2},
		{"PROJ-001", "THREE_ROOM", 3, 3},
		{"PROJ-002", "TWO_ROOM", 5, 5},
		{"PROJ-002", "THREE_ROOM", 8, 8},
	}
	for _, u := range units {
		if _, err := database.Exec(
			"INSERT INTO project_units (project_id, flat_type, total, available) VALUES (?, ?, ?, ?)",
			u.projectID, u.flatType, u.total, u.available,
		); err != nil {
			return fmt.Errorf("seed project units: %w", err)
		}
	}

	return nil
}
