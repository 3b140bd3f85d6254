package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the single source of truth for the database schema. All repository
// tests load it via GetSchemaSQL(), so a column referenced by repository code
// that is missing here fails immediately with "no such column" instead of
// drifting silently.
//
// The CHECK constraints on project_units are the storage-level backstop for
// the inventory invariant (0 <= available <= total); the core ledger enforces
// it first, the schema refuses to persist a violation.
const SchemaSQL = `
-- Users (applicants, officers and managers share one table; the role column
-- tags the record)
CREATE TABLE IF NOT EXISTS users (
	nric TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	password TEXT NOT NULL,
	age INTEGER NOT NULL CHECK(age >= 0),
	marital_status TEXT NOT NULL CHECK(marital_status IN ('SINGLE', 'MARRIED')),
	role TEXT NOT NULL CHECK(role IN ('APPLICANT', 'OFFICER', 'MANAGER')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Projects
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	neighborhood TEXT,
	open_date TEXT NOT NULL,
	close_date TEXT NOT NULL,
	manager_nric TEXT NOT NULL,
	officer_slots INTEGER NOT NULL DEFAULT 0 CHECK(officer_slots >= 0),
	visible INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (manager_nric) REFERENCES users(nric)
);

-- Unit inventory per project and flat type
CREATE TABLE IF NOT EXISTS project_units (
	project_id TEXT NOT NULL,
	flat_type TEXT NOT NULL CHECK(flat_type IN ('TWO_ROOM', 'THREE_ROOM')),
	total INTEGER NOT NULL CHECK(total >= 0),
	available INTEGER NOT NULL CHECK(available >= 0 AND available <= total),
	PRIMARY KEY (project_id, flat_type),
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

-- Officers assigned to projects (populated on registration approval)
CREATE TABLE IF NOT EXISTS project_officers (
	project_id TEXT NOT NULL,
	officer_nric TEXT NOT NULL,
	assigned_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (project_id, officer_nric),
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
	FOREIGN KEY (officer_nric) REFERENCES users(nric)
);

-- Housing applications
CREATE TABLE IF NOT EXISTS applications (
	id TEXT PRIMARY KEY,
	applicant_nric TEXT NOT NULL,
	project_id TEXT NOT NULL,
	flat_type TEXT NOT NULL CHECK(flat_type IN ('TWO_ROOM', 'THREE_ROOM')),
	status TEXT NOT NULL CHECK(status IN ('PENDING', 'SUCCESSFUL', 'UNSUCCESSFUL', 'BOOKED', 'WITHDRAWN')) DEFAULT 'PENDING',
	booked_flat_type TEXT CHECK(booked_flat_type IN ('TWO_ROOM', 'THREE_ROOM')),
	booking_id TEXT,
	withdrawal_requested INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (applicant_nric) REFERENCES users(nric),
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

-- Flat bookings (immutable once created)
CREATE TABLE IF NOT EXISTS bookings (
	id TEXT PRIMARY KEY,
	application_id TEXT NOT NULL UNIQUE,
	applicant_nric TEXT NOT NULL,
	project_id TEXT NOT NULL,
	flat_type TEXT NOT NULL CHECK(flat_type IN ('TWO_ROOM', 'THREE_ROOM')),
	officer_nric TEXT NOT NULL,
	receipt_ref TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (application_id) REFERENCES applications(id) ON DELETE CASCADE,
	FOREIGN KEY (applicant_nric) REFERENCES users(nric),
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
	FOREIGN KEY (officer_nric) REFERENCES users(nric)
);

-- Officer registrations
CREATE TABLE IF NOT EXISTS registrations (
	id TEXT PRIMARY KEY,
	officer_nric TEXT NOT NULL,
	project_id TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('PENDING', 'APPROVED', 'REJECTED')) DEFAULT 'PENDING',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	decided_at DATETIME,
	FOREIGN KEY (officer_nric) REFERENCES users(nric),
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
	UNIQUE(officer_nric, project_id)
);

-- Enquiries
CREATE TABLE IF NOT EXISTS enquiries (
	id TEXT PRIMARY KEY,
	applicant_nric TEXT NOT NULL,
	project_id TEXT NOT NULL,
	content TEXT NOT NULL,
	reply TEXT,
	replied_by TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (applicant_nric) REFERENCES users(nric),
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
	FOREIGN KEY (replied_by) REFERENCES users(nric)
);

-- Indexes for the frequent lookups
CREATE INDEX IF NOT EXISTS idx_applications_applicant ON applications(applicant_nric);
CREATE INDEX IF NOT EXISTS idx_applications_project ON applications(project_id);
CREATE INDEX IF NOT EXISTS idx_bookings_project ON bookings(project_id);
CREATE INDEX IF NOT EXISTS idx_registrations_officer ON registrations(officer_nric);
CREATE INDEX IF NOT EXISTS idx_enquiries_project ON enquiries(project_id);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Every statement uses IF NOT EXISTS, so re-running on an existing
	// database is a no-op.
	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema for tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
