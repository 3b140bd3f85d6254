// Package cli assembles the cobra command tree. Commands resolve the
// current session, parse flags, and delegate to the CLI adapters.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/config"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
)

// currentSession loads the session file, requiring a logged-in user.
func currentSession() (*config.Session, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return nil, err
	}
	session, err := config.LoadSession(dir)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("not logged in - run 'bto login <nric>' first")
	}
	return session, nil
}

// requireRole loads the session and checks the user's role.
func requireRole(role string) (*config.Session, error) {
	session, err := currentSession()
	if err != nil {
		return nil, err
	}
	if session.Role != role {
		return nil, fmt.Errorf("this command requires the %s role (logged in as %s)", role, session.Role)
	}
	return session, nil
}

// parseUnits parses a unit spec like "TWO_ROOM=2,THREE_ROOM=3" into unit
// counts.
func parseUnits(spec string) ([]primary.UnitCount, error) {
	if spec == "" {
		return nil, nil
	}

	var units []primary.UnitCount
	for _, part := range strings.Split(spec, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid unit spec %q (want FLAT_TYPE=COUNT)", part)
		}
		count, err := strconv.Atoi(kv[1])
		if err != nil {
			return nil, fmt.Errorf("invalid unit count %q: %w", kv[1], err)
		}
		units = append(units, primary.UnitCount{
			FlatType: kv[0],
			Total:    count,
		})
	}
	return units, nil
}

// parseCriteria parses repeated key=value filter flags into a criteria map.
func parseCriteria(filters []string) (map[string]string, error) {
	if len(filters) == 0 {
		return nil, nil
	}

	criteria := make(map[string]string, len(filters))
	for _, f := range filters {
		kv := strings.SplitN(f, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid filter %q (want key=value)", f)
		}
		criteria[kv[0]] = kv[1]
	}
	return criteria, nil
}
