package appointment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// The backing file is a JSON array of appointment records with dates as
// RFC 3339 timestamps. It is written on every mutation and may be
// edited externally; see Store.Reload.

func load(path string) ([]Appointment, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var appts []Appointment
	if err := json.Unmarshal(data, &appts); err != nil {
		return nil, fmt.Errorf("parsing appointments: %w", err)
	}
	return appts, nil
}

func save(path string, appts []Appointment) error {
	if appts == nil {
		appts = []Appointment{}
	}
	data, err := json.MarshalIndent(appts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
