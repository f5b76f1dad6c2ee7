package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"unicode/utf8"

	"jerseykraft/internal/entity"
)

// ParseRoster decodes an uploaded roster CSV into roster entries. The file
// must be UTF-8 text with a header row; name, number and size are matched
// case-sensitively. Blank sizes default to "M", fully blank rows are
// skipped, and any invalid size fails the whole import naming the row.
func ParseRoster(data []byte) ([]entity.TeamRosterEntry, error) {
	if !utf8.Valid(data) {
		return nil, &entity.EncodingError{Detail: "Invalid CSV: file is not valid UTF-8"}
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, entity.Validationf("Invalid CSV: %v", err)
	}

	roster := []entity.TeamRosterEntry{}
	if len(records) == 0 {
		return roster, nil
	}

	// First record is the header; later duplicates of a column name lose.
	col := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		if _, ok := col[h]; !ok {
			col[h] = i
		}
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for _, row := range records[1:] {
		blank := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		size := strings.ToUpper(strings.TrimSpace(field(row, "size")))
		if size == "" {
			size = "M"
		}
		if !entity.ValidSize(size) {
			return nil, entity.Validationf("Invalid CSV: row %q has invalid size %q", strings.Join(row, ","), size)
		}

		roster = append(roster, entity.TeamRosterEntry{
			Name:   strings.TrimSpace(field(row, "name")),
			Number: strings.TrimSpace(field(row, "number")),
			Size:   size,
		})
	}
	return roster, nil
}
