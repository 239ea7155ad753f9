package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
	"github.com/Derda24/wodenstockai-sub000/internal/repository"
	"github.com/Derda24/wodenstockai-sub000/internal/utils"
)

func columnIndexes(header []string) (map[string]int, error) {
	idx := map[string]int{}
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"full_name", "employment_type"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("roster CSV is missing the %q column", required)
		}
	}
	return idx, nil
}

func field(record []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// ImportRosterCSV reads a barista roster from a CSV file and inserts
// every row. Columns are matched by header name, case-insensitively;
// extra columns are ignored. A row that fails to insert aborts the
// import so a partial roster never goes unnoticed.
func ImportRosterCSV(repo *repository.Repository, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, columns are matched by header

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read roster header: %w", err)
	}
	idx, err := columnIndexes(header)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return inserted, err
		}

		barista, err := baristaFromRecord(record, idx)
		if err != nil {
			return inserted, fmt.Errorf("row %d: %w", inserted+2, err)
		}
		if err := repo.CreateBarista(barista); err != nil {
			return inserted, fmt.Errorf("row %d (%s): %w", inserted+2, barista.FullName, err)
		}
		inserted++
	}

	return inserted, nil
}

func baristaFromRecord(record []string, idx map[string]int) (*domain.Barista, error) {
	fullName := field(record, idx, "full_name")
	if fullName == "" {
		return nil, fmt.Errorf("empty full_name")
	}

	employmentType := domain.EmploymentType(field(record, idx, "employment_type"))
	switch employmentType {
	case domain.EmploymentFullTime, domain.EmploymentPartTime:
	default:
		return nil, fmt.Errorf("employment_type must be full-time or part-time, got %q", employmentType)
	}

	maxHours := 45.0
	if employmentType == domain.EmploymentPartTime {
		maxHours = 25.0
	}
	if raw := field(record, idx, "max_weekly_hours"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed max_weekly_hours %q", raw)
		}
		maxHours = parsed
	}

	skills := []string{}
	if raw := field(record, idx, "skills"); raw != "" {
		for _, s := range strings.Split(raw, "|") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}

	preferred := []domain.ShiftType{domain.ShiftMorning, domain.ShiftEvening}
	if employmentType == domain.EmploymentPartTime {
		preferred = []domain.ShiftType{domain.ShiftPartTime}
	}

	return &domain.Barista{
		FullName:        fullName,
		Email:           field(record, idx, "email"),
		Phone:           field(record, idx, "phone"),
		EmploymentType:  employmentType,
		MaxWeeklyHours:  maxHours,
		PreferredShifts: preferred,
		Skills:          skills,
	}, nil
}

// InsertRandomBaristas fills the roster with n generated baristas for
// local development.
func InsertRandomBaristas(repo *repository.Repository, n int, emailDomain string) (int, error) {
	inserted := 0
	for i := 0; i < n; i++ {
		if err := repo.CreateBarista(utils.GenerateRandomBarista(emailDomain)); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
