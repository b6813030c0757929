// Package importer loads a whole itinerary from tabular spreadsheet data.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/pkg/itinerary"
)

// Required spreadsheet columns; Location, Cost, and Note are optional.
var requiredColumns = []string{"day", "time", "title"}

// Row is one validated spreadsheet record before it becomes an item.
type Row struct {
	Day      int
	Time     string
	Title    string
	Location string
	Cost     int
	Note     string
}

// Parse reads CSV records and validates every row before anything is
// returned, so a bad row rejects the whole import. Header matching is
// case-insensitive.
func Parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperr.Validationf("could not read header row: %v", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, apperr.Validationf("missing required column %q", required)
		}
	}

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperr.Validationf("could not read row %d: %v", line+1, err)
		}
		line++

		row, err := parseRow(record, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(record []string, columns map[string]int) (Row, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	day, err := strconv.Atoi(field("day"))
	if err != nil || day < 1 {
		return Row{}, apperr.Validationf("day must be an integer >= 1, got %q", field("day"))
	}

	timeOfDay := normalizeTime(field("time"))
	title := field("title")
	if title == "" {
		return Row{}, apperr.Validationf("title must not be empty")
	}

	cost := 0
	if raw := field("cost"); raw != "" {
		cost, err = strconv.Atoi(raw)
		if err != nil || cost < 0 {
			return Row{}, apperr.Validationf("cost must be a non-negative integer, got %q", raw)
		}
	}

	row := Row{
		Day:      day,
		Time:     timeOfDay,
		Title:    title,
		Location: field("location"),
		Cost:     cost,
		Note:     field("note"),
	}
	if err := row.toItem().Validate(); err != nil {
		return Row{}, apperr.Validationf("%v", err)
	}
	return row, nil
}

// normalizeTime pads a single-digit hour so spreadsheet values like "9:00"
// sort correctly as "09:00".
func normalizeTime(value string) string {
	if len(value) == 4 && value[1] == ':' {
		return "0" + value
	}
	return value
}

func (r Row) toItem() itinerary.Item {
	return itinerary.Item{
		Day:       r.Day,
		Time:      r.Time,
		Title:     r.Title,
		Location:  r.Location,
		Category:  itinerary.CategoryOther,
		BaseCost:  r.Cost,
		Note:      r.Note,
		Transport: itinerary.Transport{Mode: itinerary.TransportMove, Minutes: 30},
	}
}
