package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"launchdash/internal/models"
)

// Column headers the loader requires. Other columns are ignored.
const (
	ColumnLaunchSite  = "Launch Site"
	ColumnPayloadMass = "Payload Mass (kg)"
	ColumnClass       = "class"
)

// Options controls how a dataset file is read.
type Options struct {
	// Sheet selects the worksheet of an .xlsx file. Empty means the first sheet.
	Sheet string
}

// LoadFile reads a .csv or .xlsx file and builds a table from it.
func LoadFile(path string, opts Options) (*Table, error) {
	start := time.Now()

	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		rows, err = readCSVFile(path)
	case ".xlsx":
		rows, err = readExcelFile(path, opts.Sheet)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	records, err := ParseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	table, err := New(records, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("dataset loaded",
		"path", path,
		"records", table.Len(),
		"sites", len(table.Sites()),
		"duration", time.Since(start))
	return table, nil
}

// ReadCSV parses CSV launch data from r.
func ReadCSV(r io.Reader, source string) (*Table, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	records, err := ParseRows(rows)
	if err != nil {
		return nil, err
	}
	return New(records, source)
}

func readCSVFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	return readCSV(file)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return rows, nil
}

func readExcelFile(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook %s has no sheets", ErrNoRecords, path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// ParseRows converts a header row plus data rows into launch records.
// Blank rows are skipped. Any unparseable value fails the whole load.
func ParseRows(rows [][]string) ([]models.LaunchRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrNoRecords)
	}

	cols, err := locateColumns(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]models.LaunchRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		if isBlank(row) {
			continue
		}
		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

type columnIndex struct {
	site, payload, class int
}

func locateColumns(header []string) (columnIndex, error) {
	idx := map[string]int{}
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var cols columnIndex
	var missing []string
	lookup := func(name string, dst *int) {
		i, ok := idx[name]
		if !ok {
			missing = append(missing, strconv.Quote(name))
			return
		}
		*dst = i
	}
	lookup(ColumnLaunchSite, &cols.site)
	lookup(ColumnPayloadMass, &cols.payload)
	lookup(ColumnClass, &cols.class)

	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRow(row []string, cols columnIndex) (models.LaunchRecord, error) {
	var rec models.LaunchRecord

	site, err := cell(row, cols.site, ColumnLaunchSite)
	if err != nil {
		return rec, err
	}

	rawPayload, err := cell(row, cols.payload, ColumnPayloadMass)
	if err != nil {
		return rec, err
	}
	payload, err := strconv.ParseFloat(rawPayload, 64)
	if err != nil || math.IsNaN(payload) || math.IsInf(payload, 0) {
		return rec, fmt.Errorf("%w: invalid payload mass %q", ErrMalformedRow, rawPayload)
	}
	if payload < 0 {
		return rec, fmt.Errorf("%w: negative payload mass %q", ErrMalformedRow, rawPayload)
	}

	rawClass, err := cell(row, cols.class, ColumnClass)
	if err != nil {
		return rec, err
	}
	class, err := parseClass(rawClass)
	if err != nil {
		return rec, err
	}

	rec.LaunchSite = site
	rec.PayloadMassKg = payload
	rec.OutcomeClass = class
	return rec, nil
}

func cell(row []string, i int, name string) (string, error) {
	if i >= len(row) {
		return "", fmt.Errorf("%w: missing %q value", ErrMalformedRow, name)
	}
	v := strings.TrimSpace(row[i])
	if v == "" {
		return "", fmt.Errorf("%w: empty %q value", ErrMalformedRow, name)
	}
	return v, nil
}

// parseClass accepts "0"/"1" and their float spellings ("1.0").
func parseClass(raw string) (int, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid class %q", ErrMalformedRow, raw)
	}
	switch f {
	case 0:
		return models.OutcomeFailure, nil
	case 1:
		return models.OutcomeSuccess, nil
	}
	return 0, fmt.Errorf("%w: class must be 0 or 1, got %q", ErrMalformedRow, raw)
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
