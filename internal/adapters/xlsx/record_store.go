// Package xlsx stores catalogued indicators in an Excel workbook.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/example/catalog/internal/ports/secondary"
)

// SheetName is the sheet created for new workbooks. Existing workbooks are
// read from and appended to their first sheet, whatever its name.
const SheetName = "Registros"

// Column names, in the order written to new workbooks.
const (
	ColCode              = "AutoCode"
	ColType              = "Tipo"
	ColCategory          = "Categoría"
	ColName              = "Nombre"
	ColDefinition        = "Definición"
	ColPeriodicity       = "Periodicidad"
	ColUnit              = "Unidad"
	ColFormula           = "Fórmula"
	ColAvailabilityStart = "Fecha_Inicio_Disponibilidad"
	ColSourceCode        = "Código_fuente"
	ColSQLQuery          = "Query_SQL"
	ColOracleSource      = "Fuente_Oracle"
	ColDisaggregation    = "Desagregación"
	ColVisualization     = "Visualización"
	ColMethodologyLink   = "Ref_Metodológica_link"
	ColMethodologyFile   = "Ref_Metodológica_file"
	ColRegulatoryLink    = "Ref_Regulatoria_link"
	ColRegulatoryFile    = "Ref_Regulatoria_file"
	ColDepartment        = "Departamento"
	ColDivision          = "División"
	ColPerson            = "Persona"
	ColCreatedAt         = "Creado"
	ColUpdatedAt         = "Actualizado"
)

// Columns is the fixed schema of the records workbook.
var Columns = []string{
	ColCode, ColType, ColCategory, ColName, ColDefinition, ColPeriodicity, ColUnit, ColFormula,
	ColAvailabilityStart, ColSourceCode, ColSQLQuery, ColOracleSource,
	ColDisaggregation, ColVisualization, ColMethodologyLink, ColMethodologyFile,
	ColRegulatoryLink, ColRegulatoryFile,
	ColDepartment, ColDivision, ColPerson, ColCreatedAt, ColUpdatedAt,
}

// ListSeparator joins multi-valued fields inside one cell.
const ListSeparator = "; "

// RecordStore implements secondary.RecordStore on an .xlsx file.
// Appends rewrite the whole workbook through a temp file and a rename.
type RecordStore struct {
	path string
	mu   sync.Mutex
}

// NewRecordStore creates a record store backed by the workbook at path.
// The file is created on first append.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// ReadAll returns every stored indicator in row order.
func (s *RecordStore) ReadAll(ctx context.Context) ([]*secondary.IndicatorRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.open()
	if err != nil {
		return nil, err
	}
	if f == nil {
		return []*secondary.IndicatorRecord{}, nil
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return []*secondary.IndicatorRecord{}, nil
	}

	index := headerIndex(rows[0])
	records := make([]*secondary.IndicatorRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		records = append(records, rowToRecord(index, row))
	}
	return records, nil
}

// Codes returns the AutoCode of every stored indicator. A workbook without
// an AutoCode column has no codes.
func (s *RecordStore) Codes(ctx context.Context) ([]string, error) {
	records, err := s.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(records))
	for _, r := range records {
		if r.Code != "" {
			codes = append(codes, r.Code)
		}
	}
	return codes, nil
}

// Append adds one indicator as a new row, preserving existing rows.
func (s *RecordStore) Append(ctx context.Context, record *secondary.IndicatorRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.open()
	if err != nil {
		return err
	}
	if f == nil {
		if f, err = newWorkbook(); err != nil {
			return err
		}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read rows from %s: %w", s.path, err)
	}

	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	header, changed := completeHeader(header)
	if changed {
		if err := setRow(f, sheet, 1, header); err != nil {
			return err
		}
	}

	next := len(rows) + 1
	if next < 2 {
		next = 2
	}
	if err := setRow(f, sheet, next, recordToRow(headerIndex(header), len(header), record)); err != nil {
		return err
	}

	return s.save(f)
}

// open opens the workbook, returning nil if it does not exist yet.
func (s *RecordStore) open() (*excelize.File, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	return f, nil
}

// save writes the workbook next to its destination and renames it into place.
func (s *RecordStore) save(f *excelize.File) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".records-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temp workbook: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

func newWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

// completeHeader appends any schema column missing from header.
func completeHeader(header []string) ([]string, bool) {
	index := headerIndex(header)
	out := append([]string(nil), header...)
	changed := false
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			out = append(out, col)
			changed = true
		}
	}
	return out, changed
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup && name != "" {
			index[name] = i
		}
	}
	return index
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func recordToRow(index map[string]int, width int, r *secondary.IndicatorRecord) []string {
	row := make([]string, width)
	set := func(col, value string) {
		if i, ok := index[col]; ok {
			row[i] = value
		}
	}

	set(ColCode, r.Code)
	set(ColType, r.Type)
	set(ColCategory, r.Category)
	set(ColName, r.Name)
	set(ColDefinition, r.Definition)
	set(ColPeriodicity, r.Periodicity)
	set(ColUnit, r.Unit)
	set(ColFormula, r.Formula)
	set(ColAvailabilityStart, r.AvailabilityStart)
	set(ColSourceCode, r.SourceCode)
	set(ColSQLQuery, r.SQLQuery)
	set(ColOracleSource, r.OracleSource)
	set(ColDisaggregation, JoinList(r.Disaggregation))
	set(ColVisualization, JoinList(r.Visualization))
	set(ColMethodologyLink, r.MethodologyLink)
	set(ColMethodologyFile, r.MethodologyFile)
	set(ColRegulatoryLink, r.RegulatoryLink)
	set(ColRegulatoryFile, r.RegulatoryFile)
	set(ColDepartment, r.Department)
	set(ColDivision, r.Division)
	set(ColPerson, r.Person)
	set(ColCreatedAt, r.CreatedAt)
	set(ColUpdatedAt, r.UpdatedAt)

	return row
}

func rowToRecord(index map[string]int, row []string) *secondary.IndicatorRecord {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	return &secondary.IndicatorRecord{
		Code:              strings.TrimSpace(get(ColCode)),
		Type:              get(ColType),
		Category:          get(ColCategory),
		Name:              get(ColName),
		Definition:        get(ColDefinition),
		Periodicity:       get(ColPeriodicity),
		Unit:              get(ColUnit),
		Formula:           get(ColFormula),
		AvailabilityStart: get(ColAvailabilityStart),
		SourceCode:        get(ColSourceCode),
		SQLQuery:          get(ColSQLQuery),
		OracleSource:      get(ColOracleSource),
		Disaggregation:    SplitList(get(ColDisaggregation)),
		Visualization:     SplitList(get(ColVisualization)),
		MethodologyLink:   get(ColMethodologyLink),
		MethodologyFile:   get(ColMethodologyFile),
		RegulatoryLink:    get(ColRegulatoryLink),
		RegulatoryFile:    get(ColRegulatoryFile),
		Department:        get(ColDepartment),
		Division:          get(ColDivision),
		Person:            get(ColPerson),
		CreatedAt:         get(ColCreatedAt),
		UpdatedAt:         get(ColUpdatedAt),
	}
}

// JoinList serializes a multi-valued field into one cell.
func JoinList(values []string) string {
	return strings.Join(values, ListSeparator)
}

// SplitList parses a multi-valued cell, dropping blanks.
func SplitList(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	parts := strings.Split(cell, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Ensure RecordStore implements the interface.
var _ secondary.RecordStore = (*RecordStore)(nil)
