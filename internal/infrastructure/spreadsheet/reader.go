// Package spreadsheet lee y escribe hojas de cálculo (xlsx y csv) como dto.Table.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/domain"
)

const bom = "\ufeff"

// Read interpreta el contenido según la extensión de filename.
// La primera fila no vacía son los encabezados.
func Read(filename string, r io.Reader) (dto.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return readXLSX(r)
	case ".csv":
		return readCSV(r)
	default:
		return dto.Table{}, fmt.Errorf("%w: formato de archivo no soportado %q", domain.ErrInvalidInput, filepath.Ext(filename))
	}
}

func readXLSX(r io.Reader) (dto.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return dto.Table{}, fmt.Errorf("%w: xlsx ilegible: %w", domain.ErrInvalidInput, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return dto.Table{}, fmt.Errorf("%w: el libro no tiene hojas", domain.ErrInvalidInput)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return dto.Table{}, fmt.Errorf("%w: leer hoja %q: %w", domain.ErrInvalidInput, sheets[0], err)
	}
	return toTable(rows)
}

func readCSV(r io.Reader) (dto.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return dto.Table{}, fmt.Errorf("leer csv: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte(bom))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return dto.Table{}, fmt.Errorf("%w: csv inválido: %w", domain.ErrInvalidInput, err)
	}
	return toTable(rows)
}

var errEmpty = errors.New("archivo sin encabezados")

func toTable(rows [][]string) (dto.Table, error) {
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		return dto.Table{Headers: row, Rows: rows[i+1:]}, nil
	}
	return dto.Table{}, fmt.Errorf("%w: %w", domain.ErrSchemaMismatch, errEmpty)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
