package importer

import (
	"fmt"
	"nearest-route-service/internal/services"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column headers as they appear in the GEOS workbook.
const (
	headerGeo         = "GEO"
	headerName        = "Nombre de Ruta"
	headerSalesperson = "Vendedor"
	headerSupervisor  = "Supervisor"
	headerStatus      = "Status SN"
	headerVisitDays   = "Dias visita"
)

// ReadWorkbook loads raw route rows from an Excel workbook.
// Columns are located by header name so column order in the source file
// does not matter. An empty sheet name selects the first sheet.
func ReadWorkbook(path string, sheet string) ([]services.RawRouteRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workbook: open %q: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read workbook: read sheet %q: %w", sheet, err)
	}

	out, err := MapRows(rows)
	if err != nil {
		return nil, fmt.Errorf("read workbook: sheet %q: %w", sheet, err)
	}

	return out, nil
}

// MapRows converts sheet rows (header row first) into raw route rows.
// The GEO column is required; the metadata columns are optional and default
// to empty. Row contents are not validated here; coordinate parsing and
// drop reporting happen downstream, row by row.
func MapRows(rows [][]string) ([]services.RawRouteRow, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("map rows: sheet is empty")
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[strings.TrimSpace(h)] = i
	}

	geoCol, ok := idx[headerGeo]
	if !ok {
		return nil, fmt.Errorf("map rows: missing required column %q", headerGeo)
	}

	cell := func(row []string, header string) string {
		col, ok := idx[header]
		if !ok || col >= len(row) {
			return ""
		}
		return row[col]
	}

	out := make([]services.RawRouteRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var geo string
		if geoCol < len(row) {
			geo = row[geoCol]
		}

		out = append(out, services.RawRouteRow{
			Geo:         geo,
			Name:        cell(row, headerName),
			Salesperson: cell(row, headerSalesperson),
			Supervisor:  cell(row, headerSupervisor),
			Status:      cell(row, headerStatus),
			VisitDays:   cell(row, headerVisitDays),
		})
	}

	return out, nil
}
