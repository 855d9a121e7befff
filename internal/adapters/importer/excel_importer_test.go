package importer

import (
	"testing"
)

func TestMapRowsByHeaderName(t *testing.T) {
	rows := [][]string{
		{"Nombre de Ruta", "GEO", "Vendedor", "Supervisor", "Status SN", "Dias visita"},
		{"Ruta Norte", "-17.85,-63.19", "V1", "S1", "ACTIVO", "LU-MI-VI"},
		{"Ruta Sur", "-13.262719-64.052359", "V2", "S2", "INACTIVO", "MA-JU"},
	}

	got, err := MapRows(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}

	first := got[0]
	if first.Geo != "-17.85,-63.19" {
		t.Fatalf("geo = %q, want \"-17.85,-63.19\"", first.Geo)
	}
	if first.Name != "Ruta Norte" || first.Salesperson != "V1" || first.Supervisor != "S1" {
		t.Fatalf("metadata mapped wrong: %+v", first)
	}
	if first.Status != "ACTIVO" || first.VisitDays != "LU-MI-VI" {
		t.Fatalf("status/visit days mapped wrong: %+v", first)
	}
}

func TestMapRowsShortAndMissingCells(t *testing.T) {
	rows := [][]string{
		{"GEO", "Nombre de Ruta", "Vendedor"},
		{"-17.85,-63.19"}, // short row: only GEO present
		{},                // fully empty row still produces a (failing) raw row
	}

	got, err := MapRows(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Geo != "-17.85,-63.19" || got[0].Name != "" {
		t.Fatalf("short row mapped wrong: %+v", got[0])
	}
	if got[1].Geo != "" {
		t.Fatalf("empty row should have empty geo, got %q", got[1].Geo)
	}
}

func TestMapRowsRequiresGeoColumn(t *testing.T) {
	rows := [][]string{
		{"Nombre de Ruta", "Vendedor"},
		{"Ruta Norte", "V1"},
	}

	if _, err := MapRows(rows); err == nil {
		t.Fatal("expected error for missing GEO column")
	}
}

func TestMapRowsEmptySheet(t *testing.T) {
	if _, err := MapRows(nil); err == nil {
		t.Fatal("expected error for empty sheet")
	}
}
