package pdfdoc_test

import (
	"bytes"
	"testing"

	"trip_planner/internal/adapters/pdfdoc"
)

func TestExport_ProducesPDFBytes(t *testing.T) {
	b, name, err := pdfdoc.Export("Goa", "Day 1: Beaches\nDay 2: Forts")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF, starts with %q", b[:min(8, len(b))])
	}
	if name != "itinerary_goa.pdf" {
		t.Fatalf("filename: %s", name)
	}
}

func TestExport_ToleratesNonLatinText(t *testing.T) {
	b, _, err := pdfdoc.Export("Tōkyō", "Jour 1: café et musée, été")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("empty output")
	}
}

func TestExport_FilenameFallsBack(t *testing.T) {
	_, name, err := pdfdoc.Export("", "text")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if name != "itinerary_trip.pdf" {
		t.Fatalf("filename: %s", name)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
