package utils

import (
	"reflect"
	"testing"
)

func TestParseSerialNumbers(t *testing.T) {
	got := ParseSerialNumbers("SN1\n\nSN2\n  \nSN3")
	want := []string{"SN1", "SN2", "SN3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseSerialNumbers = %v, want %v", got, want)
	}
}

func TestParseSerialNumbersTrimsAndKeepsOrder(t *testing.T) {
	got := ParseSerialNumbers("  B-200 \r\nA-100\n\tC-300\t")
	want := []string{"B-200", "A-100", "C-300"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseSerialNumbers = %v, want %v", got, want)
	}
}

func TestParseSerialNumbersEmpty(t *testing.T) {
	if got := ParseSerialNumbers("\n  \n\t\n"); len(got) != 0 {
		t.Fatalf("expected no serials, got %v", got)
	}
	if got := ParseSerialNumbers(""); len(got) != 0 {
		t.Fatalf("expected no serials from empty block, got %v", got)
	}
}
