package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []string{"joy", "anger"}, []float64{0.9, 0.05}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	want := [][]string{
		{"Emotions", "Probability"},
		{"joy", "0.9"},
		{"anger", "0.05"},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d: %v", len(records), len(want), records)
	}
	for i := range want {
		for j := range want[i] {
			if records[i][j] != want[i][j] {
				t.Errorf("record[%d][%d] = %q, want %q", i, j, records[i][j], want[i][j])
			}
		}
	}
}

func TestWriteCSVEscapesLabels(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []string{`odd, "label"`}, []float64{1}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if records[1][0] != `odd, "label"` {
		t.Errorf("label = %q", records[1][0])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []string{"joy", "anger"}, []float64{0.9, 0.05}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var rows []Row
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 2 || rows[0] != (Row{"joy", 0.9}) || rows[1] != (Row{"anger", 0.05}) {
		t.Errorf("rows = %+v", rows)
	}
}

func TestLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []string{"joy"}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("csv err = %v", err)
	}
	if err := WriteJSON(&buf, nil, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("json err = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q on error", buf.String())
	}
}
