package csvio

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/KaramelBytes/pollnorm-cli/internal/poll"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadRecords(t *testing.T) {
	path := writeFixture(t, "polls.csv",
		"Dates,Pollster,Approve\n"+
			"2020-01-01,Gallup,47\n"+
			"2020-01-02,YouGov\n"+ // short row: Approve absent
			"2020-01-03,Marist,44,extra\n") // extra cell dropped

	header, rows, err := ReadRecords(path, ',')
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if want := []string{"Dates", "Pollster", "Approve"}; !reflect.DeepEqual(header, want) {
		t.Fatalf("header = %v, want %v", header, want)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if _, ok := rows[1].Lookup("Approve"); ok {
		t.Fatal("short row grew an Approve cell")
	}
	if got := rows[2].Get("Pollster"); got != "Marist" {
		t.Fatalf("row 2 Pollster = %q", got)
	}
}

func TestReadRecordsEmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.csv", "")
	header, rows, err := ReadRecords(path, ',')
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if header != nil || rows != nil {
		t.Fatalf("expected nil header and rows, got %v / %v", header, rows)
	}
}

func TestReadRecordsMissingFile(t *testing.T) {
	if _, _, err := ReadRecords(filepath.Join(t.TempDir(), "nope.csv"), ','); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestReadRecordsTab(t *testing.T) {
	path := writeFixture(t, "polls.tsv", "Dates\tPollster\n2020-01-01\tGallup\n")
	if got := SniffDelimiter(path); got != '\t' {
		t.Fatalf("SniffDelimiter = %q, want tab", got)
	}
	_, rows, err := ReadRecords(path, '\t')
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if got := rows[0].Get("Pollster"); got != "Gallup" {
		t.Fatalf("Pollster = %q, want Gallup", got)
	}
}

func TestWriteRecords(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	fields := []string{"Dates", "Pollster", "Sponsor"}
	rows := []poll.Record{
		{"Dates": "2020-01-02", "Pollster": "YouGov", "Sponsor": "Economist", "Net": "+3"},
		{"Dates": "2020-01-01", "Pollster": "Gallup"},
	}
	if err := WriteRecords(out, fields, rows); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "Dates,Pollster,Sponsor\n" +
		"2020-01-02,YouGov,Economist\n" + // Net is not a schema column
		"2020-01-01,Gallup,\n"
	if string(b) != want {
		t.Fatalf("output = %q, want %q", b, want)
	}
	if _, err := os.Stat(out + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temp file left behind")
	}
}

func TestWriteRecordsRoundTrip(t *testing.T) {
	out := filepath.Join(t.TempDir(), "round.csv")
	fields := []string{"Pollster", "Approve"}
	rows := []poll.Record{{"Pollster": "Quo, Inc.", "Approve": "4\"7"}}
	if err := WriteRecords(out, fields, rows); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}
	header, got, err := ReadRecords(out, ',')
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if !reflect.DeepEqual(header, fields) {
		t.Fatalf("header = %v, want %v", header, fields)
	}
	if got[0].Get("Pollster") != "Quo, Inc." || got[0].Get("Approve") != "4\"7" {
		t.Fatalf("round trip mangled cells: %v", got[0])
	}
}
