package output

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"pigeonhole/internal/model"
)

// TestJSONFormatter_Format validates the JSON rendering of a Report using the [JSONFormatter].
// It ensures the output is valid JSON and matches the original report structure and data.
func TestJSONFormatter_Format(t *testing.T) {
	report := &model.Report{
		Root:      "/tmp/downloads",
		Recursive: true,
		StartTime: time.Now().UTC(),
		Duration:  2 * time.Millisecond,
		Moves: []model.Move{
			{
				Source:      "/tmp/downloads/report.pdf",
				Destination: "/tmp/downloads/Documents/report.pdf",
				Category:    "Documents",
				Size:        1024,
			},
			{
				Source:      "/tmp/downloads/photo.jpg",
				Destination: "/tmp/downloads/Images/photo.jpg",
				Category:    "Images",
				Size:        2048,
				Overwrote:   true,
			},
		},
		EmptyDirsRemoved: 1,
		Stats: &model.Stats{
			Scanned:     5,
			Moved:       2,
			Overwrites:  1,
			BytesMoved:  3072,
			PerCategory: map[string]int{"Documents": 1, "Images": 1},
		},
	}

	var buf bytes.Buffer
	formatter := NewJSONFormatter()
	err := formatter.Format(report, &buf)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Validate output is valid JSON and matches the expected structure
	var got model.Report
	err = json.Unmarshal(buf.Bytes(), &got)
	if err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if !reflect.DeepEqual(got.Stats, report.Stats) {
		t.Errorf("Stats mismatch: got %v, want %v", got.Stats, report.Stats)
	}

	if !reflect.DeepEqual(got.Moves, report.Moves) {
		t.Errorf("Moves mismatch: got %v, want %v", got.Moves, report.Moves)
	}

	if got.Root != report.Root {
		t.Errorf("Root mismatch: got %s, want %s", got.Root, report.Root)
	}

	if got.EmptyDirsRemoved != report.EmptyDirsRemoved {
		t.Errorf("EmptyDirsRemoved mismatch: got %d, want %d", got.EmptyDirsRemoved, report.EmptyDirsRemoved)
	}

	if got.StartTime != report.StartTime {
		t.Errorf("StartTime mismatch: got %v, want %v", got.StartTime, report.StartTime)
	}
}
