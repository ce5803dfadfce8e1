package output

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"pigeonhole/internal/model"
)

func TestYAMLFormatter_Format(t *testing.T) {
	report := &model.Report{
		Root:      "/tmp/downloads",
		DryRun:    true,
		StartTime: time.Now().UTC(),
		Duration:  2 * time.Millisecond,
		Moves: []model.Move{
			{
				Source:      "/tmp/downloads/song.mp3",
				Destination: "/tmp/downloads/Music/song.mp3",
				Category:    "Music",
				Size:        512,
			},
			{
				Source:      "/tmp/downloads/notes",
				Destination: "/tmp/downloads/Others/notes",
				Category:    "Others",
				Size:        256,
			},
		},
		Stats: &model.Stats{
			Scanned:     4,
			Moved:       2,
			BytesMoved:  768,
			PerCategory: map[string]int{"Music": 1, "Others": 1},
		},
	}

	var buf bytes.Buffer
	formatter := NewYAMLFormatter()
	err := formatter.Format(report, &buf)
	if err != nil {
		t.Fatalf("failed to format report: %v", err)
	}

	var got model.Report
	err = yaml.Unmarshal(buf.Bytes(), &got)
	if err != nil {
		t.Fatalf("failed to unmarshal YAML: %v", err)
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

	if !got.DryRun {
		t.Error("DryRun flag lost in round trip")
	}

	if !got.StartTime.Equal(report.StartTime) {
		t.Errorf("StartTime mismatch: got %v, want %v", got.StartTime, report.StartTime)
	}
}
