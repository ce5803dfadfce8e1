package model

import "time"

// File is one candidate regular file picked up by a scan.
type File struct {
	Path string `json:"path" yaml:"path"`
	Size int64  `json:"size" yaml:"size"`
}

// Move records a single file relocation performed, or planned in dry-run
// mode, by an organize run.
type Move struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Category    string `json:"category" yaml:"category"`
	Size        int64  `json:"size" yaml:"size"`
	Overwrote   bool   `json:"overwrote" yaml:"overwrote"`
}

// Stats aggregates the outcome of an organize run.
type Stats struct {
	Scanned     int            `json:"scanned" yaml:"scanned"`
	Moved       int            `json:"moved" yaml:"moved"`
	Overwrites  int            `json:"overwrites" yaml:"overwrites"`
	BytesMoved  int64          `json:"bytes_moved" yaml:"bytes_moved"`
	PerCategory map[string]int `json:"per_category" yaml:"per_category"`
}

// Report is the full record of one organize run.
type Report struct {
	Root             string        `json:"root" yaml:"root"`
	Recursive        bool          `json:"recursive" yaml:"recursive"`
	DryRun           bool          `json:"dry_run" yaml:"dry_run"`
	StartTime        time.Time     `json:"start_time" yaml:"start_time"`
	Duration         time.Duration `json:"duration" yaml:"duration"`
	Moves            []Move        `json:"moves" yaml:"moves"`
	EmptyDirsRemoved int           `json:"empty_dirs_removed" yaml:"empty_dirs_removed"`
	Stats            *Stats        `json:"stats" yaml:"stats"`
}
