// pkg/api/records_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for one motif match.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	Label      string `json:"label"`
	Pattern    string `json:"pattern"`
	Strand     string `json:"strand"` // "+" | "-"
	Start      int    `json:"start"`  // 0-based, inclusive
	End        int    `json:"end"`    // 0-based, exclusive
	Mismatches int    `json:"mismatches"`
	Site       string `json:"site,omitempty"`
}

// MarkerV1 is one highlight annotation.
type MarkerV1 struct {
	Kind   string `json:"kind"` // "start" | "end" | "mismatch"
	Offset int    `json:"offset"`
	Motif  int    `json:"motif"`
}

// RecordV1 groups every surviving hit of one sequence record.
type RecordV1 struct {
	SequenceID string     `json:"sequence_id"`
	Length     int        `json:"length"`
	Hits       []HitV1    `json:"hits"`
	Markers    []MarkerV1 `json:"markers,omitempty"`
	SourceFile string     `json:"source_file,omitempty"`
}
