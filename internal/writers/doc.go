// Package writers turns scan results into serialized reports.
//
// Design:
//   • Renderers own presentation (internal/output); writers own the
//     goroutine, buffering, and broken-pipe handling around them.
//   • Engine stays domain-only; Pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
