package batch

import (
	"encoding/json"
	"os"

	"skyrim-pbrgen/internal/export"
)

// ManifestEntry represents one source texture in the run manifest.
type ManifestEntry struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Mode     string   `json:"mode"`
	State    string   `json:"state"`
	Outputs  []string `json:"outputs,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing a finished run.
func WriteManifest(path string, jobs []export.Job, results []export.Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{
			Source:   r.Source,
			State:    r.State.String(),
			Outputs:  r.Outputs,
			Warnings: r.Warnings,
		}
		if i < len(jobs) {
			e.Target = jobs[i].Target.String()
			e.Mode = jobs[i].Mode.String()
		}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		entries[i] = e
	}

	return WriteEntries(path, entries)
}

// WriteEntries writes a prebuilt manifest, for callers that assemble
// entries from something other than planner jobs.
func WriteEntries(path string, entries []ManifestEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
