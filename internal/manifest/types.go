package manifest

// FileName is the manifest written next to the generated cards.
const FileName = "cardgen.manifest.json"

// Manifest is the top-level output of a cardgen build.
type Manifest struct {
	Version     int             `json:"version"`
	GeneratedAt string          `json:"generated_at"`
	Profile     string          `json:"profile"`
	Font        string          `json:"font"`
	FontSize    float64         `json:"font_size"`
	DPI         int             `json:"dpi"`
	BuildInfo   *BuildInfo      `json:"build_info,omitempty"`
	Cards       map[string]Card `json:"cards"`
	Stats       Stats           `json:"stats"`
}

// BuildInfo captures build-time parameters for diagnostics.
type BuildInfo struct {
	RunID   string `json:"run_id"`
	Workers int    `json:"workers"`
}

// Card describes one card image in the output directory.
type Card struct {
	Suit   string `json:"suit"`
	Rank   string `json:"rank"`
	Label  string `json:"label,omitempty"` // empty for ace templates
	Color  string `json:"color"`           // "black" or "red"
	Base   bool   `json:"base,omitempty"`  // ace template, copied not rendered
	Path   string `json:"path"`            // relative to the manifest
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"` // bytes on disk
	Hash   string `json:"hash"` // first 16 hex chars of xxhash64
}

// Stats aggregates build metrics.
type Stats struct {
	TotalCards    int   `json:"total_cards"`
	RenderedCards int   `json:"rendered_cards"`
	TotalBytes    int64 `json:"total_bytes"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
