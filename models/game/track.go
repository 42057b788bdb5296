package game

// Track is one playable entry of a room's playlist. Artist may hold several
// names joined by ", " (the catalog providers join them that way). Tracks are
// created by a catalog fetch and never mutated afterwards.
type Track struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	PreviewURL string `json:"preview_url"` // may be empty, playback then falls back to the full source
	ArtworkURL string `json:"artwork_url"`
	DurationMs int    `json:"duration_ms"`
}
