package game_constants

import "time"

const TitlePoints = 100 // full points
const ArtistPoints = 50 // half points

// Room codes, e.g. "AB3DE9" (uppercase so they are easy to read out loud)
const RoomCodeLength = 6
const RoomCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// A guess that is only contained in the target (or vice versa) must cover at
// least 60% of it to count.
const MinMatchRatio = 0.6

// ---------------------------------------------------------------
// TIMEOUTS
// ---------------------------------------------------------------
const (
	ROUND_TIMEOUT    = 30 * time.Second // preview clips are ~30s
	ROOM_MAX_AGE     = 2 * time.Hour
	CLEANUP_INTERVAL = 10 * time.Minute
)
