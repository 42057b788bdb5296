package game

import (
	game_constants "Melodia/constants/game"
	models "Melodia/models/game"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Pure guess evaluation. Nothing here touches room state; the registry
// applies the outcome under the room lock.

// decompose accents into combining marks, drop the marks ("Motörhead" ->
// "Motorhead"), recompose.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var punctReplacer = strings.NewReplacer(
	"&", "and",
	"'", "",
	"’", "",
	`"`, "",
	".", "",
	"-", " ",
)

// NormalizeGuess folds a guess or target down to the form both sides are
// compared in: trimmed, lowercased, accents stripped, "&" spelled out,
// apostrophes/quotes/periods dropped, hyphens turned into spaces.
func NormalizeGuess(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(deaccent, s); err == nil {
		s = folded
	}
	s = punctReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// stripBracketSuffix cuts a trailing parenthesised or bracketed annotation
// off a title: "Song (feat. X)" -> "Song". Titles that *start* with a bracket
// are left alone.
func stripBracketSuffix(title string) string {
	if i := strings.IndexAny(title, "(["); i > 0 {
		return strings.TrimSpace(title[:i])
	}
	return title
}

// IsMatch reports whether a guess hits a target: equal after normalization,
// or one contained in the other with at least MinMatchRatio of the longer
// string covered. The containment path can false-positive on very short
// guesses against short targets (known fragility, pinned by tests).
func IsMatch(guess, target string) bool {
	g := NormalizeGuess(guess)
	t := NormalizeGuess(target)
	if g == "" || t == "" {
		return false
	}
	if g == t {
		return true
	}
	if strings.Contains(t, g) || strings.Contains(g, t) {
		shorter, longer := len(g), len(t)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return float64(shorter)/float64(longer) >= game_constants.MinMatchRatio
	}
	return false
}

// MatchesTitle tries the raw title and, when the title carries a bracketed
// suffix, the stripped form as well.
func MatchesTitle(guess, title string) bool {
	if IsMatch(guess, title) {
		return true
	}
	if stripped := stripBracketSuffix(title); stripped != title {
		return IsMatch(guess, stripped)
	}
	return false
}

// MatchesArtist accepts the full joined artist string, any single name out of
// a comma-separated list, or any word of a name, so "Queen, David Bowie" is
// hit by "bowie" alone.
func MatchesArtist(guess, artist string) bool {
	if IsMatch(guess, artist) {
		return true
	}
	for _, name := range strings.Split(artist, ",") {
		name = strings.TrimSpace(name)
		if IsMatch(guess, name) {
			return true
		}
		for _, word := range strings.Fields(name) {
			if IsMatch(guess, word) {
				return true
			}
		}
	}
	return false
}

// GuessOutcome is what one evaluation newly credited. Points covers exactly
// the categories credited by this call.
type GuessOutcome struct {
	NewTitle  bool
	NewArtist bool
	Points    int
}

func (o GuessOutcome) Category() models.GuessCategory {
	switch {
	case o.NewTitle && o.NewArtist:
		return models.GuessBoth
	case o.NewTitle:
		return models.GuessTitle
	case o.NewArtist:
		return models.GuessArtist
	default:
		return models.GuessNone
	}
}

// EvaluateGuess scores one guess against the current track given what the
// player already guessed this round. Each category is credited at most once
// per round: a repeat correct guess comes back empty, it is not an error. A
// single guess may credit both categories when it matches both.
func EvaluateGuess(track models.Track, progress models.RoundProgress, guess string) GuessOutcome {
	var out GuessOutcome
	if progress.GuessedTitle && progress.GuessedArtist {
		return out
	}
	if !progress.GuessedTitle && MatchesTitle(guess, track.Title) {
		out.NewTitle = true
		out.Points += game_constants.TitlePoints
	}
	if !progress.GuessedArtist && MatchesArtist(guess, track.Artist) {
		out.NewArtist = true
		out.Points += game_constants.ArtistPoints
	}
	return out
}
