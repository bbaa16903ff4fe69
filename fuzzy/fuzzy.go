// Package fuzzy implements last-resort excerpt matching: both excerpt and
// content are reduced to a lowercase alphanumeric stream, the best-aligning
// window is found by longest-common-subsequence similarity, and the winning
// window is mapped back to original character offsets.
package fuzzy

import "strings"

// DefaultThreshold is the minimum similarity score accepted by Find when
// the caller passes a non-positive threshold.
const DefaultThreshold = 0.7

// minExcerptLength rejects excerpts whose normalized form is too short to
// fuzzy-match reliably.
const minExcerptLength = 10

// earlyExitScore stops the window search once a window this good is found.
const earlyExitScore = 0.95

// Match is a recovered range in the original content with its similarity
// score.
type Match struct {
	Start int
	End   int
	Score float64
}

// Similarity scores two strings by longest-common-subsequence ratio:
// 2*LCS(a,b) / (len(a)+len(b)). Symmetric, 1.0 for identical strings,
// 0 if either is empty.
func Similarity(a, b string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return 2 * float64(lcsLength(a, b)) / float64(len(a)+len(b))
}

func lcsLength(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Find locates the best fuzzy occurrence of excerpt inside content and maps
// it back to original offsets. It returns nil when the normalized excerpt
// is shorter than 10 characters or no window reaches the threshold; "no
// match" is an expected outcome, not an error.
func Find(content, excerpt string, threshold float64) *Match {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	normExcerpt, _ := normalizeAlnum(excerpt)
	if len(normExcerpt) < minExcerptLength {
		return nil
	}
	normContent, posMap := normalizeAlnum(content)
	if len(normContent) == 0 {
		return nil
	}

	bestScore := 0.0
	bestStart, bestEnd := -1, -1
	l := len(normExcerpt)
	sizeStep := max(1, l/10)
	// Window sizes within +-30% of the excerpt length; coarse slide step
	// trades precision for speed.
search:
	for size := max(1, l*7/10); size <= l*13/10; size += sizeStep {
		if size > len(normContent) {
			break
		}
		step := max(1, size/10)
		for start := 0; start+size <= len(normContent); start += step {
			score := Similarity(normContent[start:start+size], normExcerpt)
			if score > bestScore {
				bestScore = score
				bestStart, bestEnd = start, start+size
				if score > earlyExitScore {
					break search
				}
			}
		}
	}
	if bestScore < threshold || bestStart < 0 {
		return nil
	}

	origStart := posMap[bestStart]
	origEnd := posMap[bestEnd-1] + 1
	origStart = refineStart(content, excerpt, origStart)
	if origStart >= origEnd {
		origEnd = min(origStart+1, len(content))
	}
	return &Match{Start: origStart, End: origEnd, Score: bestScore}
}

// refineStart corrects fuzzy matches that over-include leading characters
// by looking for the excerpt's first word of three or more characters
// within a small tolerance window forward of the mapped start.
func refineStart(content, excerpt string, start int) int {
	word := firstWord(excerpt)
	if word == "" || start >= len(content) {
		return start
	}
	const tolerance = 20
	end := min(len(content), start+tolerance+len(word))
	window := strings.ToLower(content[start:end])
	if idx := strings.Index(window, strings.ToLower(word)); idx > 0 {
		return start + idx
	}
	return start
}

func firstWord(s string) string {
	for _, w := range strings.Fields(s) {
		w = strings.TrimFunc(w, func(r rune) bool { return !isAlnumRune(r) })
		if len(w) >= 3 {
			return w
		}
	}
	return ""
}

func isAlnumRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// normalizeAlnum reduces text to lowercase alphanumerics with single spaces
// between runs and returns a map from normalized index back to the original
// index. Spaces map to the first original index of the gap they collapse.
func normalizeAlnum(text string) (string, []int) {
	var sb strings.Builder
	var posMap []int
	gapStart := -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !isAlnum(c) {
			if gapStart < 0 {
				gapStart = i
			}
			continue
		}
		if gapStart >= 0 && sb.Len() > 0 {
			sb.WriteByte(' ')
			posMap = append(posMap, gapStart)
		}
		gapStart = -1
		sb.WriteByte(lower(c))
		posMap = append(posMap, i)
	}
	return sb.String(), posMap
}
