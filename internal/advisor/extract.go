package advisor

import (
	"regexp"
	"strings"
	"unicode"
)

// Ordered pattern rules. English prepositional phrases first, then Latin
// phrases trailed by Japanese particles, then bare Japanese major-city names.
var locationPatterns = []*regexp.Regexp{
	// The captured words must be genuinely capitalized; otherwise a greedy
	// case-insensitive capture swallows trailing words like "today" that the
	// terminator alternation is meant to consume.
	regexp.MustCompile(`(?i:in|at|for|to)\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)(?:\?|\.|,|$|\s+(?:today|tomorrow|now|should|can))`),
	regexp.MustCompile(`(?i)([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)\s+(?:で|の|に|を)`),
	regexp.MustCompile(`(東京|大阪|京都|横浜|名古屋|福岡|札幌|仙台|広島|神戸)`),
}

// Common words the prepositional pattern captures that are never locations.
var stopwords = map[string]bool{
	"what": true, "should": true, "do": true, "today": true, "tomorrow": true,
	"wear": true, "activities": true, "i": true, "can": true,
}

// knownCities validates candidates that don't carry leading capitalization.
var knownCities = map[string]bool{
	"tokyo": true, "new york": true, "london": true, "paris": true,
	"berlin": true, "moscow": true, "sydney": true, "melbourne": true,
	"toronto": true, "vancouver": true, "mumbai": true, "delhi": true,
	"bangalore": true, "singapore": true, "hong kong": true, "seoul": true,
	"beijing": true, "shanghai": true, "dubai": true, "istanbul": true,
	"cairo": true, "rio de janeiro": true, "sao paulo": true,
	"mexico city": true, "buenos aires": true, "los angeles": true,
	"chicago": true, "san francisco": true, "miami": true, "boston": true,
	"seattle": true, "denver": true, "phoenix": true, "dallas": true,
	"houston": true, "osaka": true, "kyoto": true, "yokohama": true,
	"nagoya": true, "fukuoka": true, "sapporo": true, "sendai": true,
	"hiroshima": true, "kobe": true,
	"東京": true, "大阪": true, "京都": true, "横浜": true, "名古屋": true,
	"福岡": true, "札幌": true, "仙台": true, "広島": true, "神戸": true,
}

// ExtractLocation pulls a place name out of free-form text. It is a
// best-effort heuristic fallback for when the model does not request a weather
// tool call itself: false negatives are acceptable, false positives are
// bounded by the stoplist. Returns "" when nothing survives. The pattern
// rules cover every supported locale unconditionally, so language only exists
// for contract symmetry with the gateways.
func ExtractLocation(query, language string) string {
	for _, pattern := range locationPatterns {
		m := pattern.FindStringSubmatch(query)
		if m == nil {
			continue
		}

		candidate := m[0]
		if len(m) > 1 && m[1] != "" {
			candidate = m[1]
		}
		candidate = strings.TrimSpace(candidate)
		lower := strings.ToLower(candidate)

		if stopwords[lower] {
			continue
		}
		if len([]rune(candidate)) < 2 {
			continue
		}
		if knownCities[lower] || startsUpper(candidate) {
			return candidate
		}
	}
	return ""
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
