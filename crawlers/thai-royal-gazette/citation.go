package trg

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ParsedCitation is the structured form of a gazette citation string.
// Every field is independently nullable; an unparseable citation yields
// the zero value rather than an error.
type ParsedCitation struct {
	BookNo   *string
	Section  *string
	Category *string
	PageNo   *string
}

// The gazette changed its citation grammar across historical eras and the
// strings carry no version marker, so candidate grammars are tried in a
// fixed priority order and the first match wins.
//
//	simple-legacy   เล่ม ๒๕ ตอนที่ ๓๙ หน้า ๑๑๔๑        (up to BE 2451)
//	lettered-legacy เล่ม ๒๖ ก หน้า ๑๐๓                 (BE 2452-2484)
//	modern          เล่ม ๑๔๐ ตอนพิเศษ ๕ ง หน้า ๑       (BE 2485 onward)
var (
	reSimpleLegacy   = regexp.MustCompile(`เล่ม\s*([๐-๙]+)\s*ตอน(?:ที่)?\s*([๐-๙]+)\s*หน้า\s*([๐-๙]+)`)
	reLetteredLegacy = regexp.MustCompile(`เล่ม\s*([๐-๙]+)\s*([ก-ฮ])\s*หน้า\s*([๐-๙]+)`)
	reModern         = regexp.MustCompile(`เล่ม\s*([๐-๙]+)\s*ตอน(?:ที่)?\s*(พิเศษ)?\s*([๐-๙]+)\s*([ก-ฮ])?\s*หน้า\s*([๐-๙]+)`)
	reModernNoPage   = regexp.MustCompile(`เล่ม\s*([๐-๙]+)\s*ตอน(?:ที่)?\s*(พิเศษ)?\s*([๐-๙]+)\s*([ก-ฮ])?\s*(?:หน้า\s*([๐-๙]+))?`)
)

type citationGrammar struct {
	name  string
	parse func(string) mo.Option[ParsedCitation]
}

var citationGrammars = []citationGrammar{
	{name: "simple-legacy", parse: parseSimpleLegacy},
	{name: "lettered-legacy", parse: parseLetteredLegacy},
	{name: "modern", parse: parseModern},
}

// ParseCitation decomposes a citation string by trying each known grammar
// in priority order. When no grammar matches, all fields of the result are
// nil.
func ParseCitation(text string) ParsedCitation {
	for _, g := range citationGrammars {
		if c, ok := g.parse(text).Get(); ok {
			return c
		}
	}
	return ParsedCitation{}
}

// ParseCitationModern applies only the modern grammar, with the page group
// optional. The category-search listing renders citations without a page
// number on some entries, so this variant is what that call site uses.
func ParseCitationModern(text string) ParsedCitation {
	if c, ok := buildModern(reModernNoPage.FindStringSubmatch(text)).Get(); ok {
		return c
	}
	return ParsedCitation{}
}

func parseSimpleLegacy(text string) mo.Option[ParsedCitation] {
	m := reSimpleLegacy.FindStringSubmatch(text)
	if m == nil {
		return mo.None[ParsedCitation]()
	}
	return mo.Some(ParsedCitation{
		BookNo:  arabic(m[1]),
		Section: arabic(m[2]),
		PageNo:  arabic(m[3]),
	})
}

func parseLetteredLegacy(text string) mo.Option[ParsedCitation] {
	m := reLetteredLegacy.FindStringSubmatch(text)
	if m == nil {
		return mo.None[ParsedCitation]()
	}
	letter := m[2]
	return mo.Some(ParsedCitation{
		BookNo:   arabic(m[1]),
		Category: &letter,
		PageNo:   arabic(m[3]),
	})
}

func parseModern(text string) mo.Option[ParsedCitation] {
	return buildModern(reModern.FindStringSubmatch(text))
}

// buildModern assembles a ParsedCitation from a modern-grammar match.
// The special-issue marker and the category letter may appear in either
// order in the source; when both are present they are combined
// letter-first into the category field.
func buildModern(m []string) mo.Option[ParsedCitation] {
	if m == nil {
		return mo.None[ParsedCitation]()
	}
	c := ParsedCitation{
		BookNo:  arabic(m[1]),
		Section: arabic(m[3]),
	}
	if len(m) > 5 && m[5] != "" {
		c.PageNo = arabic(m[5])
	}
	parts := lo.Compact([]string{strings.TrimSpace(m[4]), strings.TrimSpace(m[2])})
	if len(parts) > 0 {
		joined := strings.Join(parts, " ")
		c.Category = &joined
	}
	return mo.Some(c)
}

func arabic(thai string) *string {
	s := ThaiDigitsToArabic(thai)
	return &s
}
