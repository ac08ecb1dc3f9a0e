package trg

import (
	"fmt"
	"strconv"
	"strings"
)

// thaiMonths maps the abbreviated Thai month names used by the gazette to
// two-digit month numbers. The site renders the abbreviation both with and
// without the trailing period, so both spellings are keyed.
var thaiMonths = map[string]string{
	"ม.ค.": "01", "ม.ค": "01",
	"ก.พ.": "02", "ก.พ": "02",
	"มี.ค.": "03", "มี.ค": "03",
	"เม.ย.": "04", "เม.ย": "04",
	"พ.ค.": "05", "พ.ค": "05",
	"มิ.ย.": "06", "มิ.ย": "06",
	"ก.ค.": "07", "ก.ค": "07",
	"ส.ค.": "08", "ส.ค": "08",
	"ก.ย.": "09", "ก.ย": "09",
	"ต.ค.": "10", "ต.ค": "10",
	"พ.ย.": "11", "พ.ย": "11",
	"ธ.ค.": "12", "ธ.ค": "12",
}

// buddhistEraOffset is the difference between the Buddhist and Gregorian
// calendar years.
const buddhistEraOffset = 543

// ThaiDigitsToArabic replaces every Thai numeral glyph in s with its Arabic
// digit. All other characters pass through unchanged.
func ThaiDigitsToArabic(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '๐' && r <= '๙' {
			b.WriteRune('0' + (r - '๐'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseThaiDate converts a Buddhist-era date string such as
// "๑๕ ม.ค. ๒๕๖๗" into an ISO "YYYY-MM-DD" string in the Gregorian
// calendar. It returns nil when the input does not split into at least
// day, month and year tokens. An unrecognized month abbreviation is
// encoded as "00" rather than dropped.
func ParseThaiDate(s string) *string {
	parts := strings.Fields(s)
	if len(parts) < 3 {
		return nil
	}

	day := ThaiDigitsToArabic(parts[0])
	if len(day) < 2 {
		day = "0" + day
	}

	month, ok := thaiMonths[parts[1]]
	if !ok {
		month = "00"
	}

	buddhistYear, err := strconv.Atoi(ThaiDigitsToArabic(parts[2]))
	if err != nil {
		return nil
	}
	year := buddhistYear - buddhistEraOffset

	out := fmt.Sprintf("%d-%s-%s", year, month, day)
	return &out
}
