package trg

import (
	"testing"
)

func strPtr(s string) *string { return &s }

func citationEqual(a, b ParsedCitation) bool {
	eq := func(x, y *string) bool {
		if x == nil || y == nil {
			return x == y
		}
		return *x == *y
	}
	return eq(a.BookNo, b.BookNo) && eq(a.Section, b.Section) &&
		eq(a.Category, b.Category) && eq(a.PageNo, b.PageNo)
}

func TestParseCitation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParsedCitation
	}{
		{
			name:  "simple legacy form",
			input: "เล่ม ๒๕ ตอนที่ ๓๙ หน้า ๑๑๔๑",
			want:  ParsedCitation{BookNo: strPtr("25"), Section: strPtr("39"), PageNo: strPtr("1141")},
		},
		{
			name:  "lettered legacy form",
			input: "เล่ม ๒๖ ก หน้า ๑๐๓",
			want:  ParsedCitation{BookNo: strPtr("26"), Category: strPtr("ก"), PageNo: strPtr("103")},
		},
		{
			name:  "modern with special issue and letter",
			input: "เล่ม ๑๔๐ ตอนพิเศษ ๕ ง หน้า ๑",
			want:  ParsedCitation{BookNo: strPtr("140"), Section: strPtr("5"), Category: strPtr("ง พิเศษ"), PageNo: strPtr("1")},
		},
		{
			name:  "modern with letter only",
			input: "เล่ม ๑๓๘ ตอนที่ ๗๒ ก หน้า ๑๒",
			want:  ParsedCitation{BookNo: strPtr("138"), Section: strPtr("72"), Category: strPtr("ก"), PageNo: strPtr("12")},
		},
		{
			name:  "no grammar matches",
			input: "ประกาศสำนักนายกรัฐมนตรี",
			want:  ParsedCitation{},
		},
		{
			name:  "empty input",
			input: "",
			want:  ParsedCitation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCitation(tt.input)
			if !citationEqual(got, tt.want) {
				t.Errorf("ParseCitation(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCitationModern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParsedCitation
	}{
		{
			name:  "page group present",
			input: "เล่ม ๑๔๐ ตอนพิเศษ ๕ ง หน้า ๑",
			want:  ParsedCitation{BookNo: strPtr("140"), Section: strPtr("5"), Category: strPtr("ง พิเศษ"), PageNo: strPtr("1")},
		},
		{
			name:  "page group absent",
			input: "เล่ม ๑๒๓ ตอนที่ ๔๕ ข",
			want:  ParsedCitation{BookNo: strPtr("123"), Section: strPtr("45"), Category: strPtr("ข")},
		},
		{
			name:  "plain modern issue",
			input: "เล่ม ๑๓๙ ตอนที่ ๑๑",
			want:  ParsedCitation{BookNo: strPtr("139"), Section: strPtr("11")},
		},
		{
			name:  "legacy-only text does not match",
			input: "เล่ม ๒๖ ก หน้า ๑๐๓",
			want:  ParsedCitation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCitationModern(tt.input)
			if !citationEqual(got, tt.want) {
				t.Errorf("ParseCitationModern(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
