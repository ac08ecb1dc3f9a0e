package trg

// CategoryMap maps the five accepted category codes to the sub-category
// labels rendered next to the search form's checkboxes.
var CategoryMap = map[string]string{
	"1": "รัฐธรรมนูญ",
	"2": "พระราชบัญญัติ",
	"3": "พระราชกำหนด",
	"4": "พระราชกฤษฎีกา",
	"5": "กฎกระทรวงและอื่นๆ",
}

// CategoryQuery is the input of the category search operation.
type CategoryQuery struct {
	Category string
	DateFrom string
	DateTo   string
}

// AdvancedQuery is the input of the advanced search operation. At least
// one field must be set; the handler enforces that before a session is
// created.
type AdvancedQuery struct {
	Title       string
	Types       []string
	BookNo      string
	Part        string
	PartExtra   string
	DateBegin   string
	DateEnd     string
	SearchField string // accepted but not used by the crawl
}

// IsEmpty reports whether no searchable field is set.
func (q AdvancedQuery) IsEmpty() bool {
	return q.Title == "" && len(q.Types) == 0 && q.BookNo == "" &&
		q.Part == "" && q.PartExtra == "" && q.DateBegin == "" && q.DateEnd == ""
}

// ResultRecord is one bibliographic entry extracted from a result page.
// SequenceNumber is dense and 1-based across all pages of one crawl; it is
// not a document identity across runs. Nullable fields mirror the loose
// structure of the source listing.
type ResultRecord struct {
	SequenceNumber int     `json:"no"`
	Title          string  `json:"doctitle"`
	BookNo         *string `json:"bookNo"`
	Section        *string `json:"section"`
	Category       *string `json:"category,omitempty"`
	PublishDate    *string `json:"publishDate"`
	PageNo         *string `json:"pageNo"`
	FilePath       *string `json:"filePath"`
}
