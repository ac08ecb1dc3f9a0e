package trg

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
)

// Selectors of the result listing. The marker selector doubles as the
// "results are rendered" signal the crawler waits on.
const (
	selResultEntry  = ".post-thumbnail-entry"
	selEntryLink    = "a.m-b-10"
	selEntryDate    = "span.post-date"
	selEntryCaption = "span.post-category"
)

// ExtractMode selects the record layout of a call site.
type ExtractMode int

const (
	// ModeCategory folds the citation's category annotation into the
	// section field and leaves the category field unset, matching the
	// category-search listing.
	ModeCategory ExtractMode = iota
	// ModeAdvanced keeps the category annotation as its own field.
	ModeAdvanced
)

// ExtractRecords parses one result page's rendered HTML into ordered
// records. Sequence numbers continue from startSeq so that numbering stays
// dense across pages. A missing sub-element nils the affected field
// instead of discarding the entry.
func ExtractRecords(html string, startSeq int, mode ExtractMode) ([]ResultRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	records := []ResultRecord{}
	doc.Find(selResultEntry).Each(func(_ int, entry *goquery.Selection) {
		link := entry.Find(selEntryLink)

		rec := ResultRecord{
			SequenceNumber: startSeq + len(records) + 1,
			Title:          strings.TrimSpace(link.Text()),
		}
		if href, ok := link.Attr("href"); ok {
			rec.FilePath = &href
		}

		if raw := strings.TrimSpace(entry.Find(selEntryDate).Text()); raw != "" {
			rec.PublishDate = ParseThaiDate(raw)
		}

		// The citation can be split across several caption spans; the
		// grammar expects them joined with single spaces.
		caption := strings.Join(entry.Find(selEntryCaption).Map(func(_ int, s *goquery.Selection) string {
			return strings.TrimSpace(s.Text())
		}), " ")

		switch mode {
		case ModeCategory:
			c := ParseCitationModern(caption)
			rec.BookNo = c.BookNo
			rec.PageNo = c.PageNo
			rec.Section = foldCategoryIntoSection(c)
		case ModeAdvanced:
			c := ParseCitation(caption)
			rec.BookNo = c.BookNo
			rec.Section = c.Section
			rec.Category = c.Category
			rec.PageNo = c.PageNo
		}

		records = append(records, rec)
	})

	return records, nil
}

// foldCategoryIntoSection joins the issue number and the category
// annotation into a single section string, the layout the category-search
// listing has always used.
func foldCategoryIntoSection(c ParsedCitation) *string {
	parts := lo.Compact([]string{lo.FromPtr(c.Section), lo.FromPtr(c.Category)})
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, " ")
	return &joined
}
