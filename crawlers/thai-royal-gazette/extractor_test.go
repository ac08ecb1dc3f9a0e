package trg

import (
	"testing"
)

const fixturePageOne = `
<div id="search-result">
  <div class="post-thumbnail-entry">
    <a class="m-b-10" href="/documents/140d005.pdf">ประกาศกระทรวงมหาดไทย</a>
    <span class="post-date">๑๕ ม.ค. ๒๕๖๗</span>
    <span class="post-category">เล่ม ๑๔๐</span>
    <span class="post-category">ตอนพิเศษ ๕ ง หน้า ๑</span>
  </div>
  <div class="post-thumbnail-entry">
    <a class="m-b-10" href="/documents/025t039.pdf">พระราชบัญญัติลักษณะปกครองท้องที่</a>
    <span class="post-date">๒๙ พ.ค. ๒๔๕๗</span>
    <span class="post-category">เล่ม ๒๕ ตอนที่ ๓๙ หน้า ๑๑๔๑</span>
  </div>
  <div class="post-thumbnail-entry">
    <a class="m-b-10">รายการไม่มีลิงก์</a>
  </div>
</div>`

const fixturePageTwo = `
<div id="search-result">
  <div class="post-thumbnail-entry">
    <a class="m-b-10" href="/documents/026k103.pdf">ประมวลกฎหมายอาญา</a>
    <span class="post-date">๑ มิ.ย. ๒๔๕๒</span>
    <span class="post-category">เล่ม ๒๖ ก หน้า ๑๐๓</span>
  </div>
</div>`

func TestExtractRecordsAdvancedMode(t *testing.T) {
	records, err := ExtractRecords(fixturePageOne, 0, ModeAdvanced)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	first := records[0]
	if first.SequenceNumber != 1 {
		t.Errorf("first sequence number = %d, want 1", first.SequenceNumber)
	}
	if first.Title != "ประกาศกระทรวงมหาดไทย" {
		t.Errorf("unexpected title %q", first.Title)
	}
	if first.FilePath == nil || *first.FilePath != "/documents/140d005.pdf" {
		t.Errorf("unexpected file path %v", first.FilePath)
	}
	if first.PublishDate == nil || *first.PublishDate != "2024-01-15" {
		t.Errorf("unexpected publish date %v", first.PublishDate)
	}
	if first.BookNo == nil || *first.BookNo != "140" {
		t.Errorf("unexpected bookNo %v", first.BookNo)
	}
	if first.Section == nil || *first.Section != "5" {
		t.Errorf("unexpected section %v", first.Section)
	}
	if first.Category == nil || *first.Category != "ง พิเศษ" {
		t.Errorf("unexpected category %v", first.Category)
	}
	if first.PageNo == nil || *first.PageNo != "1" {
		t.Errorf("unexpected pageNo %v", first.PageNo)
	}

	second := records[1]
	if second.Section == nil || *second.Section != "39" {
		t.Errorf("unexpected section %v", second.Section)
	}
	if second.Category != nil {
		t.Errorf("category should be nil for simple legacy citation, got %q", *second.Category)
	}

	// An entry with missing sub-elements still yields a record.
	third := records[2]
	if third.SequenceNumber != 3 {
		t.Errorf("third sequence number = %d, want 3", third.SequenceNumber)
	}
	if third.FilePath != nil || third.PublishDate != nil || third.BookNo != nil {
		t.Errorf("absent sub-elements must yield nil fields: %+v", third)
	}
}

func TestExtractRecordsCategoryModeFoldsSection(t *testing.T) {
	records, err := ExtractRecords(fixturePageOne, 0, ModeCategory)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	first := records[0]
	if first.Section == nil || *first.Section != "5 ง พิเศษ" {
		t.Errorf("unexpected folded section %v", first.Section)
	}
	if first.Category != nil {
		t.Errorf("category mode must not set the category field, got %q", *first.Category)
	}
}

func TestExtractRecordsSequenceContinuesAcrossPages(t *testing.T) {
	pageOne, err := ExtractRecords(fixturePageOne, 0, ModeAdvanced)
	if err != nil {
		t.Fatal(err)
	}
	pageTwo, err := ExtractRecords(fixturePageTwo, len(pageOne), ModeAdvanced)
	if err != nil {
		t.Fatal(err)
	}

	all := append(pageOne, pageTwo...)
	for i, rec := range all {
		if rec.SequenceNumber != i+1 {
			t.Fatalf("sequence number at index %d = %d, want %d", i, rec.SequenceNumber, i+1)
		}
	}
}

func TestExtractRecordsEmptyPage(t *testing.T) {
	records, err := ExtractRecords(`<div id="search-result"></div>`, 0, ModeAdvanced)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}
