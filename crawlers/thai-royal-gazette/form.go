package trg

import (
	"context"
)

// Search form controls. The portal renders two search tabs: tab 2 carries
// the by-category form, tab 1 the free-form advanced search.
const (
	selSearchResult = "#search-result"

	selCategoryTab      = "#search2-tab"
	selCategoryPane     = "#search2"
	selCategoryDateFrom = "#search2-date-from"
	selCategoryDateTo   = "#search2-date-to"
	selCategorySubmit   = "#btn-search2"
	nameCategoryGroup   = "sub-category[]"

	selKeywordInput     = "#search-keyword"
	selBookInput        = `input[name="book"]`
	selSessionInput     = `input[name="session"]`
	selAdvancedDateFrom = "#search1-date-from"
	selAdvancedDateTo   = "#search1-date-to"
	selAdvancedSubmit   = "#btn-search1"
	nameTypeGroup       = "type[]"
)

// fillCategoryForm drives the by-category search tab: it activates the
// tab, reconciles the sub-category checkbox set against the requested
// category label and fills the optional date range, then submits and
// awaits the result page.
func fillCategoryForm(ctx context.Context, sess Session, cfg Config, q CategoryQuery) error {
	if err := sess.Click(ctx, selCategoryTab); err != nil {
		return err
	}
	if err := sess.WaitVisible(ctx, selCategoryPane, cfg.PageWait); err != nil {
		return err
	}

	label := CategoryMap[q.Category]
	if err := sess.SetCheckboxGroup(ctx, nameCategoryGroup, []string{label}, true); err != nil {
		return err
	}

	if q.DateFrom != "" {
		if err := sess.SetField(ctx, selCategoryDateFrom, q.DateFrom); err != nil {
			return err
		}
	}
	if q.DateTo != "" {
		if err := sess.SetField(ctx, selCategoryDateTo, q.DateTo); err != nil {
			return err
		}
	}

	return sess.Submit(ctx, selCategorySubmit)
}

// fillAdvancedForm drives the free-form search tab. Text inputs are typed
// through simulated keystrokes, the document-type checkbox set is
// reconciled against the requested values, and the date inputs get the
// value-plus-signals treatment so the page's reactive validation picks
// them up. A short settle delay runs before submit.
//
// PartExtra is accepted for request validation but has no control on the
// form to map onto.
func fillAdvancedForm(ctx context.Context, sess Session, cfg Config, q AdvancedQuery) error {
	if q.Title != "" {
		if err := sess.TypeField(ctx, selKeywordInput, q.Title); err != nil {
			return err
		}
	}
	if q.BookNo != "" {
		if err := sess.TypeField(ctx, selBookInput, q.BookNo); err != nil {
			return err
		}
	}
	if q.Part != "" {
		if err := sess.TypeField(ctx, selSessionInput, q.Part); err != nil {
			return err
		}
	}

	if len(q.Types) > 0 {
		if err := sess.SetCheckboxGroup(ctx, nameTypeGroup, q.Types, false); err != nil {
			return err
		}
	}

	if err := sess.SetField(ctx, selAdvancedDateFrom, q.DateBegin); err != nil {
		return err
	}
	if err := sess.SetField(ctx, selAdvancedDateTo, q.DateEnd); err != nil {
		return err
	}

	// Click away from the date inputs and give validation listeners a
	// moment before submitting.
	if err := sess.Click(ctx, "body"); err != nil {
		return err
	}
	if err := sess.Settle(ctx, cfg.SettleDelay); err != nil {
		return err
	}

	return sess.Submit(ctx, selAdvancedSubmit)
}
