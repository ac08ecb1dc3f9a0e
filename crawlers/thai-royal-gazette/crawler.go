package trg

import (
	"context"

	"github.com/rs/zerolog/log"
)

// paginationCrawler walks a submitted search's result pages in order,
// extracting records from each and advancing through the next-page
// control until none remains. The control always advances forward, so no
// page is visited twice.
type paginationCrawler struct {
	sess Session
	cfg  Config
	mode ExtractMode
}

func newPaginationCrawler(sess Session, cfg Config, mode ExtractMode) *paginationCrawler {
	return &paginationCrawler{sess: sess, cfg: cfg, mode: mode}
}

// Run returns the accumulated records of the whole traversal. It reports
// ErrNoResults when the first page never renders a result marker within
// the bounded wait. Inside the loop the same wait timing out ends the
// crawl with whatever has been collected: a page that is still loading is
// indistinguishable from the last page, a known ambiguity of the portal.
func (c *paginationCrawler) Run(ctx context.Context) ([]ResultRecord, error) {
	if err := c.sess.WaitVisible(ctx, selResultEntry, c.cfg.FirstPageWait); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrNoResults
	}

	records := []ResultRecord{}
	pages := 0

	for {
		if err := c.sess.WaitVisible(ctx, selResultEntry, c.cfg.PageWait); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Debug().Int("pages", pages).Msg("Result marker absent, ending traversal")
			break
		}

		html, err := c.sess.HTML(ctx)
		if err != nil {
			return nil, err
		}
		recs, err := ExtractRecords(html, len(records), c.mode)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
		pages++

		next, err := c.sess.FindNextControl(ctx)
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		if c.cfg.MaxPages > 0 && pages >= c.cfg.MaxPages {
			return records, ErrTooManyPages
		}
		if err := next.Activate(ctx); err != nil {
			return nil, err
		}
	}

	return records, nil
}
