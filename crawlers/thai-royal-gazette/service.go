package trg

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Service runs gazette searches. Each call owns one freshly-acquired
// automation session which is released exactly once on every exit path;
// nothing is shared between concurrent calls.
type Service struct {
	cfg      Config
	sessions SessionFactory
}

// NewService creates a search service on top of a session factory.
func NewService(cfg Config, sessions SessionFactory) *Service {
	return &Service{cfg: cfg, sessions: sessions}
}

// CategorySearch runs the by-category search and returns every record of
// the paginated result set. ErrNoResults reports an empty result set.
func (s *Service) CategorySearch(ctx context.Context, q CategoryQuery) ([]ResultRecord, error) {
	jobID := uuid.NewString()
	l := log.With().Str("jobID", jobID).Str("category", q.Category).Logger()
	l.Info().Msg("Starting category search")

	sess, err := s.openSearchPage(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Release()

	if err := fillCategoryForm(ctx, sess, s.cfg, q); err != nil {
		return nil, fmt.Errorf("filling category form: %w", err)
	}

	records, err := newPaginationCrawler(sess, s.cfg, ModeCategory).Run(ctx)
	if err != nil {
		return nil, err
	}

	l.Info().Int("totalItem", len(records)).Msg("Category search completed")
	return records, nil
}

// AdvancedSearch runs the free-form search with the same traversal and
// result contract as CategorySearch.
func (s *Service) AdvancedSearch(ctx context.Context, q AdvancedQuery) ([]ResultRecord, error) {
	jobID := uuid.NewString()
	l := log.With().Str("jobID", jobID).Logger()
	l.Info().Str("title", q.Title).Msg("Starting advanced search")

	sess, err := s.openSearchPage(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Release()

	if err := fillAdvancedForm(ctx, sess, s.cfg, q); err != nil {
		return nil, fmt.Errorf("filling advanced form: %w", err)
	}

	records, err := newPaginationCrawler(sess, s.cfg, ModeAdvanced).Run(ctx)
	if err != nil {
		return nil, err
	}

	l.Info().Int("totalItem", len(records)).Msg("Advanced search completed")
	return records, nil
}

// openSearchPage acquires a session and brings up the portal's search
// page. On any failure after acquisition the session is released here, so
// callers only own it once a ready session is returned.
func (s *Service) openSearchPage(ctx context.Context) (Session, error) {
	sess, err := s.sessions.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring browser session: %w", err)
	}

	if err := sess.Navigate(ctx, s.cfg.SearchURL); err != nil {
		sess.Release()
		return nil, fmt.Errorf("opening search page: %w", err)
	}
	if err := sess.WaitVisible(ctx, selSearchResult, s.cfg.PageWait); err != nil {
		sess.Release()
		return nil, fmt.Errorf("waiting for search page: %w", err)
	}

	return sess, nil
}
