package trg

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog/log"
)

// Next-page control, in its two observed layouts: the page-numbered item
// right after the one marked current, or a link labeled "ถัดไป" whose
// containing item is not hidden.
const (
	selNextNumbered = `ul.pagination li.page-item.current + li.page-item:not(.hidden) a.page-numbers`
	xpNextLabel     = `//ul[contains(@class,"pagination")]//a[normalize-space(text())="ถัดไป"]`
)

// RodSessionFactory creates rod-backed automation sessions, one isolated
// browser process per request.
type RodSessionFactory struct {
	cfg Config
}

// NewRodSessionFactory creates a session factory for the given crawl
// configuration.
func NewRodSessionFactory(cfg Config) *RodSessionFactory {
	return &RodSessionFactory{cfg: cfg}
}

// NewSession launches a browser, opens a blank page and applies the fixed
// viewport and identification string. Default rod timeouts stay disabled;
// the crawl manages its own bounded waits.
func (f *RodSessionFactory) NewSession(ctx context.Context) (Session, error) {
	l := launcher.New().
		Headless(f.cfg.Headless).
		NoSandbox(true).
		Set(flags.Flag("disable-setuid-sandbox"))

	u, err := l.Launch()
	if err != nil {
		return nil, err
	}

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, err
	}

	sess := &rodSession{cfg: f.cfg, browser: browser, launcher: l}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		sess.Release()
		return nil, err
	}

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.cfg.UserAgent}); err != nil {
		sess.Release()
		return nil, err
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             f.cfg.ViewportWidth,
		Height:            f.cfg.ViewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		sess.Release()
		return nil, err
	}

	sess.page = page
	return sess, nil
}

type rodSession struct {
	cfg      Config
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	release  sync.Once
}

func (s *rodSession) Navigate(ctx context.Context, url string) error {
	p := s.page.Context(ctx)
	wait := p.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := p.Navigate(url); err != nil {
		return err
	}
	wait()
	return nil
}

func (s *rodSession) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	p := s.page.Context(ctx).Timeout(timeout)
	el, err := p.Element(selector)
	if err != nil {
		return err
	}
	return el.WaitVisible()
}

func (s *rodSession) Click(ctx context.Context, selector string) error {
	el, err := s.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

func (s *rodSession) SetField(ctx context.Context, selector, value string) error {
	_, err := s.page.Context(ctx).Eval(`(sel, value) => {
		const el = document.querySelector(sel);
		if (!el) return;
		el.value = value;
		el.dispatchEvent(new Event('input', { bubbles: true }));
		el.dispatchEvent(new Event('change', { bubbles: true }));
		el.blur();
	}`, selector, value)
	return err
}

func (s *rodSession) TypeField(ctx context.Context, selector, value string) error {
	el, err := s.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	if _, err := el.Eval(`() => this.value = ''`); err != nil {
		return err
	}
	if err := el.Focus(); err != nil {
		return err
	}
	return el.Input(value)
}

func (s *rodSession) SetCheckboxGroup(ctx context.Context, name string, wanted []string, byLabel bool) error {
	_, err := s.page.Context(ctx).Eval(`(name, wanted, byLabel) => {
		const boxes = document.querySelectorAll('input[name="' + name + '"]');
		boxes.forEach(cb => {
			let matched;
			if (byLabel) {
				const label = cb.nextElementSibling?.textContent?.trim() || '';
				matched = wanted.some(w => label.includes(w));
			} else {
				matched = wanted.includes(cb.value);
			}
			if (matched !== cb.checked) cb.click();
		});
	}`, name, wanted, byLabel)
	return err
}

func (s *rodSession) Settle(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *rodSession) Submit(ctx context.Context, selector string) error {
	p := s.page.Context(ctx)
	el, err := p.Element(selector)
	if err != nil {
		return err
	}
	wait := p.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if _, err := el.Eval(`() => this.click()`); err != nil {
		return err
	}
	wait()
	return nil
}

func (s *rodSession) HTML(ctx context.Context) (string, error) {
	return s.page.Context(ctx).HTML()
}

func (s *rodSession) FindNextControl(ctx context.Context) (NextControl, error) {
	p := s.page.Context(ctx)

	has, el, err := p.Has(selNextNumbered)
	if err != nil {
		return nil, err
	}
	if has {
		return &rodNextControl{sess: s, el: el}, nil
	}

	has, el, err = p.HasX(xpNextLabel)
	if err != nil || !has {
		return nil, err
	}
	parent, err := el.Parent()
	if err != nil {
		return nil, err
	}
	class, err := parent.Attribute("class")
	if err != nil {
		return nil, err
	}
	if class != nil && strings.Contains(*class, "hidden") {
		return nil, nil
	}
	return &rodNextControl{sess: s, el: el}, nil
}

// Release closes the browser and kills its process. Failures here are
// logged and swallowed; they must never surface as the request's error.
func (s *rodSession) Release() {
	s.release.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				log.Warn().Interface("panic", r).Msg("Recovered while releasing browser session")
			}
		}()
		if err := s.browser.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing browser")
		}
		s.launcher.Kill()
	})
}

type rodNextControl struct {
	sess *rodSession
	el   *rod.Element
}

// Activate clicks the control and awaits the page transition. The
// navigation wait is armed first; the transition can begin before the
// click call returns.
func (n *rodNextControl) Activate(ctx context.Context) error {
	wait := n.sess.page.Context(ctx).WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if _, err := n.el.Eval(`() => this.click()`); err != nil {
		return err
	}
	wait()
	return nil
}
