package browser

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/zhubert/veneer/internal/logger"
)

// IDSource produces session-unique opaque identifiers.
type IDSource func() string

// Clock returns the current time; injected so history timestamps are testable.
type Clock func() time.Time

// Observer receives output events the presentation layer must apply.
type Observer interface {
	ThemeChanged(Theme)
	AccentChanged(accent string)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnTheme  func(Theme)
	OnAccent func(string)
}

func (o ObserverFuncs) ThemeChanged(t Theme) {
	if o.OnTheme != nil {
		o.OnTheme(t)
	}
}

func (o ObserverFuncs) AccentChanged(accent string) {
	if o.OnAccent != nil {
		o.OnAccent(accent)
	}
}

// Shell is the browser chrome state: tabs, history, bookmarks and view prefs.
type Shell struct {
	tabs        []Tab
	trails      map[string]*trail // per-tab back/forward stacks, keyed by tab ID
	activeTabID string
	urlInput    string

	history   []HistoryItem // newest first
	bookmarks []Bookmark

	prefs        ViewPrefs
	settingsOpen bool

	defaultURL string
	newID      IDSource
	now        Clock
	observers  []Observer
	log        *slog.Logger
}

type options struct {
	defaultURL string
	homeTitle  string
	homeURL    string
	theme      Theme
	accent     string
	newID      IDSource
	now        Clock
	observers  []Observer
	sample     bool
}

// Option configures a Shell at construction.
type Option func(*options)

// WithDefaultURL sets the url given to tabs created by OpenTab.
func WithDefaultURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.defaultURL = url
		}
	}
}

// WithHomeTab sets the title and url of the tab the Shell starts with.
func WithHomeTab(title, url string) Option {
	return func(o *options) {
		if title != "" {
			o.homeTitle = title
		}
		if url != "" {
			o.homeURL = url
		}
	}
}

// WithTheme sets the starting theme.
func WithTheme(t Theme) Option {
	return func(o *options) {
		if t == ThemeLight || t == ThemeDark {
			o.theme = t
		}
	}
}

// WithAccent sets the starting accent color. Invalid values are ignored.
func WithAccent(accent string) Option {
	return func(o *options) {
		if normalized, ok := normalizeAccent(accent); ok {
			o.accent = normalized
		}
	}
}

// WithIDSource replaces the UUID generator.
func WithIDSource(src IDSource) Option {
	return func(o *options) {
		if src != nil {
			o.newID = src
		}
	}
}

// WithClock replaces time.Now.
func WithClock(clock Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.now = clock
		}
	}
}

// WithObserver registers an event observer.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithSampleData seeds history and bookmarks with a few well-known sites.
func WithSampleData() Option {
	return func(o *options) {
		o.sample = true
	}
}

// New creates a Shell with a single home tab active.
func New(opts ...Option) *Shell {
	o := options{
		defaultURL: DefaultURL,
		homeTitle:  HomeTabTitle,
		homeURL:    DefaultURL,
		theme:      ThemeLight,
		accent:     DefaultAccent,
		newID:      uuid.NewString,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Shell{
		trails:     make(map[string]*trail),
		defaultURL: o.defaultURL,
		newID:      o.newID,
		now:        o.now,
		observers:  o.observers,
		prefs: ViewPrefs{
			Theme:  o.theme,
			Accent: o.accent,
		},
		log: logger.WithComponent("browser"),
	}

	home := s.appendTab(o.homeTitle, o.homeURL)
	s.activeTabID = home.ID
	s.urlInput = home.URL

	if o.sample {
		s.seedSampleData()
	}

	s.log.Debug("shell created", "homeURL", home.URL, "theme", s.prefs.Theme, "sample", o.sample)
	return s
}

// Subscribe registers an observer after construction.
func (s *Shell) Subscribe(obs Observer) {
	if obs != nil {
		s.observers = append(s.observers, obs)
	}
}

func (s *Shell) emitTheme(t Theme) {
	for _, o := range s.observers {
		o.ThemeChanged(t)
	}
}

func (s *Shell) emitAccent(accent string) {
	for _, o := range s.observers {
		o.AccentChanged(accent)
	}
}

// Stats returns the tab, history and bookmark counts.
func (s *Shell) Stats() Stats {
	return Stats{
		Tabs:      len(s.tabs),
		History:   len(s.history),
		Bookmarks: len(s.bookmarks),
	}
}

// seedSampleData loads the starting history and bookmarks shown on first run.
func (s *Shell) seedSampleData() {
	now := s.now()
	s.history = append(s.history,
		HistoryItem{ID: s.newID(), Title: "Example Domain", URL: "https://example.com", Timestamp: now},
		HistoryItem{ID: s.newID(), Title: "GitHub", URL: "https://github.com", Timestamp: now.Add(-time.Hour)},
		HistoryItem{ID: s.newID(), Title: "Stack Overflow", URL: "https://stackoverflow.com", Timestamp: now.Add(-2 * time.Hour)},
	)
	s.bookmarks = append(s.bookmarks,
		Bookmark{ID: s.newID(), Title: "GitHub", URL: "https://github.com", Folder: "Dev"},
		Bookmark{ID: s.newID(), Title: "MDN Web Docs", URL: "https://developer.mozilla.org", Folder: "Dev"},
		Bookmark{ID: s.newID(), Title: "Google", URL: "https://google.com", Folder: "Search"},
	)
}
