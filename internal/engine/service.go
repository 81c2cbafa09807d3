package engine

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Defaults applied by NewService for zero Options fields.
const (
	DefaultStorageKey = "tasks"
	DefaultDateLayout = "02/01/2006"
	DefaultTimeLayout = "15:04"
	DefaultTitle      = "My Tasks"
)

type Options struct {
	// StorageKey is the fixed key the task list is persisted under.
	StorageKey string
	DateLayout string
	TimeLayout string
	// Title is the page title; the pending count is prefixed on render.
	Title string
	// PageLocation is reported with the page_view event.
	PageLocation string

	Tracker  Tracker
	Notifier Notifier
	Logger   *log.Logger
	Now      func() time.Time
}

// Service is the task store and view. It owns the ordered task list, mirrors
// it to Store after every mutation, and derives filtered views on demand.
type Service struct {
	store    Store
	tracker  Tracker
	notifier Notifier
	logger   *log.Logger
	now      func() time.Time

	key          string
	dateLayout   string
	timeLayout   string
	title        string
	pageLocation string

	mu     sync.Mutex
	tasks  []Task
	filter Filter
	lastID int64
}

func NewService(store Store, opts Options) *Service {
	s := &Service{
		store:        store,
		tracker:      opts.Tracker,
		notifier:     opts.Notifier,
		logger:       opts.Logger,
		now:          opts.Now,
		key:          opts.StorageKey,
		dateLayout:   opts.DateLayout,
		timeLayout:   opts.TimeLayout,
		title:        opts.Title,
		pageLocation: opts.PageLocation,
		tasks:        []Task{},
		filter:       DefaultFilter,
	}
	if s.tracker == nil {
		s.tracker = nopTracker{}
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if strings.TrimSpace(s.key) == "" {
		s.key = DefaultStorageKey
	}
	if s.dateLayout == "" {
		s.dateLayout = DefaultDateLayout
	}
	if s.timeLayout == "" {
		s.timeLayout = DefaultTimeLayout
	}
	if s.title == "" {
		s.title = DefaultTitle
	}
	return s
}

// Load replaces the in-memory list with the persisted one and resets the
// filter. An absent or invalid stored value yields an empty list.
func (s *Service) Load(ctx context.Context) error {
	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	tasks := []Task{}
	if ok {
		decoded, err := DecodeTasks(raw)
		if err != nil {
			s.logger.Warn("ignoring stored task list", "key", s.key, "err", err)
		} else {
			tasks = decoded
		}
	}

	s.mu.Lock()
	s.tasks = tasks
	s.filter = DefaultFilter
	s.lastID = 0
	for _, t := range tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	s.mu.Unlock()

	s.logger.Debug("tasks loaded", "key", s.key, "count", len(tasks))
	s.track(ctx, "page_view", map[string]string{
		"page_title":    s.title,
		"page_location": s.pageLocation,
	})
	return nil
}

// Tasks returns a copy of the full, unfiltered list.
func (s *Service) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// persist writes the full list under the storage key. Callers hold s.mu.
func (s *Service) persist(ctx context.Context) error {
	raw, err := EncodeTasks(s.tasks)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	s.logger.Debug("tasks persisted", "key", s.key, "count", len(s.tasks))
	return nil
}

// nextID returns a creation-time id in milliseconds, bumped past the last
// issued id when the clock has not advanced. Callers hold s.mu.
func (s *Service) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Service) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) track(ctx context.Context, name string, attrs map[string]string) {
	if err := s.tracker.Track(ctx, name, attrs); err != nil {
		s.logger.Debug("analytics event dropped", "event", name, "err", err)
	}
}

func (s *Service) notify(ctx context.Context, kind NoticeKind, msg string) {
	n := Notice{Kind: kind, Message: msg}
	if to, ok := notifierFrom(ctx); ok {
		to.Notify(n)
		return
	}
	s.notifier.Notify(n)
}
