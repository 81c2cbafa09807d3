package engine

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"daylist/internal/storage"
)

type recorder struct {
	notices []Notice
	events  []string
}

func (r *recorder) Notify(n Notice) { r.notices = append(r.notices, n) }

func (r *recorder) Track(_ context.Context, name string, _ map[string]string) error {
	r.events = append(r.events, name)
	return nil
}

func (r *recorder) lastNotice(t *testing.T) Notice {
	t.Helper()
	if len(r.notices) == 0 {
		t.Fatalf("expected a notice")
	}
	return r.notices[len(r.notices)-1]
}

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time { return c.t }

func newTestStore(t *testing.T) *storage.KVRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, d, err := storage.Open(ctx, "sqlite", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewKVRepo(db, d)
}

func newTestService(t *testing.T) (*Service, *recorder, *storage.KVRepo) {
	t.Helper()
	store := newTestStore(t)
	rec := &recorder{}
	clock := &fixedClock{t: time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)}
	svc := NewService(store, Options{
		Tracker:  rec,
		Notifier: rec,
		Now:      clock.now,
	})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return svc, rec, store
}

func mustAdd(t *testing.T, svc *Service, text string) Task {
	t.Helper()
	task, err := svc.AddTask(context.Background(), text)
	if err != nil {
		t.Fatalf("AddTask(%q): %v", text, err)
	}
	return *task
}

func reload(t *testing.T, store Store) []Task {
	t.Helper()
	other := NewService(store, Options{})
	if err := other.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	return other.Tasks()
}

func TestAddTaskScenario(t *testing.T) {
	svc, rec, store := newTestService(t)

	task := mustAdd(t, svc, "  Buy milk  ")
	if task.Text != "Buy milk" {
		t.Fatalf("text=%q, want trimmed", task.Text)
	}
	if task.Completed {
		t.Fatalf("new task should be pending")
	}
	if task.CreatedAt != "14/03/2026" || task.CreatedAtTime != "09:26" {
		t.Fatalf("timestamps=%q %q", task.CreatedAt, task.CreatedAtTime)
	}

	v := svc.Render()
	if v.Stats != (Stats{Total: 1, Completed: 0, Pending: 1}) {
		t.Fatalf("stats=%+v", v.Stats)
	}
	if v.Title != "(1) My Tasks" {
		t.Fatalf("title=%q", v.Title)
	}
	if got := rec.lastNotice(t); got.Kind != NoticeSuccess {
		t.Fatalf("notice=%+v, want success", got)
	}
	if !reflect.DeepEqual(rec.events, []string{"page_view", "add_task"}) {
		t.Fatalf("events=%v", rec.events)
	}
	if got := reload(t, store); !reflect.DeepEqual(got, svc.Tasks()) {
		t.Fatalf("persisted=%+v, want %+v", got, svc.Tasks())
	}
}

func TestAddTaskRejectsBlankText(t *testing.T) {
	svc, rec, _ := newTestService(t)
	mustAdd(t, svc, "keep")

	for _, in := range []string{"", " ", "\t\n", "   \r\n "} {
		rec.notices = nil
		_, err := svc.AddTask(context.Background(), in)
		if !errors.Is(err, ErrEmptyText) {
			t.Fatalf("AddTask(%q) err=%v, want ErrEmptyText", in, err)
		}
		if n := rec.lastNotice(t); n.Kind != NoticeError {
			t.Fatalf("AddTask(%q) notice=%+v, want error", in, n)
		}
		if got := len(svc.Tasks()); got != 1 {
			t.Fatalf("AddTask(%q) changed list: len=%d", in, got)
		}
	}
}

func TestAddTaskCountsAndUniqueIDs(t *testing.T) {
	svc, _, _ := newTestService(t)
	inputs := []string{"a", "", "b", "  ", "c", "d"}
	want := 0
	for _, in := range inputs {
		if strings.TrimSpace(in) != "" {
			want++
		}
		_, _ = svc.AddTask(context.Background(), in)
	}

	tasks := svc.Tasks()
	if len(tasks) != want {
		t.Fatalf("len=%d, want %d", len(tasks), want)
	}
	seen := map[int64]bool{}
	for i, task := range tasks {
		if task.Completed {
			t.Fatalf("task %d should be pending", i)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
		if i > 0 && task.ID <= tasks[i-1].ID {
			t.Fatalf("ids not increasing: %d after %d", task.ID, tasks[i-1].ID)
		}
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	svc, rec, store := newTestService(t)
	orig := mustAdd(t, svc, "Buy milk")

	toggled, err := svc.ToggleTask(context.Background(), orig.ID)
	if err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if !toggled.Completed {
		t.Fatalf("expected completed after toggle")
	}
	v := svc.Render()
	if v.Stats.Completed != 1 || v.Stats.Pending != 0 {
		t.Fatalf("stats=%+v", v.Stats)
	}
	if !reload(t, store)[0].Completed {
		t.Fatalf("toggle not persisted")
	}

	if _, err := svc.ToggleTask(context.Background(), orig.ID); err != nil {
		t.Fatalf("ToggleTask again: %v", err)
	}
	if got := svc.Tasks()[0]; got != orig {
		t.Fatalf("after double toggle=%+v, want %+v", got, orig)
	}
	if rec.events[len(rec.events)-1] != "toggle_task" {
		t.Fatalf("events=%v", rec.events)
	}
}

func TestToggleMissingIDIsNoop(t *testing.T) {
	svc, rec, _ := newTestService(t)
	mustAdd(t, svc, "a")
	before := svc.Tasks()
	events := len(rec.events)

	got, err := svc.ToggleTask(context.Background(), 42)
	if err != nil || got != nil {
		t.Fatalf("ToggleTask(missing)=(%v, %v), want (nil, nil)", got, err)
	}
	if !reflect.DeepEqual(svc.Tasks(), before) {
		t.Fatalf("list changed")
	}
	if len(rec.events) != events {
		t.Fatalf("unexpected analytics event")
	}
}

func TestDeleteTask(t *testing.T) {
	svc, rec, store := newTestService(t)
	a := mustAdd(t, svc, "A")
	b := mustAdd(t, svc, "B")

	var prompts []string
	asked := ConfirmFunc(func(p string) bool {
		prompts = append(prompts, p)
		return false
	})
	removed, err := svc.DeleteTask(context.Background(), a.ID, asked)
	if err != nil || removed {
		t.Fatalf("declined delete=(%v, %v)", removed, err)
	}
	if len(prompts) != 1 || len(svc.Tasks()) != 2 {
		t.Fatalf("declined delete changed state or skipped prompt")
	}

	removed, err = svc.DeleteTask(context.Background(), a.ID, Confirmed)
	if err != nil || !removed {
		t.Fatalf("confirmed delete=(%v, %v)", removed, err)
	}
	want := []Task{b}
	if got := svc.Tasks(); !reflect.DeepEqual(got, want) {
		t.Fatalf("tasks=%+v, want %+v", got, want)
	}
	if got := reload(t, store); !reflect.DeepEqual(got, want) {
		t.Fatalf("persisted=%+v, want %+v", got, want)
	}
	if n := rec.lastNotice(t); n.Message != "Task deleted!" {
		t.Fatalf("notice=%+v", n)
	}

	removed, err = svc.DeleteTask(context.Background(), a.ID, Confirmed)
	if err != nil || removed {
		t.Fatalf("delete of missing id=(%v, %v)", removed, err)
	}
}

func TestClearCompleted(t *testing.T) {
	svc, rec, store := newTestService(t)

	n, err := svc.ClearCompleted(context.Background(), Confirmed)
	if err != nil || n != 0 {
		t.Fatalf("clear on empty=(%d, %v)", n, err)
	}
	if got := rec.lastNotice(t); got.Kind != NoticeInfo {
		t.Fatalf("notice=%+v, want info", got)
	}

	a := mustAdd(t, svc, "A")
	b := mustAdd(t, svc, "B")
	c := mustAdd(t, svc, "C")
	for _, id := range []int64{a.ID, c.ID} {
		if _, err := svc.ToggleTask(context.Background(), id); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}

	var prompt string
	n, err = svc.ClearCompleted(context.Background(), ConfirmFunc(func(p string) bool {
		prompt = p
		return false
	}))
	if err != nil || n != 0 || len(svc.Tasks()) != 3 {
		t.Fatalf("declined clear=(%d, %v) len=%d", n, err, len(svc.Tasks()))
	}
	if prompt != ClearCompletedPrompt(2) {
		t.Fatalf("prompt=%q", prompt)
	}

	n, err = svc.ClearCompleted(context.Background(), Confirmed)
	if err != nil || n != 2 {
		t.Fatalf("clear=(%d, %v), want 2", n, err)
	}
	want := []Task{b}
	if got := svc.Tasks(); !reflect.DeepEqual(got, want) {
		t.Fatalf("tasks=%+v, want %+v", got, want)
	}
	if got := reload(t, store); !reflect.DeepEqual(got, want) {
		t.Fatalf("persisted=%+v", got)
	}
	if got := rec.lastNotice(t); got.Message != "2 task(s) cleared!" {
		t.Fatalf("notice=%+v", got)
	}
}

func TestConfirmerMayReadService(t *testing.T) {
	svc, _, _ := newTestService(t)
	a := mustAdd(t, svc, "A")
	mustAdd(t, svc, "B")
	if _, err := svc.ToggleTask(context.Background(), a.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	var seen []int
	peek := ConfirmFunc(func(string) bool {
		seen = append(seen, len(svc.Tasks()))
		_ = svc.Render()
		return true
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		if n, err := svc.ClearCompleted(context.Background(), peek); err != nil || n != 1 {
			t.Errorf("clear=(%d, %v), want 1", n, err)
		}
		remaining := svc.Tasks()
		if removed, err := svc.DeleteTask(context.Background(), remaining[0].ID, peek); err != nil || !removed {
			t.Errorf("delete=(%v, %v)", removed, err)
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("confirmer blocked on the service lock")
	}
	if !reflect.DeepEqual(seen, []int{2, 1}) {
		t.Fatalf("confirmer saw %v", seen)
	}
	if len(svc.Tasks()) != 0 {
		t.Fatalf("tasks=%+v", svc.Tasks())
	}
}

func TestNoticesFollowCallContext(t *testing.T) {
	svc, rec, _ := newTestService(t)
	before := len(rec.notices)

	var first, second []Notice
	ctxA := WithNotifier(context.Background(), NotifyFunc(func(n Notice) { first = append(first, n) }))
	ctxB := WithNotifier(context.Background(), NotifyFunc(func(n Notice) { second = append(second, n) }))

	if _, err := svc.AddTask(ctxA, "A"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := svc.ClearCompleted(ctxB, Confirmed); err != nil {
		t.Fatalf("ClearCompleted: %v", err)
	}

	if len(first) != 1 || first[0].Message != "Task added!" {
		t.Fatalf("first=%+v", first)
	}
	if len(second) != 1 || second[0].Kind != NoticeInfo {
		t.Fatalf("second=%+v", second)
	}
	if len(rec.notices) != before {
		t.Fatalf("service notifier received %+v", rec.notices[before:])
	}
}

func TestFilterScenario(t *testing.T) {
	svc, _, store := newTestService(t)
	mustAdd(t, svc, "A")
	before, _, _ := store.Get(context.Background(), DefaultStorageKey)

	if err := svc.SetFilter(FilterCompleted); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	v := svc.Render()
	if len(v.Rows) != 0 || v.Placeholder != FilterCompleted.Placeholder() {
		t.Fatalf("completed view=%+v", v)
	}
	if v.Stats.Total != 1 {
		t.Fatalf("stats not recomputed for empty view: %+v", v.Stats)
	}

	if err := svc.SetFilter(FilterPending); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	v = svc.Render()
	if len(v.Rows) != 1 || v.Rows[0].Text != "A" || v.Placeholder != "" {
		t.Fatalf("pending view=%+v", v)
	}

	after, _, _ := store.Get(context.Background(), DefaultStorageKey)
	if before != after {
		t.Fatalf("filter changed storage")
	}
	if err := svc.SetFilter("archived"); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
	if svc.Filter() != FilterPending {
		t.Fatalf("invalid SetFilter changed filter")
	}
}

func TestProjectionPartitions(t *testing.T) {
	svc, _, _ := newTestService(t)
	for i, text := range []string{"a", "b", "c", "d", "e"} {
		task := mustAdd(t, svc, text)
		if i%2 == 0 {
			if _, err := svc.ToggleTask(context.Background(), task.ID); err != nil {
				t.Fatalf("toggle: %v", err)
			}
		}
		all := len(svc.RenderFilter(FilterAll).Rows)
		done := len(svc.RenderFilter(FilterCompleted).Rows)
		pending := len(svc.RenderFilter(FilterPending).Rows)
		if all != done+pending {
			t.Fatalf("all=%d completed=%d pending=%d", all, done, pending)
		}
	}
	if svc.Filter() != FilterAll {
		t.Fatalf("RenderFilter changed the active filter")
	}
}

func TestLoadResetsFilterAndHandlesBadData(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"not json":     `{{{`,
		"wrong shape":  `{"id": 1}`,
		"missing text": `[{"id": 1, "completed": false, "createdAt": "", "createdAtTime": ""}]`,
		"string id":    `[{"id": "1", "text": "a", "completed": false, "createdAt": "", "createdAtTime": ""}]`,
		"duplicate ids": `[
			{"id": 1, "text": "a", "completed": false, "createdAt": "", "createdAtTime": ""},
			{"id": 1, "text": "b", "completed": true, "createdAt": "", "createdAtTime": ""}
		]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := newTestStore(t)
			if err := store.Put(ctx, DefaultStorageKey, raw); err != nil {
				t.Fatalf("Put: %v", err)
			}
			svc := NewService(store, Options{})
			if err := svc.Load(ctx); err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got := svc.Tasks(); len(got) != 0 {
				t.Fatalf("tasks=%+v, want empty", got)
			}
			v := svc.Render()
			if v.Filter != FilterAll || v.Placeholder != FilterAll.Placeholder() {
				t.Fatalf("view=%+v", v)
			}
		})
	}
}

func TestPersistLoadRoundTrip(t *testing.T) {
	svc, _, store := newTestService(t)
	a := mustAdd(t, svc, "A")
	mustAdd(t, svc, "B")
	mustAdd(t, svc, "C")
	if _, err := svc.ToggleTask(context.Background(), a.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.SetFilter(FilterCompleted); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}

	if got, want := reload(t, store), svc.Tasks(); !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip=%+v, want %+v", got, want)
	}

	// Ids issued after a reload keep increasing past the stored ones.
	next := NewService(store, Options{Now: func() time.Time { return time.Unix(0, 0) }})
	if err := next.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if next.Filter() != FilterAll {
		t.Fatalf("filter after load=%q", next.Filter())
	}
	d, err := next.AddTask(context.Background(), "D")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	tasks := next.Tasks()
	if d.ID <= tasks[len(tasks)-2].ID {
		t.Fatalf("id %d not past %d", d.ID, tasks[len(tasks)-2].ID)
	}
}

type failingStore struct {
	data string
	err  error
}

func (f *failingStore) Get(context.Context, string) (string, bool, error) {
	return f.data, f.data != "", nil
}

func (f *failingStore) Put(context.Context, string, string) error { return f.err }

func TestPersistFailureKeepsInMemoryChange(t *testing.T) {
	boom := errors.New("disk full")
	store := &failingStore{err: boom}
	svc := NewService(store, Options{})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, err := svc.AddTask(context.Background(), "A")
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want wrapped %v", err, boom)
	}
	if len(svc.Tasks()) != 1 {
		t.Fatalf("in-memory add should be kept")
	}
}

func TestParseFilter(t *testing.T) {
	cases := []struct {
		in   string
		want Filter
	}{
		{"", FilterAll},
		{"ALL", FilterAll},
		{" completed ", FilterCompleted},
		{"done", FilterCompleted},
		{"pending", FilterPending},
		{"todo", FilterPending},
	}
	for _, tc := range cases {
		got, err := ParseFilter(tc.in)
		if err != nil {
			t.Fatalf("ParseFilter(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseFilter(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
	var fe FilterError
	if _, err := ParseFilter("later"); !errors.As(err, &fe) {
		t.Fatalf("expected FilterError, got %v", err)
	}
}

func TestEncodeEmptyList(t *testing.T) {
	raw, err := EncodeTasks(nil)
	if err != nil {
		t.Fatalf("EncodeTasks: %v", err)
	}
	if raw != "[]" {
		t.Fatalf("raw=%q, want []", raw)
	}
	tasks, err := DecodeTasks(raw)
	if err != nil || len(tasks) != 0 {
		t.Fatalf("DecodeTasks([])=(%v, %v)", tasks, err)
	}
}
