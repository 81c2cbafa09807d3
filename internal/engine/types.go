package engine

// Task is a single to-do item. The JSON shape is the persisted layout.
type Task struct {
	ID            int64  `json:"id"`
	Text          string `json:"text"`
	Completed     bool   `json:"completed"`
	CreatedAt     string `json:"createdAt"`
	CreatedAtTime string `json:"createdAtTime"`
}

// Filter selects which tasks a View shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterPending, FilterCompleted}

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterPending:
		return true
	default:
		return false
	}
}

// Match reports whether t belongs in a view filtered by f.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	default:
		return true
	}
}

// Placeholder is shown instead of rows when the filtered view is empty.
func (f Filter) Placeholder() string {
	switch f {
	case FilterCompleted:
		return "No completed tasks yet!"
	case FilterPending:
		return "All tasks are done! 🎉"
	default:
		return "No tasks yet. Start now!"
	}
}

// DefaultFilter is active after Load.
const DefaultFilter = FilterAll

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Notice is a transient user-facing message.
type Notice struct {
	Kind    NoticeKind
	Message string
}

type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// View is the rendered state of the list for the active filter.
type View struct {
	Filter Filter
	Rows   []Task
	// Placeholder is set only when Rows is empty.
	Placeholder string
	Stats       Stats
	Title       string
}
