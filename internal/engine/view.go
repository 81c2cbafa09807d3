package engine

import "fmt"

// SetFilter changes the active filter. The task list and storage are untouched.
func (s *Service) SetFilter(f Filter) error {
	if !f.IsValid() {
		return FilterError{Value: string(f)}
	}
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
	return nil
}

func (s *Service) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Render derives the view for the active filter.
func (s *Service) Render() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLocked(s.filter)
}

// RenderFilter derives the view for f without changing the active filter.
func (s *Service) RenderFilter(f Filter) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLocked(f)
}

func (s *Service) renderLocked(f Filter) View {
	v := View{
		Filter: f,
		Rows:   Project(s.tasks, f),
		Stats:  ComputeStats(s.tasks),
	}
	if len(v.Rows) == 0 {
		v.Placeholder = f.Placeholder()
	}
	v.Title = fmt.Sprintf("(%d) %s", v.Stats.Pending, s.title)
	return v
}

// Project returns the tasks matching f in list order.
func Project(tasks []Task, f Filter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func ComputeStats(tasks []Task) Stats {
	st := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	return st
}
