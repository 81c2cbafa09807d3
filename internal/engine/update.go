package engine

import "context"

// ToggleTask flips the completion flag of the task with the given id and
// persists the list. A missing id is a no-op and returns (nil, nil).
func (s *Service) ToggleTask(ctx context.Context, id int64) (*Task, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, nil
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	t := s.tasks[i]
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return &t, err
	}

	s.track(ctx, "toggle_task", map[string]string{
		"event_category": "engagement",
		"event_label":    "task toggled",
	})
	return &t, nil
}
