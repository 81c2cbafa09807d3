package engine

import (
	"context"
	"strings"
)

func normalizeText(text string) (string, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", ErrEmptyText
	}
	return t, nil
}

// AddTask appends a new pending task built from rawText and persists the list.
// Blank text emits an error notice and returns ErrEmptyText without changes.
func (s *Service) AddTask(ctx context.Context, rawText string) (*Task, error) {
	text, err := normalizeText(rawText)
	if err != nil {
		s.notify(ctx, NoticeError, "Please enter a task!")
		return nil, err
	}

	s.mu.Lock()
	now := s.now()
	t := Task{
		ID:            s.nextID(now),
		Text:          text,
		Completed:     false,
		CreatedAt:     now.Format(s.dateLayout),
		CreatedAtTime: now.Format(s.timeLayout),
	}
	s.tasks = append(s.tasks, t)
	err = s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return &t, err
	}

	s.notify(ctx, NoticeSuccess, "Task added!")
	s.track(ctx, "add_task", map[string]string{
		"event_category": "engagement",
		"event_label":    "task added",
	})
	return &t, nil
}
