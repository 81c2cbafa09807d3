package engine

import (
	"context"
	"fmt"
)

const deletePrompt = "Are you sure you want to delete this task?"

// ClearCompletedPrompt is the confirmation question for clearing n tasks.
func ClearCompletedPrompt(n int) string {
	return fmt.Sprintf("Clear %d completed task(s)?", n)
}

// DeleteTask removes the task with the given id once c approves. It reports
// whether a task was removed; declining or a missing id changes nothing.
// The service is not locked while c decides.
func (s *Service) DeleteTask(ctx context.Context, id int64, c Confirmer) (bool, error) {
	s.mu.Lock()
	found := s.indexOf(id) >= 0
	s.mu.Unlock()
	if !found || !c.Confirm(deletePrompt) {
		return false, nil
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return true, err
	}

	s.notify(ctx, NoticeSuccess, "Task deleted!")
	return true, nil
}

// ClearCompleted removes every completed task in one pass once c approves,
// returning how many were removed.
func (s *Service) ClearCompleted(ctx context.Context, c Confirmer) (int, error) {
	s.mu.Lock()
	n := s.countCompleted()
	s.mu.Unlock()
	if n == 0 {
		s.notify(ctx, NoticeInfo, "No completed tasks to clear!")
		return 0, nil
	}
	if !c.Confirm(ClearCompletedPrompt(n)) {
		return 0, nil
	}

	s.mu.Lock()
	kept := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	if removed == 0 {
		s.mu.Unlock()
		return 0, nil
	}
	s.tasks = kept
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return removed, err
	}

	s.notify(ctx, NoticeSuccess, fmt.Sprintf("%d task(s) cleared!", removed))
	return removed, nil
}

func (s *Service) countCompleted() int {
	n := 0
	for _, t := range s.tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
