package reminders

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/taskdeck-dev/taskdeck/internal/services"
	"github.com/taskdeck-dev/taskdeck/internal/store"
)

// Scanner periodically sweeps the task store for unfinished tasks whose
// due date falls inside the lead window and dispatches a single reminder
// per task.
type Scanner struct {
	tasks    store.TaskStore
	notifier *services.WebhookNotifier
	interval time.Duration
	lead     time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScanner(tasks store.TaskStore, notifier *services.WebhookNotifier, interval, lead time.Duration) *Scanner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scanner{
		tasks:    tasks,
		notifier: notifier,
		interval: interval,
		lead:     lead,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins the sweep loop with an immediate first pass. It is a no-op
// when no webhook is configured.
func (s *Scanner) Start() {
	if !s.notifier.Enabled() {
		log.Println("Reminder scanner disabled: no webhook configured")
		return
	}

	log.Printf("Starting reminder scanner (every %v, %v lead)", s.interval, s.lead)

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.sweep()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

// Stop gracefully shuts down the sweep loop.
func (s *Scanner) Stop() {
	s.cancel()
	s.wg.Wait()
	log.Println("Reminder scanner stopped")
}

func (s *Scanner) sweep() {
	due, err := s.tasks.ListDueBefore(time.Now().Add(s.lead))

	if err != nil {
		log.Printf("Reminder sweep failed: %v", err)
		return
	}

	for _, task := range due {
		if err := s.notifier.SendTaskDueNotification(task); err != nil {
			log.Printf("Failed to notify for task %d: %v", task.ID, err)
			continue
		}

		if err := s.tasks.MarkReminderSent(task.ID, time.Now()); err != nil {
			log.Printf("Failed to mark reminder sent for task %d: %v", task.ID, err)
		}
	}
}
