package main

import (
	"context"
	"time"

	"coursework_service/internal/repository"
	"coursework_service/pkg/kafka"
	"coursework_service/pkg/logger"
)

const reminderCheckInterval = 1 * time.Hour

// ReminderWorker periodically publishes reminders for assignments whose
// work deadline falls inside the configured window and that have not been
// delivered yet.
type ReminderWorker struct {
	assignmentRepo *repository.AssignmentRepository
	producer       *kafka.Producer
	log            *logger.Logger
	topic          string
	window         time.Duration
}

func NewReminderWorker(
	assignmentRepo *repository.AssignmentRepository,
	producer *kafka.Producer,
	log *logger.Logger,
	topic string,
	window time.Duration,
) *ReminderWorker {
	return &ReminderWorker{
		assignmentRepo: assignmentRepo,
		producer:       producer,
		log:            log,
		topic:          topic,
		window:         window,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(reminderCheckInterval)
	defer ticker.Stop()

	w.log.Infof("Reminder worker started, window=%s", w.window)
	w.run(ctx)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Reminder worker stopped")
			return
		case <-ticker.C:
			w.run(ctx)
		}
	}
}

func (w *ReminderWorker) run(ctx context.Context) {
	reminders, err := w.assignmentRepo.FindDueSoon(ctx, w.window)
	if err != nil {
		w.log.Errorf("Failed to find due assignments: %v", err)
		return
	}

	for _, reminder := range reminders {
		if err := w.producer.Send(ctx, w.topic, reminder); err != nil {
			w.log.Errorf("Failed to send reminder for assignment %s: %v", reminder.AssignmentID, err)
			continue
		}
		w.log.Infof("Sent deadline reminder for assignment %s (work %q)", reminder.AssignmentID, reminder.WorkTitle)
	}
}
