package task

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/orbook/orbook/internal/domain/notification"
)

type mockRepo struct {
	tasks map[uuid.UUID]*Task
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: make(map[uuid.UUID]*Task)}
}

func (m *mockRepo) Create(ctx context.Context, t *Task) error {
	t.ID = uuid.New()
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *mockRepo) List(ctx context.Context, patientMRN string) ([]*Task, error) {
	var out []*Task
	for _, t := range m.tasks {
		if patientMRN != "" && t.PatientMRN != patientMRN {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, t *Task) (bool, error) {
	if _, ok := m.tasks[t.ID]; !ok {
		return false, nil
	}
	cp := *t
	m.tasks[t.ID] = &cp
	return true, nil
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.tasks[id]; !ok {
		return false, nil
	}
	delete(m.tasks, id)
	return true, nil
}

type mockNotifier struct {
	sent []*notification.Notification
}

func (m *mockNotifier) Notify(ctx context.Context, n *notification.Notification) error {
	m.sent = append(m.sent, n)
	return nil
}

func strPtr(s string) *string { return &s }

func newTestService() (*Service, *mockRepo, *mockNotifier) {
	repo := newMockRepo()
	notifier := &mockNotifier{}
	return NewService(repo, notifier, zerolog.Nop()), repo, notifier
}

func TestCreateTaskNotifiesAssignee(t *testing.T) {
	svc, _, notifier := newTestService()
	task := &Task{
		PatientMRN:      "MRN001",
		TaskDescription: "Order panoramic radiograph",
		AssignedTo:      "Omar Haddad",
		AssignedToEmail: strPtr("omar@hospital.org"),
		DueDate:         strPtr("2026-09-12"),
	}
	if err := svc.Create(context.Background(), task, "dana@hospital.org", "Dana Wu"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if task.Urgency != UrgencyMedium || task.Status != StatusPending {
		t.Errorf("defaults not applied: urgency=%s status=%s", task.Urgency, task.Status)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.sent))
	}
	n := notifier.sent[0]
	if n.Type != notification.TypeTaskAssigned || n.RecipientEmail != "omar@hospital.org" {
		t.Errorf("unexpected notification: %+v", n)
	}
	if n.TaskID == nil || *n.TaskID != task.ID.String() {
		t.Error("notification should reference the task id")
	}
	if !strings.Contains(n.Message, "2026-09-12") {
		t.Errorf("message should include the due date: %s", n.Message)
	}
}

func TestCreateTaskSelfAssignedSkipsNotification(t *testing.T) {
	svc, _, notifier := newTestService()
	task := &Task{
		PatientMRN:      "MRN001",
		TaskDescription: "Review labs",
		AssignedTo:      "Dana Wu",
		AssignedToEmail: strPtr("dana@hospital.org"),
	}
	if err := svc.Create(context.Background(), task, "dana@hospital.org", "Dana Wu"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Errorf("self-assigned task should not notify, got %d", len(notifier.sent))
	}
}

func TestCreateTaskValidation(t *testing.T) {
	svc, _, _ := newTestService()
	cases := []struct {
		name string
		task *Task
	}{
		{"missing mrn", &Task{TaskDescription: "D", AssignedTo: "A"}},
		{"missing description", &Task{PatientMRN: "M", AssignedTo: "A"}},
		{"missing assignee", &Task{PatientMRN: "M", TaskDescription: "D"}},
		{"bad urgency", &Task{PatientMRN: "M", TaskDescription: "D", AssignedTo: "A", Urgency: "critical"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.Create(context.Background(), tc.task, "dana@hospital.org", ""); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestToggleTask(t *testing.T) {
	svc, repo, _ := newTestService()
	task := &Task{PatientMRN: "MRN001", TaskDescription: "Order labs", AssignedTo: "Omar"}
	if err := svc.Create(context.Background(), task, "dana@hospital.org", ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	completed, err := svc.Toggle(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !completed {
		t.Error("first toggle should complete the task")
	}
	stored, _ := repo.GetByID(context.Background(), task.ID)
	if stored.Status != StatusCompleted {
		t.Errorf("status should follow completion, got %s", stored.Status)
	}

	completed, err = svc.Toggle(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("second Toggle failed: %v", err)
	}
	if completed {
		t.Error("second toggle should reopen the task")
	}
	stored, _ = repo.GetByID(context.Background(), task.ID)
	if stored.Status != StatusPending {
		t.Errorf("reopened task should be pending, got %s", stored.Status)
	}
}

func TestToggleMissingTask(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.Toggle(context.Background(), uuid.New()); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLongDescriptionTruncatedInTitle(t *testing.T) {
	svc, _, notifier := newTestService()
	task := &Task{
		PatientMRN:      "MRN001",
		TaskDescription: strings.Repeat("y", 80),
		AssignedTo:      "Omar Haddad",
		AssignedToEmail: strPtr("omar@hospital.org"),
	}
	if err := svc.Create(context.Background(), task, "dana@hospital.org", ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	title := notifier.sent[0].Title
	if len(title) > len("New Task Assigned: ")+50 {
		t.Errorf("notification title should truncate the description: %q", title)
	}
}
