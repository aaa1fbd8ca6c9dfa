package patient

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/orbook/orbook/internal/domain/notification"
	"github.com/orbook/orbook/internal/domain/roster"
)

type mockRepo struct {
	patients map[string]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[string]*Patient)}
}

func (m *mockRepo) Create(ctx context.Context, p *Patient) error {
	cp := *p
	m.patients[p.MRN] = &cp
	return nil
}

func (m *mockRepo) GetByMRN(ctx context.Context, mrn string) (*Patient, error) {
	p, ok := m.patients[mrn]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockRepo) List(ctx context.Context) ([]*Patient, error) {
	var out []*Patient
	for _, p := range m.patients {
		if !p.Archived {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepo) ListArchived(ctx context.Context) ([]*Patient, error) {
	var out []*Patient
	for _, p := range m.patients {
		if p.Archived {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepo) ListCompletedBefore(ctx context.Context, cutoff time.Time) ([]*Patient, error) {
	var out []*Patient
	for _, p := range m.patients {
		if !p.Archived && p.Status == StatusCompleted && p.CompletedAt != nil && p.CompletedAt.Before(cutoff) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, p *Patient) (bool, error) {
	if _, ok := m.patients[p.MRN]; !ok {
		return false, nil
	}
	cp := *p
	m.patients[p.MRN] = &cp
	return true, nil
}

func (m *mockRepo) Delete(ctx context.Context, mrn string) (bool, error) {
	if _, ok := m.patients[mrn]; !ok {
		return false, nil
	}
	delete(m.patients, mrn)
	return true, nil
}

type mockArchiver struct {
	calls map[string]bool
}

func (m *mockArchiver) SetArchivedByMRN(ctx context.Context, mrn string, archived bool) error {
	if m.calls == nil {
		m.calls = make(map[string]bool)
	}
	m.calls[mrn] = archived
	return nil
}

type mockDirectory struct {
	residents []*roster.Resident
}

func (m *mockDirectory) ActiveResidents(ctx context.Context, hospital string) ([]*roster.Resident, error) {
	return m.residents, nil
}

type mockNotifier struct {
	sent []*notification.Notification
}

func (m *mockNotifier) Notify(ctx context.Context, n *notification.Notification) error {
	m.sent = append(m.sent, n)
	return nil
}

type mockTracker struct {
	diagnoses []string
	codes     []string
}

func (m *mockTracker) TrackDiagnosis(ctx context.Context, email, diagnosis string) error {
	m.diagnoses = append(m.diagnoses, diagnosis)
	return nil
}

func (m *mockTracker) TrackCPTCode(ctx context.Context, email, code string) error {
	m.codes = append(m.codes, code)
	return nil
}

type testEnv struct {
	repo      *mockRepo
	archiver  *mockArchiver
	directory *mockDirectory
	notifier  *mockNotifier
	tracker   *mockTracker
	svc       *Service
}

func newTestEnv() *testEnv {
	env := &testEnv{
		repo:     newMockRepo(),
		archiver: &mockArchiver{},
		directory: &mockDirectory{residents: []*roster.Resident{
			{Name: "Dana Wu", Email: "dana@hospital.org", Hospital: "General"},
			{Name: "Omar Haddad", Email: "omar@hospital.org", Hospital: "General"},
		}},
		notifier: &mockNotifier{},
		tracker:  &mockTracker{},
	}
	env.svc = NewService(env.repo, env.archiver, env.directory, env.notifier,
		env.tracker, 48*time.Hour, zerolog.Nop())
	return env
}

func strPtr(s string) *string { return &s }

func TestCreatePatient(t *testing.T) {
	env := newTestEnv()
	p := &Patient{
		MRN:           "MRN001",
		PatientName:   "Jane Morrow",
		DOB:           "1988-04-12",
		Diagnosis:     strPtr("Mandible fracture"),
		ProcedureCode: strPtr("21462"),
	}
	if err := env.svc.Create(context.Background(), p, "res@hospital.org"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.Status != StatusPending {
		t.Errorf("expected default status pending, got %s", p.Status)
	}
	if len(p.ActivityLog) != 1 || p.ActivityLog[0].Action != "created" {
		t.Errorf("expected a single created activity entry, got %+v", p.ActivityLog)
	}
	if len(env.tracker.diagnoses) != 1 || env.tracker.diagnoses[0] != "Mandible fracture" {
		t.Errorf("diagnosis usage not tracked: %v", env.tracker.diagnoses)
	}
	if len(env.tracker.codes) != 1 || env.tracker.codes[0] != "21462" {
		t.Errorf("cpt usage not tracked: %v", env.tracker.codes)
	}
}

func TestCreatePatientValidation(t *testing.T) {
	env := newTestEnv()
	cases := []struct {
		name string
		p    *Patient
	}{
		{"missing mrn", &Patient{PatientName: "A", DOB: "1990-01-01"}},
		{"missing name", &Patient{MRN: "M1", DOB: "1990-01-01"}},
		{"missing dob", &Patient{MRN: "M1", PatientName: "A"}},
		{"bad status", &Patient{MRN: "M1", PatientName: "A", DOB: "1990-01-01", Status: "done"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := env.svc.Create(context.Background(), tc.p, "res@hospital.org"); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCreatePatientDuplicateMRN(t *testing.T) {
	env := newTestEnv()
	p := &Patient{MRN: "MRN001", PatientName: "Jane Morrow", DOB: "1988-04-12"}
	if err := env.svc.Create(context.Background(), p, "res@hospital.org"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	dup := &Patient{MRN: "MRN001", PatientName: "Other", DOB: "1990-01-01"}
	if err := env.svc.Create(context.Background(), dup, "res@hospital.org"); err != ErrDuplicateMRN {
		t.Errorf("expected ErrDuplicateMRN, got %v", err)
	}
}

func TestUpdateLogsChanges(t *testing.T) {
	env := newTestEnv()
	p := &Patient{MRN: "MRN001", PatientName: "Jane Morrow", DOB: "1988-04-12"}
	if err := env.svc.Create(context.Background(), p, "res@hospital.org"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	upd := &Patient{
		MRN:         "MRN001",
		PatientName: "Jane Morrow",
		DOB:         "1988-04-12",
		Diagnosis:   strPtr("LeFort I Fracture"),
		Status:      StatusConfirmed,
	}
	got, err := env.svc.Update(context.Background(), upd, "att@hospital.org")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	last := got.ActivityLog[len(got.ActivityLog)-1]
	if last.Action != "updated" {
		t.Fatalf("expected updated activity, got %s", last.Action)
	}
	if !strings.Contains(last.Details, "diagnosis") || !strings.Contains(last.Details, "status") {
		t.Errorf("details should mention changed fields: %s", last.Details)
	}
	if len(env.tracker.diagnoses) != 1 || env.tracker.diagnoses[0] != "LeFort I Fracture" {
		t.Errorf("changed diagnosis should be tracked: %v", env.tracker.diagnoses)
	}
}

func TestUpdateNoChangesNoActivity(t *testing.T) {
	env := newTestEnv()
	p := &Patient{MRN: "MRN001", PatientName: "Jane Morrow", DOB: "1988-04-12"}
	if err := env.svc.Create(context.Background(), p, "res@hospital.org"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	upd := &Patient{MRN: "MRN001", PatientName: "Jane Morrow", DOB: "1988-04-12", Status: StatusPending}
	got, err := env.svc.Update(context.Background(), upd, "att@hospital.org")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(got.ActivityLog) != 1 {
		t.Errorf("no-op update should not add activity, log has %d entries", len(got.ActivityLog))
	}
}

func TestAddComment(t *testing.T) {
	env := newTestEnv()
	p := &Patient{MRN: "MRN001", PatientName: "Jane Morrow", DOB: "1988-04-12"}
	if err := env.svc.Create(context.Background(), p, "res@hospital.org"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	comment, err := env.svc.AddComment(context.Background(), "MRN001",
		"Pre-op labs pending", "res@hospital.org", "Resident One")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if comment.CreatedByName != "Resident One" {
		t.Errorf("expected author name, got %q", comment.CreatedByName)
	}

	stored, _ := env.repo.GetByMRN(context.Background(), "MRN001")
	if len(stored.Comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(stored.Comments))
	}
	last := stored.ActivityLog[len(stored.ActivityLog)-1]
	if last.Action != "comment_added" {
		t.Errorf("expected comment_added activity, got %s", last.Action)
	}
}

func TestAddCommentTruncatesActivityDetail(t *testing.T) {
	env := newTestEnv()
	p := &Patient{MRN: "MRN001", PatientName: "Jane Morrow", DOB: "1988-04-12"}
	if err := env.svc.Create(context.Background(), p, "res@hospital.org"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	long := strings.Repeat("x", 80)
	if _, err := env.svc.AddComment(context.Background(), "MRN001", long, "res@hospital.org", ""); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	stored, _ := env.repo.GetByMRN(context.Background(), "MRN001")
	last := stored.ActivityLog[len(stored.ActivityLog)-1]
	if !strings.HasSuffix(last.Details, "...") {
		t.Errorf("long comment detail should be truncated: %s", last.Details)
	}
}

func TestSetChecklistItem(t *testing.T) {
	env := newTestEnv()
	p := &Patient{MRN: "MRN001", PatientName: "Jane Morrow", DOB: "1988-04-12"}
	if err := env.svc.Create(context.Background(), p, "res@hospital.org"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := env.svc.SetChecklistItem(context.Background(), "MRN001", "lab_tests", true, "res@hospital.org"); err != nil {
		t.Fatalf("SetChecklistItem failed: %v", err)
	}
	stored, _ := env.repo.GetByMRN(context.Background(), "MRN001")
	if !stored.PrepChecklist.LabTests {
		t.Error("lab_tests should be checked")
	}

	if err := env.svc.SetChecklistItem(context.Background(), "MRN001", "vitals", true, "res@hospital.org"); err == nil {
		t.Error("unknown checklist item should be rejected")
	}
}

func TestSendToORNotifiesOtherResidents(t *testing.T) {
	env := newTestEnv()
	p := &Patient{MRN: "MRN001", PatientName: "Jane Morrow", DOB: "1988-04-12"}
	if err := env.svc.Create(context.Background(), p, "dana@hospital.org"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := env.svc.SendToOR(context.Background(), "MRN001", "dana@hospital.org")
	if err != nil {
		t.Fatalf("SendToOR failed: %v", err)
	}
	if got.Status != StatusInOR {
		t.Errorf("expected in_or status, got %s", got.Status)
	}
	if len(env.notifier.sent) != 1 {
		t.Fatalf("expected 1 notification (actor excluded), got %d", len(env.notifier.sent))
	}
	n := env.notifier.sent[0]
	if n.RecipientEmail != "omar@hospital.org" || n.Type != notification.TypeCaseUpdated {
		t.Errorf("unexpected notification: %+v", n)
	}
	if n.CaseMRN == nil || *n.CaseMRN != "MRN001" {
		t.Errorf("notification should carry the case MRN")
	}
}

func TestMarkComplete(t *testing.T) {
	env := newTestEnv()
	p := &Patient{MRN: "MRN001", PatientName: "Jane Morrow", DOB: "1988-04-12"}
	if err := env.svc.Create(context.Background(), p, "res@hospital.org"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := env.svc.MarkComplete(context.Background(), "MRN001", "res@hospital.org")
	if err != nil {
		t.Fatalf("MarkComplete failed: %v", err)
	}
	if got.Status != StatusCompleted || got.CompletedAt == nil {
		t.Errorf("expected completed status with timestamp, got %s %v", got.Status, got.CompletedAt)
	}
	if len(env.notifier.sent) != 2 {
		t.Errorf("expected both residents notified, got %d", len(env.notifier.sent))
	}
}

func TestArchiveAndRestore(t *testing.T) {
	env := newTestEnv()
	p := &Patient{MRN: "MRN001", PatientName: "Jane Morrow", DOB: "1988-04-12"}
	if err := env.svc.Create(context.Background(), p, "res@hospital.org"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	archived, err := env.svc.Archive(context.Background(), "MRN001", "att@hospital.org")
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if !archived.Archived || archived.ArchivedAt == nil || archived.ArchivedBy == nil {
		t.Errorf("archive metadata incomplete: %+v", archived)
	}
	if got, want := env.archiver.calls["MRN001"], true; got != want {
		t.Error("related schedules should be archived")
	}

	if _, err := env.svc.Archive(context.Background(), "MRN001", "att@hospital.org"); err != ErrNotFound {
		t.Errorf("archiving an archived patient should fail, got %v", err)
	}

	restored, err := env.svc.Restore(context.Background(), "MRN001", "att@hospital.org")
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.Archived || restored.ArchivedAt != nil || restored.Status != StatusPending {
		t.Errorf("restore should clear archive state and reset status: %+v", restored)
	}
	if env.archiver.calls["MRN001"] {
		t.Error("related schedules should be unarchived")
	}
}

func TestAutoArchive(t *testing.T) {
	env := newTestEnv()
	old := time.Now().UTC().Add(-72 * time.Hour)
	recent := time.Now().UTC().Add(-1 * time.Hour)
	env.repo.patients["OLD"] = &Patient{
		MRN: "OLD", PatientName: "Old Case", DOB: "1970-01-01",
		Status: StatusCompleted, CompletedAt: &old,
	}
	env.repo.patients["NEW"] = &Patient{
		MRN: "NEW", PatientName: "Recent Case", DOB: "1980-01-01",
		Status: StatusCompleted, CompletedAt: &recent,
	}
	env.repo.patients["PENDING"] = &Patient{
		MRN: "PENDING", PatientName: "Waiting", DOB: "1985-01-01",
		Status: StatusPending,
	}

	count, err := env.svc.AutoArchive(context.Background())
	if err != nil {
		t.Fatalf("AutoArchive failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 patient auto-archived, got %d", count)
	}

	archived, _ := env.repo.GetByMRN(context.Background(), "OLD")
	if !archived.Archived {
		t.Error("old completed patient should be archived")
	}
	if archived.ArchivedBy == nil || *archived.ArchivedBy != "system" {
		t.Errorf("auto-archive actor should be system, got %v", archived.ArchivedBy)
	}
	if archived.ArchivedReason == nil || !strings.HasPrefix(*archived.ArchivedReason, "auto_archive_after_") {
		t.Errorf("unexpected archive reason: %v", archived.ArchivedReason)
	}

	fresh, _ := env.repo.GetByMRN(context.Background(), "NEW")
	if fresh.Archived {
		t.Error("recently completed patient should not be archived")
	}
}
