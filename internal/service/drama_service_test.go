package service

import (
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/akshay543210/propfirm143/internal/core"
	"github.com/akshay543210/propfirm143/pkg/broker"
)

type fakeDramaRepo struct {
	reports map[string]*core.DramaReport
	nextID  int
}

func newFakeDramaRepo() *fakeDramaRepo {
	return &fakeDramaRepo{reports: make(map[string]*core.DramaReport)}
}

// newestFirst mirrors the store's "-created" sort on every read path.
func newestFirst(reports []*core.DramaReport) []*core.DramaReport {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Created > reports[j].Created
	})
	return reports
}

func (r *fakeDramaRepo) ListApproved() ([]*core.DramaReport, error) {
	var out []*core.DramaReport
	for _, report := range r.reports {
		if report.Status == core.StatusApproved {
			out = append(out, report)
		}
	}
	return newestFirst(out), nil
}

func (r *fakeDramaRepo) ListBySubmitter(userID string) ([]*core.DramaReport, error) {
	var out []*core.DramaReport
	for _, report := range r.reports {
		if report.SubmittedBy == userID {
			out = append(out, report)
		}
	}
	return newestFirst(out), nil
}

func (r *fakeDramaRepo) ListAll() ([]*core.DramaReport, error) {
	var out []*core.DramaReport
	for _, report := range r.reports {
		out = append(out, report)
	}
	return newestFirst(out), nil
}

func (r *fakeDramaRepo) Create(report *core.DramaReport) error {
	r.nextID++
	report.ID = fmt.Sprintf("d%d", r.nextID)
	report.Created = fmt.Sprintf("2026-08-01 00:00:%02d.000Z", r.nextID)
	r.reports[report.ID] = report
	return nil
}

func (r *fakeDramaRepo) SetStatus(id, status, approverID string) error {
	report, ok := r.reports[id]
	if !ok {
		return errors.New("sql: no rows in result set")
	}
	report.Status = status
	report.AdminApprovedBy = approverID
	return nil
}

func (r *fakeDramaRepo) Delete(id string) error {
	delete(r.reports, id)
	return nil
}

func newDramaService(repo core.DramaRepository) (core.DramaService, *broker.Broker) {
	b := broker.New()
	return NewDramaService(repo, b, testLogger()), b
}

func TestDramaService_Submit_ForcesPending(t *testing.T) {
	repo := newFakeDramaRepo()
	svc, _ := newDramaService(repo)

	// Caller tries to self-approve.
	result := svc.Submit(&core.DramaInput{
		FirmName:    "Shady Capital",
		DramaType:   core.DramaTypePayoutDelay,
		Severity:    core.SeverityHigh,
		Description: "Payouts stuck for 60 days",
		Status:      core.StatusApproved,
	}, "user1")

	if !result.Success {
		t.Fatalf("submit should succeed: %s", result.Error)
	}
	report := result.Data.(*core.DramaReport)
	if report.Status != core.StatusPending {
		t.Errorf("status must be forced to Pending, got %q", report.Status)
	}
	if report.SubmittedBy != "user1" {
		t.Errorf("submitter should be stamped, got %q", report.SubmittedBy)
	}
}

func TestDramaService_Submit_RequiresAuth(t *testing.T) {
	svc, _ := newDramaService(newFakeDramaRepo())

	result := svc.Submit(&core.DramaInput{
		FirmName:    "Shady Capital",
		Description: "something",
	}, "")
	if result.Success {
		t.Fatal("anonymous submission should fail")
	}
}

func TestDramaService_Submit_RequiredFields(t *testing.T) {
	svc, _ := newDramaService(newFakeDramaRepo())

	if result := svc.Submit(&core.DramaInput{Description: "x"}, "u1"); result.Success {
		t.Error("missing firm name should fail")
	}
	if result := svc.Submit(&core.DramaInput{FirmName: "x"}, "u1"); result.Success {
		t.Error("missing description should fail")
	}
}

func TestDramaService_Submit_NotifiesAdminAndSubmitter(t *testing.T) {
	repo := newFakeDramaRepo()
	svc, b := newDramaService(repo)

	adminChan := b.Subscribe(broker.ChannelAdmin, "")
	submitterChan := b.Subscribe(broker.ChannelSubmitter, "user1")
	otherChan := b.Subscribe(broker.ChannelSubmitter, "user2")

	svc.Submit(&core.DramaInput{
		FirmName:    "Shady Capital",
		Description: "Payouts stuck",
	}, "user1")

	select {
	case e := <-adminChan:
		if e.Type != "drama.submitted" {
			t.Errorf("admin event = %q", e.Type)
		}
	case <-time.After(time.Second):
		t.Error("admin channel timeout")
	}

	select {
	case <-submitterChan:
	case <-time.After(time.Second):
		t.Error("submitter channel timeout")
	}

	select {
	case <-otherChan:
		t.Error("other submitters must not see the event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDramaService_UpdateStatus_OnlyModeration(t *testing.T) {
	repo := newFakeDramaRepo()
	svc, _ := newDramaService(repo)

	created := svc.Submit(&core.DramaInput{FirmName: "X", Description: "y"}, "u1")
	id := created.Data.(*core.DramaReport).ID

	if result := svc.UpdateStatus(id, core.StatusPending, "admin1"); result.Success {
		t.Error("moving back to Pending should be rejected")
	}
	if result := svc.UpdateStatus(id, "Published", "admin1"); result.Success {
		t.Error("unknown status should be rejected")
	}

	result := svc.UpdateStatus(id, core.StatusApproved, "admin1")
	if !result.Success {
		t.Fatalf("approval should succeed: %s", result.Error)
	}
	if repo.reports[id].AdminApprovedBy != "admin1" {
		t.Error("approver should be stamped")
	}
}

func TestDramaService_UpdateStatus_NotifiesTracker(t *testing.T) {
	repo := newFakeDramaRepo()
	svc, b := newDramaService(repo)

	created := svc.Submit(&core.DramaInput{FirmName: "X", Description: "y"}, "u1")
	id := created.Data.(*core.DramaReport).ID

	trackerChan := b.Subscribe(broker.ChannelTracker, "")
	svc.UpdateStatus(id, core.StatusApproved, "admin1")

	select {
	case e := <-trackerChan:
		if e.Type != "drama.status_changed" {
			t.Errorf("tracker event = %q", e.Type)
		}
	case <-time.After(time.Second):
		t.Error("tracker channel timeout")
	}
}

func TestDramaService_PublicReports_ApprovedOnly(t *testing.T) {
	repo := newFakeDramaRepo()
	svc, _ := newDramaService(repo)

	svc.Submit(&core.DramaInput{FirmName: "A", Description: "a"}, "u1")
	created := svc.Submit(&core.DramaInput{FirmName: "B", Description: "b"}, "u1")
	svc.UpdateStatus(created.Data.(*core.DramaReport).ID, core.StatusApproved, "admin1")

	public, err := svc.PublicReports()
	if err != nil {
		t.Fatal(err)
	}
	if len(public) != 1 || public[0].FirmName != "B" {
		t.Errorf("public feed should hold only approved reports, got %+v", public)
	}

	all, _ := svc.AllReports()
	if len(all) != 2 {
		t.Errorf("admin feed should hold every status, got %d", len(all))
	}
}

func TestDramaService_PublicReports_NewestFirst(t *testing.T) {
	repo := newFakeDramaRepo()
	svc, _ := newDramaService(repo)

	for _, name := range []string{"First", "Second", "Third"} {
		created := svc.Submit(&core.DramaInput{FirmName: name, Description: "x"}, "u1")
		svc.UpdateStatus(created.Data.(*core.DramaReport).ID, core.StatusApproved, "admin1")
	}

	public, err := svc.PublicReports()
	if err != nil {
		t.Fatal(err)
	}
	if len(public) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(public))
	}
	if public[0].FirmName != "Third" || public[2].FirmName != "First" {
		t.Errorf("public feed should be newest first, got %s, %s, %s",
			public[0].FirmName, public[1].FirmName, public[2].FirmName)
	}
}

func TestDramaService_Delete(t *testing.T) {
	repo := newFakeDramaRepo()
	svc, _ := newDramaService(repo)

	created := svc.Submit(&core.DramaInput{FirmName: "X", Description: "y"}, "u1")
	id := created.Data.(*core.DramaReport).ID

	if result := svc.Delete(id); !result.Success {
		t.Fatalf("delete should succeed: %s", result.Error)
	}
	if len(repo.reports) != 0 {
		t.Error("report should be gone")
	}
}
