package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"

	"github.com/akshay543210/propfirm143/internal/core"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSectionRepo keeps memberships in memory per section. Behavior can
// be forced per section via the rule/error maps.
type fakeSectionRepo struct {
	rows       map[core.Section][]core.SectionFirm
	noRule     map[core.Section]bool
	listErr    map[core.Section]error
	insertErr  map[core.Section]error
	deleteErr  map[core.Section]error
	nextID     int
	insertedAt []core.Section
}

func newFakeSectionRepo() *fakeSectionRepo {
	return &fakeSectionRepo{
		rows:      make(map[core.Section][]core.SectionFirm),
		noRule:    make(map[core.Section]bool),
		listErr:   make(map[core.Section]error),
		insertErr: make(map[core.Section]error),
		deleteErr: make(map[core.Section]error),
	}
}

func (r *fakeSectionRepo) ListSection(section core.Section) ([]core.SectionFirm, error) {
	if err := r.listErr[section]; err != nil {
		return nil, err
	}
	rows := append([]core.SectionFirm(nil), r.rows[section]...)
	// Table-review reads come back ordered by curation priority, like
	// the store's "+sort_priority" sort.
	if section == core.SectionTableReview {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].SortPriority < rows[j].SortPriority
		})
	}
	return rows, nil
}

func (r *fakeSectionRepo) HasPublicListRule(section core.Section) (bool, error) {
	return !r.noRule[section], nil
}

func (r *fakeSectionRepo) Insert(section core.Section, firmID string, rank int) error {
	if err := r.insertErr[section]; err != nil {
		return err
	}
	for _, sf := range r.rows[section] {
		if sf.Firm != nil && sf.Firm.ID == firmID {
			return errors.New("UNIQUE constraint failed: " + section.Collection())
		}
	}
	r.nextID++
	sf := core.SectionFirm{
		MembershipID: fmt.Sprintf("m%d", r.nextID),
		Firm:         &core.PropFirm{ID: firmID, Name: "Firm " + firmID},
	}
	if section == core.SectionTableReview {
		sf.SortPriority = rank
	}
	r.rows[section] = append(r.rows[section], sf)
	r.insertedAt = append(r.insertedAt, section)
	return nil
}

func (r *fakeSectionRepo) Delete(section core.Section, membershipID string) (int, error) {
	if err := r.deleteErr[section]; err != nil {
		return 0, err
	}
	rows := r.rows[section]
	for i, sf := range rows {
		if sf.MembershipID == membershipID {
			r.rows[section] = append(rows[:i], rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeSectionRepo) Count(section core.Section) (int64, error) {
	return int64(len(r.rows[section])), nil
}

func TestSectionService_AddFirm_Duplicate(t *testing.T) {
	repo := newFakeSectionRepo()
	svc := NewSectionService(repo, testLogger())

	result := svc.AddFirmToSection("budget-firms", "firm1", 0)
	if !result.Success {
		t.Fatalf("first add should succeed, got error: %s", result.Error)
	}

	result = svc.AddFirmToSection("budget-firms", "firm1", 0)
	if result.Success {
		t.Fatal("duplicate add should fail")
	}
	if result.Error != "Firm is already in this section" {
		t.Errorf("unexpected duplicate error: %q", result.Error)
	}
}

func TestSectionService_AddFirm_CheapAlias(t *testing.T) {
	repo := newFakeSectionRepo()
	svc := NewSectionService(repo, testLogger())

	result := svc.AddFirmToSection("cheap-firms", "firm1", 0)
	if !result.Success {
		t.Fatalf("cheap-firms alias should resolve to budget: %s", result.Error)
	}
	if len(repo.rows[core.SectionBudget]) != 1 {
		t.Error("membership should land in the budget table")
	}
}

func TestSectionService_AddFirm_UnknownSection(t *testing.T) {
	svc := NewSectionService(newFakeSectionRepo(), testLogger())

	result := svc.AddFirmToSection("mystery-firms", "firm1", 0)
	if result.Success {
		t.Fatal("unknown section should fail")
	}
}

func TestSectionService_RankOnlyForTableReview(t *testing.T) {
	repo := newFakeSectionRepo()
	svc := NewSectionService(repo, testLogger())

	svc.AddFirmToSection("top-firms", "firm1", 7)
	svc.AddFirmToSection("table-review", "firm2", 7)
	svc.FetchMemberships()

	top := svc.MembershipsBySection("top-firms")
	if len(top) != 1 || top[0].Rank != 0 {
		t.Errorf("top-firms rank should be 0, got %+v", top)
	}

	table := svc.MembershipsBySection("table-review")
	if len(table) != 1 || table[0].Rank != 7 {
		t.Errorf("table-review rank should round-trip, got %+v", table)
	}
}

func TestSectionService_TableReviewOrdering(t *testing.T) {
	repo := newFakeSectionRepo()
	svc := NewSectionService(repo, testLogger())

	// Insert with out-of-order ranks.
	svc.AddFirmToSection("table-review", "firm5", 5)
	svc.AddFirmToSection("table-review", "firm1", 1)
	svc.AddFirmToSection("table-review", "firm3", 3)
	svc.FetchMemberships()

	table := svc.MembershipsBySection("table-review")
	if len(table) != 3 {
		t.Fatalf("expected 3 memberships, got %d", len(table))
	}
	ranks := []int{table[0].Rank, table[1].Rank, table[2].Rank}
	if ranks[0] != 1 || ranks[1] != 3 || ranks[2] != 5 {
		t.Errorf("table-review should come back ascending by rank, got %v", ranks)
	}
}

func TestSectionService_ColdReadPopulatesSnapshot(t *testing.T) {
	repo := newFakeSectionRepo()
	repo.rows[core.SectionBudget] = []core.SectionFirm{
		{MembershipID: "m1", Firm: &core.PropFirm{ID: "firm1"}},
	}
	svc := NewSectionService(repo, testLogger())

	// First read on a fresh process, with no prior FetchMemberships call.
	budget := svc.MembershipsBySection("budget-firms")
	if len(budget) != 1 || budget[0].FirmID != "firm1" {
		t.Fatalf("cold read should see stored rows, got %+v", budget)
	}
}

func TestSectionService_ColdReadSurfacesDegradedError(t *testing.T) {
	repo := newFakeSectionRepo()
	repo.noRule[core.SectionBudget] = true
	svc := NewSectionService(repo, testLogger())

	budget := svc.MembershipsBySection("budget-firms")
	if len(budget) != 0 {
		t.Fatalf("degraded cold read should be empty, got %+v", budget)
	}
	if !strings.Contains(svc.LastError(), "fixrules") {
		t.Errorf("cold read should retain the guidance error, got %q", svc.LastError())
	}
}

func TestSectionService_Remove_NoMatchingRecord(t *testing.T) {
	repo := newFakeSectionRepo()
	svc := NewSectionService(repo, testLogger())

	svc.AddFirmToSection("budget-firms", "firm1", 0)

	result := svc.RemoveFirmFromSection("budget-firms", "m1")
	if !result.Success {
		t.Fatalf("first remove should succeed: %s", result.Error)
	}

	// Second remove of the same id must report no matching record, not
	// silently succeed.
	result = svc.RemoveFirmFromSection("budget-firms", "m1")
	if result.Success {
		t.Fatal("second remove should fail")
	}
	if !strings.Contains(result.Error, "no matching record") {
		t.Errorf("expected no-matching-record error, got %q", result.Error)
	}
}

func TestSectionService_RemoveExplore_Routed(t *testing.T) {
	repo := newFakeSectionRepo()
	svc := NewSectionService(repo, testLogger())

	svc.AddFirmToSection("explore-firms", "firm1", 0)

	result := svc.RemoveFirmFromSection("explore-firms", "m1")
	if !result.Success {
		t.Fatalf("explore removal should succeed: %s", result.Error)
	}
	if len(repo.rows[core.SectionExplore]) != 0 {
		t.Error("explore row should be gone")
	}
}

func TestSectionService_RemoveLegacy_ProbesInOrder(t *testing.T) {
	repo := newFakeSectionRepo()
	svc := NewSectionService(repo, testLogger())

	// Membership lives in the last probed table.
	svc.AddFirmToSection("table-review", "firm1", 1)

	// A failing probe on an earlier table must not abort the chain.
	repo.deleteErr[core.SectionBudget] = errors.New("boom")

	result := svc.RemoveLegacyMembership("m1")
	if !result.Success {
		t.Fatalf("legacy removal should reach table-review: %s", result.Error)
	}
}

func TestSectionService_RemoveLegacy_AllMiss(t *testing.T) {
	svc := NewSectionService(newFakeSectionRepo(), testLogger())

	result := svc.RemoveLegacyMembership("ghost")
	if result.Success {
		t.Fatal("removal of unknown id should fail")
	}
	if !strings.Contains(result.Error, "no matching record") {
		t.Errorf("expected no-matching-record error, got %q", result.Error)
	}
}

func TestSectionService_DegradedRead_MissingRule(t *testing.T) {
	repo := newFakeSectionRepo()
	repo.noRule[core.SectionBudget] = true
	svc := NewSectionService(repo, testLogger())

	snap, err := svc.FetchMemberships()
	if err != nil {
		t.Fatalf("degraded read must not fail the whole fetch: %v", err)
	}

	if len(snap.Budget) != 0 {
		t.Error("degraded section should be empty")
	}
	msg := snap.Errors[core.SectionBudget]
	if !strings.Contains(msg, "fixrules") {
		t.Errorf("guidance message should point at fixrules, got %q", msg)
	}
	if svc.LastError() == "" {
		t.Error("degraded fetch should retain an explanatory error")
	}
}

func TestSectionService_DegradedRead_AccessDeniedList(t *testing.T) {
	repo := newFakeSectionRepo()
	repo.listErr[core.SectionTop] = errors.New("permission denied for table top5_prop")
	svc := NewSectionService(repo, testLogger())

	snap, err := svc.FetchMemberships()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Top) != 0 {
		t.Error("denied section should be empty")
	}
	if !strings.Contains(snap.Errors[core.SectionTop], "access denied") {
		t.Errorf("expected access-denied message, got %q", snap.Errors[core.SectionTop])
	}
}

func TestSectionService_CleanFetchClearsError(t *testing.T) {
	repo := newFakeSectionRepo()
	repo.noRule[core.SectionBudget] = true
	svc := NewSectionService(repo, testLogger())

	svc.FetchMemberships()
	if svc.LastError() == "" {
		t.Fatal("expected retained error after degraded fetch")
	}

	repo.noRule[core.SectionBudget] = false
	svc.FetchMemberships()
	if svc.LastError() != "" {
		t.Errorf("clean fetch should clear the error, got %q", svc.LastError())
	}
}
