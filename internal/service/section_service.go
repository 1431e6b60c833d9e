package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/akshay543210/propfirm143/internal/core"
)

// SectionService maintains the four curated firm lists. The last fetched
// snapshot is kept in memory so projections stay cheap; every successful
// mutation triggers a full re-fetch, mirroring the refetch-after-mutation
// contract of the admin console.
type SectionService struct {
	sections core.SectionRepository
	logger   *slog.Logger

	mutex    sync.RWMutex
	snapshot core.MembershipSnapshot
	fetched  bool
	lastErr  string
}

func NewSectionService(sections core.SectionRepository, logger *slog.Logger) core.SectionService {
	return &SectionService{
		sections: sections,
		logger:   logger,
	}
}

// fetchSection applies the degraded-read policy for one section: a
// missing public list rule (or an access-denied read) yields an empty
// list plus a guidance message instead of an error; any other failure
// yields an empty list plus a generic message.
func (s *SectionService) fetchSection(section core.Section) ([]core.SectionFirm, string) {
	hasRule, err := s.sections.HasPublicListRule(section)
	if err != nil {
		return nil, fmt.Sprintf("%s error: %v", section, err)
	}
	if !hasRule {
		s.logger.Warn("section table denies public reads",
			"section", string(section),
			"collection", section.Collection(),
		)
		return nil, fmt.Sprintf(
			"%s access denied: missing public list rule on %s. Run `propfirm143 fixrules` (or POST /api/ops/fix-access-rules) to restore it.",
			section, section.Collection(),
		)
	}

	firms, err := s.sections.ListSection(section)
	if err != nil {
		if core.IsAccessDenied(err) {
			return nil, fmt.Sprintf(
				"%s access denied: missing public read policy for %s table",
				section, section.Collection(),
			)
		}
		return nil, fmt.Sprintf("%s error: %v", section, err)
	}

	return firms, ""
}

func (s *SectionService) FetchMemberships() (*core.MembershipSnapshot, error) {
	snap := core.MembershipSnapshot{
		Errors: make(map[core.Section]string),
	}

	for _, section := range core.Sections {
		firms, errMsg := s.fetchSection(section)
		if errMsg != "" {
			snap.Errors[section] = errMsg
		}
		switch section {
		case core.SectionBudget:
			snap.Budget = firms
		case core.SectionTop:
			snap.Top = firms
		case core.SectionTableReview:
			snap.TableReview = firms
		case core.SectionExplore:
			snap.Explore = firms
		}
	}

	s.mutex.Lock()
	s.snapshot = snap
	s.fetched = true
	if len(snap.Errors) == 0 {
		// A clean fetch clears any previous error.
		s.lastErr = ""
	} else {
		for _, msg := range snap.Errors {
			s.lastErr = msg
			break
		}
	}
	s.mutex.Unlock()

	return &snap, nil
}

// LastError returns the retained explanatory error from the most recent
// fetch, or "" after a clean one.
func (s *SectionService) LastError() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.lastErr
}

func (s *SectionService) MembershipsBySection(sectionKey string) []core.Membership {
	section, err := core.ParseSection(sectionKey)
	if err != nil {
		return nil
	}

	s.mutex.RLock()
	fetched := s.fetched
	s.mutex.RUnlock()

	// Cold read: a process that has served no membership request yet has
	// an empty zero-value snapshot, which is indistinguishable from an
	// empty section. Populate it before projecting.
	if !fetched {
		if _, err := s.FetchMemberships(); err != nil {
			s.logger.Warn("initial membership fetch failed", "error", err)
		}
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var firms []core.SectionFirm
	switch section {
	case core.SectionBudget:
		firms = s.snapshot.Budget
	case core.SectionTop:
		firms = s.snapshot.Top
	case core.SectionTableReview:
		firms = s.snapshot.TableReview
	case core.SectionExplore:
		firms = s.snapshot.Explore
	}

	memberships := make([]core.Membership, 0, len(firms))
	for _, sf := range firms {
		m := core.Membership{
			ID:     sf.MembershipID,
			FirmID: sf.Firm.ID,
			Firm:   sf.Firm,
		}
		// Rank only round-trips for table-review; every other section
		// reports 0 regardless of what the caller supplied on insert.
		if section == core.SectionTableReview {
			m.Rank = sf.SortPriority
		}
		memberships = append(memberships, m)
	}
	return memberships
}

func (s *SectionService) AddFirmToSection(sectionKey, firmID string, rank int) core.Result {
	section, err := core.ParseSection(sectionKey)
	if err != nil {
		return core.Result{Success: false, Error: err.Error()}
	}

	if err := s.sections.Insert(section, firmID, rank); err != nil {
		if core.IsDuplicate(err) {
			return core.Result{Success: false, Error: "Firm is already in this section"}
		}
		s.logger.Error("failed to add firm to section",
			"section", string(section), "firm", firmID, "error", err)
		return core.Result{Success: false, Error: fmt.Sprintf("Failed to add firm to %s section", section)}
	}

	if _, err := s.FetchMemberships(); err != nil {
		s.logger.Warn("refetch after add failed", "error", err)
	}

	return core.Result{
		Success: true,
		Message: fmt.Sprintf("Firm added to %s section successfully", section),
	}
}

func (s *SectionService) RemoveFirmFromSection(sectionKey, membershipID string) core.Result {
	section, err := core.ParseSection(sectionKey)
	if err != nil {
		return core.Result{Success: false, Error: err.Error()}
	}
	if section == core.SectionExplore {
		return s.RemoveFirmFromExplore(membershipID)
	}
	return s.remove(section, membershipID)
}

func (s *SectionService) RemoveFirmFromExplore(membershipID string) core.Result {
	return s.remove(core.SectionExplore, membershipID)
}

func (s *SectionService) remove(section core.Section, membershipID string) core.Result {
	deleted, err := s.sections.Delete(section, membershipID)
	if err != nil {
		s.logger.Error("failed to remove membership",
			"section", string(section), "membership", membershipID, "error", err)
		return core.Result{Success: false, Error: fmt.Sprintf("Failed to remove firm from %s section: %v", section, err)}
	}
	if deleted == 0 {
		return core.Result{
			Success: false,
			Error:   fmt.Sprintf("%v in %s. Membership ID: %s", core.ErrNoMatchingRecord, section.Collection(), membershipID),
		}
	}

	if _, err := s.FetchMemberships(); err != nil {
		s.logger.Warn("refetch after remove failed", "error", err)
	}

	return core.Result{
		Success: true,
		Message: fmt.Sprintf("Firm removed from %s section successfully", section),
	}
}

// RemoveLegacyMembership probes the three legacy section tables in order
// until one reports a deletion. It exists for call sites holding a bare
// membership id with no section tag; explore never participates.
func (s *SectionService) RemoveLegacyMembership(membershipID string) core.Result {
	for _, section := range core.LegacySections {
		deleted, err := s.sections.Delete(section, membershipID)
		if err != nil {
			s.logger.Warn("probe delete failed, trying next table",
				"collection", section.Collection(), "error", err)
			continue
		}
		if deleted > 0 {
			if _, err := s.FetchMemberships(); err != nil {
				s.logger.Warn("refetch after remove failed", "error", err)
			}
			return core.Result{Success: true, Message: "Firm removed from section successfully"}
		}
	}

	return core.Result{
		Success: false,
		Error:   fmt.Sprintf("%v in any section table. Membership ID: %s", core.ErrNoMatchingRecord, membershipID),
	}
}
