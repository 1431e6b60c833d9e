package service

import (
	"log/slog"
	"time"

	"github.com/akshay543210/propfirm143/internal/core"
	"github.com/akshay543210/propfirm143/pkg/broker"
)

// DramaService runs the drama tracker moderation workflow. Every write
// publishes a broker event so the public tracker and the admin panel
// re-fetch without a manual refresh.
type DramaService struct {
	reports core.DramaRepository
	broker  *broker.Broker
	logger  *slog.Logger
}

func NewDramaService(reports core.DramaRepository, eventBroker *broker.Broker, logger *slog.Logger) core.DramaService {
	return &DramaService{
		reports: reports,
		broker:  eventBroker,
		logger:  logger,
	}
}

func (s *DramaService) PublicReports() ([]*core.DramaReport, error) {
	return s.reports.ListApproved()
}

func (s *DramaService) SubmitterReports(userID string) ([]*core.DramaReport, error) {
	return s.reports.ListBySubmitter(userID)
}

func (s *DramaService) AllReports() ([]*core.DramaReport, error) {
	return s.reports.ListAll()
}

func (s *DramaService) Submit(input *core.DramaInput, submitterID string) core.Result {
	if input.FirmName == "" || input.Description == "" {
		return core.Result{Success: false, Error: "Firm name and description are required"}
	}
	if submitterID == "" {
		return core.Result{Success: false, Error: "Authentication required to submit a report"}
	}

	report := &core.DramaReport{
		FirmName:     input.FirmName,
		DateReported: input.DateReported,
		DramaType:    input.DramaType,
		Severity:     input.Severity,
		Description:  input.Description,
		SourceLinks:  NormalizeList(input.SourceLinks),
		// Submitters cannot self-approve: whatever status the caller
		// supplied is discarded.
		Status:      core.StatusPending,
		SubmittedBy: submitterID,
	}

	if err := s.reports.Create(report); err != nil {
		s.logger.Error("failed to submit drama report", "firm", input.FirmName, "error", err)
		return core.Result{Success: false, Error: err.Error()}
	}

	s.publish(broker.ChannelAdmin, "", "drama.submitted", report)
	s.publish(broker.ChannelSubmitter, submitterID, "drama.submitted", report)

	return core.Result{Success: true, Message: "Report submitted for review", Data: report}
}

func (s *DramaService) UpdateStatus(id, status, approverID string) core.Result {
	// Pending is the entry state; moderation only moves forward.
	if status != core.StatusApproved && status != core.StatusRejected {
		return core.Result{Success: false, Error: "Status must be Approved or Rejected"}
	}

	if err := s.reports.SetStatus(id, status, approverID); err != nil {
		s.logger.Error("failed to update report status", "report", id, "error", err)
		return core.Result{Success: false, Error: err.Error()}
	}

	data := map[string]interface{}{"id": id, "status": status}
	s.notify("drama.status_changed", data)

	return core.Result{Success: true, Message: "Report " + status}
}

func (s *DramaService) Delete(id string) core.Result {
	if err := s.reports.Delete(id); err != nil {
		s.logger.Error("failed to delete report", "report", id, "error", err)
		return core.Result{Success: false, Error: err.Error()}
	}

	s.notify("drama.deleted", map[string]interface{}{"id": id})

	return core.Result{Success: true, Message: "Report deleted"}
}

// notify fans a change event out to both reader surfaces. The tracker
// feed gets it too because approvals and deletions change the approved
// set that public clients display.
func (s *DramaService) notify(eventType string, data map[string]interface{}) {
	event := broker.Event{
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Data:      data,
	}
	s.broker.Publish(broker.ChannelAdmin, "", event)
	s.broker.Publish(broker.ChannelTracker, "", event)
}

func (s *DramaService) publish(channel broker.Channel, id, eventType string, report *core.DramaReport) {
	s.broker.Publish(channel, id, broker.Event{
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"id":        report.ID,
			"firm_name": report.FirmName,
			"severity":  report.Severity,
			"status":    report.Status,
		},
	})
}
