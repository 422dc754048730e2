package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// WorklogClient is the slice of the Quarry API the time tracking tools
// use.
type WorklogClient interface {
	ListWorklogs(ctx context.Context, params quarry.ListWorklogsParams) ([]quarry.Worklog, error)
	CreateWorklog(ctx context.Context, params quarry.CreateWorklogParams) (quarry.Worklog, error)
	UpdateWorklog(ctx context.Context, id string, params quarry.UpdateWorklogParams) (quarry.Worklog, error)
	DeleteWorklog(ctx context.Context, id string) error
	TimeReport(ctx context.Context, params quarry.TimeReportParams) (quarry.TimeReport, error)
}

// WorklogResult is the tool-facing view of a worklog entry.
type WorklogResult struct {
	ID        string `json:"id"`
	IssueID   string `json:"issue_id"`
	MemberID  string `json:"member_id"`
	Minutes   int    `json:"minutes"`
	Note      string `json:"note,omitempty"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// WorklogListResult wraps a worklog listing.
type WorklogListResult struct {
	Worklogs []WorklogResult `json:"worklogs"`
}

// TimeReportResult aggregates logged time per member for a project over a
// date range.
type TimeReportResult struct {
	ProjectID    string                  `json:"project_id"`
	From         string                  `json:"from"`
	To           string                  `json:"to"`
	TotalMinutes int                     `json:"total_minutes"`
	Entries      []TimeReportEntryResult `json:"entries"`
}

// TimeReportEntryResult is one member's share of a time report.
type TimeReportEntryResult struct {
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`
	Minutes    int    `json:"minutes"`
}

func newWorklogResult(worklog quarry.Worklog) WorklogResult {
	return WorklogResult{
		ID:        worklog.ID,
		IssueID:   worklog.IssueID,
		MemberID:  worklog.MemberID,
		Minutes:   worklog.Minutes,
		Note:      worklog.Note,
		Date:      worklog.Date,
		CreatedAt: formatTimestamp(worklog.CreatedAt),
		UpdatedAt: formatTimestamp(worklog.UpdatedAt),
	}
}

// ListWorklogsInput holds the arguments for the list_worklogs tool. All
// filters are optional and combine with AND semantics.
type ListWorklogsInput struct {
	IssueID  string `json:"issue_id,omitempty" jsonschema:"filter by issue key"`
	MemberID string `json:"member_id,omitempty" jsonschema:"filter by member id"`
	From     string `json:"from,omitempty" jsonschema:"earliest work date formatted YYYY-MM-DD"`
	To       string `json:"to,omitempty" jsonschema:"latest work date formatted YYYY-MM-DD"`
}

// ListWorklogsTool defines the MCP tool for listing worklogs.
func ListWorklogsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_worklogs",
		Description: "Lists worklog entries with optional filters for issue and member and date range",
	}
}

// ListWorklogsHandler returns worklogs matching the given filters.
func ListWorklogsHandler(client WorklogClient) func(context.Context, ListWorklogsInput) (WorklogListResult, error) {
	return func(ctx context.Context, input ListWorklogsInput) (WorklogListResult, error) {
		worklogs, err := client.ListWorklogs(ctx, quarry.ListWorklogsParams{
			IssueID:  input.IssueID,
			MemberID: input.MemberID,
			From:     input.From,
			To:       input.To,
		})
		if err != nil {
			return WorklogListResult{}, err
		}
		result := WorklogListResult{Worklogs: make([]WorklogResult, 0, len(worklogs))}
		for _, worklog := range worklogs {
			result.Worklogs = append(result.Worklogs, newWorklogResult(worklog))
		}
		return result, nil
	}
}

// CreateWorklogInput holds the arguments for the create_worklog tool.
type CreateWorklogInput struct {
	IssueID string `json:"issue_id" jsonschema:"the issue key such as QRY-42"`
	Minutes int    `json:"minutes" jsonschema:"minutes spent; must be positive"`
	Note    string `json:"note,omitempty" jsonschema:"optional note describing the work"`
	Date    string `json:"date,omitempty" jsonschema:"work date formatted YYYY-MM-DD; defaults to today"`
}

// CreateWorklogTool defines the MCP tool for logging time.
func CreateWorklogTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_worklog",
		Description: "Logs time spent on an issue",
	}
}

// CreateWorklogHandler records time spent on an issue.
func CreateWorklogHandler(client WorklogClient) func(context.Context, CreateWorklogInput) (WorklogResult, error) {
	return func(ctx context.Context, input CreateWorklogInput) (WorklogResult, error) {
		worklog, err := client.CreateWorklog(ctx, quarry.CreateWorklogParams{
			IssueID: input.IssueID,
			Minutes: input.Minutes,
			Note:    input.Note,
			Date:    input.Date,
		})
		if err != nil {
			return WorklogResult{}, err
		}
		return newWorklogResult(worklog), nil
	}
}

// UpdateWorklogInput holds the arguments for the update_worklog tool.
// Omitted fields keep their current value.
type UpdateWorklogInput struct {
	WorklogID string  `json:"worklog_id" jsonschema:"the worklog identifier"`
	Minutes   *int    `json:"minutes,omitempty" jsonschema:"new minutes spent"`
	Note      *string `json:"note,omitempty" jsonschema:"new note or empty to clear"`
	Date      *string `json:"date,omitempty" jsonschema:"new work date formatted YYYY-MM-DD"`
}

// UpdateWorklogTool defines the MCP tool for correcting a worklog.
func UpdateWorklogTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_worklog",
		Description: "Updates a worklog entry; omitted fields keep their current value",
	}
}

// UpdateWorklogHandler applies a partial update to a worklog entry.
func UpdateWorklogHandler(client WorklogClient) func(context.Context, UpdateWorklogInput) (WorklogResult, error) {
	return func(ctx context.Context, input UpdateWorklogInput) (WorklogResult, error) {
		worklog, err := client.UpdateWorklog(ctx, input.WorklogID, quarry.UpdateWorklogParams{
			Minutes: input.Minutes,
			Note:    input.Note,
			Date:    input.Date,
		})
		if err != nil {
			return WorklogResult{}, err
		}
		return newWorklogResult(worklog), nil
	}
}

// DeleteWorklogInput holds the arguments for the delete_worklog tool.
type DeleteWorklogInput struct {
	WorklogID string `json:"worklog_id" jsonschema:"the worklog identifier"`
}

// DeleteWorklogTool defines the MCP tool for removing a worklog.
func DeleteWorklogTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_worklog",
		Description: "Deletes a worklog entry",
	}
}

// DeleteWorklogHandler deletes a worklog entry.
func DeleteWorklogHandler(client WorklogClient) func(context.Context, DeleteWorklogInput) (DeletionResult, error) {
	return func(ctx context.Context, input DeleteWorklogInput) (DeletionResult, error) {
		if err := client.DeleteWorklog(ctx, input.WorklogID); err != nil {
			return DeletionResult{}, err
		}
		return deleted(input.WorklogID), nil
	}
}

// TimeReportInput holds the arguments for the time_report tool. The range
// is inclusive on both ends.
type TimeReportInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project to report on"`
	From      string `json:"from" jsonschema:"start of the range formatted YYYY-MM-DD"`
	To        string `json:"to" jsonschema:"end of the range formatted YYYY-MM-DD"`
}

// TimeReportTool defines the MCP tool for aggregating logged time.
func TimeReportTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "time_report",
		Description: "Aggregates logged time per member for a project over a date range",
	}
}

// TimeReportHandler builds a per-member time report for a project.
func TimeReportHandler(client WorklogClient) func(context.Context, TimeReportInput) (TimeReportResult, error) {
	return func(ctx context.Context, input TimeReportInput) (TimeReportResult, error) {
		report, err := client.TimeReport(ctx, quarry.TimeReportParams{
			ProjectID: input.ProjectID,
			From:      input.From,
			To:        input.To,
		})
		if err != nil {
			return TimeReportResult{}, err
		}
		result := TimeReportResult{
			ProjectID:    report.ProjectID,
			From:         report.From,
			To:           report.To,
			TotalMinutes: report.TotalMinutes,
			Entries:      make([]TimeReportEntryResult, 0, len(report.Entries)),
		}
		for _, entry := range report.Entries {
			result.Entries = append(result.Entries, TimeReportEntryResult{
				MemberID:   entry.MemberID,
				MemberName: entry.MemberName,
				Minutes:    entry.Minutes,
			})
		}
		return result, nil
	}
}

// WorklogToolSet builds the time tracking tool category.
func WorklogToolSet(client WorklogClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("time_tracking")
	service.AddTool(set, ListWorklogsTool(), sink, ListWorklogsHandler(client))
	service.AddTool(set, CreateWorklogTool(), sink, CreateWorklogHandler(client))
	service.AddTool(set, UpdateWorklogTool(), sink, UpdateWorklogHandler(client))
	service.AddTool(set, DeleteWorklogTool(), sink, DeleteWorklogHandler(client))
	service.AddTool(set, TimeReportTool(), sink, TimeReportHandler(client))
	return set
}
