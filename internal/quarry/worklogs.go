package quarry

import (
	"context"
	"net/url"
)

// ListWorklogsParams filters ListWorklogs. From and To are inclusive dates
// formatted YYYY-MM-DD.
type ListWorklogsParams struct {
	IssueID  string
	MemberID string
	From     string
	To       string
}

// ListWorklogs returns worklogs matching the given filters.
func (c *Client) ListWorklogs(ctx context.Context, params ListWorklogsParams) ([]Worklog, error) {
	query := url.Values{}
	if params.IssueID != "" {
		query.Set("issue", params.IssueID)
	}
	if params.MemberID != "" {
		query.Set("member", params.MemberID)
	}
	if params.From != "" {
		query.Set("from", params.From)
	}
	if params.To != "" {
		query.Set("to", params.To)
	}

	var out struct {
		Worklogs []Worklog `json:"worklogs"`
	}
	if err := c.get(ctx, "/v1/worklogs", query, &out); err != nil {
		return nil, err
	}
	return out.Worklogs, nil
}

// CreateWorklogParams holds the fields for a new worklog entry.
type CreateWorklogParams struct {
	IssueID string `json:"issue_id"`
	Minutes int    `json:"minutes"`
	Note    string `json:"note,omitempty"`
	Date    string `json:"date,omitempty"`
}

// CreateWorklog records time spent on an issue. Date defaults to today on
// the remote when empty.
func (c *Client) CreateWorklog(ctx context.Context, params CreateWorklogParams) (Worklog, error) {
	var out Worklog
	if err := c.post(ctx, "/v1/worklogs", params, &out); err != nil {
		return Worklog{}, err
	}
	return out, nil
}

// UpdateWorklogParams holds a partial worklog update.
type UpdateWorklogParams struct {
	Minutes *int    `json:"minutes,omitempty"`
	Note    *string `json:"note,omitempty"`
	Date    *string `json:"date,omitempty"`
}

// UpdateWorklog applies a partial update to a worklog entry.
func (c *Client) UpdateWorklog(ctx context.Context, id string, params UpdateWorklogParams) (Worklog, error) {
	var out Worklog
	if err := c.patch(ctx, "/v1/worklogs/"+url.PathEscape(id), params, &out); err != nil {
		return Worklog{}, err
	}
	return out, nil
}

// DeleteWorklog deletes a worklog entry.
func (c *Client) DeleteWorklog(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/worklogs/"+url.PathEscape(id))
}

// TimeReportParams bounds a project time report. From and To are inclusive
// dates formatted YYYY-MM-DD.
type TimeReportParams struct {
	ProjectID string
	From      string
	To        string
}

// TimeReport aggregates logged time per member for a project over a date
// range.
func (c *Client) TimeReport(ctx context.Context, params TimeReportParams) (TimeReport, error) {
	query := url.Values{}
	query.Set("from", params.From)
	query.Set("to", params.To)

	var out TimeReport
	if err := c.get(ctx, "/v1/projects/"+url.PathEscape(params.ProjectID)+"/time-report", query, &out); err != nil {
		return TimeReport{}, err
	}
	return out, nil
}
