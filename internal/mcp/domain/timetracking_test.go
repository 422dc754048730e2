package domain

import (
	"context"
	"testing"

	"github.com/quarrylabs/quarry-mcp/internal/quarry"
)

type fakeWorklogClient struct {
	listResp   []quarry.Worklog
	listErr    error
	listParams quarry.ListWorklogsParams

	createResp   quarry.Worklog
	createErr    error
	createParams quarry.CreateWorklogParams

	updateResp   quarry.Worklog
	updateErr    error
	updateID     string
	updateParams quarry.UpdateWorklogParams

	deleteErr error
	deleteID  string

	reportResp   quarry.TimeReport
	reportErr    error
	reportParams quarry.TimeReportParams
}

func (f *fakeWorklogClient) ListWorklogs(ctx context.Context, params quarry.ListWorklogsParams) ([]quarry.Worklog, error) {
	f.listParams = params
	return f.listResp, f.listErr
}

func (f *fakeWorklogClient) CreateWorklog(ctx context.Context, params quarry.CreateWorklogParams) (quarry.Worklog, error) {
	f.createParams = params
	return f.createResp, f.createErr
}

func (f *fakeWorklogClient) UpdateWorklog(ctx context.Context, id string, params quarry.UpdateWorklogParams) (quarry.Worklog, error) {
	f.updateID = id
	f.updateParams = params
	return f.updateResp, f.updateErr
}

func (f *fakeWorklogClient) DeleteWorklog(ctx context.Context, id string) error {
	f.deleteID = id
	return f.deleteErr
}

func (f *fakeWorklogClient) TimeReport(ctx context.Context, params quarry.TimeReportParams) (quarry.TimeReport, error) {
	f.reportParams = params
	return f.reportResp, f.reportErr
}

func TestListWorklogsHandler(t *testing.T) {
	client := &fakeWorklogClient{
		listResp: []quarry.Worklog{{ID: "wl-1", IssueID: "QRY-1", MemberID: "mem-1", Minutes: 90, Date: "2025-06-02"}},
	}
	handler := ListWorklogsHandler(client)
	result, err := handler(context.Background(), ListWorklogsInput{
		IssueID: "QRY-1",
		From:    "2025-06-01",
		To:      "2025-06-07",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := quarry.ListWorklogsParams{IssueID: "QRY-1", From: "2025-06-01", To: "2025-06-07"}
	if client.listParams != want {
		t.Errorf("expected params %+v, got %+v", want, client.listParams)
	}
	if len(result.Worklogs) != 1 || result.Worklogs[0].Minutes != 90 {
		t.Errorf("unexpected listing: %+v", result.Worklogs)
	}
}

func TestCreateWorklogHandler(t *testing.T) {
	client := &fakeWorklogClient{
		createResp: quarry.Worklog{ID: "wl-2", IssueID: "QRY-1", Minutes: 45, Date: "2025-06-03"},
	}
	handler := CreateWorklogHandler(client)
	result, err := handler(context.Background(), CreateWorklogInput{
		IssueID: "QRY-1",
		Minutes: 45,
		Note:    "code review",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := quarry.CreateWorklogParams{IssueID: "QRY-1", Minutes: 45, Note: "code review"}
	if client.createParams != want {
		t.Errorf("expected params %+v, got %+v", want, client.createParams)
	}
	if result.ID != "wl-2" {
		t.Errorf("expected id wl-2, got %q", result.ID)
	}
}

func TestUpdateWorklogHandler(t *testing.T) {
	client := &fakeWorklogClient{updateResp: quarry.Worklog{ID: "wl-1", Minutes: 60}}
	handler := UpdateWorklogHandler(client)
	minutes := 60
	result, err := handler(context.Background(), UpdateWorklogInput{
		WorklogID: "wl-1",
		Minutes:   &minutes,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.updateID != "wl-1" {
		t.Errorf("expected update of wl-1, got %q", client.updateID)
	}
	if client.updateParams.Minutes == nil || *client.updateParams.Minutes != 60 {
		t.Errorf("expected minutes pointer 60, got %v", client.updateParams.Minutes)
	}
	if client.updateParams.Note != nil {
		t.Error("expected omitted note to stay nil")
	}
	if result.Minutes != 60 {
		t.Errorf("expected 60 minutes, got %d", result.Minutes)
	}
}

func TestDeleteWorklogHandler(t *testing.T) {
	client := &fakeWorklogClient{}
	handler := DeleteWorklogHandler(client)
	result, err := handler(context.Background(), DeleteWorklogInput{WorklogID: "wl-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.deleteID != "wl-1" {
		t.Errorf("expected delete of wl-1, got %q", client.deleteID)
	}
	if !result.Deleted {
		t.Error("expected deletion ack")
	}
}

func TestTimeReportHandler(t *testing.T) {
	t.Run("maps the aggregate", func(t *testing.T) {
		client := &fakeWorklogClient{
			reportResp: quarry.TimeReport{
				ProjectID:    "prj-1",
				From:         "2025-06-01",
				To:           "2025-06-30",
				TotalMinutes: 480,
				Entries: []quarry.TimeReportEntry{
					{MemberID: "mem-1", MemberName: "Ada", Minutes: 300},
					{MemberID: "mem-2", MemberName: "Lin", Minutes: 180},
				},
			},
		}
		handler := TimeReportHandler(client)
		result, err := handler(context.Background(), TimeReportInput{
			ProjectID: "prj-1",
			From:      "2025-06-01",
			To:        "2025-06-30",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := quarry.TimeReportParams{ProjectID: "prj-1", From: "2025-06-01", To: "2025-06-30"}
		if client.reportParams != want {
			t.Errorf("expected params %+v, got %+v", want, client.reportParams)
		}
		if result.TotalMinutes != 480 {
			t.Errorf("expected 480 total minutes, got %d", result.TotalMinutes)
		}
		if len(result.Entries) != 2 || result.Entries[0].MemberName != "Ada" {
			t.Errorf("unexpected entries: %+v", result.Entries)
		}
	})

	t.Run("project not found propagates", func(t *testing.T) {
		client := &fakeWorklogClient{reportErr: &quarry.NotFoundError{Kind: "project", ID: "prj-404"}}
		handler := TimeReportHandler(client)
		if _, err := handler(context.Background(), TimeReportInput{ProjectID: "prj-404"}); err == nil {
			t.Fatal("expected error")
		}
	})
}
