package domain

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/quarry"
)

type fakeResourceClient struct {
	projectsResp      []quarry.Project
	projectsErr       error
	teamspacesResp    []quarry.Teamspace
	teamspacesErr     error
	notificationsResp []quarry.Notification
	notificationsErr  error
}

func (f *fakeResourceClient) ListProjects(ctx context.Context, params quarry.ListProjectsParams) ([]quarry.Project, error) {
	return f.projectsResp, f.projectsErr
}

func (f *fakeResourceClient) ListTeamspaces(ctx context.Context) ([]quarry.Teamspace, error) {
	return f.teamspacesResp, f.teamspacesErr
}

func (f *fakeResourceClient) ListNotifications(ctx context.Context, params quarry.ListNotificationsParams) ([]quarry.Notification, error) {
	return f.notificationsResp, f.notificationsErr
}

func readResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestProjectsResourceHandler(t *testing.T) {
	t.Run("serves indented JSON", func(t *testing.T) {
		client := &fakeResourceClient{
			projectsResp: []quarry.Project{{ID: "prj-1", Identifier: "QRY", Name: "Platform"}},
		}
		handler := ProjectsResourceHandler(client)
		result, err := handler(context.Background(), readResourceRequest("quarry://projects"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Contents) != 1 {
			t.Fatalf("expected 1 content entry, got %d", len(result.Contents))
		}
		content := result.Contents[0]
		if content.URI != "quarry://projects" {
			t.Errorf("expected request URI echoed, got %q", content.URI)
		}
		if content.MIMEType != "application/json" {
			t.Errorf("expected application/json, got %q", content.MIMEType)
		}
		var payload ProjectListResult
		if err := json.Unmarshal([]byte(content.Text), &payload); err != nil {
			t.Fatalf("payload is not valid JSON: %v", err)
		}
		if len(payload.Projects) != 1 || payload.Projects[0].ID != "prj-1" {
			t.Errorf("unexpected payload: %+v", payload)
		}
		if !strings.Contains(content.Text, "\n  ") {
			t.Error("expected indented payload")
		}
	})

	t.Run("client error surfaces", func(t *testing.T) {
		client := &fakeResourceClient{projectsErr: &quarry.APIError{Status: 500}}
		handler := ProjectsResourceHandler(client)
		if _, err := handler(context.Background(), readResourceRequest("quarry://projects")); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestTeamspacesResourceHandler(t *testing.T) {
	client := &fakeResourceClient{
		teamspacesResp: []quarry.Teamspace{{ID: "ts-1", Name: "Engineering"}},
	}
	handler := TeamspacesResourceHandler(client)
	result, err := handler(context.Background(), readResourceRequest("quarry://teamspaces"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload TeamspaceListResult
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if len(payload.Teamspaces) != 1 || payload.Teamspaces[0].Name != "Engineering" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestNotificationsResourceHandler(t *testing.T) {
	client := &fakeResourceClient{
		notificationsResp: []quarry.Notification{{ID: "ntf-1", Kind: "mention", Message: "ping"}},
	}
	handler := NotificationsResourceHandler(client)
	result, err := handler(context.Background(), readResourceRequest("quarry://notifications"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload NotificationListResult
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if len(payload.Notifications) != 1 || payload.Notifications[0].Kind != "mention" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestResources(t *testing.T) {
	resources := Resources(&fakeResourceClient{})
	if len(resources) != 3 {
		t.Fatalf("expected 3 resources, got %d", len(resources))
	}
	wantURIs := []string{"quarry://projects", "quarry://teamspaces", "quarry://notifications"}
	for i, want := range wantURIs {
		if resources[i].Resource.URI != want {
			t.Errorf("resource %d: expected URI %q, got %q", i, want, resources[i].Resource.URI)
		}
		if resources[i].Handler == nil {
			t.Errorf("resource %d: expected handler", i)
		}
	}
}
