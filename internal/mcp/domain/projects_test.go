package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quarrylabs/quarry-mcp/internal/quarry"
)

type fakeProjectClient struct {
	listResp   []quarry.Project
	listErr    error
	listParams quarry.ListProjectsParams

	getResp quarry.Project
	getErr  error
	getID   string

	createResp   quarry.Project
	createErr    error
	createParams quarry.CreateProjectParams

	updateResp   quarry.Project
	updateErr    error
	updateID     string
	updateParams quarry.UpdateProjectParams

	archiveResp quarry.Project
	archiveErr  error
	archiveID   string
}

func (f *fakeProjectClient) ListProjects(ctx context.Context, params quarry.ListProjectsParams) ([]quarry.Project, error) {
	f.listParams = params
	return f.listResp, f.listErr
}

func (f *fakeProjectClient) GetProject(ctx context.Context, id string) (quarry.Project, error) {
	f.getID = id
	return f.getResp, f.getErr
}

func (f *fakeProjectClient) CreateProject(ctx context.Context, params quarry.CreateProjectParams) (quarry.Project, error) {
	f.createParams = params
	return f.createResp, f.createErr
}

func (f *fakeProjectClient) UpdateProject(ctx context.Context, id string, params quarry.UpdateProjectParams) (quarry.Project, error) {
	f.updateID = id
	f.updateParams = params
	return f.updateResp, f.updateErr
}

func (f *fakeProjectClient) ArchiveProject(ctx context.Context, id string) (quarry.Project, error) {
	f.archiveID = id
	return f.archiveResp, f.archiveErr
}

func testProject(id, name string) quarry.Project {
	return quarry.Project{
		ID:         id,
		Identifier: "QRY",
		Name:       name,
		CreatedAt:  time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:  time.Date(2025, time.January, 3, 3, 4, 5, 0, time.UTC),
	}
}

func TestListProjectsHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := &fakeProjectClient{
			listResp: []quarry.Project{testProject("prj-1", "Platform"), testProject("prj-2", "Mobile")},
		}
		handler := ListProjectsHandler(client)
		result, err := handler(context.Background(), ListProjectsInput{IncludeArchived: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !client.listParams.IncludeArchived {
			t.Error("expected IncludeArchived to be forwarded")
		}
		if len(result.Projects) != 2 {
			t.Fatalf("expected 2 projects, got %d", len(result.Projects))
		}
		if result.Projects[0].ID != "prj-1" || result.Projects[1].ID != "prj-2" {
			t.Errorf("unexpected project order: %+v", result.Projects)
		}
		if result.Projects[0].CreatedAt != "2025-01-02T03:04:05Z" {
			t.Errorf("expected RFC 3339 created_at, got %q", result.Projects[0].CreatedAt)
		}
	})

	t.Run("empty listing stays non-nil", func(t *testing.T) {
		handler := ListProjectsHandler(&fakeProjectClient{})
		result, err := handler(context.Background(), ListProjectsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Projects == nil {
			t.Error("expected empty slice, got nil")
		}
	})

	t.Run("client error propagates", func(t *testing.T) {
		client := &fakeProjectClient{listErr: &quarry.ConnectionError{Err: errors.New("refused")}}
		handler := ListProjectsHandler(client)
		if _, err := handler(context.Background(), ListProjectsInput{}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestGetProjectHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := &fakeProjectClient{getResp: testProject("prj-1", "Platform")}
		handler := GetProjectHandler(client)
		result, err := handler(context.Background(), GetProjectInput{ProjectID: "prj-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.getID != "prj-1" {
			t.Errorf("expected lookup of prj-1, got %q", client.getID)
		}
		if result.Name != "Platform" {
			t.Errorf("expected name Platform, got %q", result.Name)
		}
	})

	t.Run("not found propagates untouched", func(t *testing.T) {
		notFound := &quarry.NotFoundError{Kind: "project", ID: "prj-404"}
		client := &fakeProjectClient{getErr: notFound}
		handler := GetProjectHandler(client)
		_, err := handler(context.Background(), GetProjectInput{ProjectID: "prj-404"})
		var got *quarry.NotFoundError
		if !errors.As(err, &got) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}

func TestCreateProjectHandler(t *testing.T) {
	client := &fakeProjectClient{createResp: testProject("prj-9", "Docs")}
	handler := CreateProjectHandler(client)
	result, err := handler(context.Background(), CreateProjectInput{
		Name:        "Docs",
		Identifier:  "DOC",
		Description: "Documentation work",
		LeadID:      "mem-1",
		Private:     true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := quarry.CreateProjectParams{
		Name:        "Docs",
		Identifier:  "DOC",
		Description: "Documentation work",
		LeadID:      "mem-1",
		Private:     true,
	}
	if client.createParams != want {
		t.Errorf("expected params %+v, got %+v", want, client.createParams)
	}
	if result.ID != "prj-9" {
		t.Errorf("expected id prj-9, got %q", result.ID)
	}
}

func TestUpdateProjectHandler(t *testing.T) {
	client := &fakeProjectClient{updateResp: testProject("prj-1", "Renamed")}
	handler := UpdateProjectHandler(client)
	name := "Renamed"
	result, err := handler(context.Background(), UpdateProjectInput{
		ProjectID: "prj-1",
		Name:      &name,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.updateID != "prj-1" {
		t.Errorf("expected update of prj-1, got %q", client.updateID)
	}
	if client.updateParams.Name == nil || *client.updateParams.Name != "Renamed" {
		t.Errorf("expected name pointer Renamed, got %v", client.updateParams.Name)
	}
	if client.updateParams.Description != nil {
		t.Error("expected omitted description to stay nil")
	}
	if result.Name != "Renamed" {
		t.Errorf("expected name Renamed, got %q", result.Name)
	}
}

func TestArchiveProjectHandler(t *testing.T) {
	archived := testProject("prj-1", "Platform")
	archived.Archived = true
	client := &fakeProjectClient{archiveResp: archived}
	handler := ArchiveProjectHandler(client)
	result, err := handler(context.Background(), ArchiveProjectInput{ProjectID: "prj-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.archiveID != "prj-1" {
		t.Errorf("expected archive of prj-1, got %q", client.archiveID)
	}
	if !result.Archived {
		t.Error("expected archived result")
	}
}
