package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
)

// ResourceClient is the slice of the Quarry API the MCP resources read.
type ResourceClient interface {
	ListProjects(ctx context.Context, params quarry.ListProjectsParams) ([]quarry.Project, error)
	ListTeamspaces(ctx context.Context) ([]quarry.Teamspace, error)
	ListNotifications(ctx context.Context, params quarry.ListNotificationsParams) ([]quarry.Notification, error)
}

// ProjectsResource defines the read-only project listing resource.
func ProjectsResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "projects",
		Title:       "Projects",
		Description: "All projects in the workspace",
		MIMEType:    "application/json",
		URI:         "quarry://projects",
	}
}

// ProjectsResourceHandler serves the quarry://projects resource.
func ProjectsResourceHandler(client ResourceClient) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		projects, err := client.ListProjects(ctx, quarry.ListProjectsParams{})
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		return resourceResult(req, newProjectListResult(projects))
	}
}

// TeamspacesResource defines the read-only teamspace listing resource.
func TeamspacesResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "teamspaces",
		Title:       "Teamspaces",
		Description: "Teamspaces that hold shared documents",
		MIMEType:    "application/json",
		URI:         "quarry://teamspaces",
	}
}

// TeamspacesResourceHandler serves the quarry://teamspaces resource.
func TeamspacesResourceHandler(client ResourceClient) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		teamspaces, err := client.ListTeamspaces(ctx)
		if err != nil {
			return nil, fmt.Errorf("list teamspaces: %w", err)
		}
		return resourceResult(req, newTeamspaceListResult(teamspaces))
	}
}

// NotificationsResource defines the read-only inbox resource.
func NotificationsResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "notifications",
		Title:       "Notifications",
		Description: "The authenticated user's notification inbox",
		MIMEType:    "application/json",
		URI:         "quarry://notifications",
	}
}

// NotificationsResourceHandler serves the quarry://notifications resource.
func NotificationsResourceHandler(client ResourceClient) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		notifications, err := client.ListNotifications(ctx, quarry.ListNotificationsParams{})
		if err != nil {
			return nil, fmt.Errorf("list notifications: %w", err)
		}
		return resourceResult(req, newNotificationListResult(notifications))
	}
}

func resourceResult(req *mcp.ReadResourceRequest, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode resource payload: %w", err)
	}
	uri := ""
	if req != nil && req.Params != nil {
		uri = req.Params.URI
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// Resources builds the read-only MCP resources backed by the Quarry API.
func Resources(client ResourceClient) []service.RegisteredResource {
	return []service.RegisteredResource{
		{Resource: ProjectsResource(), Handler: ProjectsResourceHandler(client)},
		{Resource: TeamspacesResource(), Handler: TeamspacesResourceHandler(client)},
		{Resource: NotificationsResource(), Handler: NotificationsResourceHandler(client)},
	}
}
