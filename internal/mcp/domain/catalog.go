package domain

import (
	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// Client is the full Quarry API surface the catalog binds tools to.
// *quarry.Client satisfies it.
type Client interface {
	ProjectClient
	IssueClient
	ComponentClient
	MilestoneClient
	LabelClient
	CommentClient
	DocumentClient
	CalendarClient
	NotificationClient
	WorklogClient
	MemberClient
	TemplateClient
	AttachmentClient
}

// Catalog assembles every tool category into one registry. The returned
// resources expose read-only listings alongside the tools.
func Catalog(client Client, sink telemetry.Sink) (*service.Registry, []service.RegisteredResource, error) {
	registry, err := service.NewRegistry(
		ProjectToolSet(client, sink),
		IssueToolSet(client, sink),
		ComponentToolSet(client, sink),
		MilestoneToolSet(client, sink),
		LabelToolSet(client, sink),
		CommentToolSet(client, sink),
		DocumentToolSet(client, sink),
		CalendarToolSet(client, sink),
		NotificationToolSet(client, sink),
		WorklogToolSet(client, sink),
		MemberToolSet(client, sink),
		TemplateToolSet(client, sink),
		AttachmentToolSet(client, sink),
	)
	if err != nil {
		return nil, nil, err
	}
	return registry, Resources(client), nil
}
