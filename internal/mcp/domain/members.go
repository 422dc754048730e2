package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// MemberClient is the slice of the Quarry API the member tools use.
type MemberClient interface {
	ListMembers(ctx context.Context, params quarry.ListMembersParams) ([]quarry.Member, error)
	GetMember(ctx context.Context, id string) (quarry.Member, error)
}

// MemberResult is the tool-facing view of a workspace member.
type MemberResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// MemberListResult wraps a member listing.
type MemberListResult struct {
	Members []MemberResult `json:"members"`
}

func newMemberResult(member quarry.Member) MemberResult {
	return MemberResult{
		ID:     member.ID,
		Name:   member.Name,
		Email:  member.Email,
		Role:   member.Role,
		Active: member.Active,
	}
}

// ListMembersInput holds the arguments for the list_members tool.
type ListMembersInput struct {
	ProjectID string `json:"project_id,omitempty" jsonschema:"restrict the listing to one project's membership"`
}

// ListMembersTool defines the MCP tool for listing members.
func ListMembersTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_members",
		Description: "Lists workspace members optionally narrowed to one project",
	}
}

// ListMembersHandler returns workspace members.
func ListMembersHandler(client MemberClient) func(context.Context, ListMembersInput) (MemberListResult, error) {
	return func(ctx context.Context, input ListMembersInput) (MemberListResult, error) {
		members, err := client.ListMembers(ctx, quarry.ListMembersParams{
			ProjectID: input.ProjectID,
		})
		if err != nil {
			return MemberListResult{}, err
		}
		result := MemberListResult{Members: make([]MemberResult, 0, len(members))}
		for _, member := range members {
			result.Members = append(result.Members, newMemberResult(member))
		}
		return result, nil
	}
}

// GetMemberInput holds the arguments for the get_member tool.
type GetMemberInput struct {
	MemberID string `json:"member_id" jsonschema:"the member identifier"`
}

// GetMemberTool defines the MCP tool for fetching one member.
func GetMemberTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_member",
		Description: "Gets a single workspace member by their identifier",
	}
}

// GetMemberHandler fetches one member.
func GetMemberHandler(client MemberClient) func(context.Context, GetMemberInput) (MemberResult, error) {
	return func(ctx context.Context, input GetMemberInput) (MemberResult, error) {
		member, err := client.GetMember(ctx, input.MemberID)
		if err != nil {
			return MemberResult{}, err
		}
		return newMemberResult(member), nil
	}
}

// MemberToolSet builds the members tool category.
func MemberToolSet(client MemberClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("members")
	service.AddTool(set, ListMembersTool(), sink, ListMembersHandler(client))
	service.AddTool(set, GetMemberTool(), sink, GetMemberHandler(client))
	return set
}
