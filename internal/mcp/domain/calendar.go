package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// CalendarClient is the slice of the Quarry API the calendar tools use.
type CalendarClient interface {
	ListEvents(ctx context.Context, params quarry.ListEventsParams) ([]quarry.CalendarEvent, error)
	GetEvent(ctx context.Context, id string) (quarry.CalendarEvent, error)
	CreateEvent(ctx context.Context, params quarry.CreateEventParams) (quarry.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id string, params quarry.UpdateEventParams) (quarry.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	RespondToEvent(ctx context.Context, id, response string) (quarry.CalendarEvent, error)
}

// EventResult is the tool-facing view of a calendar event. Response is the
// caller's own attendance answer when they are an attendee.
type EventResult struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartsAt    string   `json:"starts_at,omitempty"`
	EndsAt      string   `json:"ends_at,omitempty"`
	AllDay      bool     `json:"all_day"`
	OrganizerID string   `json:"organizer_id"`
	AttendeeIDs []string `json:"attendee_ids,omitempty"`
	Response    string   `json:"response,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// EventListResult wraps a calendar event listing.
type EventListResult struct {
	Events []EventResult `json:"events"`
}

func newEventResult(event quarry.CalendarEvent) EventResult {
	return EventResult{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartsAt:    formatTimestamp(event.StartsAt),
		EndsAt:      formatTimestamp(event.EndsAt),
		AllDay:      event.AllDay,
		OrganizerID: event.OrganizerID,
		AttendeeIDs: event.AttendeeIDs,
		Response:    event.Response,
		CreatedAt:   formatTimestamp(event.CreatedAt),
		UpdatedAt:   formatTimestamp(event.UpdatedAt),
	}
}

// ListCalendarEventsInput holds the arguments for the list_calendar_events
// tool. The range is inclusive on both ends.
type ListCalendarEventsInput struct {
	From string `json:"from" jsonschema:"start of the range formatted YYYY-MM-DD"`
	To   string `json:"to" jsonschema:"end of the range formatted YYYY-MM-DD"`
}

// ListCalendarEventsTool defines the MCP tool for listing calendar events.
func ListCalendarEventsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_calendar_events",
		Description: "Lists the caller's calendar events in a date range",
	}
}

// ListCalendarEventsHandler returns the caller's events in a date range.
func ListCalendarEventsHandler(client CalendarClient) func(context.Context, ListCalendarEventsInput) (EventListResult, error) {
	return func(ctx context.Context, input ListCalendarEventsInput) (EventListResult, error) {
		events, err := client.ListEvents(ctx, quarry.ListEventsParams{
			From: input.From,
			To:   input.To,
		})
		if err != nil {
			return EventListResult{}, err
		}
		result := EventListResult{Events: make([]EventResult, 0, len(events))}
		for _, event := range events {
			result.Events = append(result.Events, newEventResult(event))
		}
		return result, nil
	}
}

// GetCalendarEventInput holds the arguments for the get_calendar_event tool.
type GetCalendarEventInput struct {
	EventID string `json:"event_id" jsonschema:"the event identifier"`
}

// GetCalendarEventTool defines the MCP tool for fetching one event.
func GetCalendarEventTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_calendar_event",
		Description: "Gets a single calendar event by its identifier",
	}
}

// GetCalendarEventHandler fetches one calendar event.
func GetCalendarEventHandler(client CalendarClient) func(context.Context, GetCalendarEventInput) (EventResult, error) {
	return func(ctx context.Context, input GetCalendarEventInput) (EventResult, error) {
		event, err := client.GetEvent(ctx, input.EventID)
		if err != nil {
			return EventResult{}, err
		}
		return newEventResult(event), nil
	}
}

// CreateCalendarEventInput holds the arguments for the create_calendar_event
// tool. Timestamps are RFC 3339; all-day events use midnight boundaries.
type CreateCalendarEventInput struct {
	Title       string   `json:"title" jsonschema:"the event title"`
	Description string   `json:"description,omitempty" jsonschema:"optional event description"`
	Location    string   `json:"location,omitempty" jsonschema:"free-form location or meeting link"`
	StartsAt    string   `json:"starts_at" jsonschema:"RFC 3339 start time"`
	EndsAt      string   `json:"ends_at" jsonschema:"RFC 3339 end time"`
	AllDay      bool     `json:"all_day,omitempty" jsonschema:"mark the event as all-day"`
	AttendeeIDs []string `json:"attendee_ids,omitempty" jsonschema:"member ids to invite"`
}

// CreateCalendarEventTool defines the MCP tool for scheduling an event.
func CreateCalendarEventTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_calendar_event",
		Description: "Schedules a calendar event and invites the given attendees",
	}
}

// CreateCalendarEventHandler schedules a calendar event.
func CreateCalendarEventHandler(client CalendarClient) func(context.Context, CreateCalendarEventInput) (EventResult, error) {
	return func(ctx context.Context, input CreateCalendarEventInput) (EventResult, error) {
		event, err := client.CreateEvent(ctx, quarry.CreateEventParams{
			Title:       input.Title,
			Description: input.Description,
			Location:    input.Location,
			StartsAt:    input.StartsAt,
			EndsAt:      input.EndsAt,
			AllDay:      input.AllDay,
			AttendeeIDs: input.AttendeeIDs,
		})
		if err != nil {
			return EventResult{}, err
		}
		return newEventResult(event), nil
	}
}

// UpdateCalendarEventInput holds the arguments for the update_calendar_event
// tool. Omitted fields keep their current value.
type UpdateCalendarEventInput struct {
	EventID     string    `json:"event_id" jsonschema:"the event identifier"`
	Title       *string   `json:"title,omitempty" jsonschema:"new event title"`
	Description *string   `json:"description,omitempty" jsonschema:"new event description"`
	Location    *string   `json:"location,omitempty" jsonschema:"new location or meeting link"`
	StartsAt    *string   `json:"starts_at,omitempty" jsonschema:"new RFC 3339 start time"`
	EndsAt      *string   `json:"ends_at,omitempty" jsonschema:"new RFC 3339 end time"`
	AttendeeIDs *[]string `json:"attendee_ids,omitempty" jsonschema:"full replacement set of attendee member ids"`
}

// UpdateCalendarEventTool defines the MCP tool for updating an event.
func UpdateCalendarEventTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_calendar_event",
		Description: "Updates a calendar event; omitted fields keep their current value",
	}
}

// UpdateCalendarEventHandler applies a partial update to an event.
func UpdateCalendarEventHandler(client CalendarClient) func(context.Context, UpdateCalendarEventInput) (EventResult, error) {
	return func(ctx context.Context, input UpdateCalendarEventInput) (EventResult, error) {
		event, err := client.UpdateEvent(ctx, input.EventID, quarry.UpdateEventParams{
			Title:       input.Title,
			Description: input.Description,
			Location:    input.Location,
			StartsAt:    input.StartsAt,
			EndsAt:      input.EndsAt,
			AttendeeIDs: input.AttendeeIDs,
		})
		if err != nil {
			return EventResult{}, err
		}
		return newEventResult(event), nil
	}
}

// DeleteCalendarEventInput holds the arguments for the delete_calendar_event
// tool.
type DeleteCalendarEventInput struct {
	EventID string `json:"event_id" jsonschema:"the event identifier"`
}

// DeleteCalendarEventTool defines the MCP tool for deleting an event.
func DeleteCalendarEventTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_calendar_event",
		Description: "Deletes a calendar event for every attendee",
	}
}

// DeleteCalendarEventHandler deletes a calendar event.
func DeleteCalendarEventHandler(client CalendarClient) func(context.Context, DeleteCalendarEventInput) (DeletionResult, error) {
	return func(ctx context.Context, input DeleteCalendarEventInput) (DeletionResult, error) {
		if err := client.DeleteEvent(ctx, input.EventID); err != nil {
			return DeletionResult{}, err
		}
		return deleted(input.EventID), nil
	}
}

// RespondToCalendarEventInput holds the arguments for the
// respond_to_calendar_event tool.
type RespondToCalendarEventInput struct {
	EventID  string `json:"event_id" jsonschema:"the event identifier"`
	Response string `json:"response" jsonschema:"attendance answer (accepted/declined/tentative)"`
}

// RespondToCalendarEventTool defines the MCP tool for answering an invite.
func RespondToCalendarEventTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "respond_to_calendar_event",
		Description: "Records the caller's attendance answer for an event invite",
	}
}

// RespondToCalendarEventHandler records the caller's attendance answer.
func RespondToCalendarEventHandler(client CalendarClient) func(context.Context, RespondToCalendarEventInput) (EventResult, error) {
	return func(ctx context.Context, input RespondToCalendarEventInput) (EventResult, error) {
		event, err := client.RespondToEvent(ctx, input.EventID, normalizeEnum(input.Response))
		if err != nil {
			return EventResult{}, err
		}
		return newEventResult(event), nil
	}
}

// CalendarToolSet builds the calendar tool category.
func CalendarToolSet(client CalendarClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("calendar")
	service.AddTool(set, ListCalendarEventsTool(), sink, ListCalendarEventsHandler(client))
	service.AddTool(set, GetCalendarEventTool(), sink, GetCalendarEventHandler(client))
	service.AddTool(set, CreateCalendarEventTool(), sink, CreateCalendarEventHandler(client))
	service.AddTool(set, UpdateCalendarEventTool(), sink, UpdateCalendarEventHandler(client))
	service.AddTool(set, DeleteCalendarEventTool(), sink, DeleteCalendarEventHandler(client))
	service.AddTool(set, RespondToCalendarEventTool(), sink, RespondToCalendarEventHandler(client))
	return set
}
