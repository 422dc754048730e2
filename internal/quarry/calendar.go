package quarry

import (
	"context"
	"net/url"
)

// ListEventsParams bounds a calendar listing. From and To are inclusive
// dates formatted YYYY-MM-DD.
type ListEventsParams struct {
	From string
	To   string
}

// ListEvents returns the caller's calendar events in the given range.
func (c *Client) ListEvents(ctx context.Context, params ListEventsParams) ([]CalendarEvent, error) {
	query := url.Values{}
	query.Set("from", params.From)
	query.Set("to", params.To)

	var out struct {
		Events []CalendarEvent `json:"events"`
	}
	if err := c.get(ctx, "/v1/calendar/events", query, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// GetEvent fetches one calendar event by ID.
func (c *Client) GetEvent(ctx context.Context, id string) (CalendarEvent, error) {
	var out CalendarEvent
	if err := c.get(ctx, "/v1/calendar/events/"+url.PathEscape(id), nil, &out); err != nil {
		return CalendarEvent{}, err
	}
	return out, nil
}

// CreateEventParams holds the fields for a new calendar event. StartsAt and
// EndsAt are RFC 3339 timestamps.
type CreateEventParams struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartsAt    string   `json:"starts_at"`
	EndsAt      string   `json:"ends_at"`
	AllDay      bool     `json:"all_day,omitempty"`
	AttendeeIDs []string `json:"attendee_ids,omitempty"`
}

// CreateEvent schedules a calendar event.
func (c *Client) CreateEvent(ctx context.Context, params CreateEventParams) (CalendarEvent, error) {
	var out CalendarEvent
	if err := c.post(ctx, "/v1/calendar/events", params, &out); err != nil {
		return CalendarEvent{}, err
	}
	return out, nil
}

// UpdateEventParams holds a partial event update.
type UpdateEventParams struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	StartsAt    *string   `json:"starts_at,omitempty"`
	EndsAt      *string   `json:"ends_at,omitempty"`
	AttendeeIDs *[]string `json:"attendee_ids,omitempty"`
}

// UpdateEvent applies a partial update to a calendar event.
func (c *Client) UpdateEvent(ctx context.Context, id string, params UpdateEventParams) (CalendarEvent, error) {
	var out CalendarEvent
	if err := c.patch(ctx, "/v1/calendar/events/"+url.PathEscape(id), params, &out); err != nil {
		return CalendarEvent{}, err
	}
	return out, nil
}

// DeleteEvent cancels and removes a calendar event.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/calendar/events/"+url.PathEscape(id))
}

// RespondToEvent records the caller's attendance answer for an event.
// Response is one of "accepted", "declined" or "tentative".
func (c *Client) RespondToEvent(ctx context.Context, id, response string) (CalendarEvent, error) {
	payload := struct {
		Response string `json:"response"`
	}{Response: response}
	var out CalendarEvent
	if err := c.post(ctx, "/v1/calendar/events/"+url.PathEscape(id)+"/respond", payload, &out); err != nil {
		return CalendarEvent{}, err
	}
	return out, nil
}
