package quarry

import "time"

// Project is a Quarry project, the container for issues, components,
// milestones and labels. Identifier is the short key used in issue IDs
// (identifier "QRY" yields issues like "QRY-42").
type Project struct {
	ID          string    `json:"id"`
	Identifier  string    `json:"identifier"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	LeadID      string    `json:"lead_id,omitempty"`
	Private     bool      `json:"private"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Issue is a unit of work inside a project. ID is the human-facing key
// ("QRY-42"); the API accepts it wherever an issue identifier is expected.
type Issue struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	AssigneeID  string    `json:"assignee_id,omitempty"`
	ComponentID string    `json:"component_id,omitempty"`
	MilestoneID string    `json:"milestone_id,omitempty"`
	Labels      []string  `json:"labels,omitempty"`
	Estimate    float64   `json:"estimate,omitempty"`
	DueDate     string    `json:"due_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Component groups issues inside a project by area of work.
type Component struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	LeadID      string    `json:"lead_id,omitempty"`
	IssueCount  int       `json:"issue_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Milestone is a dated delivery target inside a project. Progress is the
// completed fraction of its issues, between 0 and 1.
type Milestone struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TargetDate  string    `json:"target_date,omitempty"`
	Status      string    `json:"status"`
	Progress    float64   `json:"progress"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Label is a free-form tag scoped to a project. Color is a hex string like
// "#ff6b35".
type Label struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a discussion entry on an issue.
type Comment struct {
	ID        string    `json:"id"`
	IssueID   string    `json:"issue_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Teamspace is a shared container for documents.
type Teamspace struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Private     bool      `json:"private"`
	CreatedAt   time.Time `json:"created_at"`
}

// Document is a wiki-style page, optionally inside a teamspace. Content is
// markdown.
type Document struct {
	ID          string    `json:"id"`
	TeamspaceID string    `json:"teamspace_id,omitempty"`
	Title       string    `json:"title"`
	Content     string    `json:"content,omitempty"`
	AuthorID    string    `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CalendarEvent is a scheduled meeting or reminder. Response is the calling
// user's own attendance answer when they are an attendee.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	AllDay      bool      `json:"all_day"`
	OrganizerID string    `json:"organizer_id"`
	AttendeeIDs []string  `json:"attendee_ids,omitempty"`
	Response    string    `json:"response,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Notification is an inbox entry for the calling user. ResourceID points at
// the issue, document or event the notification is about.
type Notification struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Message    string    `json:"message"`
	ResourceID string    `json:"resource_id,omitempty"`
	Read       bool      `json:"read"`
	Archived   bool      `json:"archived"`
	CreatedAt  time.Time `json:"created_at"`
}

// Worklog records time spent on an issue. Date is the day the work
// happened, formatted YYYY-MM-DD.
type Worklog struct {
	ID        string    `json:"id"`
	IssueID   string    `json:"issue_id"`
	MemberID  string    `json:"member_id"`
	Minutes   int       `json:"minutes"`
	Note      string    `json:"note,omitempty"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimeReport aggregates logged time for a project over a date range.
type TimeReport struct {
	ProjectID    string            `json:"project_id"`
	From         string            `json:"from"`
	To           string            `json:"to"`
	TotalMinutes int               `json:"total_minutes"`
	Entries      []TimeReportEntry `json:"entries"`
}

// TimeReportEntry is one member's share of a time report.
type TimeReportEntry struct {
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`
	Minutes    int    `json:"minutes"`
}

// Member is a workspace user.
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// Template is a reusable issue blueprint. Title and Body seed the created
// issue; Priority and Labels are applied as defaults.
type Template struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Title       string    `json:"title"`
	Body        string    `json:"body,omitempty"`
	Priority    string    `json:"priority,omitempty"`
	Labels      []string  `json:"labels,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Attachment is a file uploaded to an issue.
type Attachment struct {
	ID          string    `json:"id"`
	IssueID     string    `json:"issue_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type,omitempty"`
	SizeBytes   int64     `json:"size_bytes"`
	UploaderID  string    `json:"uploader_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
