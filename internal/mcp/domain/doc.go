// Package domain translates MCP tool calls into Quarry API requests.
//
// Each tool category pairs three pieces:
// - Tool constructors describing the MCP tool surface,
// - input and result structs that define the wire schemas,
// - handlers that call a narrow slice of the Quarry client.
//
// Handlers return Quarry errors untouched; the service layer decides how
// they surface to MCP clients. Catalog assembles every category into the
// registry the server runs.
package domain
