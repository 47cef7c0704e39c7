package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/caltrack/internal/config"
	"github.com/hpungsan/caltrack/internal/errors"
	"github.com/hpungsan/caltrack/internal/ops"
	"github.com/hpungsan/caltrack/internal/report"
	"github.com/hpungsan/caltrack/internal/session"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	session *session.Session
	cfg     *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(s *session.Session, cfg *config.Config) *Handlers {
	return &Handlers{session: s, cfg: cfg}
}

// Request types for each tool

// SaveRequest represents the arguments for activity_save.
type SaveRequest struct {
	ID       string `json:"id,omitempty"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

// SelectRequest represents the arguments for activity_select.
type SelectRequest struct {
	ID string `json:"id,omitempty"`
}

// EditRequest represents the arguments for activity_edit.
type EditRequest struct {
	ID       string  `json:"id"`
	Category string  `json:"category,omitempty"`
	Name     *string `json:"name,omitempty"`
	Calories *int    `json:"calories,omitempty"`
}

// DeleteRequest represents the arguments for activity_delete.
type DeleteRequest struct {
	ID string `json:"id"`
}

// ListRequest represents the arguments for activity_list.
type ListRequest struct {
	Category string `json:"category,omitempty"`
}

// RestartRequest represents the arguments for activity_restart.
type RestartRequest struct {
	Confirm bool `json:"confirm"`
}

// SummaryRequest represents the arguments for calories_summary.
type SummaryRequest struct {
	Format string `json:"format,omitempty"`
}

// ExportRequest represents the arguments for activity_export.
type ExportRequest struct {
	Path string `json:"path,omitempty"`
}

// ImportRequest represents the arguments for activity_import.
type ImportRequest struct {
	Path string `json:"path"`
	Mode string `json:"mode,omitempty"`
}

// Handler implementations

// HandleSave handles the activity_save tool call.
func (h *Handlers) HandleSave(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SaveRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	cat, err := category(input.Category)
	if err != nil {
		return errorResult(err), nil
	}
	if cat == nil {
		return errorResult(errors.NewInvalidRequest("category is required")), nil
	}

	result, err := ops.Save(ctx, h.session, ops.SaveInput{
		ID:       input.ID,
		Category: *cat,
		Name:     input.Name,
		Calories: input.Calories,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSelect handles the activity_select tool call.
func (h *Handlers) HandleSelect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SelectRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.Select(ctx, h.session, ops.SelectInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleEdit handles the activity_edit tool call.
func (h *Handlers) HandleEdit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[EditRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	cat, err := category(input.Category)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.Edit(ctx, h.session, ops.EditInput{
		ID:       input.ID,
		Category: cat,
		Name:     input.Name,
		Calories: input.Calories,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the activity_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.Delete(ctx, h.session, ops.DeleteInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the activity_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	cat, err := category(input.Category)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(ops.List(h.session, ops.ListInput{Category: cat}))
}

// HandleRestart handles the activity_restart tool call.
func (h *Handlers) HandleRestart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RestartRequest](req)
	if err != nil {
		return errorResult(err), nil
	}
	if !input.Confirm {
		return errorResult(errors.NewInvalidRequest("confirm must be true")), nil
	}

	result, err := ops.Restart(ctx, h.session)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSummary handles the calories_summary tool call.
func (h *Handlers) HandleSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SummaryRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	switch input.Format {
	case "", "json":
		return successResult(ops.Summary(h.session))
	case "markdown":
		return mcp.NewToolResultText(report.Markdown(h.session.Snapshot(), time.Now())), nil
	default:
		return errorResult(errors.NewInvalidRequest("format must be one of: json, markdown")), nil
	}
}

// HandleExport handles the activity_export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.Export(ctx, h.session, h.cfg, ops.ExportInput{Path: input.Path})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleImport handles the activity_import tool call.
func (h *Handlers) HandleImport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ImportRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.Import(ctx, h.session, h.cfg, ops.ImportInput{
		Path: input.Path,
		Mode: ops.ImportMode(input.Mode),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are not exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var cErr *errors.CaltrackError
	if stderrors.As(err, &cErr) {
		errorObj := map[string]any{
			"code":    cErr.Code,
			"message": cErr.Message,
			"status":  cErr.Status,
		}
		if cErr.Code == errors.ErrInternal {
			errorObj["message"] = "an internal error occurred"
		} else if cErr.Details != nil {
			errorObj["details"] = cErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
