package mcp

import "github.com/mark3labs/mcp-go/mcp"

var saveToolDef = mcp.NewTool("activity_save",
	mcp.WithDescription("Submit the activity form. Appends a new food or exercise entry, or, while an activity is selected with activity_select, replaces the selected one in place. The selection is cleared afterwards."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Enum("food", "exercise"),
		mcp.Description("food adds to calories consumed, exercise to calories burned"),
	),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("What was eaten or done, e.g. \"Oatmeal\" or \"Cycling\""),
	),
	mcp.WithNumber("calories",
		mcp.Required(),
		mcp.Min(1),
		mcp.Description("Calorie count, a positive integer"),
	),
	mcp.WithString("id",
		mcp.Description("Optional id for a new entry; generated when omitted"),
	),
)

var selectToolDef = mcp.NewTool("activity_select",
	mcp.WithDescription("Select an activity for editing; the next activity_save replaces it. Omit id to cancel editing."),
	mcp.WithString("id",
		mcp.Description("Activity id; empty clears the selection"),
	),
)

var editToolDef = mcp.NewTool("activity_edit",
	mcp.WithDescription("Change fields of an existing activity in one step. Omitted fields keep their current value; the entry keeps its position in the list."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Activity id"),
	),
	mcp.WithString("category",
		mcp.Enum("food", "exercise"),
		mcp.Description("New category"),
	),
	mcp.WithString("name",
		mcp.Description("New name"),
	),
	mcp.WithNumber("calories",
		mcp.Min(1),
		mcp.Description("New calorie count"),
	),
)

var deleteToolDef = mcp.NewTool("activity_delete",
	mcp.WithDescription("Remove an activity from the list. Deleting an unknown id is not an error."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Activity id"),
	),
	mcp.WithDestructiveHintAnnotation(true),
)

var listToolDef = mcp.NewTool("activity_list",
	mcp.WithDescription("List activities in the order they were added, with the calorie balance of the whole list."),
	mcp.WithString("category",
		mcp.Enum("food", "exercise"),
		mcp.Description("Only return activities of this category"),
	),
	mcp.WithReadOnlyHintAnnotation(true),
)

var restartToolDef = mcp.NewTool("activity_restart",
	mcp.WithDescription("Discard every activity and start over. Cannot be undone."),
	mcp.WithBoolean("confirm",
		mcp.Required(),
		mcp.Description("Must be true"),
	),
	mcp.WithDestructiveHintAnnotation(true),
)

var summaryToolDef = mcp.NewTool("calories_summary",
	mcp.WithDescription("Calories consumed, burned and the net balance (consumed minus burned)."),
	mcp.WithString("format",
		mcp.Enum("json", "markdown"),
		mcp.Description("json (default) or a markdown report"),
	),
	mcp.WithReadOnlyHintAnnotation(true),
)

var exportToolDef = mcp.NewTool("activity_export",
	mcp.WithDescription("Write all activities to a JSONL file. Files must be directly inside ~/.caltrack/exports or a configured allowed path."),
	mcp.WithString("path",
		mcp.Description("Destination .jsonl file; defaults to ~/.caltrack/exports/activities-<timestamp>.jsonl"),
	),
)

var importToolDef = mcp.NewTool("activity_import",
	mcp.WithDescription("Load activities from a JSONL export. Invalid records and duplicate ids are skipped and reported."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Source .jsonl file"),
	),
	mcp.WithString("mode",
		mcp.Enum("append", "replace"),
		mcp.Description("append (default) keeps existing activities; replace starts from an empty list"),
	),
)
