package ops

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/config"
	"github.com/hpungsan/caltrack/internal/errors"
	"github.com/hpungsan/caltrack/internal/session"
	"github.com/hpungsan/caltrack/internal/tracker"
)

// ImportMode controls what happens to the existing list.
type ImportMode string

const (
	ImportModeAppend  ImportMode = "append"  // keep existing activities, skip ids already present
	ImportModeReplace ImportMode = "replace" // restart, then load the file
)

// ImportInput contains parameters for the Import operation.
type ImportInput struct {
	Path string     // required
	Mode ImportMode // default: append
}

// ImportOutput contains the result of the Import operation.
type ImportOutput struct {
	Imported int           `json:"imported"`
	Skipped  int           `json:"skipped"`
	Errors   []ImportError `json:"errors"`
}

// ImportError describes a line that was not imported.
type ImportError struct {
	Line    int    `json:"line"`
	ID      string `json:"id,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// importLine is a parsed line of an export file: either the header or an activity.
type importLine struct {
	CaltrackExport bool `json:"_caltrack_export"`
	activity.Activity
}

// Import loads activities from a JSONL export file. Records go through the
// same form rules as Save; invalid records and duplicate ids are skipped and
// reported.
func Import(ctx context.Context, s *session.Session, cfg *config.Config, input ImportInput) (*ImportOutput, error) {
	if input.Mode == "" {
		input.Mode = ImportModeAppend
	}
	if input.Mode != ImportModeAppend && input.Mode != ImportModeReplace {
		return nil, errors.NewInvalidRequest("mode must be one of: append, replace")
	}

	if err := ValidatePath(input.Path, PathCheckRead, cfg); err != nil {
		return nil, err
	}

	file, err := openFileNoFollowRead(input.Path)
	if err != nil {
		if _, ok := err.(*errors.CaltrackError); ok {
			return nil, err
		}
		return nil, errors.NewInternal(fmt.Errorf("failed to open import file: %w", err))
	}
	defer file.Close()

	records, out, err := parseImport(ctx, file)
	if err != nil {
		return nil, err
	}

	_, err = s.Batch(ctx, func(state tracker.State) ([]tracker.Action, error) {
		seen := make(map[string]bool, len(state.Activities)+len(records))
		actions := make([]tracker.Action, 0, len(records)+2)

		if input.Mode == ImportModeReplace {
			actions = append(actions, tracker.RestartApp{})
		} else {
			for _, a := range state.Activities {
				seen[a.ID] = true
			}
			if state.ActiveID != "" {
				// A pending selection would turn the first save into an edit
				actions = append(actions, tracker.SetActiveID{})
			}
		}

		for _, r := range records {
			if seen[r.activity.ID] {
				out.Skipped++
				out.Errors = append(out.Errors, ImportError{
					Line:    r.line,
					ID:      r.activity.ID,
					Code:    "DUPLICATE_ID",
					Message: "an activity with this id already exists",
				})
				continue
			}
			seen[r.activity.ID] = true
			actions = append(actions, tracker.SaveActivity{Activity: r.activity})
			out.Imported++
		}
		return actions, nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

type importRecord struct {
	line     int
	activity activity.Activity
}

// parseImport reads every line, keeping valid activity records and
// recording the rest as errors.
func parseImport(ctx context.Context, r io.Reader) ([]importRecord, *ImportOutput, error) {
	out := &ImportOutput{Errors: []ImportError{}}
	var records []importRecord

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, nil, errors.NewCancelled("import")
		}
		lineNum++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var line importLine
		if err := json.Unmarshal(raw, &line); err != nil {
			out.Skipped++
			out.Errors = append(out.Errors, ImportError{
				Line:    lineNum,
				Code:    "PARSE_ERROR",
				Message: fmt.Sprintf("invalid JSON: %v", err),
			})
			continue
		}
		if line.CaltrackExport {
			continue
		}

		a := line.Activity
		a.Name = activity.CleanName(a.Name)
		if a.ID == "" {
			out.Skipped++
			out.Errors = append(out.Errors, ImportError{
				Line:    lineNum,
				Code:    "INVALID_RECORD",
				Message: "missing id field",
			})
			continue
		}
		if err := checkSavable(a); err != nil {
			out.Skipped++
			out.Errors = append(out.Errors, ImportError{
				Line:    lineNum,
				ID:      a.ID,
				Code:    string(errors.ErrInvalidActivity),
				Message: err.(*errors.CaltrackError).Message,
			})
			continue
		}

		records = append(records, importRecord{line: lineNum, activity: a})
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, errors.NewInternal(fmt.Errorf("failed to read import file: %w", err))
	}

	return records, out, nil
}
