package ops

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/hpungsan/caltrack/internal/config"
	"github.com/hpungsan/caltrack/internal/errors"
	"github.com/hpungsan/caltrack/internal/session"
)

// ExportSchemaVersion is written into every export header.
const ExportSchemaVersion = "1.0"

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Path string // optional, default: ~/.caltrack/exports/activities-<timestamp>.jsonl
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path       string `json:"path"`
	Count      int    `json:"count"`
	ExportedAt int64  `json:"exported_at"`
}

// ExportHeader is the first line of a JSONL export file.
type ExportHeader struct {
	CaltrackExport bool   `json:"_caltrack_export"`
	SchemaVersion  string `json:"schema_version"`
	ExportedAt     int64  `json:"exported_at"`
}

// Export writes the current activity list to a JSONL file: a header line
// followed by one activity per line in list order.
func Export(ctx context.Context, s *session.Session, cfg *config.Config, input ExportInput) (*ExportOutput, error) {
	now := time.Now()

	exportPath := input.Path
	if exportPath == "" {
		dir, err := DefaultExportsDir()
		if err != nil {
			return nil, err
		}
		exportPath = filepath.Join(dir, fmt.Sprintf("activities-%s.jsonl", now.Format("2006-01-02T150405")))
	}

	if err := ValidatePath(exportPath, PathCheckWrite, cfg); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(exportPath), 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	// Write to a temp file and rename so a failed export keeps the previous file
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := exportPath + "." + hex.EncodeToString(randBytes) + ".tmp"
	file, err := openFileNoFollow(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export file: %w", err))
	}

	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	w := bufio.NewWriter(file)
	enc := json.NewEncoder(w)
	if err := enc.Encode(ExportHeader{
		CaltrackExport: true,
		SchemaVersion:  ExportSchemaVersion,
		ExportedAt:     now.Unix(),
	}); err != nil {
		return nil, errors.NewInternal(err)
	}

	activities := s.Snapshot().Activities
	for _, a := range activities {
		if err := ctx.Err(); err != nil {
			return nil, errors.NewCancelled("export")
		}
		if err := enc.Encode(a); err != nil {
			return nil, errors.NewInternal(err)
		}
	}

	if err := w.Flush(); err != nil {
		return nil, errors.NewInternal(err)
	}
	if err := file.Sync(); err != nil {
		return nil, errors.NewInternal(err)
	}
	if err := file.Close(); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to close export file: %w", err))
	}
	file = nil

	// os.Rename would follow a symlink at the destination
	if info, err := os.Lstat(exportPath); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return nil, errors.NewInternal(fmt.Errorf("export path is a symlink"))
	}

	if err := os.Rename(tempPath, exportPath); err != nil {
		if runtime.GOOS == "windows" {
			if _, statErr := os.Stat(exportPath); statErr == nil {
				return nil, errors.NewInvalidRequest("export destination already exists; choose a new path or delete the existing file")
			}
		}
		return nil, errors.NewInternal(fmt.Errorf("failed to finalize export: %w", err))
	}

	success = true
	return &ExportOutput{
		Path:       exportPath,
		Count:      len(activities),
		ExportedAt: now.Unix(),
	}, nil
}
