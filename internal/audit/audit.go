package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/configs"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/redact"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/utils"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // Username performing the action.
	Operation string `json:"op"`   // Operation name.

	// Optional fields depending on operation.
	EnvFile      string   `json:"env_file,omitempty"`      // For sync/status.
	Changed      []string `json:"changed,omitempty"`       // Changed variable names only, never values.
	Added        int      `json:"added,omitempty"`         // For sync.
	Updated      int      `json:"updated,omitempty"`       // For sync.
	Deleted      int      `json:"deleted,omitempty"`       // For sync.
	DryRun       bool     `json:"dry_run,omitempty"`       // For sync.
	BackupID     string   `json:"backup_id,omitempty"`     // For sync.
	RemovedCount int      `json:"removed_count,omitempty"` // For clean.
	ProjectName  string   `json:"project_name,omitempty"`  // For init.
	ProjectUUID  string   `json:"project_uuid,omitempty"`  // For init.
}

// Log appends an entry to the audit log. If logging fails it returns
// silently: operations must not fail because audit logging did.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := configs.ProjectEnvsyncSettings.AuditLogPath
	if logPath == "" {
		return
	}

	// Redact before the final marshal. Serializing the redacted form keeps
	// field names visible to the classifier; scrubbing a fully rendered JSON
	// string would be too late for structure-aware redaction.
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return
	}
	data, err := json.Marshal(redact.ScrubValue(fields))
	if err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.Write(append(data, '\n'))
}

// NewEntry returns an Entry for op with user identity populated.
func NewEntry(op string) Entry {
	entry := Entry{Operation: op}
	if username, err := utils.GetUsername(); err == nil {
		entry.User = username
	}
	return entry
}

// ReadEntries reads all entries from the audit log. Returns nil when the
// log does not exist. Malformed lines are skipped.
func ReadEntries() ([]map[string]any, error) {
	logPath := configs.ProjectEnvsyncSettings.AuditLogPath
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}
