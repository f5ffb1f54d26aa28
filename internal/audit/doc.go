// Package audit appends operation records to the project audit log
// (.envsync/audit.jsonl). Entries are structurally redacted before they are
// marshaled, so a secret value accidentally placed in an entry field can
// never reach the log file. Audit failures never fail the operation being
// audited.
package audit
