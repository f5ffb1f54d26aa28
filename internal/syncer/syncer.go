// Package syncer plans and applies reconciliation between a local env file
// and the remote secret store. Planning is pure and deterministic; Apply
// performs store writes and honors dry-run.
package syncer

import (
	"context"
	"sort"

	logger "github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/logging"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/store"
)

// Action describes what a planned change does to the remote store.
type Action int

const (
	// Add creates a key that exists locally but not remotely.
	Add Action = iota

	// Update replaces a remote value that differs from the local one.
	Update

	// Delete removes a remote key with no local counterpart. Only planned
	// when DeleteMissing is set.
	Delete
)

// String returns the action name for display.
func (a Action) String() string {
	switch a {
	case Add:
		return "add"
	case Update:
		return "update"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Change is one planned store operation. It intentionally carries only the
// key and action: plans are displayed, and values must never ride along
// into output paths.
type Change struct {
	Key    string
	Action Action
}

// Options configures planning and application.
type Options struct {
	// DryRun simulates Apply without touching the store.
	DryRun bool

	// DeleteMissing plans deletions for remote keys absent locally.
	DeleteMissing bool

	// Verbose enables detailed logging.
	Verbose bool

	// Debug enables debug logging.
	Debug bool
}

// Result summarizes an applied plan.
type Result struct {
	Added   int
	Updated int
	Deleted int

	// Errors contains non-fatal per-key errors; the sync continues past
	// individual failures.
	Errors []error
}

// Plan computes the changes that would make the remote store match the
// local assignments. The plan is deterministic: adds, then updates, then
// deletes, each sorted by key.
func Plan(local, remote map[string]string, opts Options) []Change {
	var adds, updates, deletes []Change

	for key, value := range local {
		remoteValue, ok := remote[key]
		switch {
		case !ok:
			adds = append(adds, Change{Key: key, Action: Add})
		case remoteValue != value:
			updates = append(updates, Change{Key: key, Action: Update})
		}
	}

	if opts.DeleteMissing {
		for key := range remote {
			if _, ok := local[key]; !ok {
				deletes = append(deletes, Change{Key: key, Action: Delete})
			}
		}
	}

	sortChanges(adds)
	sortChanges(updates)
	sortChanges(deletes)

	plan := make([]Change, 0, len(adds)+len(updates)+len(deletes))
	plan = append(plan, adds...)
	plan = append(plan, updates...)
	plan = append(plan, deletes...)
	return plan
}

func sortChanges(cs []Change) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Key < cs[j].Key })
}

// Apply executes a plan against the store. Individual key failures are
// collected in Result.Errors rather than aborting the whole sync. With
// DryRun set, counts are reported but no store call is made.
func Apply(ctx context.Context, st store.Store, local map[string]string, plan []Change, opts Options) (*Result, error) {
	log := logger.Logger{Verbose: opts.Verbose, Debug: opts.Debug}
	result := &Result{}

	for _, change := range plan {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		switch change.Action {
		case Add, Update:
			if !opts.DryRun {
				if err := st.Set(ctx, change.Key, local[change.Key]); err != nil {
					log.Warnf("Failed to set %s: %v", change.Key, err)
					result.Errors = append(result.Errors, err)
					continue
				}
			}
			if change.Action == Add {
				result.Added++
			} else {
				result.Updated++
			}
			log.Debugf("%s %s", change.Action, change.Key)

		case Delete:
			if !opts.DryRun {
				if err := st.Delete(ctx, change.Key); err != nil {
					log.Warnf("Failed to delete %s: %v", change.Key, err)
					result.Errors = append(result.Errors, err)
					continue
				}
			}
			result.Deleted++
			log.Debugf("delete %s", change.Key)
		}
	}

	return result, nil
}
