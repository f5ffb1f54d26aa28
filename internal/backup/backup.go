// Package backup snapshots env files before sync mutates them, with
// content-hash deduplication and count-based retention pruning.
package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	kerrors "github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/errors"
)

// Info describes one stored backup.
type Info struct {
	ID        string
	Source    string // base name of the backed-up file
	Path      string
	Hash      string
	CreatedAt time.Time
}

// Manager stores backups under a single directory. Backup file names encode
// source, timestamp, and a short unique id:
//
//	<source>.20060102T150405.<id8>.bak
type Manager struct {
	dir string
}

// NewManager returns a Manager rooted at dir.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Create snapshots srcPath. When the newest existing backup of the same
// source has identical content, no new backup is written and the existing
// id is returned: repeated syncs of an unchanged file must not accumulate
// copies.
func (m *Manager) Create(srcPath string) (string, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", srcPath, err)
	}
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	source := filepath.Base(srcPath)
	existing, err := m.List()
	if err != nil {
		return "", err
	}
	for i := len(existing) - 1; i >= 0; i-- {
		if existing[i].Source == source {
			if existing[i].Hash == hash {
				return existing[i].ID, nil
			}
			break
		}
	}

	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return "", err
	}

	id := uuid.New().String()[:8]
	name := fmt.Sprintf("%s.%s.%s.bak", source, time.Now().UTC().Format("20060102T150405"), id)
	if err := os.WriteFile(filepath.Join(m.dir, name), data, 0600); err != nil {
		return "", err
	}
	return id, nil
}

// List returns all backups ordered oldest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".bak") {
			continue
		}
		info, err := parseName(entry.Name())
		if err != nil {
			continue
		}
		info.Path = filepath.Join(m.dir, entry.Name())

		data, err := os.ReadFile(info.Path)
		if err != nil {
			continue
		}
		sum := sha256.Sum256(data)
		info.Hash = hex.EncodeToString(sum[:])
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].CreatedAt.Before(infos[j].CreatedAt)
	})
	return infos, nil
}

// Prune removes the oldest backups of each source beyond keep. Returns the
// number of files removed.
func (m *Manager) Prune(keep int) (int, error) {
	if keep < 1 {
		keep = 1
	}
	infos, err := m.List()
	if err != nil {
		return 0, err
	}

	bySource := make(map[string][]Info)
	for _, info := range infos {
		bySource[info.Source] = append(bySource[info.Source], info)
	}

	removed := 0
	for _, group := range bySource {
		if len(group) <= keep {
			continue
		}
		for _, info := range group[:len(group)-keep] {
			if err := os.Remove(info.Path); err != nil {
				return removed, err
			}
			removed++
		}
	}
	return removed, nil
}

// Restore copies the backup with the given id over dstPath.
func (m *Manager) Restore(id, dstPath string) error {
	infos, err := m.List()
	if err != nil {
		return err
	}
	for _, info := range infos {
		if info.ID == id {
			data, err := os.ReadFile(info.Path)
			if err != nil {
				return err
			}
			return os.WriteFile(dstPath, data, 0600)
		}
	}
	return fmt.Errorf("%w: %s", kerrors.ErrBackupNotFound, id)
}

// parseName splits <source>.<stamp>.<id>.bak. Source names may themselves
// contain dots (.env.production), so fields are taken from the right.
func parseName(name string) (Info, error) {
	trimmed := strings.TrimSuffix(name, ".bak")
	parts := strings.Split(trimmed, ".")
	if len(parts) < 3 {
		return Info{}, fmt.Errorf("unrecognized backup name: %s", name)
	}

	id := parts[len(parts)-1]
	stamp := parts[len(parts)-2]
	source := strings.Join(parts[:len(parts)-2], ".")

	createdAt, err := time.Parse("20060102T150405", stamp)
	if err != nil {
		return Info{}, err
	}
	return Info{ID: id, Source: source, CreatedAt: createdAt}, nil
}
