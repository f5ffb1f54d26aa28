package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/errors"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.toml")
	return NewFileStore(path), path
}

func TestListEmptyBeforeFirstSet(t *testing.T) {
	st, path := newTestStore(t)

	secrets, err := st.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(secrets) != 0 {
		t.Errorf("List on fresh store = %v", secrets)
	}
	// The backing file is created lazily.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("store file created before first Set")
	}
}

func TestSetListDelete(t *testing.T) {
	st, path := newTestStore(t)
	ctx := context.Background()

	if err := st.Set(ctx, "API_KEY", "abc"); err != nil {
		t.Fatal(err)
	}
	if err := st.Set(ctx, "PORT", "3000"); err != nil {
		t.Fatal(err)
	}
	if err := st.Set(ctx, "API_KEY", "def"); err != nil {
		t.Fatal(err)
	}

	secrets, err := st.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if secrets["API_KEY"] != "def" || secrets["PORT"] != "3000" {
		t.Errorf("List = %v", secrets)
	}

	if err := st.Delete(ctx, "API_KEY"); err != nil {
		t.Fatal(err)
	}
	secrets, err = st.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := secrets["API_KEY"]; ok {
		t.Error("API_KEY survived Delete")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("store file mode = %o, want 0600", perm)
	}
}

func TestDeleteAbsentKeyIsNoop(t *testing.T) {
	st, _ := newTestStore(t)
	if err := st.Delete(context.Background(), "NEVER_SET"); err != nil {
		t.Errorf("Delete of absent key = %v, want nil", err)
	}
}

func TestPersistsAcrossInstances(t *testing.T) {
	st, path := newTestStore(t)
	ctx := context.Background()

	if err := st.Set(ctx, "TOKEN", "abc"); err != nil {
		t.Fatal(err)
	}

	reopened := NewFileStore(path)
	secrets, err := reopened.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if secrets["TOKEN"] != "abc" {
		t.Errorf("reopened store = %v", secrets)
	}
}

func TestCorruptFileReportsStoreUnavailable(t *testing.T) {
	st, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := st.List(context.Background())
	if !errors.Is(err, kerrors.ErrStoreUnavailable) {
		t.Errorf("err = %v, want ErrStoreUnavailable", err)
	}
}

func TestHonorsContextCancellation(t *testing.T) {
	st, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := st.List(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("List err = %v", err)
	}
	if err := st.Set(ctx, "A", "1"); !errors.Is(err, context.Canceled) {
		t.Errorf("Set err = %v", err)
	}
}

func TestStoredValuesStayVerbatim(t *testing.T) {
	// The store holds real values; redaction applies to output, not storage.
	st, path := newTestStore(t)
	if err := st.Set(context.Background(), "PASSWORD", "hunter2"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hunter2") {
		t.Errorf("store file should hold the real value, got: %s", data)
	}
}
