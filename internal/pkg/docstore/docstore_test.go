package docstore

import (
	"errors"
	"testing"
)

func TestFileStoreReadAbsent(t *testing.T) {
	t.Parallel()

	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, err := st.Read("missing.json"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestFileStoreWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := st.Write("doc.json", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := st.Read("doc.json")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Fatalf("unexpected content: %q", string(data))
	}
}

func TestFileStoreWriteReplacesWhole(t *testing.T) {
	t.Parallel()

	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := st.Write("doc.json", []byte("first version, long contents")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := st.Write("doc.json", []byte("second")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := st.Read("doc.json")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("document not fully replaced: %q", string(data))
	}
}
