package storage

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func TestLocalStoragePutGetDelete(t *testing.T) {
	t.Parallel()

	st, err := NewLocalStorage(t.TempDir(), "/media")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	ctx := context.Background()
	key := "images/a.jpg"
	content := "fake-jpeg-bytes"

	if err := st.Put(ctx, key, bytes.NewReader([]byte(content)), "image/jpeg"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	exists, err := st.Exists(ctx, key)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatalf("key missing after Put")
	}

	rc, err := st.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != content {
		t.Fatalf("unexpected content: got %q want %q", string(data), content)
	}

	if got, want := st.GetURL(key), "/media/"+key; got != want {
		t.Fatalf("GetURL = %q, want %q", got, want)
	}

	if err := st.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	exists, err = st.Exists(ctx, key)
	if err != nil {
		t.Fatalf("Exists after delete: %v", err)
	}
	if exists {
		t.Fatalf("key still exists after Delete")
	}

	// Deleting a missing key is not an error
	if err := st.Delete(ctx, key); err != nil {
		t.Fatalf("Delete absent key: %v", err)
	}
}

func TestLocalStorageListByPrefix(t *testing.T) {
	t.Parallel()

	st, err := NewLocalStorage(t.TempDir(), "/media")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	ctx := context.Background()
	for _, key := range []string{"images/a.jpg", "images/b.jpg", "videos/c.mp4"} {
		if err := st.Put(ctx, key, bytes.NewReader([]byte("x")), ""); err != nil {
			t.Fatalf("Put %s: %v", key, err)
		}
	}

	images, err := st.List(ctx, "images/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}

	all, err := st.List(ctx, "")
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 files, got %d", len(all))
	}
}
