package media

import (
	"strings"
	"testing"
)

func TestStorageNameUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := StorageName("photo.jpg")
		if seen[name] {
			t.Fatalf("duplicate storage name: %s", name)
		}
		seen[name] = true
	}
}

func TestStorageNameDiscardsOriginalBase(t *testing.T) {
	t.Parallel()

	name := StorageName("../../etc/passwd.png")
	if strings.Contains(name, "passwd") || strings.Contains(name, "/") || strings.Contains(name, "..") {
		t.Fatalf("storage name leaks original path: %s", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("extension not preserved: %s", name)
	}
}
