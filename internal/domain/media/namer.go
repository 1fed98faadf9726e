package media

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StorageName generates a collision-free stored filename: wall-clock millis
// plus a random suffix, keeping only the original extension. The original
// base name is deliberately discarded so uploads can never collide or
// traverse paths.
func StorageName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
