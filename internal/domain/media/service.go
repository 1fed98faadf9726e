package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/folio/folio-api/internal/pkg/storage"
)

const (
	// MaxBatchSize is the per-request file count ceiling
	MaxBatchSize = 20

	// MaxFileSize is the per-file size ceiling (100 MiB)
	MaxFileSize = 100 << 20
)

// Upload is one raw file in an ingest batch. Open must be re-openable:
// validation and processing each read the file once.
type Upload struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// Service turns raw uploads into normalized stored assets.
//
// Failure policy per kind: image optimization failures abort the batch,
// video thumbnail failures are logged and swallowed, PDFs and videos are
// stored verbatim. Files written before a fatal failure are not rolled back.
type Service struct {
	storage   storage.Storage
	optimizer *Optimizer
	frames    FrameExtractor
}

// NewService creates the media ingest service
func NewService(st storage.Storage, optimizer *Optimizer, frames FrameExtractor) *Service {
	return &Service{
		storage:   st,
		optimizer: optimizer,
		frames:    frames,
	}
}

// Ingest validates the whole batch, then processes files in submission
// order. Any file failing validation rejects the entire request before
// anything is written.
func (s *Service) Ingest(ctx context.Context, uploads []Upload) ([]*File, error) {
	if len(uploads) == 0 {
		return nil, ErrNoFiles
	}
	if len(uploads) > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyFiles, len(uploads), MaxBatchSize)
	}

	for i := range uploads {
		if err := s.validate(&uploads[i]); err != nil {
			return nil, err
		}
	}

	files := make([]*File, 0, len(uploads))
	for i := range uploads {
		file, err := s.ingestOne(ctx, &uploads[i])
		if err != nil {
			return nil, &TransformError{Filename: uploads[i].Filename, Err: err}
		}
		files = append(files, file)
	}
	return files, nil
}

// validate applies the allow-list (extension + sniffed content) and size
// ceiling without writing anything
func (s *Service) validate(u *Upload) error {
	if _, ok := DetectKind(u.Filename); !ok {
		return fmt.Errorf("%s: %w", u.Filename, ErrTypeNotAllowed)
	}
	if u.Size > MaxFileSize {
		return fmt.Errorf("%s: %w", u.Filename, ErrFileTooLarge)
	}

	rc, err := u.Open()
	if err != nil {
		return fmt.Errorf("%s: failed to open upload: %w", u.Filename, err)
	}
	defer rc.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(rc, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("%s: failed to read upload: %w", u.Filename, err)
	}

	if !MimeAllowed(SniffMime(head[:n], u.Filename)) {
		return fmt.Errorf("%s: %w", u.Filename, ErrTypeNotAllowed)
	}
	return nil
}

func (s *Service) ingestOne(ctx context.Context, u *Upload) (*File, error) {
	kind, _ := DetectKind(u.Filename)
	storedName := StorageName(u.Filename)

	// Spool to a temp file: videos need an on-disk path for ffmpeg, and
	// it keeps memory flat for large uploads.
	tmpDir, err := os.MkdirTemp("", "folio-upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, storedName)
	size, head, err := spool(u, tmpPath)
	if err != nil {
		return nil, err
	}
	mimeType := SniffMime(head, u.Filename)

	file := &File{
		OriginalName: u.Filename,
		StoredName:   storedName,
		MimeType:     mimeType,
		SizeBytes:    size,
		Kind:         kind,
	}

	switch kind {
	case KindImage:
		err = s.ingestImage(ctx, file, tmpPath, mimeType)
	case KindVideo:
		err = s.ingestVideo(ctx, file, tmpPath, tmpDir, mimeType)
	case KindPDF:
		err = s.store(ctx, file, "pdfs/"+storedName, tmpPath, mimeType)
	default:
		// Unreachable past the allow-list; stored untransformed anyway.
		err = s.store(ctx, file, "other/"+storedName, tmpPath, mimeType)
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}

// ingestImage stores the original and an optimized derivative; the
// derivative's URL is the canonical reference.
func (s *Service) ingestImage(ctx context.Context, file *File, tmpPath, mimeType string) error {
	if err := s.store(ctx, file, "images/"+file.StoredName, tmpPath, mimeType); err != nil {
		return err
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to read spooled image: %w", err)
	}
	optimized, err := s.optimizer.Optimize(data)
	if err != nil {
		return err
	}

	// The derivative is re-encoded, so its content type follows the
	// encoder, not the upload (a gif or webp comes back as JPEG).
	optimizedType := "image/jpeg"
	if optimized.Extension == ".png" {
		optimizedType = "image/png"
	}

	optimizedKey := "images/" + trimExt(file.StoredName) + "-opt" + optimized.Extension
	if err := s.storage.Put(ctx, optimizedKey, bytes.NewReader(optimized.Data), optimizedType); err != nil {
		return fmt.Errorf("failed to store optimized image: %w", err)
	}
	file.URL = s.storage.GetURL(optimizedKey)
	return nil
}

// ingestVideo stores the original verbatim, then attempts a best-effort
// thumbnail grab
func (s *Service) ingestVideo(ctx context.Context, file *File, tmpPath, tmpDir, mimeType string) error {
	if err := s.store(ctx, file, "videos/"+file.StoredName, tmpPath, mimeType); err != nil {
		return err
	}

	thumbName := trimExt(file.StoredName) + ".jpg"
	thumbPath := filepath.Join(tmpDir, thumbName)
	if err := s.frames.Extract(ctx, tmpPath, thumbPath); err != nil {
		log.Warn().
			Err(err).
			Str("file", file.OriginalName).
			Msg("Video thumbnail extraction failed, continuing without thumbnail")
		return nil
	}

	thumb, err := os.Open(thumbPath)
	if err != nil {
		log.Warn().
			Err(err).
			Str("file", file.OriginalName).
			Msg("Thumbnail frame missing after extraction, continuing without thumbnail")
		return nil
	}
	defer thumb.Close()

	thumbKey := "thumbnails/" + thumbName
	if err := s.storage.Put(ctx, thumbKey, thumb, "image/jpeg"); err != nil {
		log.Warn().
			Err(err).
			Str("file", file.OriginalName).
			Msg("Failed to store video thumbnail, continuing without thumbnail")
		return nil
	}

	url := s.storage.GetURL(thumbKey)
	file.ThumbnailURL = &url
	return nil
}

// store copies the spooled file into permanent storage and fills in the
// descriptor's location fields
func (s *Service) store(ctx context.Context, file *File, key, tmpPath, mimeType string) error {
	f, err := os.Open(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to open spooled file: %w", err)
	}
	defer f.Close()

	if err := s.storage.Put(ctx, key, f, mimeType); err != nil {
		return fmt.Errorf("failed to store file: %w", err)
	}

	file.Path = s.storagePath(key)
	if file.URL == "" {
		file.URL = s.storage.GetURL(key)
	}
	return nil
}

// storagePath resolves a key to an absolute path when the backend has one
func (s *Service) storagePath(key string) string {
	if p, ok := s.storage.(interface{ Path(string) string }); ok {
		return p.Path(key)
	}
	return key
}

// spool copies an upload to tmpPath and returns its size and leading bytes
func spool(u *Upload, tmpPath string) (int64, []byte, error) {
	rc, err := u.Open()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer rc.Close()

	out, err := os.Create(tmpPath)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer out.Close()

	size, err := io.Copy(out, rc)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to spool upload: %w", err)
	}

	head := make([]byte, 512)
	n, err := out.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return 0, nil, fmt.Errorf("failed to read spooled file: %w", err)
	}
	return size, head[:n], nil
}

func trimExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
