package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// FrameExtractor extracts a representative still from a video file.
// Extraction is best-effort: the ingest pipeline logs failures and
// accepts the video without a thumbnail.
type FrameExtractor interface {
	Extract(ctx context.Context, videoPath, outPath string) error
}

// Thumbnailer implements FrameExtractor by shelling out to ffmpeg,
// grabbing a single frame at 10% of the video's duration.
type Thumbnailer struct {
	ffmpeg  string
	ffprobe string
	timeout time.Duration
}

// NewThumbnailer creates a thumbnailer using the given binaries
func NewThumbnailer(ffmpegPath, ffprobePath string, timeout time.Duration) *Thumbnailer {
	return &Thumbnailer{
		ffmpeg:  ffmpegPath,
		ffprobe: ffprobePath,
		timeout: timeout,
	}
}

// Extract writes a JPEG frame from videoPath to outPath
func (t *Thumbnailer) Extract(ctx context.Context, videoPath, outPath string) error {
	if _, err := exec.LookPath(t.ffmpeg); err != nil {
		return fmt.Errorf("ffmpeg not available: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	duration, err := t.probeDuration(ctx, videoPath)
	if err != nil {
		return err
	}
	seek := duration * 0.10

	var stderr bytes.Buffer
	cmd := exec.CommandContext(
		ctx,
		t.ffmpeg,
		"-loglevel", "error",
		"-ss", strconv.FormatFloat(seek, 'f', 3, 64),
		"-i", videoPath,
		"-frames:v", "1",
		"-q:v", "2",
		"-y",
		outPath,
	)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg frame extraction: %w (%s)", err, truncate(stderr.String(), 200))
	}
	return nil
}

// probeDuration asks ffprobe for the container duration in seconds
func (t *Thumbnailer) probeDuration(ctx context.Context, videoPath string) (float64, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(
		ctx,
		t.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath,
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe: %w (%s)", err, truncate(stderr.String(), 200))
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(stdout.String()), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe returned unparseable duration %q", stdout.String())
	}
	return duration, nil
}

func truncate(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}
