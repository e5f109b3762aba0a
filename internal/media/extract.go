// Package media extracts a transcription-ready audio track from a media
// container by shelling out to ffmpeg.
package media

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kinosub/kinosub/internal/config"
	"github.com/kinosub/kinosub/internal/logger"
)

// progressTime matches ffmpeg's stats lines, e.g.
// "frame=  517 fps=0.0 ... time=00:00:20.64 bitrate= 597.1kbits/s".
var progressTime = regexp.MustCompile(`time=(\d+):(\d+):(\d+(?:\.\d+)?)`)

// Extractor resolves and runs ffmpeg/ffprobe.
type Extractor struct {
	ffmpegPath  string
	ffprobePath string
}

// NewExtractor locates ffmpeg, preferring customPath over PATH lookup.
// ffprobe is taken from the same directory, falling back to PATH.
func NewExtractor(customPath string) (*Extractor, error) {
	ffmpegPath := customPath
	if ffmpegPath == "" {
		resolved, err := exec.LookPath("ffmpeg")
		if err != nil {
			return nil, fmt.Errorf("ffmpeg binary not found in PATH; install it or set FFMPEG_PATH")
		}
		ffmpegPath = resolved
	}

	ffprobePath := filepath.Join(filepath.Dir(ffmpegPath), "ffprobe")
	if _, err := exec.LookPath(ffprobePath); err != nil {
		if resolved, err := exec.LookPath("ffprobe"); err == nil {
			ffprobePath = resolved
		}
	}

	return &Extractor{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath}, nil
}

// Duration reads the container duration via ffprobe. Errors degrade to zero:
// duration only feeds progress reporting.
func (e *Extractor) Duration(ctx context.Context, inputPath string) time.Duration {
	cmd := exec.CommandContext(ctx, e.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		inputPath,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}

// Extract writes a mono 16kHz 16-bit PCM WAV next to or at outputPath and
// reports progress from ffmpeg's stats output.
func (e *Extractor) Extract(ctx context.Context, inputPath, outputPath string, onProgress func(done, total time.Duration)) error {
	total := e.Duration(ctx, inputPath)
	logger.Info("Extracting audio", "input", filepath.Base(inputPath), "duration", total)

	cmd := exec.CommandContext(ctx, e.ffmpegPath, extractArgs(inputPath, outputPath)...)

	// ffmpeg writes stats to stderr, separated by carriage returns.
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to open ffmpeg stderr: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	scanner := bufio.NewScanner(stderr)
	scanner.Split(scanStatsLines)
	var tail string
	for scanner.Scan() {
		line := scanner.Text()
		tail = line
		if done, ok := ParseProgress(line); ok && onProgress != nil {
			onProgress(done, total)
		}
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg failed to extract audio: %w (%s)", err, strings.TrimSpace(tail))
	}
	if onProgress != nil && total > 0 {
		onProgress(total, total)
	}
	return nil
}

// extractArgs builds the ffmpeg invocation for the transcription audio
// profile: no video, 16-bit PCM, 16kHz, mono.
func extractArgs(inputPath, outputPath string) []string {
	return []string{
		"-y",
		"-i", inputPath,
		"-vn",
		"-acodec", config.AudioCodec,
		"-ar", strconv.Itoa(config.AudioSampleRate),
		"-ac", strconv.Itoa(config.AudioChannels),
		"-stats",
		outputPath,
	}
}

// ParseProgress extracts the transcoded position from an ffmpeg stats line.
func ParseProgress(line string) (time.Duration, bool) {
	m := progressTime.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	s, _ := strconv.ParseFloat(m[3], 64)
	return time.Duration(h)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(s*float64(time.Second)), true
}

// scanStatsLines splits on \r as well as \n: ffmpeg rewrites its stats line
// in place with carriage returns.
func scanStatsLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
