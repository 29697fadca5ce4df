// Package music holds the background-music pieces that do not touch the sound
// device: decoding a track, metering what is played, and the play/pause toggle.
package music

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var (
	// ErrNoTrack is returned when playback is requested with nothing loaded.
	ErrNoTrack = errors.New("music: no track loaded")
	// ErrUnsupportedFormat is returned for files other than wav, mp3 and flac.
	ErrUnsupportedFormat = errors.New("music: unsupported file type")
)

// Patterns lists the file patterns Open understands, for file dialogs.
var Patterns = []string{"*.wav", "*.mp3", "*.flac"}

// Track is a decoded audio file.
type Track struct {
	Path     string
	Streamer beep.StreamSeekCloser
	Format   beep.Format

	file *os.File
}

// Open decodes the file at path, picking the decoder by extension.
func Open(path string) (*Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return &Track{
		Path:     path,
		Streamer: streamer,
		Format:   format,
		file:     f,
	}, nil
}

// Close releases the decoder and the underlying file.
func (t *Track) Close() error {
	err := t.Streamer.Close()
	if ferr := t.file.Close(); ferr != nil && !errors.Is(ferr, os.ErrClosed) && err == nil {
		err = ferr
	}
	return err
}
