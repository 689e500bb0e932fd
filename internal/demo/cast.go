package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// clearScreen homes the cursor and clears the terminal before each frame.
const clearScreen = "\x1b[H\x1b[2J"

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// becomes one output event that redraws the whole screen.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	return GenerateASCIICastWithTitle(w, frames, width, height, "")
}

// GenerateASCIICastWithTitle is GenerateASCIICast with a recording title.
func GenerateASCIICastWithTitle(w io.Writer, frames []Frame, width, height int, title string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	header := castHeader{
		Version:   2,
		Width:     width,
		Height:    height,
		Timestamp: Epoch.Unix(),
		Title:     title,
		Env:       map[string]string{"TERM": "xterm-256color", "SHELL": "/bin/sh"},
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("write cast header: %w", err)
	}

	var elapsed time.Duration
	for i, f := range frames {
		elapsed += f.Delay
		data := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		event := []any{elapsed.Seconds(), "o", data}
		if err := enc.Encode(event); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}
		if f.Annotation != "" {
			marker := []any{elapsed.Seconds(), "m", f.Annotation}
			if err := enc.Encode(marker); err != nil {
				return fmt.Errorf("write marker %d: %w", i, err)
			}
		}
	}
	return nil
}
