package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sagaw22/URPXconverter/internal/urpx"
)

// Mode selects the output representation of a conversion.
type Mode string

const (
	// ModeScript emits the embedded robot script wrapped in a
	// function definition (.script).
	ModeScript Mode = "script"

	// ModeText emits the indented program outline (.txt).
	ModeText Mode = "txt"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeScript || m == ModeText
}

// Extension returns the output file extension for the mode, without
// the leading dot.
func (m Mode) Extension() string {
	return string(m)
}

// Stem returns a source path's base name with the extension removed.
func Stem(srcPath string) string {
	base := filepath.Base(srcPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputName returns the destination file name for a source path.
func OutputName(srcPath string, mode Mode) string {
	return Stem(srcPath) + "_converted." + mode.Extension()
}

// Convert runs one conversion job: read the source file, parse it as a
// project document, render it in the requested mode, and write the
// result into dstDir as <stem>_converted.<ext>, overwriting any
// existing file. It returns the written file's path.
//
// Failures are typed (ReadError, ParseError, WriteError), carry the
// source file's name and the underlying cause, and are never retried
// here. One failing job must not stop a caller's batch; batching and
// aggregation are the caller's concern.
func Convert(srcPath, dstDir string, mode Mode) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("unsupported conversion mode %q", mode)
	}

	file := filepath.Base(srcPath)

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return "", &ReadError{File: file, Cause: err}
	}

	doc, err := urpx.ParseDocument(data)
	if err != nil {
		return "", &ParseError{File: file, Cause: err}
	}

	var text string
	switch mode {
	case ModeScript:
		text = urpx.RenderScript(doc, Stem(srcPath))
	case ModeText:
		text, err = urpx.RenderOutline(doc)
		if err != nil {
			// A malformed tree is a fault of the source document.
			return "", &ParseError{File: file, Cause: err}
		}
	}

	outPath := filepath.Join(dstDir, OutputName(srcPath, mode))
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return "", &WriteError{File: file, Path: outPath, Cause: err}
	}
	return outPath, nil
}
