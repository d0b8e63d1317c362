// Package compactjson - the mixed-format encoder and atomic file writer.
package compactjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrInvalidJSON indicates Format received bytes that are not valid JSON.
var ErrInvalidJSON = errors.New("compactjson: input is not valid JSON")

// indentUnit is the per-level indentation inside objects.
const indentUnit = "    "

// Marshal renders v with indented objects and single-line arrays.
// Value semantics are exactly those of encoding/json; only whitespace
// differs, so the output unmarshals back to the identical value.
func Marshal(v any) ([]byte, error) {
	compact, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Format(compact)
}

// Encode writes the rendering of v to w, followed by a newline.
func Encode(w io.Writer, v any) error {
	out, err := Marshal(v)
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// Format re-spaces valid JSON under the package's visual contract:
// objects multi-line with stable indentation, arrays on one compact line
// with ", " between elements, at any nesting depth. Objects nested inside
// an array stay inline within the array's line.
//
// The pass is purely lexical (string- and escape-aware) and inserts or
// removes only whitespace. Returns ErrInvalidJSON for malformed input.
//
// Complexity: O(len(src)).
func Format(src []byte) ([]byte, error) {
	if !json.Valid(src) {
		return nil, ErrInvalidJSON
	}

	// Normalize away any pre-existing insignificant whitespace so the
	// re-spacing below starts from the canonical compact form.
	var compact bytes.Buffer
	if err := json.Compact(&compact, src); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	var (
		in  = compact.Bytes()
		out bytes.Buffer

		inString   bool
		escaped    bool
		arrayDepth int // >0 ⇒ inside an array: everything stays on one line
		level      int // object indentation level outside arrays
	)
	out.Grow(len(in) * 2)

	newline := func() {
		out.WriteByte('\n')
		for i := 0; i < level; i++ {
			out.WriteString(indentUnit)
		}
	}

	for i := 0; i < len(in); i++ {
		c := in[i]

		if inString {
			out.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			out.WriteByte(c)
		case '{':
			out.WriteByte(c)
			if arrayDepth > 0 {
				break
			}
			// Keep {} on one line.
			if i+1 < len(in) && in[i+1] == '}' {
				out.WriteByte('}')
				i++
				break
			}
			level++
			newline()
		case '}':
			if arrayDepth == 0 {
				level--
				newline()
			}
			out.WriteByte(c)
		case '[':
			arrayDepth++
			out.WriteByte(c)
		case ']':
			arrayDepth--
			out.WriteByte(c)
		case ',':
			out.WriteByte(c)
			if arrayDepth > 0 {
				out.WriteByte(' ')
			} else {
				newline()
			}
		case ':':
			out.WriteByte(c)
			out.WriteByte(' ')
		default:
			out.WriteByte(c)
		}
	}

	return out.Bytes(), nil
}

// WriteFile renders v and writes it to path atomically: the bytes go to a
// temporary file in the destination directory which is renamed over path
// only after a successful write, so no partially written file is ever left
// at the destination.
func WriteFile(path string, v any, perm os.FileMode) error {
	out, err := Marshal(v)
	if err != nil {
		return err
	}
	out = append(out, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("compactjson: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("compactjson: write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("compactjson: close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("compactjson: chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("compactjson: rename into place: %w", err)
	}
	return nil
}
