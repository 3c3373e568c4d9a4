// Package input locates and reads puzzle inputs. Inputs are read from standard input unless a file is given or
// found in the inputs directory; compressed files are decompressed on the fly.
package input

import (
	"compress/gzip"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/rotisserie/eris"
	"github.com/ulikunitz/xz"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

type decompressor func(io.Reader) (io.Reader, error)

var decompressors = []struct {
	suffix string
	open   decompressor
}{
	{".gz", func(r io.Reader) (io.Reader, error) { return gzip.NewReader(r) }},
	{".xz", func(r io.Reader) (io.Reader, error) { return xz.NewReader(r) }},
	{".br", func(r io.Reader) (io.Reader, error) { return brotli.NewReader(r), nil }},
}

// DefaultPath returns where the input for day is expected inside dir.
func DefaultPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d", day), "input.txt")
}

// Resolve picks the input for day: explicit if set, otherwise the first existing file out of DefaultPath and its
// compressed variants, otherwise standard input.
func Resolve(dir string, day int, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	base := DefaultPath(dir, day)
	candidates := []string{base}
	for _, d := range decompressors {
		candidates = append(candidates, base+d.suffix)
	}

	for _, path := range candidates {
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}

		if !eris.Is(err, os.ErrNotExist) {
			return "", eris.Wrapf(err, "Failed to check %s", path)
		}
	}

	return Stdin, nil
}

// Read returns the full contents of path. stdin is used for "" and "-".
func Read(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == Stdin {
		data, err := ioutil.ReadAll(stdin)
		if err != nil {
			return nil, eris.Wrap(err, "Failed to read input from stdin")
		}
		return data, nil
	}

	handle, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "Could not open file %s.", path)
	}
	defer handle.Close()

	var reader io.Reader = handle
	for _, d := range decompressors {
		if strings.HasSuffix(path, d.suffix) {
			reader, err = d.open(handle)
			if err != nil {
				return nil, eris.Wrapf(err, "Failed to decompress %s", path)
			}
			break
		}
	}

	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to read %s", path)
	}

	return data, nil
}
