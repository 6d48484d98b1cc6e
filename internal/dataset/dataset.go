package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Values is a sequence of precomputed values indexed from IndexStart.
type Values []uint64

// IndexStart is the index of the first value in a file.
const IndexStart = 2

// Check reports ErrFileNotFound unless path names a regular file.
func Check(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}
	return nil
}

// Load reads whitespace separated unsigned integers from path.
func Load(path string) (Values, error) {
	if err := Check(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	values := make(Values, 0, 1024)
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		for _, tok := range strings.Fields(scanner.Text()) {
			v, err := strconv.ParseUint(tok, 10, 64)
			if err != nil {
				return nil, &ParseError{Path: path, Line: line, Token: tok, Wrapped: err}
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// Save writes one value per line.
func Save(path string, values Values) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	var buf []byte
	for _, v := range values {
		buf = strconv.AppendUint(buf[:0], v, 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return file.Close()
}

// IndexAxis returns IndexStart, IndexStart+1, ... with n elements.
func IndexAxis(n int) []uint64 {
	axis := make([]uint64, n)
	for i := range axis {
		axis[i] = uint64(i) + IndexStart
	}
	return axis
}
