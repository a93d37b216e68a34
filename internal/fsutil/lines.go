// Package fsutil reads the line-oriented virtual files exposed under /proc and /sys.
package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

// ReadLines reads every line of filename
func ReadLines(filename string) ([]string, error) {
	return ReadLinesOffsetN(filename, 0, -1)
}

// ReadLinesOffsetN reads lines from filename starting at line offset.
// n >= 0 returns at most n lines, n < 0 reads to the end of the file.
//
// A line that is not valid UTF-8 is returned as an empty string. A read
// error part way through yields one empty string for the unreadable line and
// ends the sequence there; the call itself does not fail.
func ReadLinesOffsetN(filename string, offset uint, n int) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", platform.ErrSourceUnavailable, err)
	}
	defer f.Close()

	return readLines(f, offset, n), nil
}

func readLines(r io.Reader, offset uint, n int) []string {
	var ret []string
	br := bufio.NewReader(r)

	for i := uint(0); n < 0 || len(ret) < n; i++ {
		line, err := br.ReadString('\n')
		if err != nil && (err != io.EOF || len(line) == 0) {
			if err != io.EOF && i >= offset {
				ret = append(ret, "")
			}
			break
		}
		if i >= offset {
			ret = append(ret, cleanLine(line))
		}
		if err == io.EOF {
			break
		}
	}

	return ret
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, "\r\n")
	if !utf8.ValidString(line) {
		return ""
	}
	return line
}

// ReadFirstLine returns the trimmed first line of filename, as used for the
// single-value files under /sys.
func ReadFirstLine(filename string) (string, error) {
	lines, err := ReadLinesOffsetN(filename, 0, 1)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("%w: %s is empty", platform.ErrMalformedRecord, filename)
	}
	return strings.TrimSpace(lines[0]), nil
}
