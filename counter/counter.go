package counter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrClamped is returned when a change would step past an int64 bound.
// The count is left unchanged.
var ErrClamped = errors.New("count at int64 limit")

// Options control how the backing file is opened.
type Options struct {
	// Start overrides the value loaded from the file.
	Start *int64

	// Sync flushes counter data to disk on every persist.
	Sync bool
}

// Counter is a tally persisted to a text file. The file holds the
// decimal value and is rewritten in full after every change.
type Counter struct {
	file  *os.File
	value int64
	sync  bool
}

// Open creates or opens the backing file at path and loads the count.
// Precedence: Options.Start, then the first line of the file, then 0.
// Missing files and non-numeric content both load as 0. The loaded
// value is persisted immediately, normalizing whatever was on disk.
func Open(path string, opts Options) (*Counter, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	c := &Counter{file: file, sync: opts.Sync}
	if opts.Start != nil {
		c.value = *opts.Start
	} else {
		c.value = loadValue(file)
	}

	if err := c.persist(); err != nil {
		file.Close()
		return nil, err
	}
	return c, nil
}

// loadValue reads the first line of f. Unreadable or unparseable
// content yields 0.
func loadValue(f *os.File) int64 {
	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return 0
	}
	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// Value returns the current count.
func (c *Counter) Value() int64 {
	return c.value
}

// Increment raises the count by one and persists it.
func (c *Counter) Increment() error {
	return c.add(1)
}

// Decrement lowers the count by one and persists it.
func (c *Counter) Decrement() error {
	return c.add(-1)
}

func (c *Counter) add(delta int64) error {
	if delta > 0 && c.value == math.MaxInt64 {
		return ErrClamped
	}
	if delta < 0 && c.value == math.MinInt64 {
		return ErrClamped
	}
	c.value += delta
	return c.persist()
}

// persist rewrites the file with the current value.
func (c *Counter) persist() error {
	if _, err := c.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	if err := c.file.Truncate(0); err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	if _, err := c.file.WriteString(strconv.FormatInt(c.value, 10)); err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	if c.sync {
		if err := c.file.Sync(); err != nil {
			return fmt.Errorf("persist: %w", err)
		}
	}
	return nil
}

// Close releases the backing file. The count is already on disk; every
// mutation persists before returning.
func (c *Counter) Close() error {
	if err := c.file.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
