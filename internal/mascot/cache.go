package mascot

import (
	"os"
	"sync"
	"time"

	"hue/internal/errors"
)

// fileCache holds the decoded records from one read of the data file.
// An entry is valid only while the file's modification time and size
// are unchanged, so edits to the file are picked up on the next lookup.
type fileCache struct {
	mu      sync.Mutex
	valid   bool
	modTime time.Time
	size    int64
	animals []Animal
	skipped int
}

// load returns the cached records when the file is unchanged, otherwise
// re-reads and re-decodes it. Decode failures are never cached.
func (c *fileCache) load(path string) ([]Animal, int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, errors.Wrap(errors.SourceUnreadable, "cannot read animal data", err)
	}

	c.mu.Lock()
	if c.valid && c.modTime.Equal(info.ModTime()) && c.size == info.Size() {
		animals, skipped := c.animals, c.skipped
		c.mu.Unlock()
		return animals, skipped, nil
	}
	c.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, errors.Wrap(errors.SourceUnreadable, "cannot read animal data", err)
	}

	animals, skipped, err := decode(data)
	if err != nil {
		return nil, 0, err
	}

	c.mu.Lock()
	c.valid = true
	c.modTime = info.ModTime()
	c.size = info.Size()
	c.animals = animals
	c.skipped = skipped
	c.mu.Unlock()

	return animals, skipped, nil
}
