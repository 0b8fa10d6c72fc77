package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"eventsync/internal/sync"
	"eventsync/internal/wordpress"
)

// Load reads every *.json file from dir in filename order and concatenates
// their events, venues and categories. A missing directory or a directory
// without JSON files is an error: a bulk import with nothing to do is a
// misconfiguration, not an empty success.
func Load(dir string) (*sync.ImportData, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("imports directory not found: %s", dir)
		}
		return nil, fmt.Errorf("read imports directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no JSON files found in imports directory: %s", dir)
	}

	data := &sync.ImportData{Files: files}
	for _, name := range files {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		var file wordpress.ImportFile
		if err := json.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}

		data.Events = append(data.Events, file.Events...)
		data.Venues = append(data.Venues, file.Venues...)
		data.Categories = append(data.Categories, file.Categories...)
	}

	return data, nil
}
