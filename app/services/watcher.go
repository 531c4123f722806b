package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/taha1545/school-mangment-system/app/models"
)

// StartExportWatcher starts a background loop that re-imports the exports
// directory whenever its CSV set changes (file added, removed or rewritten).
// Does nothing when dir is empty.
func StartExportWatcher(dir string, interval time.Duration, reimport func(paths []string) (models.ImportSummary, error)) {
	if dir == "" {
		return
	}
	go func() {
		log.Printf("Export watcher started on %s (every %s)", dir, interval)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var lastFingerprint string
		for range ticker.C {
			paths, fingerprint, err := scanExports(dir)
			if err != nil {
				log.Printf("Export watcher: cannot read %s: %v", dir, err)
				continue
			}
			if len(paths) == 0 || fingerprint == lastFingerprint {
				continue
			}
			log.Printf("Export watcher: change detected, re-importing %d files", len(paths))
			summary, err := reimport(paths)
			if err != nil {
				log.Printf("Export watcher: import failed: %v", err)
				continue
			}
			lastFingerprint = fingerprint
			log.Printf("Export watcher: imported %d activities (%d problematic rows)",
				summary.ActivityCount, summary.ProblematicRows)
		}
	}()
}

// scanExports lists the directory's CSV files and a fingerprint of their
// names, sizes and modification times.
func scanExports(dir string) ([]string, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", err
	}

	var paths []string
	var parts []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
		parts = append(parts, fmt.Sprintf("%s:%d:%d", entry.Name(), info.Size(), info.ModTime().UnixNano()))
	}
	sort.Strings(paths)
	sort.Strings(parts)
	return paths, strings.Join(parts, "|"), nil
}
