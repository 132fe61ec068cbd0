package prune

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tenebris-tech/docxprune/prune/docx"
)

// BackupSuffix is inserted before the extension of the backup file
// written next to the input before it is overwritten.
const BackupSuffix = ".backup"

// Run processes a single DOCX file: extract, scan, select, delete,
// backup, repack. The original file is touched only at the very end,
// after the backup copy and the repacked archive both succeeded; until
// then all editing happens in a temporary working directory that is
// removed on every exit path.
//
// A crash during the final overwrite can leave a corrupt output file.
// That window is not transactional; the backup next to the input is the
// recovery mechanism.
func (p *Pruner) Run(path string) (*Result, error) {
	log := p.options.Logger
	result := &Result{Path: path}

	archive, err := docx.OpenArchive(path)
	if err != nil {
		return nil, err
	}

	workDir, err := os.MkdirTemp("", "docxprune-")
	if err != nil {
		archive.Close()
		return nil, fmt.Errorf("creating working directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	extractErr := archive.ExtractTo(workDir)
	archive.Close()
	if extractErr != nil {
		return nil, extractErr
	}
	log.Debug("extracted archive", "path", path, "workdir", workDir)

	docPath := filepath.Join(workDir, filepath.FromSlash(docx.DocumentPath))
	doc, err := docx.LoadDocument(docPath)
	if err != nil {
		return nil, err
	}

	elements := doc.BodyElements()
	result.Regions = p.options.Policy.Scan(elements)
	log.Debug("scan complete",
		"policy", p.options.Policy.Name(),
		"elements", len(elements),
		"regions", len(result.Regions))

	if len(result.Regions) == 0 {
		return result, nil
	}

	if p.options.OnRegionsFound != nil {
		p.options.OnRegionsFound(result.Regions)
	}

	selected, err := p.options.Selector.Select(result.Regions)
	if err != nil {
		return nil, fmt.Errorf("selecting regions: %w", err)
	}
	result.Selected = len(selected)
	if len(selected) == 0 {
		return result, nil
	}

	var indices []int
	for _, region := range selected {
		indices = append(indices, region.Indices...)
	}
	result.Removed = doc.RemoveElements(indices)
	if err := doc.Save(docPath); err != nil {
		return nil, err
	}
	log.Debug("rewrote content document", "removed", result.Removed)

	backupPath := BackupPath(path)
	if err := docx.CopyFile(path, backupPath); err != nil {
		return nil, fmt.Errorf("creating backup: %w", err)
	}
	log.Debug("backup created", "backup", backupPath)

	// Sole externally-visible mutation point.
	if err := docx.RepackDir(workDir, path); err != nil {
		return nil, err
	}

	result.BackupPath = backupPath
	result.Applied = true
	return result, nil
}

// BackupPath returns the sibling path the backup copy is written to:
// the input path with BackupSuffix inserted before the extension.
// Backups are never cleaned up automatically.
func BackupPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + BackupSuffix + ext
}
