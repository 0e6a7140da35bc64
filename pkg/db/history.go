package db

import (
	"fmt"
	"time"

	"github.com/dnorberg/wiki-scraper/models"
)

// PageRecord is one entry of the analysis history.
type PageRecord struct {
	PageID       int64     `yaml:"page_id"`
	URL          string    `yaml:"url"`
	AnalyzedAt   time.Time `yaml:"analyzed_at"`
	Language     string    `yaml:"language,omitempty"`
	SectionCount int       `yaml:"section_count"`
	Status       string    `yaml:"status"`
	Error        string    `yaml:"error,omitempty"`
}

// RecordAnalysis stores a successful page analysis and its per-section
// counts in one transaction. Returns the new page ID.
func (db *DB) RecordAnalysis(analysis *models.PageAnalysis) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO pages (url, language, section_count, status) VALUES (?, ?, ?, 'success')",
		analysis.URL, analysis.Language, len(analysis.Sections),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert page: %w", err)
	}
	pageID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get page ID: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO sections (page_id, position, name, paragraphs, hyperlinks, pictures, words, no_content) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare section insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range analysis.Sections {
		if _, err := stmt.Exec(pageID, i, s.Name, s.Paragraphs, s.Hyperlinks, s.Pictures, s.Words, s.NoContent); err != nil {
			return 0, fmt.Errorf("failed to insert section %q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit analysis: %w", err)
	}
	return pageID, nil
}

// RecordFailure stores a failed analysis attempt for a URL.
func (db *DB) RecordFailure(url string, cause error) error {
	_, err := db.Exec(
		"INSERT INTO pages (url, status, error) VALUES (?, 'failed', ?)",
		url, cause.Error(),
	)
	if err != nil {
		return fmt.Errorf("failed to record failure: %w", err)
	}
	return nil
}

// RecentPages returns the most recent history entries, newest first.
func (db *DB) RecentPages(limit int) ([]PageRecord, error) {
	rows, err := db.Query(
		"SELECT page_id, url, analyzed_at, COALESCE(language, ''), section_count, status, COALESCE(error, '') FROM pages ORDER BY page_id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []PageRecord
	for rows.Next() {
		var r PageRecord
		if err := rows.Scan(&r.PageID, &r.URL, &r.AnalyzedAt, &r.Language, &r.SectionCount, &r.Status, &r.Error); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// PageSections returns the stored per-section counts of a page, in
// page order.
func (db *DB) PageSections(pageID int64) ([]models.SectionReport, error) {
	rows, err := db.Query(
		"SELECT name, paragraphs, hyperlinks, pictures, words, no_content FROM sections WHERE page_id = ? ORDER BY position",
		pageID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	var reports []models.SectionReport
	for rows.Next() {
		var s models.SectionReport
		if err := rows.Scan(&s.Name, &s.Paragraphs, &s.Hyperlinks, &s.Pictures, &s.Words, &s.NoContent); err != nil {
			return nil, fmt.Errorf("failed to scan section row: %w", err)
		}
		reports = append(reports, s)
	}
	return reports, rows.Err()
}
