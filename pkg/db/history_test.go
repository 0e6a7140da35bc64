package db

import (
	"errors"
	"testing"

	"github.com/dnorberg/wiki-scraper/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func sampleAnalysis() *models.PageAnalysis {
	return &models.PageAnalysis{
		URL:      "https://en.wikipedia.org/wiki/Town",
		Language: "English",
		Sections: []models.SectionReport{
			{Name: "History", Paragraphs: 2, Hyperlinks: 3, Pictures: 1, Words: 120},
			{Name: "Geography", Paragraphs: 1, Words: 40},
			{Name: "Empty", NoContent: true},
		},
	}
}

func TestRecordAnalysisAndReadBack(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	pageID, err := db.RecordAnalysis(sampleAnalysis())
	if err != nil {
		t.Fatalf("RecordAnalysis returned error: %v", err)
	}

	records, err := db.RecentPages(10)
	if err != nil {
		t.Fatalf("RecentPages returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("history length = %d, want 1", len(records))
	}
	got := records[0]
	if got.PageID != pageID || got.URL != "https://en.wikipedia.org/wiki/Town" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.SectionCount != 3 || got.Status != "success" {
		t.Errorf("section_count=%d status=%q, want 3/success", got.SectionCount, got.Status)
	}

	sections, err := db.PageSections(pageID)
	if err != nil {
		t.Fatalf("PageSections returned error: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("sections length = %d, want 3", len(sections))
	}
	if sections[0].Name != "History" || sections[0].Words != 120 {
		t.Errorf("unexpected first section: %+v", sections[0])
	}
	if !sections[2].NoContent {
		t.Error("third section should be marked no_content")
	}
}

func TestRecordFailure(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.RecordFailure("https://example.com/bad", errors.New("status code: 404")); err != nil {
		t.Fatalf("RecordFailure returned error: %v", err)
	}

	records, err := db.RecentPages(10)
	if err != nil {
		t.Fatalf("RecentPages returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("history length = %d, want 1", len(records))
	}
	if records[0].Status != "failed" || records[0].Error == "" {
		t.Errorf("unexpected failure record: %+v", records[0])
	}
}

func TestRecentPagesOrderAndLimit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 5; i++ {
		analysis := sampleAnalysis()
		if _, err := db.RecordAnalysis(analysis); err != nil {
			t.Fatalf("RecordAnalysis returned error: %v", err)
		}
	}

	records, err := db.RecentPages(3)
	if err != nil {
		t.Fatalf("RecentPages returned error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("history length = %d, want 3", len(records))
	}
	// Newest first.
	if records[0].PageID < records[1].PageID || records[1].PageID < records[2].PageID {
		t.Errorf("records not in reverse chronological order: %+v", records)
	}
}
