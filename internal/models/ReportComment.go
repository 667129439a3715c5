package models

// ReportComment is the append-only comment trail under a maintenance
// report. Comments are never edited or deleted.
type ReportComment struct {
	Document
	ReportID   string  `json:"reportId" gorm:"index"`
	AuthorID   string  `json:"authorId"`
	AuthorName string  `json:"authorName"`
	Text       string  `json:"text"`
	ImageURL   *string `json:"imageUrl"`
}
