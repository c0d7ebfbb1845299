package entity

import "time"

// Report is a rendered statistics report ready to be archived
type Report struct {
	RunID       string
	Source      string
	GeneratedAt time.Time
	Body        string
}
