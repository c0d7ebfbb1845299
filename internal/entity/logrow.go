package entity

// LogRow is one access log record: path, timestamp, user agent, status, size.
type LogRow struct {
	Path      string `csv:"path"`
	Timestamp string `csv:"timestamp"`
	UserAgent string `csv:"user_agent"`
	Status    string `csv:"status"`
	Size      string `csv:"size"`
}

// LogRowHeader is the fixed column layout of the access log
var LogRowHeader = []string{"path", "timestamp", "user_agent", "status", "size"}

func NewLogRow(path, timestamp, userAgent, status, size string) *LogRow {
	return &LogRow{
		Path:      path,
		Timestamp: timestamp,
		UserAgent: userAgent,
		Status:    status,
		Size:      size,
	}
}
