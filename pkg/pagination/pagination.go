package pagination

const (
	// DefaultLogWindow is the ledger window returned when no limit is given.
	DefaultLogWindow = 90
	// RecentLogsWindow is the per-habit log window joined into habit listings.
	RecentLogsWindow = 30
	// MaxLimit caps how many rows any windowed query can request.
	MaxLimit = 365
)

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLogWindow
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
