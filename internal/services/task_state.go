package services

// Provider task state codes. Anything outside the three known codes is
// reported as UNKNOWN rather than faulting, and is never treated as
// completed.
const (
	StateCompleted  = 10
	StateFailed     = 20
	StateProcessing = 30
)

// StateText maps a raw provider state code to its canonical name. The
// mapping is total: unrecognized codes yield "UNKNOWN".
func StateText(state int) string {
	switch state {
	case StateCompleted:
		return "COMPLETED"
	case StateFailed:
		return "FAILED"
	case StateProcessing:
		return "PROCESSING"
	default:
		return "UNKNOWN"
	}
}
