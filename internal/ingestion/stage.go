package ingestion

// Stage is the progress of a DataIngestion: NotStarted → Downloaded → Extracted
type Stage int

const (
	NotStarted Stage = iota
	Downloaded
	Extracted
)

func (s Stage) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Downloaded:
		return "downloaded"
	case Extracted:
		return "extracted"
	default:
		return "unknown"
	}
}
