package events

const (
	StreamName   = "VANTAGE_EVENTS"
	StreamMaxAge = "168h" // 7 days
)

func SubjectSessionCreated(sessionID string) string { return "vantage.session." + sessionID + ".created" }
func SubjectSessionDeleted(sessionID string) string { return "vantage.session." + sessionID + ".deleted" }
func SubjectSessionRanked(sessionID string) string  { return "vantage.session." + sessionID + ".ranked" }

func SubjectSnapshotSaved(snapshotID string) string    { return "vantage.snapshot." + snapshotID + ".saved" }
func SubjectSnapshotRestored(snapshotID string) string { return "vantage.snapshot." + snapshotID + ".restored" }
func SubjectSnapshotDeleted(snapshotID string) string  { return "vantage.snapshot." + snapshotID + ".deleted" }
