package domain

// SnapshotSet is the set reference embedded in a daily snapshot.
type SnapshotSet struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DailySnapshot is the portable blob the pre-generation job writes for one
// day: everything a client needs to build a deck without re-deriving the
// pool.
type DailySnapshot struct {
	Date       string                 `json:"date"`
	Seed       string                 `json:"seed"`
	Set        SnapshotSet            `json:"set"`
	Pool       []TrimmedCard          `json:"pool"`
	BasicLands map[string]TrimmedCard `json:"basicLands"`
}
