package models

// SyncResult is the caller-facing outcome of one sync run. It is not
// persisted; its fields are projected onto the location's POS config by the
// status reporter.
type SyncResult struct {
	Success  bool   `json:"success"`
	Count    int    `json:"count"`
	Removed  int    `json:"removed"`
	Provider string `json:"provider,omitempty"`
	Error    string `json:"error,omitempty"`
}
