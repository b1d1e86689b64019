package holiday

import (
	"encoding/json"
	"time"
)

type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeSpecific Scope = "specific"
)

var ScopeValues = []string{
	string(ScopeAll),
	string(ScopeSpecific),
}

// Holiday suppresses a working day. A holiday scoped "all" applies to
// every worker; one scoped "specific" applies only to the workers in its
// Workers set.
type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	AppliesTo Scope
	Workers   []WorkerRef
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkerRef identifies a worker inside a holiday scope. Records imported
// from the old system store the raw worker ID; records written by this
// backend store a populated summary. Both forms occur in the same
// collection, so WorkerID normalizes before any comparison.
type WorkerRef struct {
	Raw     string
	Summary *WorkerSummary
}

type WorkerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// WorkerID returns the referenced worker's identifier regardless of which
// form the reference holds.
func (r WorkerRef) WorkerID() string {
	if r.Summary != nil {
		return r.Summary.ID
	}
	return r.Raw
}

// RefFromID builds the raw-identifier form.
func RefFromID(id string) WorkerRef {
	return WorkerRef{Raw: id}
}

// RefFromSummary builds the populated form.
func RefFromSummary(id, name string) WorkerRef {
	return WorkerRef{Summary: &WorkerSummary{ID: id, Name: name}}
}

// UnmarshalJSON accepts either a bare ID string or a worker summary
// object, matching the two shapes found in stored holiday documents.
func (r *WorkerRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.Raw = id
		r.Summary = nil
		return nil
	}

	var summary WorkerSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return err
	}
	r.Raw = ""
	r.Summary = &summary
	return nil
}

func (r WorkerRef) MarshalJSON() ([]byte, error) {
	if r.Summary != nil {
		return json.Marshal(r.Summary)
	}
	return json.Marshal(r.Raw)
}

// Covers reports whether this holiday applies to the given worker.
func (h Holiday) Covers(workerID string) bool {
	if h.AppliesTo == ScopeAll {
		return true
	}
	if h.AppliesTo != ScopeSpecific {
		return false
	}
	for _, ref := range h.Workers {
		if ref.WorkerID() == workerID {
			return true
		}
	}
	return false
}
