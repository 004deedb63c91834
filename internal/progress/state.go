package progress

import (
	"github.com/techskyline/academy/internal/catalog"
)

// ActivityLogCap bounds the activity log; the oldest entries are evicted
// first once the cap is reached.
const ActivityLogCap = 50

// xpPerLevel is the xp span of a single level.
const xpPerLevel = 1000

// State is the learner's aggregate progress record. The JSON field names
// match the persisted document layout of existing learner data and must not
// change.
//
// CompletedModules, CompletedLabs and Certificates behave as sets with
// insertion order kept for display. Level is derived from XP; it is stored
// for the benefit of external readers but always recomputed on load.
type State struct {
	CompletedModules []string       `json:"completedModules"`
	CompletedLabs    []string       `json:"completedLabs"`
	XP               int            `json:"xp"`
	Level            int            `json:"level"`
	Track            string         `json:"track"`
	Skills           map[string]int `json:"skills"`
	ActivityLog      []Activity     `json:"activityLogs"`
	Certificates     []string       `json:"certificates"`
}

// DefaultState returns the documented starting state for a fresh learner:
// zero xp, level 1, empty completion sets, and the starter skill seed.
func DefaultState() State {
	return State{
		CompletedModules: []string{},
		CompletedLabs:    []string{},
		XP:               0,
		Level:            1,
		Track:            catalog.DefaultTrack,
		Skills:           catalog.StarterSkills(),
		ActivityLog:      []Activity{},
		Certificates:     []string{},
	}
}

// LevelForXP computes the level derived from an xp total.
func LevelForXP(xp int) int {
	return xp/xpPerLevel + 1
}

// HasModule reports whether the module id is in the completed set.
func (s State) HasModule(id string) bool {
	return contains(s.CompletedModules, id)
}

// HasLab reports whether the lab id is in the completed set.
func (s State) HasLab(id string) bool {
	return contains(s.CompletedLabs, id)
}

// HasCertificate reports whether the certificate id is already recorded.
func (s State) HasCertificate(id string) bool {
	return contains(s.Certificates, id)
}

// Clone returns a deep copy of the state. Snapshot readers get clones so no
// caller can reach back into ledger-owned memory.
func (s State) Clone() State {
	out := s
	out.CompletedModules = append([]string(nil), s.CompletedModules...)
	out.CompletedLabs = append([]string(nil), s.CompletedLabs...)
	out.Certificates = append([]string(nil), s.Certificates...)
	out.ActivityLog = append([]Activity(nil), s.ActivityLog...)
	out.Skills = make(map[string]int, len(s.Skills))
	for name, score := range s.Skills {
		out.Skills[name] = score
	}
	return out
}

// normalize repairs a state loaded from storage: nil collections become
// empty, the level is recomputed from xp, skill scores are re-clamped, and
// the activity log is re-trimmed. Loaded data written by older versions (or
// edited by hand) must never crash the ledger.
func (s *State) normalize() {
	if s.CompletedModules == nil {
		s.CompletedModules = []string{}
	}
	if s.CompletedLabs == nil {
		s.CompletedLabs = []string{}
	}
	if s.Certificates == nil {
		s.Certificates = []string{}
	}
	if s.ActivityLog == nil {
		s.ActivityLog = []Activity{}
	}
	if s.Skills == nil {
		s.Skills = catalog.StarterSkills()
	}
	for name, score := range s.Skills {
		s.Skills[name] = clampSkill(score)
	}
	if s.XP < 0 {
		s.XP = 0
	}
	if s.Track == "" {
		s.Track = catalog.DefaultTrack
	}
	s.Level = LevelForXP(s.XP)
	if len(s.ActivityLog) > ActivityLogCap {
		s.ActivityLog = s.ActivityLog[:ActivityLogCap]
	}
}

// appendUnique inserts id into the set, keeping insertion order.
// Re-inserting an existing id is a no-op.
func appendUnique(set []string, id string) []string {
	if contains(set, id) {
		return set
	}
	return append(set, id)
}

func contains(set []string, id string) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}
