// Package catalog holds the static curriculum: learning modules, live labs,
// career tracks, and the starter skill seed. The catalog is compiled in; it
// is the external constant that certificate eligibility is measured against.
package catalog

// Module is a single curriculum unit.
type Module struct {
	ID          string
	Title       string
	Description string
	Order       int
	Skills      []string
	Credits     int
	Content     string
}

// Lab is an interactive prompt-engineering exercise.
type Lab struct {
	ID            string
	Title         string
	Overview      string
	SystemPrompt  string
	InitialPrompt string
	Challenges    []string
}

// Modules returns the full module catalog in curriculum order.
func Modules() []Module {
	return modules
}

// Labs returns the lab catalog.
func Labs() []Lab {
	return labs
}

// ModuleByID returns the module with the given id, or false if unknown.
func ModuleByID(id string) (Module, bool) {
	for _, m := range modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// LabByID returns the lab with the given id, or false if unknown.
func LabByID(id string) (Lab, bool) {
	for _, l := range labs {
		if l.ID == id {
			return l, true
		}
	}
	return Lab{}, false
}

// Size returns the number of modules in the catalog.
func Size() int {
	return len(modules)
}

// TotalCredits returns the sum of credits across all modules.
func TotalCredits() int {
	total := 0
	for _, m := range modules {
		total += m.Credits
	}
	return total
}

// CreditsFor sums the credits of the given completed module ids. Unknown ids
// contribute nothing.
func CreditsFor(moduleIDs []string) int {
	total := 0
	for _, id := range moduleIDs {
		if m, ok := ModuleByID(id); ok {
			total += m.Credits
		}
	}
	return total
}

// StarterSkills returns the skill scores a fresh learner starts with.
// Returned as a new map on every call so callers can mutate freely.
func StarterSkills() map[string]int {
	return map[string]int{
		"Prompt Design":       10,
		"Agentic Logic":       5,
		"Data Literacy":       0,
		"Enterprise Strategy": 0,
		"Ethics & Compliance": 0,
	}
}

// Tracks lists the career tracks a learner can declare. The track is a label
// carried on the progress record and stamped onto certificates; it does not
// gate any behavior.
func Tracks() []string {
	return []string{
		"Data Analyst",
		"AI Engineer",
		"Prompt Specialist",
		"AI Researcher",
		"Neural Architect",
		"Ethical Hacking AI",
		"FinTech AI Strategist",
		"Creative GenAI Lead",
		"Product Management",
	}
}

// DefaultTrack is the track assigned before the learner declares one.
const DefaultTrack = "AI Engineer"

// IsTrack reports whether name is a known career track.
func IsTrack(name string) bool {
	for _, t := range Tracks() {
		if t == name {
			return true
		}
	}
	return false
}
