// Package resume converts raw extracted resume text into a fixed-shape structured record.
package resume

// Section identifies a named resume section detected from a header line.
type Section string

// Known resume sections. The zero value means no section has been seen yet.
const (
	SectionNone           Section = ""
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
)

// Personal holds the contact block of a resume.
// Location, LinkedIn and Website are part of the shape but are never populated by ParseText.
type Personal struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Entry is a single item within a resume section.
type Entry map[string]any

// Record is the structured form of a resume.
// Its keys and types are the same for every input; the section lists are always non-nil
// so they serialize as empty JSON arrays.
type Record struct {
	Personal       Personal `json:"personal"`
	Summary        string   `json:"summary"`
	Experience     []Entry  `json:"experience"`
	Education      []Entry  `json:"education"`
	Skills         []Entry  `json:"skills"`
	Projects       []Entry  `json:"projects"`
	Certifications []Entry  `json:"certifications"`
}

// NewRecord returns an empty record with every field present.
func NewRecord() *Record {
	return &Record{
		Experience:     []Entry{},
		Education:      []Entry{},
		Skills:         []Entry{},
		Projects:       []Entry{},
		Certifications: []Entry{},
	}
}
