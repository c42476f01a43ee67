package cvdash

import "strings"

// Section ids used as anchors by the interactive view.
const (
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionWorkshops      = "workshops"
	SectionCertifications = "certifications"
	SectionPublications   = "publications"
	SectionCommunity      = "community_contributions"
	SectionEducation      = "education"
	SectionHobbies        = "hobbies"
)

// NavSections are the sections offered by the bottom navigation bar.
var NavSections = []NavItem{
	{ID: SectionSummary, Label: "Summary"},
	{ID: SectionSkills, Label: "Skills"},
	{ID: SectionExperience, Label: "Work Experience"},
	{ID: SectionProjects, Label: "Projects"},
	{ID: SectionWorkshops, Label: "Workshops"},
	{ID: SectionCertifications, Label: "Certifications"},
	{ID: SectionPublications, Label: "Publications"},
}

// NavItem is one navigation link.
type NavItem struct {
	ID    string
	Label string
}

// View is the interactive rendering of a Document, shared by the terminal
// and HTML surfaces.
type View struct {
	Name     string
	Title    string
	Location string
	Photo    Photo
	Contact  []Link
	Sections []ViewSection
}

// ViewSection is one block of the interactive page. When Placeholder is set
// the section has no other content.
type ViewSection struct {
	ID          string
	Title       string
	Placeholder string
	Paragraph   string
	Highlight   string
	Items       []string
	Entries     []Entry
	SkillGroups []SkillCategory
	Languages   []Language
}

// Empty reports whether the section shows only its placeholder.
func (s ViewSection) Empty() bool {
	return s.Placeholder != ""
}

// Entry is one card in a list section.
type Entry struct {
	Title    string
	Subtitle string
	Dates    string
	Body     []Line
	Note     string
	Tags     []string
	Links    []Link
}

// Line is a body line; Bold marks emphasized responsibilities.
type Line struct {
	Text string
	Bold bool
}

// BuildView maps a document onto the interactive sections. Every unavailable
// list renders exactly one placeholder sentence.
func BuildView(doc *Document) View {
	v := View{
		Name:     doc.Name,
		Title:    doc.Title,
		Location: doc.Location,
		Photo:    doc.Photo,
	}
	for _, l := range []Link{doc.Contact.Email, doc.Contact.GitHub, doc.Contact.LinkedIn} {
		if l.URL != "" || l.Text != "" {
			v.Contact = append(v.Contact, l)
		}
	}
	v.Sections = []ViewSection{
		summarySection(doc.Summary),
		skillsSection(doc.Skills),
		experienceSection(doc.WorkExperience),
		projectsSection(doc.Projects),
		workshopsSection(doc.Workshops),
		certificationsSection(doc.Certifications),
		publicationsSection(doc.Publications),
		communitySection(doc.CommunityContributions),
		educationSection(doc.Education),
		hobbiesSection(doc.HobbiesAndInterests),
	}
	return v
}

func summarySection(s Summary) ViewSection {
	sec := ViewSection{ID: SectionSummary, Title: "Professional Summary"}
	if strings.TrimSpace(s.Content) == "" {
		sec.Placeholder = "No summary available."
		return sec
	}
	sec.Paragraph = s.Content
	if s.Highlight != nil {
		sec.Highlight = s.Highlight.Text
	}
	return sec
}

func skillsSection(s Skills) ViewSection {
	sec := ViewSection{ID: SectionSkills, Title: "Skills Overview"}
	if !s.Available() {
		sec.Placeholder = "No skills available."
		return sec
	}
	sec.SkillGroups = s.Categories
	sec.Languages = s.Languages
	return sec
}

func experienceSection(l List[Experience]) ViewSection {
	sec := ViewSection{ID: SectionExperience, Title: "Work Experience"}
	if !l.Available() {
		sec.Placeholder = "No work experience available."
		return sec
	}
	for _, e := range l.Items {
		entry := Entry{
			Title:    e.Role.Text,
			Subtitle: e.Organization,
			Dates:    e.Dates.OrNA(),
			Tags:     e.Technologies,
		}
		for _, r := range e.Responsibilities {
			entry.Body = append(entry.Body, Line{Text: r.Text, Bold: r.Bold()})
		}
		sec.Entries = append(sec.Entries, entry)
	}
	return sec
}

func projectsSection(l List[Project]) ViewSection {
	sec := ViewSection{ID: SectionProjects, Title: "Projects"}
	if !l.Available() {
		sec.Placeholder = "No projects available."
		return sec
	}
	for _, p := range l.Items {
		entry := Entry{
			Title: p.Name.Text,
			Dates: p.Dates.OrNA(),
			Body:  textLines(p.Description),
			Tags:  p.Technologies,
		}
		if p.ProjectLink != "" {
			entry.Links = []Link{{Text: "Project Link", URL: p.ProjectLink}}
		}
		sec.Entries = append(sec.Entries, entry)
	}
	return sec
}

func workshopsSection(l List[Workshop]) ViewSection {
	sec := ViewSection{ID: SectionWorkshops, Title: "Workshops"}
	if !l.Available() {
		sec.Placeholder = "No workshops available."
		return sec
	}
	for _, w := range l.Items {
		sec.Entries = append(sec.Entries, Entry{
			Title: w.Title.Text,
			Dates: orNA(w.Date),
			Body:  textLines(w.Overview),
			Tags:  w.Technologies,
		})
	}
	return sec
}

func certificationsSection(l List[Text]) ViewSection {
	sec := ViewSection{ID: SectionCertifications, Title: "Certifications"}
	if !l.Available() {
		sec.Placeholder = "No certifications available."
		return sec
	}
	for _, c := range l.Items {
		sec.Items = append(sec.Items, c.Text)
	}
	return sec
}

func publicationsSection(l List[Publication]) ViewSection {
	sec := ViewSection{ID: SectionPublications, Title: "Publications"}
	if !l.Available() {
		sec.Placeholder = "No publications available."
		return sec
	}
	for _, p := range l.Items {
		entry := Entry{
			Title: p.Title.Text,
			Dates: p.Date,
			Note:  "Collaborators: " + strings.Join(p.Collaborators, ", "),
		}
		if p.Link.URL != "" || p.Link.Text != "" {
			entry.Links = []Link{p.Link}
		}
		sec.Entries = append(sec.Entries, entry)
	}
	return sec
}

func communitySection(l List[Contribution]) ViewSection {
	sec := ViewSection{ID: SectionCommunity, Title: "Community Contributions"}
	if !l.Available() {
		sec.Placeholder = "No community contributions available."
		return sec
	}
	for _, c := range l.Items {
		entry := Entry{
			Title: c.Title,
			Body:  textLines(c.Details),
			Tags:  c.Technologies,
		}
		if c.Link != "" {
			entry.Links = []Link{{Text: c.Link, URL: c.Link}}
		}
		sec.Entries = append(sec.Entries, entry)
	}
	return sec
}

func educationSection(l List[Education]) ViewSection {
	sec := ViewSection{ID: SectionEducation, Title: "Education"}
	if !l.Available() {
		sec.Placeholder = "No education details available."
		return sec
	}
	for _, e := range l.Items {
		sec.Entries = append(sec.Entries, Entry{
			Title:    e.Degree,
			Subtitle: e.Institution,
			Dates:    e.Dates.OrNA(),
			Body:     textLines(e.Details),
		})
	}
	return sec
}

func hobbiesSection(l List[string]) ViewSection {
	sec := ViewSection{ID: SectionHobbies, Title: "Hobbies and Interests"}
	if !l.Available() {
		sec.Placeholder = "No hobbies and interests available."
		return sec
	}
	sec.Items = append(sec.Items, l.Items...)
	return sec
}

func textLines(s string) []Line {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return []Line{{Text: s}}
}
