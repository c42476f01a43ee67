package pdf

import (
	"strings"

	"pkt.systems/cvdash"
)

// Section titles of the exported document.
const (
	TitleSummary        = "Professional Summary"
	TitleSkills         = "Skills Overview"
	TitleExperience     = "Work Experience"
	TitleProjects       = "Projects"
	TitleWorkshops      = "Workshops"
	TitleCertifications = "Certifications"
	TitlePublications   = "Publications"
	TitleCommunity      = "Community Contributions"
	TitleEducation      = "Education"
	TitleHobbies        = "Hobbies and Interests"
)

// Table is one tabular section: a head row and one row per list item.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

type blockKind uint8

const (
	kindSection blockKind = iota
	kindTable
)

func (k blockKind) String() string {
	if k == kindTable {
		return "table"
	}
	return "section"
}

// plannedBlock is a section waiting to be drawn.
type plannedBlock struct {
	kind      blockKind
	title     string
	text      string
	highlight string
	table     Table
}

// Tables returns the tabular sections the export draws for doc, in order.
// Sections without data are absent.
func Tables(doc *cvdash.Document, cfg Config) []Table {
	var out []Table
	for _, b := range planBlocks(doc, cfg) {
		if b.kind == kindTable {
			out = append(out, b.table)
		}
	}
	return out
}

// planBlocks lists the sections in their fixed export order, skipping the
// ones whose data is missing or malformed.
func planBlocks(doc *cvdash.Document, cfg Config) []plannedBlock {
	var blocks []plannedBlock
	if strings.TrimSpace(doc.Summary.Content) != "" {
		b := plannedBlock{kind: kindSection, title: TitleSummary, text: doc.Summary.Content}
		if doc.Summary.Highlight != nil {
			b.highlight = doc.Summary.Highlight.Text
		}
		blocks = append(blocks, b)
	}
	addTable := func(t Table, ok bool) {
		if ok && len(t.Rows) > 0 {
			blocks = append(blocks, plannedBlock{kind: kindTable, title: t.Title, table: t})
		}
	}
	addTable(skillsTable(doc.Skills), doc.Skills.Available())
	addTable(experienceTable(doc.WorkExperience), doc.WorkExperience.Available())
	addTable(projectsTable(doc.Projects), doc.Projects.Available())
	addTable(workshopsTable(doc.Workshops), doc.Workshops.Available())
	addTable(certificationsTable(doc.Certifications), doc.Certifications.Available())
	addTable(publicationsTable(doc.Publications), doc.Publications.Available())
	if cfg.ExtendedSections {
		addTable(communityTable(doc.CommunityContributions), doc.CommunityContributions.Available())
		addTable(educationTable(doc.Education), doc.Education.Available())
	}
	if doc.HobbiesAndInterests.Available() {
		blocks = append(blocks, plannedBlock{
			kind:  kindSection,
			title: TitleHobbies,
			text:  strings.Join(doc.HobbiesAndInterests.Items, "\n"),
		})
	}
	return blocks
}

func skillsTable(s cvdash.Skills) Table {
	t := Table{Title: TitleSkills, Columns: []string{"Category", "Skills"}}
	for _, c := range s.Categories {
		t.Rows = append(t.Rows, []string{c.Name, strings.Join(c.Names(), ", ")})
	}
	if len(s.Languages) > 0 {
		langs := make([]string, 0, len(s.Languages))
		for _, l := range s.Languages {
			if l.Proficiency == "" {
				langs = append(langs, l.Name)
				continue
			}
			langs = append(langs, l.Name+" ("+l.Proficiency+")")
		}
		t.Rows = append(t.Rows, []string{"languages", strings.Join(langs, ", ")})
	}
	return t
}

func experienceTable(l cvdash.List[cvdash.Experience]) Table {
	t := Table{Title: TitleExperience, Columns: []string{"Role", "Organization", "Dates", "Responsibilities"}}
	for _, e := range l.Items {
		resp := make([]string, 0, len(e.Responsibilities))
		for _, r := range e.Responsibilities {
			resp = append(resp, r.Text)
		}
		t.Rows = append(t.Rows, []string{e.Role.Text, e.Organization, e.Dates.String(), strings.Join(resp, "\n")})
	}
	return t
}

func projectsTable(l cvdash.List[cvdash.Project]) Table {
	t := Table{Title: TitleProjects, Columns: []string{"Name", "Dates", "Description"}}
	for _, p := range l.Items {
		t.Rows = append(t.Rows, []string{p.Name.Text, p.Dates.String(), p.Description})
	}
	return t
}

func workshopsTable(l cvdash.List[cvdash.Workshop]) Table {
	t := Table{Title: TitleWorkshops, Columns: []string{"Title", "Date", "Overview"}}
	for _, w := range l.Items {
		t.Rows = append(t.Rows, []string{w.Title.Text, w.Date, w.Overview})
	}
	return t
}

func certificationsTable(l cvdash.List[cvdash.Text]) Table {
	t := Table{Title: TitleCertifications, Columns: []string{"Certification"}}
	for _, c := range l.Items {
		t.Rows = append(t.Rows, []string{c.Text})
	}
	return t
}

func publicationsTable(l cvdash.List[cvdash.Publication]) Table {
	t := Table{Title: TitlePublications, Columns: []string{"Title", "Date", "Collaborators", "Link Text", "Link URL"}}
	for _, p := range l.Items {
		t.Rows = append(t.Rows, []string{p.Title.Text, p.Date, strings.Join(p.Collaborators, ", "), p.Link.Text, p.Link.URL})
	}
	return t
}

func communityTable(l cvdash.List[cvdash.Contribution]) Table {
	t := Table{Title: TitleCommunity, Columns: []string{"Title", "Details", "Link"}}
	for _, c := range l.Items {
		t.Rows = append(t.Rows, []string{c.Title, c.Details, c.Link})
	}
	return t
}

func educationTable(l cvdash.List[cvdash.Education]) Table {
	t := Table{Title: TitleEducation, Columns: []string{"Degree", "Institution", "Dates", "Details"}}
	for _, e := range l.Items {
		t.Rows = append(t.Rows, []string{e.Degree, e.Institution, e.Dates.String(), e.Details})
	}
	return t
}
