package cvdash

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// PresentMarker is the literal end date of an ongoing engagement.
const PresentMarker = "Present"

// languagesKey is the reserved skills key holding language proficiencies.
const languagesKey = "languages"

// Document is one person's resume as loaded from JSON. A Document is never
// mutated by the renderers.
type Document struct {
	Name                   string             `json:"name" validate:"required"`
	Title                  string             `json:"title" validate:"required"`
	Location               string             `json:"location" validate:"required"`
	Photo                  Photo              `json:"photo"`
	Contact                Contact            `json:"contact"`
	Summary                Summary            `json:"summary"`
	Skills                 Skills             `json:"skills"`
	WorkExperience         List[Experience]   `json:"work_experience"`
	Projects               List[Project]      `json:"projects"`
	Workshops              List[Workshop]     `json:"workshops"`
	Certifications         List[Text]         `json:"certifications"`
	Publications           List[Publication]  `json:"publications"`
	CommunityContributions List[Contribution] `json:"community_contributions"`
	Education              List[Education]    `json:"education"`
	HobbiesAndInterests    List[string]       `json:"hobbies_and_interests"`

	baseDir string
}

// Photo points at a raster image shown in the header.
type Photo struct {
	Path    string `json:"path"`
	AltText string `json:"alt_text"`
}

// Link is a display text with its target.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url" validate:"omitempty,url"`
}

// Contact groups the contact links.
type Contact struct {
	Email    Link `json:"email"`
	LinkedIn Link `json:"linkedin"`
	GitHub   Link `json:"github"`
}

// Text wraps the {"text": ...} objects used throughout the data file.
type Text struct {
	Text string `json:"text"`
}

// Summary is the professional summary.
type Summary struct {
	Content   string `json:"content"`
	Highlight *Text  `json:"highlight,omitempty"`
}

// Dates is a free-form start/end pair. End may be PresentMarker.
type Dates struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// String joins the dates as "start - end".
func (d Dates) String() string {
	return d.Start + " - " + d.End
}

// OrNA joins the dates substituting N/A for missing parts.
func (d Dates) OrNA() string {
	return orNA(d.Start) + " - " + orNA(d.End)
}

// Ongoing reports whether the end date is PresentMarker.
func (d Dates) Ongoing() bool {
	return strings.EqualFold(strings.TrimSpace(d.End), PresentMarker)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// Responsibility is a work experience bullet. It decodes from a plain string
// or from {"text": ..., "type": ...}.
type Responsibility struct {
	Text string `json:"text"`
	Type string `json:"type,omitempty"`
}

// Bold reports whether the bullet is emphasized.
func (r Responsibility) Bold() bool {
	return r.Type == "bold"
}

func (r *Responsibility) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		r.Type = ""
		return json.Unmarshal(b, &r.Text)
	}
	type plain Responsibility
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = Responsibility(p)
	return nil
}

// Experience is one work experience entry.
type Experience struct {
	Organization     string           `json:"organization"`
	Role             Text             `json:"role"`
	Dates            Dates            `json:"dates"`
	Responsibilities []Responsibility `json:"responsibilities"`
	Technologies     []string         `json:"technologies,omitempty"`
}

// Project is one project entry.
type Project struct {
	Name         Text     `json:"name"`
	Dates        Dates    `json:"dates"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	ProjectLink  string   `json:"project_link,omitempty"`
}

// Workshop is one workshop entry.
type Workshop struct {
	Title        Text     `json:"title"`
	Date         string   `json:"date"`
	Overview     string   `json:"overview"`
	Technologies []string `json:"technologies,omitempty"`
}

// Publication is one publication entry.
type Publication struct {
	Title         Text     `json:"title"`
	Date          string   `json:"date"`
	Collaborators []string `json:"collaborators"`
	Link          Link     `json:"link"`
}

// Contribution is one community contribution entry.
type Contribution struct {
	Title        string   `json:"title"`
	Details      string   `json:"details"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// Education is one education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Dates       Dates  `json:"dates"`
	Details     string `json:"details"`
}

// List is a JSON array field that tolerates absent or malformed data. A
// value that is not an array, or an array whose items do not decode, leaves
// the list unavailable instead of failing the whole document.
type List[T any] struct {
	Items []T

	valid bool
	err   error
}

// NewList returns an available list holding items.
func NewList[T any](items ...T) List[T] {
	return List[T]{Items: items, valid: true}
}

// Available reports whether the field held a decodable, non-empty array.
func (l List[T]) Available() bool {
	return l.valid && len(l.Items) > 0
}

// Len returns the number of decoded items.
func (l List[T]) Len() int {
	return len(l.Items)
}

// Err returns the item decode error, if any.
func (l List[T]) Err() error {
	return l.err
}

func (l *List[T]) UnmarshalJSON(b []byte) error {
	l.Items, l.valid, l.err = nil, false, nil
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '[' {
		return nil
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		l.err = err
		return nil
	}
	l.Items = items
	l.valid = true
	return nil
}

func (l List[T]) MarshalJSON() ([]byte, error) {
	if !l.valid {
		return []byte("null"), nil
	}
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

// Skill is a named skill with an optional proficiency level. Skills listed
// as plain strings are unranked.
type Skill struct {
	Name  string `json:"name"`
	Level *int   `json:"level,omitempty"`
}

// Ranked reports whether the skill carries a level.
func (s Skill) Ranked() bool {
	return s.Level != nil
}

func (s *Skill) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		s.Level = nil
		return json.Unmarshal(b, &s.Name)
	}
	type plain Skill
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if p.Level != nil && (*p.Level < 0 || *p.Level > 100) {
		return fmt.Errorf("skill %q: level %d out of range 0..100", p.Name, *p.Level)
	}
	*s = Skill(p)
	return nil
}

// SkillCategory is one named group of skills.
type SkillCategory struct {
	Name   string
	Skills []Skill
}

// Names returns the skill names in order.
func (c SkillCategory) Names() []string {
	names := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		names = append(names, s.Name)
	}
	return names
}

// Language is a spoken language with a free-form proficiency.
type Language struct {
	Name        string
	Proficiency string
}

// Skills holds skill categories in file order plus the reserved languages
// mapping.
type Skills struct {
	Categories []SkillCategory
	Languages  []Language

	problems []string
}

// Available reports whether any category or language is present.
func (s Skills) Available() bool {
	return len(s.Categories) > 0 || len(s.Languages) > 0
}

func (s *Skills) UnmarshalJSON(b []byte) error {
	*s = Skills{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(b, raw); err != nil {
		return err
	}
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == languagesKey {
			langs, err := decodeLanguages(pair.Value)
			if err != nil {
				s.problems = append(s.problems, fmt.Sprintf("skills.%s: %v", languagesKey, err))
				continue
			}
			s.Languages = langs
			continue
		}
		var list []Skill
		if err := json.Unmarshal(pair.Value, &list); err != nil {
			s.problems = append(s.problems, fmt.Sprintf("skills.%s: %v", pair.Key, err))
			continue
		}
		s.Categories = append(s.Categories, SkillCategory{Name: pair.Key, Skills: list})
	}
	return nil
}

func decodeLanguages(b json.RawMessage) ([]Language, error) {
	m := orderedmap.New[string, string]()
	if err := json.Unmarshal(b, m); err != nil {
		return nil, err
	}
	out := make([]Language, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Language{Name: pair.Key, Proficiency: pair.Value})
	}
	return out, nil
}

// PhotoPath resolves the photo path against the directory the document was
// loaded from.
func (d *Document) PhotoPath() string {
	p := strings.TrimSpace(d.Photo.Path)
	if p == "" || filepath.IsAbs(p) || d.baseDir == "" {
		return p
	}
	return filepath.Join(d.baseDir, p)
}

// Problems lists fields that were present but could not be decoded. Those
// fields render as unavailable.
func (d *Document) Problems() []string {
	var out []string
	add := func(field string, err error) {
		if err != nil {
			out = append(out, fmt.Sprintf("%s: %v", field, err))
		}
	}
	add("work_experience", d.WorkExperience.Err())
	add("projects", d.Projects.Err())
	add("workshops", d.Workshops.Err())
	add("certifications", d.Certifications.Err())
	add("publications", d.Publications.Err())
	add("community_contributions", d.CommunityContributions.Err())
	add("education", d.Education.Err())
	add("hobbies_and_interests", d.HobbiesAndInterests.Err())
	out = append(out, d.Skills.problems...)
	return out
}
