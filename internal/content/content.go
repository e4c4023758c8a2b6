package content

// Document is the full portfolio content document. Every top-level section
// is optional; a nil section means the corresponding part of the page is
// simply not rendered.
type Document struct {
	Site       *Site       `json:"site"`
	Profile    *Profile    `json:"profile"`
	Terminal   *Terminal   `json:"terminal"`
	Education  *Education  `json:"education"`
	Experience *Experience `json:"experience"`
	Skills     *Skills     `json:"skills"`
	Projects   *Projects   `json:"projects"`
	Contact    *Contact    `json:"contact"`
	Footer     *Footer     `json:"footer"`
}

// Site holds the page chrome: title, navigation, and the optional resume link.
type Site struct {
	Title     string    `json:"title"`
	Logo      string    `json:"logo"`
	Nav       []NavLink `json:"nav"`
	ResumeURL string    `json:"resume_url"`
}

// NavLink is a single anchor-navigation entry. Href is expected to be a
// fragment identifier matching a section id (e.g. "#projects").
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Profile is the hero section: who the site belongs to.
type Profile struct {
	Name     string   `json:"name"`
	Headline string   `json:"headline"`
	Tagline  string   `json:"tagline"`
	About    string   `json:"about"` // markdown
	Photo    string   `json:"photo"`
	Location string   `json:"location"`
	Socials  []Social `json:"socials"`
}

// Social is an external profile link. Kind selects the icon glyph.
type Social struct {
	Kind  string `json:"kind"`
	URL   string `json:"url"`
	Label string `json:"label"`
}

// Terminal is the decorative terminal widget shown in the hero.
type Terminal struct {
	Title  string         `json:"title"`
	Prompt string         `json:"prompt"`
	Lines  []TerminalLine `json:"lines"`
}

// TerminalLine is one command/output pair in the terminal widget.
type TerminalLine struct {
	Command string `json:"command"`
	Output  string `json:"output"`
}

// Education holds degrees and an optional certifications block. The
// certifications block controls the section's grid layout: with no entries
// the section collapses to a single column.
type Education struct {
	Heading        string          `json:"heading"`
	Schools        []School        `json:"schools"`
	Certifications []Certification `json:"certifications"`
}

// School is a single degree entry.
type School struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Logo        string   `json:"logo"`
	Details     []string `json:"details"`
}

// Certification is a single certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
	URL    string `json:"url"`
}

// Experience holds the work history section.
type Experience struct {
	Heading string `json:"heading"`
	Jobs    []Job  `json:"jobs"`
}

// Job is a single position with its highlight bullets.
type Job struct {
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Logo    string   `json:"logo"`
	Bullets []string `json:"bullets"`
}

// Skills holds named groups of skill tags.
type Skills struct {
	Heading string       `json:"heading"`
	Groups  []SkillGroup `json:"groups"`
}

// SkillGroup is one titled cluster of skills.
type SkillGroup struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Projects holds the project cards section.
type Projects struct {
	Heading string    `json:"heading"`
	Items   []Project `json:"items"`
}

// Project is one portfolio project card.
type Project struct {
	Title       string        `json:"title"`
	Description string        `json:"description"` // markdown
	Image       string        `json:"image"`
	Tags        []string      `json:"tags"`
	Links       []ProjectLink `json:"links"`
}

// ProjectLink points at a live deployment or a source repository.
// Type is "link" for a live URL and "code" for a repository.
type ProjectLink struct {
	Type  string `json:"type"`
	URL   string `json:"url"`
	Label string `json:"label"`
}

// Contact holds the contact section copy and the form configuration.
type Contact struct {
	Heading string      `json:"heading"`
	Blurb   string      `json:"blurb"`
	Email   string      `json:"email"`
	Form    *FormConfig `json:"form"`
}

// FormConfig configures the contact form. Action is the optional relay
// endpoint; when empty, submissions are accepted locally with a simulated
// delay. The toast messages are author-configured copy.
type FormConfig struct {
	Action         string `json:"action"`
	SuccessMessage string `json:"success_message"`
	ErrorMessage   string `json:"error_message"`
}

// Footer is the page footer copy.
type Footer struct {
	Text      string `json:"text"`
	Copyright string `json:"copyright"`
}
