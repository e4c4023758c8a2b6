package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/jinchengKuang/jay-kuang/internal/content"
)

// Renderers map one section of the content document to an HTML fragment.
// Every renderer follows the same contract: a nil section yields an empty
// fragment and no error; otherwise the fragment is built deterministically
// from the section's fields through the escaping template engine. Only
// glyphs from the internal icon tables and goldmark output enter as raw
// markup.

var sectionTmpl = template.Must(template.New("sections").Parse(sectionTemplates))

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := sectionTmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// chromeView feeds the site chrome template: nav, dot navigation, resume link.
type chromeView struct {
	Title     string
	Logo      string
	Nav       []content.NavLink
	ResumeURL string
	// Dots lists the section ids targeted by the nav, for the dot-sync
	// markers down the page edge.
	Dots []dotView
}

type dotView struct {
	Section string
	Label   string
}

// RenderChrome builds the page header, navigation, mobile menu markup and
// the dot-navigation rail. Resume links render only when a resume URL is
// present.
func RenderChrome(s *content.Site) (template.HTML, error) {
	if s == nil {
		return "", nil
	}

	view := chromeView{
		Title:     s.Title,
		Logo:      s.Logo,
		Nav:       s.Nav,
		ResumeURL: s.ResumeURL,
	}
	for _, link := range s.Nav {
		if len(link.Href) > 1 && link.Href[0] == '#' {
			view.Dots = append(view.Dots, dotView{Section: link.Href[1:], Label: link.Label})
		}
	}

	return execute("chrome", view)
}

type profileView struct {
	*content.Profile
	AboutHTML template.HTML
	Socials   []socialView
}

type socialView struct {
	content.Social
	Icon template.HTML
}

// RenderProfile builds the hero section. The about text is markdown.
func RenderProfile(p *content.Profile) (template.HTML, error) {
	if p == nil {
		return "", nil
	}

	about, err := renderMarkdown(p.About)
	if err != nil {
		return "", err
	}

	view := profileView{Profile: p, AboutHTML: about}
	for _, s := range p.Socials {
		view.Socials = append(view.Socials, socialView{Social: s, Icon: SocialIcon(s.Kind)})
	}

	return execute("profile", view)
}

// RenderTerminal builds the decorative terminal widget.
func RenderTerminal(t *content.Terminal) (template.HTML, error) {
	if t == nil {
		return "", nil
	}
	return execute("terminal", t)
}

type educationView struct {
	*content.Education
	// HasCerts drives the only conditional layout in the renderer set:
	// without certifications the grid collapses to a single column and the
	// certifications container stays hidden.
	HasCerts bool
}

// RenderEducation builds the education section with its conditional
// certifications block.
func RenderEducation(e *content.Education) (template.HTML, error) {
	if e == nil {
		return "", nil
	}
	return execute("education", educationView{Education: e, HasCerts: len(e.Certifications) > 0})
}

// RenderExperience builds the work history section.
func RenderExperience(e *content.Experience) (template.HTML, error) {
	if e == nil {
		return "", nil
	}
	return execute("experience", e)
}

type skillsView struct {
	Heading string
	Groups  []skillGroupView
}

type skillGroupView struct {
	Title string
	Items []skillView
}

type skillView struct {
	Name string
	Icon template.HTML
}

// RenderSkills builds the skills section, resolving each skill name through
// the icon table.
func RenderSkills(s *content.Skills) (template.HTML, error) {
	if s == nil {
		return "", nil
	}

	view := skillsView{Heading: s.Heading}
	for _, g := range s.Groups {
		gv := skillGroupView{Title: g.Title}
		for _, name := range g.Items {
			gv.Items = append(gv.Items, skillView{Name: name, Icon: SkillIcon(name)})
		}
		view.Groups = append(view.Groups, gv)
	}

	return execute("skills", view)
}

type projectsView struct {
	Heading string
	Items   []projectView
}

type projectView struct {
	*content.Project
	DescriptionHTML template.HTML
	Links           []projectLinkView
}

type projectLinkView struct {
	content.ProjectLink
	Icon template.HTML
}

// RenderProjects builds the project card grid. Link glyphs render in the
// order the links appear in the document.
func RenderProjects(p *content.Projects) (template.HTML, error) {
	if p == nil {
		return "", nil
	}

	view := projectsView{Heading: p.Heading}
	for i := range p.Items {
		item := &p.Items[i]
		desc, err := renderMarkdown(item.Description)
		if err != nil {
			return "", err
		}
		pv := projectView{Project: item, DescriptionHTML: desc}
		for _, link := range item.Links {
			pv.Links = append(pv.Links, projectLinkView{ProjectLink: link, Icon: LinkIcon(link.Type)})
		}
		view.Items = append(view.Items, pv)
	}

	return execute("projects", view)
}

// RenderContact builds the contact section with the form markup. The form
// always posts to the local API; the relay endpoint is server-side.
func RenderContact(c *content.Contact) (template.HTML, error) {
	if c == nil {
		return "", nil
	}
	return execute("contact", c)
}

// RenderFooter builds the page footer.
func RenderFooter(f *content.Footer) (template.HTML, error) {
	if f == nil {
		return "", nil
	}
	return execute("footer", f)
}

// Fragments holds the rendered HTML for every page slot, in document order.
type Fragments struct {
	Chrome     template.HTML
	Profile    template.HTML
	Terminal   template.HTML
	Education  template.HTML
	Experience template.HTML
	Skills     template.HTML
	Projects   template.HTML
	Contact    template.HTML
	Footer     template.HTML
}

// RenderAll runs every section renderer once, sequentially, in the fixed
// page order. The first failing renderer stops the chain; fragments
// rendered before the failure are discarded by the caller.
func RenderAll(doc *content.Document) (*Fragments, error) {
	var (
		f   Fragments
		err error
	)

	if f.Chrome, err = RenderChrome(doc.Site); err != nil {
		return nil, err
	}
	if f.Profile, err = RenderProfile(doc.Profile); err != nil {
		return nil, err
	}
	if f.Terminal, err = RenderTerminal(doc.Terminal); err != nil {
		return nil, err
	}
	if f.Education, err = RenderEducation(doc.Education); err != nil {
		return nil, err
	}
	if f.Experience, err = RenderExperience(doc.Experience); err != nil {
		return nil, err
	}
	if f.Skills, err = RenderSkills(doc.Skills); err != nil {
		return nil, err
	}
	if f.Projects, err = RenderProjects(doc.Projects); err != nil {
		return nil, err
	}
	if f.Contact, err = RenderContact(doc.Contact); err != nil {
		return nil, err
	}
	if f.Footer, err = RenderFooter(doc.Footer); err != nil {
		return nil, err
	}

	return &f, nil
}
