package site

import (
	"strings"
	"testing"

	"github.com/jinchengKuang/jay-kuang/internal/content"
)

func TestRenderersSkipAbsentSections(t *testing.T) {
	tests := []struct {
		name   string
		render func() (string, error)
	}{
		{"chrome", func() (string, error) { h, err := RenderChrome(nil); return string(h), err }},
		{"profile", func() (string, error) { h, err := RenderProfile(nil); return string(h), err }},
		{"terminal", func() (string, error) { h, err := RenderTerminal(nil); return string(h), err }},
		{"education", func() (string, error) { h, err := RenderEducation(nil); return string(h), err }},
		{"experience", func() (string, error) { h, err := RenderExperience(nil); return string(h), err }},
		{"skills", func() (string, error) { h, err := RenderSkills(nil); return string(h), err }},
		{"projects", func() (string, error) { h, err := RenderProjects(nil); return string(h), err }},
		{"contact", func() (string, error) { h, err := RenderContact(nil); return string(h), err }},
		{"footer", func() (string, error) { h, err := RenderFooter(nil); return string(h), err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.render()
			if err != nil {
				t.Fatalf("nil section should not error, got %v", err)
			}
			if out != "" {
				t.Errorf("nil section should render nothing, got %q", out)
			}
		})
	}
}

func TestRenderEducationWithoutCerts(t *testing.T) {
	html, err := RenderEducation(&content.Education{
		Schools: []content.School{{Degree: "BSc Computer Science", Institution: "UCI"}},
	})
	if err != nil {
		t.Fatalf("RenderEducation: %v", err)
	}

	out := string(html)
	if strings.Contains(out, "two-col") {
		t.Error("grid should be single-column with no certifications")
	}
	if !strings.Contains(out, `id="certifications" hidden`) {
		t.Error("certifications container should be hidden with no entries")
	}
	if !strings.Contains(out, "BSc Computer Science") {
		t.Error("degree missing from output")
	}
}

func TestRenderEducationWithCerts(t *testing.T) {
	html, err := RenderEducation(&content.Education{
		Schools: []content.School{{Degree: "BSc", Institution: "UCI"}},
		Certifications: []content.Certification{
			{Name: "AWS Solutions Architect", Issuer: "Amazon", Year: "2024"},
		},
	})
	if err != nil {
		t.Fatalf("RenderEducation: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "two-col") {
		t.Error("grid should be two-column with certifications present")
	}
	if strings.Contains(out, `id="certifications" hidden`) {
		t.Error("certifications container should be visible")
	}
	if !strings.Contains(out, "AWS Solutions Architect") {
		t.Error("certification name missing from output")
	}
}

func TestRenderProjectsCardAndIconOrder(t *testing.T) {
	projects := &content.Projects{
		Items: []content.Project{
			{
				Title: "alpha",
				Links: []content.ProjectLink{
					{Type: "link", URL: "https://alpha.example.com"},
					{Type: "code", URL: "https://github.com/x/alpha"},
				},
			},
			{
				Title: "beta",
				Links: []content.ProjectLink{
					{Type: "link", URL: "https://beta.example.com"},
					{Type: "code", URL: "https://github.com/x/beta"},
				},
			},
		},
	}

	html, err := RenderProjects(projects)
	if err != nil {
		t.Fatalf("RenderProjects: %v", err)
	}
	out := string(html)

	cards := strings.Split(out, `<article class="project-card">`)[1:]
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}

	for i, card := range cards {
		linkIdx := strings.Index(card, "icon-link")
		codeIdx := strings.Index(card, "icon-code")
		if linkIdx == -1 || codeIdx == -1 {
			t.Fatalf("card %d missing a link glyph", i)
		}
		if strings.Count(card, `class="icon `) != 2 {
			t.Errorf("card %d should contain exactly two glyphs", i)
		}
		// Glyphs follow the order the links were supplied in.
		if linkIdx > codeIdx {
			t.Errorf("card %d glyph order: link glyph should precede code glyph", i)
		}
	}
}

func TestRenderSkillsUnknownFallsBack(t *testing.T) {
	html, err := RenderSkills(&content.Skills{
		Groups: []content.SkillGroup{{Items: []string{"Go", "COBOL-85"}}},
	})
	if err != nil {
		t.Fatalf("RenderSkills: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "icon-go") {
		t.Error("known skill should use its own glyph")
	}
	if !strings.Contains(out, "icon-skill") {
		t.Error("unknown skill should use the fallback glyph")
	}
	if !strings.Contains(out, "COBOL-85") {
		t.Error("unknown skill name should still render")
	}
}

func TestRenderChromeResumeLink(t *testing.T) {
	withResume, err := RenderChrome(&content.Site{Title: "x", ResumeURL: "/resume.pdf"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(withResume), `href="/resume.pdf"`) {
		t.Error("resume link missing when resume URL is set")
	}

	withoutResume, err := RenderChrome(&content.Site{Title: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(withoutResume), "nav-resume") {
		t.Error("resume link should be absent when no resume URL is set")
	}
}

func TestRenderChromeDots(t *testing.T) {
	html, err := RenderChrome(&content.Site{
		Title: "x",
		Nav: []content.NavLink{
			{Label: "About", Href: "#profile"},
			{Label: "Projects", Href: "#projects"},
			{Label: "Blog", Href: "https://blog.example.com"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	out := string(html)
	if !strings.Contains(out, `data-section="profile"`) || !strings.Contains(out, `data-section="projects"`) {
		t.Error("anchor nav entries should produce dots")
	}
	if strings.Count(out, `class="dot"`) != 2 {
		t.Error("external nav entries should not produce dots")
	}
}

func TestRendererEscapesContent(t *testing.T) {
	html, err := RenderProfile(&content.Profile{
		Name:     `<script>alert("x")</script>`,
		Headline: "a & b",
	})
	if err != nil {
		t.Fatal(err)
	}

	out := string(html)
	if strings.Contains(out, `<script>alert`) {
		t.Error("document text must be escaped")
	}
	if !strings.Contains(out, "a &amp; b") {
		t.Error("ampersand should be entity-escaped")
	}
}

func TestRenderProfileMarkdownAbout(t *testing.T) {
	html, err := RenderProfile(&content.Profile{
		Name:  "Jay",
		About: "I build **backend** systems.",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "<strong>backend</strong>") {
		t.Error("about text should be rendered as markdown")
	}
}

func TestRenderContactForm(t *testing.T) {
	html, err := RenderContact(&content.Contact{
		Heading: "Reach out",
		Email:   "jay@example.com",
		Form:    &content.FormConfig{SuccessMessage: "ok", ErrorMessage: "bad"},
	})
	if err != nil {
		t.Fatal(err)
	}

	out := string(html)
	for _, want := range []string{`id="contact-form"`, `name="name"`, `name="email"`, `name="message"`, `id="contact-submit"`} {
		if !strings.Contains(out, want) {
			t.Errorf("form markup missing %s", want)
		}
	}
}

func TestRenderContactWithoutForm(t *testing.T) {
	html, err := RenderContact(&content.Contact{Heading: "Reach out", Email: "jay@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(html), "contact-form") {
		t.Error("no form markup expected when form config is absent")
	}
}

func TestRenderAllOrder(t *testing.T) {
	doc := &content.Document{
		Site:    &content.Site{Title: "t"},
		Profile: &content.Profile{Name: "p"},
		Footer:  &content.Footer{Copyright: "p"},
	}

	frags, err := RenderAll(doc)
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}

	if frags.Chrome == "" || frags.Profile == "" || frags.Footer == "" {
		t.Error("present sections should render")
	}
	if frags.Education != "" || frags.Projects != "" {
		t.Error("absent sections should stay empty")
	}
}

func TestSkillIconLookup(t *testing.T) {
	if SkillIcon("Go") != skillIcons["go"] {
		t.Error("lookup should be case-insensitive")
	}
	if SkillIcon("  docker  ") != skillIcons["docker"] {
		t.Error("lookup should trim whitespace")
	}
	if SkillIcon("definitely-not-a-skill") != fallbackSkillIcon {
		t.Error("unknown names should get the fallback glyph")
	}
}

func TestLinkIconLookup(t *testing.T) {
	if LinkIcon("code") != linkIcons["code"] {
		t.Error("code type should get the code glyph")
	}
	if LinkIcon("whatever") != linkIcons["link"] {
		t.Error("unknown types should get the link glyph")
	}
}
