package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jinchengKuang/jay-kuang/internal/content"
)

func testDoc() *content.Document {
	return &content.Document{
		Site:    &content.Site{Title: "Jay Kuang", Nav: []content.NavLink{{Label: "Projects", Href: "#projects"}}},
		Profile: &content.Profile{Name: "Jay Kuang", Headline: "Software Engineer"},
		Projects: &content.Projects{Items: []content.Project{
			{Title: "folio", Links: []content.ProjectLink{{Type: "code", URL: "https://example.com"}}},
		}},
		Contact: &content.Contact{
			Heading: "Contact",
			Form:    &content.FormConfig{SuccessMessage: "sent!", ErrorMessage: "failed!"},
		},
		Footer: &content.Footer{Copyright: "Jay Kuang"},
	}
}

func TestGenerate(t *testing.T) {
	outDir := t.TempDir()
	g := &Generator{
		Doc:       testDoc(),
		OutputDir: outDir,
		Opts: Options{
			RevealThreshold: 0.15,
			RevealMargin:    "0px 0px -10% 0px",
			RevealDelayMS:   100,
			ToastDurationMS: 4000,
		},
	}

	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 5 {
		t.Errorf("rendered sections = %d, want 5", n)
	}

	for _, name := range []string{"index.html", "style.css", "script.js"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}

	page, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(page)

	if !strings.Contains(html, "<title>Jay Kuang</title>") {
		t.Error("page title missing")
	}
	if !strings.Contains(html, "window.__folio") {
		t.Error("runtime config missing from page")
	}
	if !strings.Contains(html, `"successMessage":"sent!"`) {
		t.Error("toast copy should be baked into the runtime config")
	}
	if !strings.Contains(html, `"errorMessage":"failed!"`) {
		t.Error("error toast copy should be baked into the runtime config")
	}
	if !strings.Contains(html, `id="toast"`) {
		t.Error("toast container missing")
	}
	if !strings.Contains(html, `id="contact-form"`) {
		t.Error("contact form missing")
	}
}

func TestGenerateFormEndpoint(t *testing.T) {
	outDir := t.TempDir()
	g := &Generator{
		Doc:       testDoc(),
		OutputDir: outDir,
		Opts:      Options{FormEndpoint: "/api/contact", LiveReload: true},
	}

	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	page, _ := os.ReadFile(filepath.Join(outDir, "index.html"))
	if !strings.Contains(string(page), `"formEndpoint":"/api/contact"`) {
		t.Error("form endpoint should be in the runtime config")
	}
	if !strings.Contains(string(page), `"liveReload":true`) {
		t.Error("live reload flag should be in the runtime config")
	}
}

func TestGenerateCopiesStatic(t *testing.T) {
	staticDir := t.TempDir()
	outDir := t.TempDir()

	files := map[string]string{
		"resume.pdf":         "pdf bytes",
		"images/me.png":      "png bytes",
		"design/mock.sketch": "sketch bytes",
	}
	for rel, body := range files {
		path := filepath.Join(staticDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	g := &Generator{
		Doc:       testDoc(),
		OutputDir: outDir,
		StaticDir: staticDir,
		Include:   []string{"**"},
		Exclude:   []string{"*.sketch", "**/*.sketch"},
	}
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "resume.pdf")); err != nil {
		t.Error("resume.pdf should be copied")
	}
	if _, err := os.Stat(filepath.Join(outDir, "images", "me.png")); err != nil {
		t.Error("images/me.png should be copied")
	}
	if _, err := os.Stat(filepath.Join(outDir, "design", "mock.sketch")); err == nil {
		t.Error("excluded file should not be copied")
	}
}

func TestGenerateMinimalDoc(t *testing.T) {
	// A document with only a profile still produces a valid page.
	g := &Generator{
		Doc:       &content.Document{Profile: &content.Profile{Name: "Jay"}},
		OutputDir: t.TempDir(),
	}

	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 1 {
		t.Errorf("rendered sections = %d, want 1", n)
	}

	page, _ := os.ReadFile(filepath.Join(g.OutputDir, "index.html"))
	if !strings.Contains(string(page), "<title>Jay</title>") {
		t.Error("title should fall back to the profile name")
	}
}

func TestScriptCarriesControllers(t *testing.T) {
	// The emitted script owns the interactive behaviors; make sure the
	// load-time visibility pass and the toast timer reset are present.
	for _, want := range []string{"IntersectionObserver", "getBoundingClientRect", "clearTimeout", "menu-toggle", "contact-form"} {
		if !strings.Contains(jsContent, want) {
			t.Errorf("script asset missing %s", want)
		}
	}
}
