package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jinchengKuang/jay-kuang/internal/content"
)

// Options tunes the runtime behavior baked into the generated page.
type Options struct {
	// FormEndpoint is where the contact form posts. Empty means the page
	// script simulates a successful submission after SimulateDelayMS.
	FormEndpoint string
	// RevealThreshold, RevealMargin and RevealDelayMS configure the
	// scroll-reveal observer.
	RevealThreshold float64
	RevealMargin    string
	RevealDelayMS   int
	// ToastDurationMS is the toast auto-hide delay.
	ToastDurationMS int
	// SimulateDelayMS is the fake-submit delay when no endpoint is set.
	SimulateDelayMS int
	// LiveReload makes the page script connect to the dev server's
	// websocket and reload on change events.
	LiveReload bool
}

// Generator renders a content document into a self-contained static site.
type Generator struct {
	Doc       *content.Document
	OutputDir string
	StaticDir string
	Include   []string
	Exclude   []string
	Opts      Options
}

// pageData is what the layout template receives.
type pageData struct {
	Title      string
	Fragments  *Fragments
	ConfigJSON template.JS
}

// runtimeConfig is serialized into the page as window.__folio.
type runtimeConfig struct {
	FormEndpoint   string       `json:"formEndpoint,omitempty"`
	SuccessMessage string       `json:"successMessage,omitempty"`
	ErrorMessage   string       `json:"errorMessage,omitempty"`
	ToastDuration  int          `json:"toastDuration,omitempty"`
	SimulateDelay  int          `json:"simulateDelay,omitempty"`
	Reveal         revealConfig `json:"reveal"`
	LiveReload     bool         `json:"liveReload,omitempty"`
}

type revealConfig struct {
	Threshold    float64 `json:"threshold,omitempty"`
	Margin       string  `json:"margin,omitempty"`
	InitialDelay int     `json:"initialDelay,omitempty"`
}

// Generate renders every section in fixed order, assembles the page, writes
// the style and script assets, and copies static files into the output
// directory. Returns the number of non-empty section fragments.
func (g *Generator) Generate() (int, error) {
	frags, err := RenderAll(g.Doc)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	cfgJSON, err := g.runtimeConfigJSON()
	if err != nil {
		return 0, err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	data := pageData{
		Title:      g.pageTitle(),
		Fragments:  frags,
		ConfigJSON: cfgJSON,
	}

	f, err := os.Create(filepath.Join(g.OutputDir, "index.html"))
	if err != nil {
		return 0, err
	}
	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return 0, fmt.Errorf("rendering page: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, err
	}

	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	if g.StaticDir != "" {
		if err := g.copyStatic(); err != nil {
			return 0, fmt.Errorf("copying static assets: %w", err)
		}
	}

	return countFragments(frags), nil
}

func (g *Generator) pageTitle() string {
	if g.Doc.Site != nil && g.Doc.Site.Title != "" {
		return g.Doc.Site.Title
	}
	if g.Doc.Profile != nil && g.Doc.Profile.Name != "" {
		return g.Doc.Profile.Name
	}
	return "Portfolio"
}

func (g *Generator) runtimeConfigJSON() (template.JS, error) {
	rc := runtimeConfig{
		FormEndpoint:  g.Opts.FormEndpoint,
		ToastDuration: g.Opts.ToastDurationMS,
		SimulateDelay: g.Opts.SimulateDelayMS,
		Reveal: revealConfig{
			Threshold:    g.Opts.RevealThreshold,
			Margin:       g.Opts.RevealMargin,
			InitialDelay: g.Opts.RevealDelayMS,
		},
		LiveReload: g.Opts.LiveReload,
	}

	// Toast copy comes from the content document.
	if g.Doc.Contact != nil && g.Doc.Contact.Form != nil {
		rc.SuccessMessage = g.Doc.Contact.Form.SuccessMessage
		rc.ErrorMessage = g.Doc.Contact.Form.ErrorMessage
	}

	b, err := json.Marshal(rc)
	if err != nil {
		return "", fmt.Errorf("marshalling runtime config: %w", err)
	}
	return template.JS(b), nil
}

// copyStatic copies the static asset tree into the output directory,
// honoring the include/exclude glob patterns.
func (g *Generator) copyStatic() error {
	if _, err := os.Stat(g.StaticDir); os.IsNotExist(err) {
		return nil
	}

	return filepath.WalkDir(g.StaticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(g.StaticDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !g.wantAsset(rel) {
			return nil
		}

		outPath := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(outPath, data, 0o644)
	})
}

// wantAsset applies include then exclude patterns to a slash-separated
// relative path. No include patterns means include everything.
func (g *Generator) wantAsset(rel string) bool {
	included := len(g.Include) == 0
	for _, pat := range g.Include {
		if ok, _ := doublestar.Match(pat, rel); ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, pat := range g.Exclude {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return false
		}
	}
	return true
}

func countFragments(f *Fragments) int {
	n := 0
	for _, frag := range []template.HTML{
		f.Chrome, f.Profile, f.Terminal, f.Education, f.Experience,
		f.Skills, f.Projects, f.Contact, f.Footer,
	} {
		if frag != "" {
			n++
		}
	}
	return n
}
