package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to folio.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to folio! Let's set up your portfolio site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content document location.
	contentPrompt := promptui.Prompt{
		Label:   "Content document (path or URL)",
		Default: cfg.Content,
	}
	contentSrc, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}
	cfg.Content = contentSrc

	// 2. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 3. Static assets directory.
	staticPrompt := promptui.Prompt{
		Label:   "Static assets directory",
		Default: cfg.StaticDir,
	}
	staticDir, err := staticPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}
	cfg.StaticDir = staticDir

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Dev server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Save("folio.yml"); err != nil {
		return nil, err
	}
	fmt.Println("\nConfiguration saved to folio.yml")

	// Write a starter content document if none exists yet.
	if _, err := os.Stat(cfg.Content); os.IsNotExist(err) {
		if err := os.WriteFile(cfg.Content, []byte(starterContent), 0o644); err != nil {
			return nil, fmt.Errorf("writing starter content: %w", err)
		}
		fmt.Printf("Starter content document written to %s\n", cfg.Content)
	}

	return cfg, nil
}

// starterContent is the skeleton content document written by the wizard.
const starterContent = `{
  "site": {
    "title": "Your Name",
    "nav": [
      {"label": "About", "href": "#profile"},
      {"label": "Projects", "href": "#projects"},
      {"label": "Contact", "href": "#contact"}
    ]
  },
  "profile": {
    "name": "Your Name",
    "headline": "What you do",
    "about": "A few sentences about yourself. **Markdown** works here."
  },
  "projects": {
    "heading": "Projects",
    "items": [
      {
        "title": "My Project",
        "description": "What it does and why it matters.",
        "tags": ["Go"],
        "links": [
          {"type": "code", "url": "https://github.com/you/project"}
        ]
      }
    ]
  },
  "contact": {
    "heading": "Get in touch",
    "email": "you@example.com",
    "form": {
      "success_message": "Thanks! I'll get back to you soon.",
      "error_message": "Something went wrong. Please try again later."
    }
  },
  "footer": {
    "copyright": "Your Name"
  }
}
`
