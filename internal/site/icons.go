package site

import (
	"html/template"
	"strings"
)

// Icon glyphs are inline SVG from a fixed internal table, so they are the
// only markup injected raw into templates. Everything coming from the
// content document goes through the default escaper.

// svgIcon wraps an SVG path set in the shared icon frame.
func svgIcon(class, inner string) template.HTML {
	return template.HTML(`<svg class="icon ` + class + `" viewBox="0 0 24 24" width="20" height="20" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">` + inner + `</svg>`)
}

// skillIcons maps normalized skill names to their glyphs.
var skillIcons = map[string]template.HTML{
	"go":         svgIcon("icon-go", `<path d="M4 12h10M4 8h12M4 16h8"/><circle cx="18" cy="12" r="3"/>`),
	"python":     svgIcon("icon-python", `<path d="M12 3c-3 0-4 1.5-4 3v2h8v1H6c-2 0-3 1.5-3 3s1 3 3 3h2v-2c0-1.5 1-3 4-3s4-1.5 4-3V6c0-1.5-1-3-4-3z"/>`),
	"javascript": svgIcon("icon-js", `<rect x="3" y="3" width="18" height="18" rx="2"/><path d="M10 11v5a2 2 0 0 1-2 2m8-7h-3a1 1 0 0 0 0 3h1a1 1 0 0 1 0 3h-3"/>`),
	"typescript": svgIcon("icon-ts", `<rect x="3" y="3" width="18" height="18" rx="2"/><path d="M8 10h5m-2.5 0v7m6-7v.5a1.5 1.5 0 0 1 0 3v0a1.5 1.5 0 0 1 0 3v.5"/>`),
	"java":       svgIcon("icon-java", `<path d="M8 21s6 0 8-2c-2 0-4-1-4-1M10 3s3 2 0 5 0 5 0 5"/><path d="M6 14c0 2 2.7 3 6 3s6-1 6-3"/>`),
	"c++":        svgIcon("icon-cpp", `<path d="M14 7a6 6 0 1 0 0 10"/><path d="M17 10v4m-2-2h4"/>`),
	"sql":        svgIcon("icon-sql", `<ellipse cx="12" cy="5" rx="8" ry="3"/><path d="M4 5v14c0 1.7 3.6 3 8 3s8-1.3 8-3V5"/><path d="M4 12c0 1.7 3.6 3 8 3s8-1.3 8-3"/>`),
	"html":       svgIcon("icon-html", `<path d="m4 3 1.5 17L12 22l6.5-2L20 3z"/><path d="M8 8h8l-.5 6L12 15.5 8.5 14"/>`),
	"css":        svgIcon("icon-css", `<path d="m4 3 1.5 17L12 22l6.5-2L20 3z"/><path d="M8 8h8m-7.5 4h7l-.5 3L12 16l-3-1"/>`),
	"react":      svgIcon("icon-react", `<circle cx="12" cy="12" r="2"/><ellipse cx="12" cy="12" rx="10" ry="4"/><ellipse cx="12" cy="12" rx="10" ry="4" transform="rotate(60 12 12)"/><ellipse cx="12" cy="12" rx="10" ry="4" transform="rotate(120 12 12)"/>`),
	"docker":     svgIcon("icon-docker", `<path d="M3 13h18c0 4-3 7-9 7s-9-3-9-7z"/><path d="M6 13V9h3v4m0-4V5h3v8m0-4h3v4"/>`),
	"git":        svgIcon("icon-git", `<circle cx="6" cy="6" r="2.5"/><circle cx="6" cy="18" r="2.5"/><circle cx="18" cy="12" r="2.5"/><path d="M6 8.5v7m2-8 7.5 3.5"/>`),
	"linux":      svgIcon("icon-linux", `<path d="M12 2c-3 0-4 2.5-4 5 0 3-3 6-3 10 0 2.5 2 5 7 5s7-2.5 7-5c0-4-3-7-3-10 0-2.5-1-5-4-5z"/><circle cx="10" cy="8" r=".5"/><circle cx="14" cy="8" r=".5"/>`),
	"aws":        svgIcon("icon-aws", `<path d="M4 16c2 2 5 3 8 3s6-1 8-3"/><path d="M6 8a3 3 0 0 1 6-1 2.5 2.5 0 0 1 4 2 2.5 2.5 0 0 1-1 4.8H7A3 3 0 0 1 6 8z"/>`),
	"kubernetes": svgIcon("icon-k8s", `<path d="m12 2 8 4v8l-8 8-8-8V6z"/><circle cx="12" cy="12" r="3.5"/>`),
}

// fallbackSkillIcon is used for any skill name not present in skillIcons.
// Unknown skills still render, just with the generic gear glyph.
var fallbackSkillIcon = svgIcon("icon-skill", `<circle cx="12" cy="12" r="3"/><path d="M12 2v3m0 14v3M2 12h3m14 0h3M4.9 4.9l2.1 2.1m10 10 2.1 2.1m0-14.2-2.1 2.1m-10 10-2.1 2.1"/>`)

// SkillIcon returns the glyph for a skill name, falling back to the generic
// glyph for unknown names. Lookup is case-insensitive.
func SkillIcon(name string) template.HTML {
	if icon, ok := skillIcons[strings.ToLower(strings.TrimSpace(name))]; ok {
		return icon
	}
	return fallbackSkillIcon
}

// linkIcons maps project link types to their glyphs.
var linkIcons = map[string]template.HTML{
	"link": svgIcon("icon-link", `<path d="M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"/><path d="M15 3h6v6m-11 5L21 3"/>`),
	"code": svgIcon("icon-code", `<path d="m16 18 6-6-6-6M8 6l-6 6 6 6"/>`),
}

// LinkIcon returns the glyph for a project link type ("link" or "code").
// Unrecognized types get the "link" glyph.
func LinkIcon(linkType string) template.HTML {
	if icon, ok := linkIcons[strings.ToLower(linkType)]; ok {
		return icon
	}
	return linkIcons["link"]
}

// socialIcons maps social profile kinds to their glyphs.
var socialIcons = map[string]template.HTML{
	"github":   svgIcon("icon-github", `<path d="M9 19c-4 1.5-4-2.5-6-3m12 5v-3.5c0-1 .1-1.4-.5-2 2.8-.3 5.5-1.4 5.5-6a4.6 4.6 0 0 0-1.3-3.2 4.2 4.2 0 0 0-.1-3.2s-1-.3-3.4 1.3a12 12 0 0 0-6.2 0C6.5 2.8 5.5 3.1 5.5 3.1a4.2 4.2 0 0 0-.1 3.2A4.6 4.6 0 0 0 4.1 9.5c0 4.6 2.7 5.7 5.5 6-.6.6-.6 1.2-.5 2V21"/>`),
	"linkedin": svgIcon("icon-linkedin", `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-4 0v7h-4V8h4v1.5A6 6 0 0 1 16 8z"/><rect x="2" y="9" width="4" height="12"/><circle cx="4" cy="4" r="2"/>`),
	"email":    svgIcon("icon-email", `<rect x="2" y="4" width="20" height="16" rx="2"/><path d="m22 7-10 6L2 7"/>`),
}

// SocialIcon returns the glyph for a social profile kind, falling back to
// the external-link glyph.
func SocialIcon(kind string) template.HTML {
	if icon, ok := socialIcons[strings.ToLower(kind)]; ok {
		return icon
	}
	return linkIcons["link"]
}
