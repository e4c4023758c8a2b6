package site

// sectionTemplates defines one named template per page section. Section
// wrapper ids double as anchor targets for the nav and as the observation
// set for the scroll-reveal script; the "reveal" class marks a section as
// participating in the entrance animation.
const sectionTemplates = `
{{define "chrome"}}
<header class="site-header" id="site-header">
  <nav class="nav container">
    <a href="#top" class="nav-brand">
      {{if .Logo}}<img src="{{.Logo}}" alt="" class="nav-logo">{{end}}
      <span>{{.Title}}</span>
    </a>
    <ul class="nav-links" id="nav-links">
      {{range .Nav}}
      <li><a href="{{.Href}}">{{.Label}}</a></li>
      {{end}}
      {{if .ResumeURL}}
      <li><a href="{{.ResumeURL}}" class="nav-resume" download>Resume</a></li>
      {{end}}
    </ul>
    <button class="menu-toggle" id="menu-toggle" aria-label="Toggle menu" aria-expanded="false">
      <span class="menu-icon-open">&#9776;</span>
      <span class="menu-icon-close" hidden>&#10005;</span>
    </button>
  </nav>
</header>
<aside class="dot-nav" id="dot-nav" aria-hidden="true">
  {{range .Dots}}
  <span class="dot" data-section="{{.Section}}" title="{{.Label}}"></span>
  {{end}}
</aside>
{{end}}

{{define "profile"}}
<section id="profile" class="section reveal">
  <div class="container hero">
    <div class="hero-text">
      <h1 id="profile-name">{{.Name}}</h1>
      {{if .Headline}}<p class="headline" id="profile-headline">{{.Headline}}</p>{{end}}
      {{if .Tagline}}<p class="tagline" id="profile-tagline">{{.Tagline}}</p>{{end}}
      {{if .Location}}<p class="location">{{.Location}}</p>{{end}}
      {{if .AboutHTML}}<div class="about" id="profile-about">{{.AboutHTML}}</div>{{end}}
      {{if .Socials}}
      <div class="socials">
        {{range .Socials}}
        <a href="{{.URL}}" class="social-link" target="_blank" rel="noopener"{{if .Label}} aria-label="{{.Label}}"{{end}}>{{.Icon}}</a>
        {{end}}
      </div>
      {{end}}
    </div>
    {{if .Photo}}
    <div class="hero-photo">
      <img src="{{.Photo}}" alt="{{.Name}}" id="profile-photo">
    </div>
    {{end}}
  </div>
</section>
{{end}}

{{define "terminal"}}
<div class="terminal reveal" id="terminal">
  <div class="terminal-bar">
    <span class="term-dot red"></span><span class="term-dot yellow"></span><span class="term-dot green"></span>
    {{if .Title}}<span class="terminal-title">{{.Title}}</span>{{end}}
  </div>
  <div class="terminal-body">
    {{range .Lines}}
    <div class="term-line">
      <span class="term-prompt">{{if $.Prompt}}{{$.Prompt}}{{else}}${{end}}</span>
      <span class="term-cmd">{{.Command}}</span>
    </div>
    {{if .Output}}<div class="term-output">{{.Output}}</div>{{end}}
    {{end}}
  </div>
</div>
{{end}}

{{define "education"}}
<section id="education" class="section reveal">
  <div class="container">
    <h2>{{if .Heading}}{{.Heading}}{{else}}Education{{end}}</h2>
    <div class="education-grid{{if .HasCerts}} two-col{{end}}" id="education-grid">
      <div class="schools">
        {{range .Schools}}
        <article class="edu-card">
          {{if .Logo}}<img src="{{.Logo}}" alt="{{.Institution}}" class="edu-logo">{{end}}
          <h3>{{.Degree}}</h3>
          <p class="edu-institution">{{.Institution}}</p>
          <p class="edu-dates">{{.Start}}{{if .End}} &ndash; {{.End}}{{end}}</p>
          {{if .Details}}
          <ul>
            {{range .Details}}<li>{{.}}</li>{{end}}
          </ul>
          {{end}}
        </article>
        {{end}}
      </div>
      <div class="certifications" id="certifications"{{if not .HasCerts}} hidden{{end}}>
        <h3>Certifications</h3>
        <ul class="cert-list">
          {{range .Certifications}}
          <li class="cert-item">
            {{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Name}}</a>{{else}}{{.Name}}{{end}}
            <span class="cert-meta">{{.Issuer}}{{if .Year}} &middot; {{.Year}}{{end}}</span>
          </li>
          {{end}}
        </ul>
      </div>
    </div>
  </div>
</section>
{{end}}

{{define "experience"}}
<section id="experience" class="section reveal">
  <div class="container">
    <h2>{{if .Heading}}{{.Heading}}{{else}}Experience{{end}}</h2>
    <div class="timeline">
      {{range .Jobs}}
      <article class="job-card">
        <div class="job-head">
          {{if .Logo}}<img src="{{.Logo}}" alt="{{.Company}}" class="job-logo">{{end}}
          <div>
            <h3>{{.Title}}</h3>
            <p class="job-company">{{.Company}}</p>
            <p class="job-dates">{{.Start}}{{if .End}} &ndash; {{.End}}{{end}}</p>
          </div>
        </div>
        {{if .Bullets}}
        <ul>
          {{range .Bullets}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}
      </article>
      {{end}}
    </div>
  </div>
</section>
{{end}}

{{define "skills"}}
<section id="skills" class="section reveal">
  <div class="container">
    <h2>{{if .Heading}}{{.Heading}}{{else}}Skills{{end}}</h2>
    <div class="skill-groups">
      {{range .Groups}}
      <div class="skill-group">
        {{if .Title}}<h3>{{.Title}}</h3>{{end}}
        <ul class="skill-list">
          {{range .Items}}
          <li class="skill-tag">{{.Icon}}<span>{{.Name}}</span></li>
          {{end}}
        </ul>
      </div>
      {{end}}
    </div>
  </div>
</section>
{{end}}

{{define "projects"}}
<section id="projects" class="section reveal">
  <div class="container">
    <h2>{{if .Heading}}{{.Heading}}{{else}}Projects{{end}}</h2>
    <div class="project-grid" id="project-grid">
      {{range .Items}}
      <article class="project-card">
        {{if .Image}}<img src="{{.Image}}" alt="{{.Title}}" class="project-image">{{end}}
        <h3>{{.Title}}</h3>
        {{if .DescriptionHTML}}<div class="project-desc">{{.DescriptionHTML}}</div>{{end}}
        {{if .Tags}}
        <ul class="project-tags">
          {{range .Tags}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}
        {{if .Links}}
        <div class="project-links">
          {{range .Links}}
          <a href="{{.URL}}" class="project-link" data-link-type="{{.Type}}" target="_blank" rel="noopener"{{if .Label}} aria-label="{{.Label}}"{{end}}>{{.Icon}}</a>
          {{end}}
        </div>
        {{end}}
      </article>
      {{end}}
    </div>
  </div>
</section>
{{end}}

{{define "contact"}}
<section id="contact" class="section reveal">
  <div class="container">
    <h2>{{if .Heading}}{{.Heading}}{{else}}Contact{{end}}</h2>
    {{if .Blurb}}<p class="contact-blurb">{{.Blurb}}</p>{{end}}
    {{if .Email}}<p class="contact-email"><a href="mailto:{{.Email}}">{{.Email}}</a></p>{{end}}
    {{if .Form}}
    <form id="contact-form" class="contact-form" novalidate>
      <label for="cf-name">Name</label>
      <input type="text" id="cf-name" name="name" required>
      <label for="cf-email">Email</label>
      <input type="email" id="cf-email" name="email" required>
      <label for="cf-message">Message</label>
      <textarea id="cf-message" name="message" rows="5" required></textarea>
      <button type="submit" id="contact-submit">Send Message</button>
    </form>
    {{end}}
  </div>
</section>
{{end}}

{{define "footer"}}
<footer class="site-footer" id="site-footer">
  <div class="container">
    {{if .Text}}<p>{{.Text}}</p>{{end}}
    {{if .Copyright}}<p class="copyright">&copy; <span id="footer-year"></span> {{.Copyright}}</p>{{end}}
  </div>
</footer>
{{end}}
`

// pageTemplate is the full-page layout. Each slot receives a pre-rendered
// fragment; absent sections contribute nothing to the document.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
  <script>window.__folio = {{.ConfigJSON}};</script>
</head>
<body id="top">
{{.Fragments.Chrome}}
<main>
{{.Fragments.Profile}}
{{.Fragments.Terminal}}
{{.Fragments.Education}}
{{.Fragments.Experience}}
{{.Fragments.Skills}}
{{.Fragments.Projects}}
{{.Fragments.Contact}}
</main>
{{.Fragments.Footer}}
<div id="toast" class="toast" role="status" aria-live="polite" hidden></div>
<script src="script.js"></script>
</body>
</html>
`
