package site

// cssContent is the stylesheet written alongside the generated page.
const cssContent = `:root {
  --bg: #0d1117;
  --bg-card: #161b22;
  --border: #30363d;
  --text: #e6edf3;
  --text-dim: #8b949e;
  --accent: #58a6ff;
  --accent-2: #3fb950;
  --danger: #f85149;
  --radius: 10px;
}

* { box-sizing: border-box; margin: 0; padding: 0; }

html { scroll-behavior: smooth; }

body {
  background: var(--bg);
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
}

.container { max-width: 1080px; margin: 0 auto; padding: 0 1.25rem; }

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

h1 { font-size: 2.6rem; }
h2 { font-size: 1.8rem; margin-bottom: 1.5rem; }
h3 { font-size: 1.15rem; }

.icon { vertical-align: middle; }

/* ===== Header / nav ===== */
.site-header {
  position: sticky;
  top: 0;
  z-index: 20;
  background: rgba(13, 17, 23, 0.92);
  backdrop-filter: blur(8px);
  border-bottom: 1px solid var(--border);
}

.nav {
  display: flex;
  align-items: center;
  justify-content: space-between;
  height: 60px;
}

.nav-brand { display: flex; align-items: center; gap: .5rem; color: var(--text); font-weight: 700; }
.nav-logo { height: 28px; }

.nav-links { display: flex; gap: 1.5rem; list-style: none; }
.nav-links a { color: var(--text-dim); }
.nav-links a:hover { color: var(--text); text-decoration: none; }
.nav-resume { color: var(--accent-2) !important; }

.menu-toggle {
  display: none;
  background: none;
  border: none;
  color: var(--text);
  font-size: 1.4rem;
  cursor: pointer;
}

@media (max-width: 720px) {
  .menu-toggle { display: block; }
  .nav-links {
    display: none;
    position: absolute;
    top: 60px;
    left: 0;
    right: 0;
    flex-direction: column;
    gap: 0;
    background: var(--bg-card);
    border-bottom: 1px solid var(--border);
  }
  .nav-links.open { display: flex; }
  .nav-links li { padding: .75rem 1.25rem; }
}

/* ===== Dot navigation ===== */
.dot-nav {
  position: fixed;
  right: 1rem;
  top: 50%;
  transform: translateY(-50%);
  display: flex;
  flex-direction: column;
  gap: .6rem;
  z-index: 10;
}

.dot {
  width: 9px;
  height: 9px;
  border-radius: 50%;
  background: var(--border);
  transition: background .25s, transform .25s;
}

.dot.active { background: var(--accent); transform: scale(1.35); }

@media (max-width: 720px) { .dot-nav { display: none; } }

/* ===== Sections / reveal animation ===== */
.section { padding: 4.5rem 0; }

.reveal { opacity: 0; transform: translateY(24px); transition: opacity .6s ease, transform .6s ease; }
.reveal.revealed { opacity: 1; transform: none; }

/* ===== Hero ===== */
.hero { display: flex; align-items: center; gap: 2.5rem; }
.hero-text { flex: 1; }
.headline { font-size: 1.3rem; color: var(--accent); margin-top: .25rem; }
.tagline { color: var(--text-dim); margin-top: .25rem; }
.location { color: var(--text-dim); font-size: .9rem; }
.about { margin-top: 1rem; color: var(--text-dim); max-width: 60ch; }
.hero-photo img { width: 240px; border-radius: 50%; border: 3px solid var(--border); }
.socials { display: flex; gap: .9rem; margin-top: 1.25rem; }
.social-link { color: var(--text-dim); }
.social-link:hover { color: var(--accent); }

@media (max-width: 720px) { .hero { flex-direction: column-reverse; text-align: center; } }

/* ===== Terminal widget ===== */
.terminal {
  max-width: 680px;
  margin: 0 auto 3rem;
  background: #010409;
  border: 1px solid var(--border);
  border-radius: var(--radius);
  overflow: hidden;
  font-family: "SFMono-Regular", Consolas, monospace;
  font-size: .88rem;
}

.terminal-bar {
  display: flex;
  align-items: center;
  gap: .4rem;
  padding: .5rem .75rem;
  background: var(--bg-card);
  border-bottom: 1px solid var(--border);
}

.term-dot { width: 11px; height: 11px; border-radius: 50%; }
.term-dot.red { background: #ff5f57; }
.term-dot.yellow { background: #febc2e; }
.term-dot.green { background: #28c840; }
.terminal-title { margin-left: .5rem; color: var(--text-dim); font-size: .8rem; }

.terminal-body { padding: 1rem; }
.term-prompt { color: var(--accent-2); margin-right: .5rem; }
.term-cmd { color: var(--text); }
.term-output { color: var(--text-dim); padding: .15rem 0 .5rem 1.25rem; white-space: pre-wrap; }

/* ===== Education ===== */
.education-grid { display: grid; grid-template-columns: 1fr; gap: 2rem; }
.education-grid.two-col { grid-template-columns: 2fr 1fr; }

@media (max-width: 720px) { .education-grid.two-col { grid-template-columns: 1fr; } }

.edu-card, .job-card, .project-card {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  padding: 1.25rem;
}

.edu-card + .edu-card { margin-top: 1rem; }
.edu-institution, .job-company { color: var(--accent); }
.edu-dates, .job-dates { color: var(--text-dim); font-size: .85rem; }
.edu-card ul, .job-card ul { margin: .75rem 0 0 1.25rem; color: var(--text-dim); }
.edu-logo, .job-logo { height: 40px; border-radius: 6px; }

.certifications h3 { margin-bottom: .75rem; }
.cert-list { list-style: none; }
.cert-item { padding: .5rem 0; border-bottom: 1px solid var(--border); }
.cert-meta { display: block; color: var(--text-dim); font-size: .85rem; }

/* ===== Experience ===== */
.timeline { display: flex; flex-direction: column; gap: 1rem; }
.job-head { display: flex; gap: 1rem; align-items: center; }

/* ===== Skills ===== */
.skill-groups { display: flex; flex-wrap: wrap; gap: 2rem; }
.skill-group { min-width: 220px; }
.skill-group h3 { margin-bottom: .75rem; color: var(--text-dim); }
.skill-list { display: flex; flex-wrap: wrap; gap: .5rem; list-style: none; }

.skill-tag {
  display: inline-flex;
  align-items: center;
  gap: .4rem;
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 999px;
  padding: .3rem .8rem;
  font-size: .88rem;
}

/* ===== Projects ===== */
.project-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 1.25rem; }
.project-image { width: 100%; border-radius: 6px; margin-bottom: .75rem; }
.project-desc { color: var(--text-dim); margin: .5rem 0; }
.project-tags { display: flex; flex-wrap: wrap; gap: .4rem; list-style: none; margin: .5rem 0; }
.project-tags li { font-size: .78rem; color: var(--accent); border: 1px solid var(--border); border-radius: 999px; padding: .1rem .6rem; }
.project-links { display: flex; gap: .75rem; margin-top: .5rem; }
.project-link { color: var(--text-dim); }
.project-link:hover { color: var(--accent); }

/* ===== Contact ===== */
.contact-blurb { color: var(--text-dim); max-width: 60ch; }
.contact-email { margin: .75rem 0 1.5rem; }

.contact-form { display: flex; flex-direction: column; gap: .4rem; max-width: 480px; }
.contact-form label { color: var(--text-dim); font-size: .85rem; margin-top: .6rem; }

.contact-form input, .contact-form textarea {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--text);
  padding: .6rem .75rem;
  font: inherit;
}

.contact-form input:focus, .contact-form textarea:focus { outline: none; border-color: var(--accent); }

.contact-form button {
  margin-top: 1rem;
  background: var(--accent);
  color: #0d1117;
  border: none;
  border-radius: 6px;
  padding: .7rem 1.25rem;
  font-weight: 600;
  cursor: pointer;
}

.contact-form button:disabled { opacity: .6; cursor: wait; }

/* ===== Footer ===== */
.site-footer {
  border-top: 1px solid var(--border);
  padding: 2rem 0;
  color: var(--text-dim);
  text-align: center;
  font-size: .9rem;
}

/* ===== Toast ===== */
.toast {
  position: fixed;
  bottom: 1.5rem;
  left: 50%;
  transform: translateX(-50%);
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  padding: .75rem 1.25rem;
  z-index: 30;
  max-width: 90vw;
}

.toast.success { border-color: var(--accent-2); }
.toast.error { border-color: var(--danger); }
`

// jsContent carries the page's interactive behaviors: mobile menu, contact
// form flow, toast notifications, and the scroll-reveal / dot-sync
// observer. Runtime knobs come from window.__folio, injected by the layout.
const jsContent = `(function() {
  "use strict";

  var cfg = window.__folio || {};
  var reveal = cfg.reveal || {};

  // ===== Mobile menu =====
  // The open flag is the single source of truth; DOM classes follow it.
  var menuToggle = document.getElementById("menu-toggle");
  var navLinks = document.getElementById("nav-links");
  var menuOpen = false;

  function applyMenuState() {
    if (!menuToggle || !navLinks) return;
    navLinks.classList.toggle("open", menuOpen);
    menuToggle.setAttribute("aria-expanded", String(menuOpen));
    menuToggle.querySelector(".menu-icon-open").hidden = menuOpen;
    menuToggle.querySelector(".menu-icon-close").hidden = !menuOpen;
  }

  if (menuToggle) {
    menuToggle.addEventListener("click", function() {
      menuOpen = !menuOpen;
      applyMenuState();
    });
  }

  if (navLinks) {
    navLinks.addEventListener("click", function(e) {
      if (e.target.tagName === "A" && menuOpen) {
        menuOpen = false;
        applyMenuState();
      }
    });
  }

  // ===== Toast =====
  // A new toast cancels the pending hide timer before scheduling its own,
  // so overlapping toasts never get cut short by a stale timer.
  var toastEl = document.getElementById("toast");
  var toastTimer = null;
  var toastDuration = cfg.toastDuration || 4000;

  function showToast(message, kind) {
    if (!toastEl) return;
    if (toastTimer !== null) {
      clearTimeout(toastTimer);
      toastTimer = null;
    }
    toastEl.textContent = message;
    toastEl.className = "toast " + kind;
    toastEl.hidden = false;
    toastTimer = setTimeout(function() {
      toastEl.hidden = true;
      toastTimer = null;
    }, toastDuration);
  }

  // ===== Contact form =====
  // Two states: idle and submitting. The submit control is disabled for
  // the duration and its label always restored, whatever the outcome.
  var form = document.getElementById("contact-form");
  var submitBtn = document.getElementById("contact-submit");
  var submitting = false;

  var successMessage = cfg.successMessage || "Message sent. Thank you!";
  var errorMessage = cfg.errorMessage || "Could not send your message. Please try again.";

  function submitForm(e) {
    e.preventDefault();
    if (submitting) return;
    submitting = true;

    var idleLabel = submitBtn.textContent;
    submitBtn.disabled = true;
    submitBtn.textContent = "Sending...";

    function finish() {
      submitBtn.textContent = idleLabel;
      submitBtn.disabled = false;
      submitting = false;
    }

    function succeed() {
      form.reset();
      showToast(successMessage, "success");
      finish();
    }

    function fail() {
      // Field values are left intact for a manual retry.
      showToast(errorMessage, "error");
      finish();
    }

    if (!cfg.formEndpoint) {
      // No endpoint configured: simulate success after a fixed delay.
      setTimeout(succeed, cfg.simulateDelay || 1200);
      return;
    }

    var data = new FormData(form);
    fetch(cfg.formEndpoint, {
      method: "POST",
      headers: { "Accept": "application/json" },
      body: data
    }).then(function(resp) {
      if (resp.ok) { succeed(); } else { fail(); }
    }).catch(fail);
  }

  if (form && submitBtn) {
    form.addEventListener("submit", submitForm);
  }

  // ===== Scroll reveal / dot sync =====
  var sections = Array.prototype.slice.call(document.querySelectorAll(".reveal"));
  var dots = Array.prototype.slice.call(document.querySelectorAll(".dot"));

  function setActiveDot(id) {
    dots.forEach(function(dot) {
      dot.classList.toggle("active", dot.getAttribute("data-section") === id);
    });
  }

  if ("IntersectionObserver" in window && sections.length > 0) {
    var observer = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (entry.isIntersecting) {
          entry.target.classList.add("revealed");
          if (entry.target.id) { setActiveDot(entry.target.id); }
        } else {
          // Removing the marker makes the entrance animation replay
          // the next time the section scrolls into view.
          entry.target.classList.remove("revealed");
        }
      });
    }, {
      threshold: reveal.threshold || 0.15,
      rootMargin: reveal.margin || "0px 0px -10% 0px"
    });

    sections.forEach(function(s) { observer.observe(s); });
  } else {
    sections.forEach(function(s) { s.classList.add("revealed"); });
  }

  // The observer only fires on intersection changes, so sections already
  // inside the viewport at load time need one synchronous pass. The delay
  // lets layout settle first.
  setTimeout(function() {
    var vh = window.innerHeight || document.documentElement.clientHeight;
    sections.forEach(function(s) {
      var rect = s.getBoundingClientRect();
      if (rect.top < vh && rect.bottom > 0) {
        s.classList.add("revealed");
      }
    });
  }, reveal.initialDelay || 100);

  // ===== Footer year =====
  var yearEl = document.getElementById("footer-year");
  if (yearEl) { yearEl.textContent = String(new Date().getFullYear()); }

  // ===== Live reload (dev server only) =====
  if (cfg.liveReload) {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/livereload");
    ws.onmessage = function() { location.reload(); };
  }
})();
`
