package site

// pageTemplate is the Go html/template for the whole page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" class="{{if .Dark}}dark{{else}}light{{end}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  {{with .Description}}<meta name="description" content="{{.}}">
  <meta property="og:description" content="{{.}}">{{end}}
  <meta property="og:title" content="{{.Title}}">
  {{with .BaseURL}}<link rel="canonical" href="{{.}}">{{end}}
  <link rel="stylesheet" href="style.css">
  <script src="https://code.iconify.design/3/3.1.1/iconify.min.js"></script>
</head>
<body data-live="{{.Live}}">
{{.Header}}
<main>
  <section class="hero">
    <div class="hero-inner">
      <div class="hero-logo">{{.Product}}</div>
      <h2 class="hero-tagline">{{.Tagline}}</h2>
      <p class="hero-intro">{{.Intro}}</p>
      <div class="badges">
        {{range .Badges}}<span class="badge">{{with .Icon}}<span class="iconify" data-icon="{{.}}"></span>{{end}} {{.Label}}</span>
        {{end}}
      </div>
      <div class="cta">
        <a href="#installation" class="btn btn-primary" data-nav>Get Started</a>
        <a href="#features" class="btn btn-ghost" data-nav>View Features</a>
      </div>
      <div class="stats">
        {{range .Stats}}<div class="stat"><div class="stat-value">{{.Value}}</div><div class="stat-label">{{.Label}}</div></div>
        {{end}}
      </div>
    </div>
  </section>

  <section class="section" id="benefits">
    <h3>Why {{.Product}}?</h3>
    <div class="grid grid-5">{{.Sections.Benefits}}</div>
  </section>

  <section class="section" id="features">
    <h3>Features</h3>
    <div class="grid grid-4">{{.Sections.Features}}</div>
  </section>

  {{.Installation}}

  {{.Usage}}

  <section class="section" id="customization">
    <h3>Customization</h3>
    <div class="panel">
      <ul class="notes">
        {{range .Sections.Customization}}<li>{{.}}</li>
        {{end}}
      </ul>
    </div>
  </section>

  <section class="section" id="props">
    <h3>Props</h3>
    <div class="table-scroll">
      <div class="table props-table">
        <div class="table-head"><div>Prop</div><div>Type</div><div>Default</div><div>Description</div></div>
        <div class="table-body">{{.Sections.Props}}</div>
      </div>
    </div>
  </section>

  <section class="section" id="shortcuts">
    <h3>Keyboard Shortcuts</h3>
    <div class="table shortcuts-table">
      <div class="table-head"><div>Action</div><div>Shortcut</div></div>
      <div class="table-body">{{.Sections.Shortcuts}}</div>
    </div>
  </section>

  <section class="section" id="troubleshooting">
    <h3>Troubleshooting</h3>
    <ul class="notes">
      {{range .Sections.Troubleshooting}}<li>{{.}}</li>
      {{end}}
    </ul>
  </section>

  <section class="section" id="changelog">
    <h3>Changelog Highlights</h3>
    <ul class="notes">{{.Sections.Changelog}}</ul>
  </section>
</main>
<footer class="site-footer">
  <div class="footer-inner">
    <div>{{.Footer.Copyright}}</div>
    <div>{{range .Footer.Links}}<a href="{{.Href}}" target="_blank" rel="noopener noreferrer">{{.Label}}</a>{{end}}</div>
  </div>
</footer>
<script src="script.js"></script>
</body>
</html>`

// headerTemplate renders the sticky header and the mobile menu.
const headerTemplate = `<header class="site-header" id="site-header">
  <div class="header-inner">
    <a href="#" class="logo">{{.Product}}</a>
    <nav class="desktop-nav">
      {{range .Desktop}}<a href="{{.Anchor}}" class="nav-link" data-nav>{{.Label}}</a>
      {{end}}<a href="#installation" class="btn btn-primary" data-nav>Get Started</a>
    </nav>
    <button class="hamburger" type="button" data-action="toggle-menu" aria-label="{{if .MenuOpen}}Close menu{{else}}Open menu{{end}}" aria-expanded="{{.MenuOpen}}">
      <span class="iconify icon-open" data-icon="ci:hamburger-md"></span>
      <svg class="icon-close" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M6 18L18 6M6 6l12 12"/></svg>
    </button>
  </div>
  {{if or .MenuOpen (not .Live)}}<div class="mobile-menu" id="mobile-menu"{{if not .MenuOpen}} hidden{{end}}>
    <nav>
      {{range .Mobile}}<a href="{{.Anchor}}" class="nav-link" data-nav>{{.Label}}</a>
      {{end}}<a href="#installation" class="btn btn-primary btn-block" data-nav>Get Started</a>
    </nav>
  </div>{{end}}
</header>`

// installationTemplate wraps the copy control in its section.
const installationTemplate = `<section class="section" id="installation">
  <h3>Installation</h3>
  <p class="muted">{{.Hint}}</p>
  {{.Control}}
</section>`

// copyControlTemplate is the clickable install command.
const copyControlTemplate = `<div class="copy-control" role="button" tabindex="0" aria-label="Copy install command" data-action="copy" data-copy-text="{{.Raw}}" data-tooltip-message="{{.Message}}" data-tooltip-position="{{.Position}}">
    <div class="copy-code">{{.Command}}</div>
    <div class="copy-hint">
      <span class="copy-label" aria-live="polite">{{if .Copied}}{{.Message}}{{else}}Click to copy{{end}}</span>
      <svg class="copy-icon" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M8 16H6a2 2 0 01-2-2V6a2 2 0 012-2h8a2 2 0 012 2v2m-6 12h8a2 2 0 002-2v-8a2 2 0 00-2-2h-8a2 2 0 00-2 2v8a2 2 0 002 2z"/></svg>
    </div>
  </div>`

// usageTemplate shows the highlighted usage example.
const usageTemplate = `<section class="section" id="usage">
  <h3>Usage Example</h3>
  <div class="code-panel">{{.Code}}</div>
</section>`

const cardTemplate = `<div class="card" data-key="{{.Key}}">{{with .Item.Icon}}<span class="iconify card-icon" data-icon="{{.}}"></span>{{end}}<div class="card-title">{{.Item.Title}}</div><div class="card-desc">{{.Item.Desc}}</div></div>
`

const propRowTemplate = `<div class="table-row" data-key="{{.Key}}"><div><code class="prop-name">{{.Item.Prop}}</code></div><div><span class="prop-type">{{.Item.Type}}</span></div><div><span class="prop-default">{{.Item.Default}}</span></div><div class="prop-desc">{{.Item.Desc}}</div></div>
`

const shortcutRowTemplate = `<div class="table-row" data-key="{{.Key}}"><div class="shortcut-action">{{.Item.Action}}</div><div><span class="shortcut-keys">{{.Item.Keys}}</span></div></div>
`

const changelogItemTemplate = `<li data-key="{{.Key}}">{{.Item}}</li>
`

// cssContent is the stylesheet for the page.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #ffffff;
  --bg-card: #f4f6fb;
  --bg-panel: #f8f9fc;
  --border: #dde2ee;
  --text: #1b1f2a;
  --muted: #5b6478;
  --accent: #3b82f6;
  --accent-strong: #2563eb;
  --ok: #22c55e;
  --radius: 12px;
  --font: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
  --mono: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, "Liberation Mono", monospace;
}
html.dark {
  --bg: #0d1117;
  --bg-card: #161b26;
  --bg-panel: #18181b;
  --border: #3f3f46;
  --text: #f4f4f5;
  --muted: #a1a1aa;
}

* { box-sizing: border-box; }
body { margin: 0; background: var(--bg); color: var(--text); font-family: var(--font); line-height: 1.5; }
a { color: inherit; text-decoration: none; }
code, .copy-code, .prop-type, .prop-default, .shortcut-keys { font-family: var(--mono); }
[hidden] { display: none !important; }

/* ============ Header ============ */
.site-header { position: sticky; top: 0; z-index: 50; background: var(--bg); border-bottom: 1px solid var(--border); }
.header-inner { max-width: 1440px; width: 88%; margin: 0 auto; display: flex; align-items: center; justify-content: space-between; padding: 20px 0; }
.logo { font-weight: 800; font-size: 1.5rem; }
.desktop-nav { display: flex; align-items: center; gap: 32px; }
.nav-link { font-weight: 600; font-size: 1.1rem; transition: color .2s; }
.nav-link:hover { color: var(--accent); }
.hamburger { display: none; background: none; border: 0; color: var(--text); padding: 8px; cursor: pointer; }
.hamburger svg, .hamburger .iconify { width: 28px; height: 28px; }
.hamburger .icon-close { display: none; }
.hamburger[aria-expanded="true"] .icon-open { display: none; }
.hamburger[aria-expanded="true"] .icon-close { display: inline; }
.mobile-menu { padding: 24px 6%; border-top: 1px solid var(--border); }
.mobile-menu nav { display: flex; flex-direction: column; gap: 16px; }

/* ============ Buttons ============ */
.btn { display: inline-block; font-weight: 700; font-size: 1.05rem; padding: 12px 28px; border-radius: var(--radius); transition: transform .2s, background .2s; }
.btn-primary { background: var(--accent); color: #fff; }
.btn-primary:hover { background: var(--accent-strong); }
.btn-ghost { background: rgba(255,255,255,.08); border: 1px solid var(--border); }
.btn:hover { transform: scale(1.03); }
.btn-block { display: block; text-align: center; }

/* ============ Hero ============ */
.hero { min-height: 80vh; display: flex; align-items: center; justify-content: center; padding: 64px 8px; text-align: center; }
.hero-inner { max-width: 56rem; }
.hero-logo { font-size: 3rem; font-weight: 800; margin-bottom: 24px; }
.hero-tagline { font-size: 1.9rem; font-weight: 600; margin: 0 0 24px; }
.hero-intro { color: var(--muted); font-size: 1.1rem; margin: 0 0 32px; }
.badges { display: flex; flex-wrap: wrap; justify-content: center; gap: 12px; margin-bottom: 40px; }
.badge { display: inline-flex; align-items: center; gap: 8px; border: 1px solid var(--border); border-radius: 999px; padding: 6px 14px; font-size: .9rem; font-weight: 500; }
.cta { display: flex; gap: 16px; justify-content: center; flex-wrap: wrap; margin-bottom: 40px; }
.stats { display: grid; grid-template-columns: repeat(3, 1fr); gap: 32px; margin-top: 48px; }
.stat-value { font-size: 1.9rem; font-weight: 700; }
.stat-label { color: var(--muted); }

/* ============ Sections ============ */
.section { max-width: 1440px; width: 80%; margin: 0 auto; padding: 48px 0; }
.section h3 { font-size: 1.5rem; font-weight: 700; margin: 0 0 24px; }
.muted { color: var(--muted); }
.grid { display: grid; gap: 24px; }
.grid-4 { grid-template-columns: repeat(4, 1fr); }
.grid-5 { grid-template-columns: repeat(5, 1fr); }
.card { background: var(--bg-card); border: 1px solid var(--border); border-radius: var(--radius); padding: 24px; display: flex; flex-direction: column; align-items: center; text-align: center; transition: box-shadow .2s; }
.card:hover { box-shadow: 0 8px 24px rgba(0,0,0,.15); }
.card-icon { font-size: 1.9rem; margin-bottom: 12px; }
.card-title { font-weight: 600; font-size: 1.1rem; margin-bottom: 4px; }
.card-desc { color: var(--muted); font-size: .9rem; }
.panel, .code-panel { background: var(--bg-panel); border: 1px solid var(--border); border-radius: var(--radius); padding: 24px; overflow-x: auto; }
.code-panel pre, .copy-code pre { margin: 0; padding: 0; background: transparent !important; }
.notes { padding-left: 24px; color: var(--muted); }
.notes li { margin-bottom: 8px; }

/* ============ Tables ============ */
.table-scroll { overflow-x: auto; }
.table { background: var(--bg-panel); border: 1px solid var(--border); border-radius: var(--radius); overflow: hidden; }
.props-table { min-width: 600px; }
.table-head, .table-row { display: grid; gap: 16px; padding: 16px 24px; font-size: .9rem; }
.props-table .table-head, .props-table .table-row { grid-template-columns: 3fr 2fr 2fr 5fr; }
.shortcuts-table .table-head, .shortcuts-table .table-row { grid-template-columns: 5fr 7fr; align-items: center; }
.table-head { font-weight: 600; color: var(--muted); border-bottom: 1px solid var(--border); }
.table-row + .table-row { border-top: 1px solid var(--border); }
.table-row:hover { background: rgba(127,127,127,.08); }
.prop-name, .shortcut-keys { color: var(--accent); font-weight: 600; font-size: .8rem; padding: 2px 8px; border-radius: 4px; background: var(--bg-card); }
.prop-type { font-size: .8rem; padding: 2px 8px; border-radius: 4px; background: var(--bg-card); }
.prop-default { color: var(--muted); font-size: .8rem; }

/* ============ Copy control ============ */
.copy-control { display: flex; align-items: stretch; gap: 16px; padding: 16px; background: var(--bg-panel); border: 1px solid var(--border); border-radius: var(--radius); cursor: pointer; overflow-x: auto; transition: background .2s; }
.copy-control:hover { background: var(--bg-card); }
.copy-code { flex: 1; min-width: 0; overflow-x: auto; }
.copy-hint { display: flex; align-items: center; gap: 8px; color: var(--muted); font-size: .9rem; white-space: nowrap; }
.copy-icon { width: 20px; height: 20px; }

/* ============ Tooltip ============ */
.tooltip-anchor { position: relative; }
.tooltip { position: absolute; z-index: 10; background: var(--ok); color: #fff; padding: 4px 12px; border-radius: 8px; font-size: .9rem; font-weight: 500; white-space: nowrap; box-shadow: 0 8px 24px rgba(0,0,0,.2); }
.tooltip-top { bottom: 100%; left: 50%; transform: translate(-50%, -12px); }
.tooltip-bottom { top: 100%; left: 50%; transform: translate(-50%, 12px); }
.tooltip-left { right: 100%; top: 50%; transform: translate(-8px, -50%); }
.tooltip-right { left: 100%; top: 50%; transform: translate(8px, -50%); }
.tooltip-arrow { position: absolute; width: 0; height: 0; border: 4px solid transparent; }
.tooltip-arrow-down { top: 100%; left: 50%; transform: translateX(-50%); border-top-color: var(--ok); }
.tooltip-arrow-up { bottom: 100%; left: 50%; transform: translateX(-50%); border-bottom-color: var(--ok); }
.tooltip-arrow-right { left: 100%; top: 50%; transform: translateY(-50%); border-left-color: var(--ok); }
.tooltip-arrow-left { right: 100%; top: 50%; transform: translateY(-50%); border-right-color: var(--ok); }

/* ============ Footer ============ */
.site-footer { border-top: 1px solid var(--border); padding: 24px 0; margin-top: 48px; color: var(--muted); font-size: .9rem; }
.footer-inner { width: 80%; margin: 0 auto; display: flex; justify-content: space-between; gap: 16px; }
.footer-inner a:hover { color: var(--accent); }

/* ============ Responsive ============ */
@media (max-width: 1024px) {
  .grid-4, .grid-5 { grid-template-columns: repeat(3, 1fr); }
}
@media (max-width: 768px) {
  .desktop-nav { display: none; }
  .hamburger { display: inline-flex; }
  .section { width: 88%; }
  .grid-4, .grid-5 { grid-template-columns: 1fr 1fr; }
  .stats { grid-template-columns: 1fr; }
  .copy-control { flex-direction: column; }
  .footer-inner { flex-direction: column; align-items: center; }
}
@media (min-width: 769px) {
  .mobile-menu { display: none; }
}
`

// jsContent drives the page in the browser. Static pages handle gestures
// locally; live pages forward them to the server session and apply the
// fragments it sends back.
const jsContent = `(function() {
  'use strict';

  var COPIED_FOR = 2000;
  var live = document.body.getAttribute('data-live') === 'true';

  function closest(el, selector) {
    while (el && el.nodeType === 1) {
      if (el.matches(selector)) return el;
      el = el.parentElement;
    }
    return null;
  }

  // ---- Clipboard capabilities ----

  function writeText(text) {
    if (!navigator.clipboard || !navigator.clipboard.writeText) {
      return Promise.reject(new Error('clipboard API unavailable'));
    }
    return navigator.clipboard.writeText(text);
  }

  function copySelection(text) {
    var holder = document.createElement('textarea');
    holder.value = text;
    holder.setAttribute('readonly', '');
    holder.style.position = 'fixed';
    holder.style.opacity = '0';
    document.body.appendChild(holder);
    try {
      holder.focus();
      holder.select();
      if (!document.execCommand('copy')) throw new Error('copy command rejected');
    } finally {
      document.body.removeChild(holder);
    }
  }

  // ---- Static mode ----

  var resetTimer = null;

  var placements = {
    top: ['tooltip tooltip-top', 'tooltip-arrow tooltip-arrow-down'],
    bottom: ['tooltip tooltip-bottom', 'tooltip-arrow tooltip-arrow-up'],
    left: ['tooltip tooltip-left', 'tooltip-arrow tooltip-arrow-right'],
    right: ['tooltip tooltip-right', 'tooltip-arrow tooltip-arrow-left']
  };

  function showCopied(control) {
    var message = control.getAttribute('data-tooltip-message') || 'Copied!';
    var placement = placements[control.getAttribute('data-tooltip-position') || 'top'];
    if (!placement) throw new Error('unknown tooltip position');
    control.querySelector('.copy-label').textContent = message;
    if (!closest(control.parentElement, '.tooltip-anchor')) {
      var anchor = document.createElement('div');
      anchor.className = 'tooltip-anchor';
      control.parentNode.insertBefore(anchor, control);
      anchor.appendChild(control);
      var overlay = document.createElement('div');
      overlay.className = placement[0];
      overlay.setAttribute('role', 'status');
      overlay.textContent = message;
      var arrow = document.createElement('div');
      arrow.className = placement[1];
      overlay.appendChild(arrow);
      anchor.appendChild(overlay);
    }
    if (resetTimer) clearTimeout(resetTimer);
    resetTimer = setTimeout(function() { hideCopied(control); }, COPIED_FOR);
  }

  function hideCopied(control) {
    resetTimer = null;
    control.querySelector('.copy-label').textContent = 'Click to copy';
    var anchor = closest(control.parentElement, '.tooltip-anchor');
    if (anchor) {
      anchor.parentNode.insertBefore(control, anchor);
      anchor.parentNode.removeChild(anchor);
    }
  }

  function copyLocally(control) {
    var text = control.getAttribute('data-copy-text');
    writeText(text).then(function() {
      showCopied(control);
    }, function() {
      try {
        copySelection(text);
        showCopied(control);
      } catch (err) {
        console.error('Failed to copy: ', err);
      }
    });
  }

  function setMenu(open) {
    var button = document.querySelector('[data-action="toggle-menu"]');
    var menu = document.getElementById('mobile-menu');
    if (button) {
      button.setAttribute('aria-expanded', open ? 'true' : 'false');
      button.setAttribute('aria-label', open ? 'Close menu' : 'Open menu');
    }
    if (menu) menu.hidden = !open;
  }

  function menuOpen() {
    var button = document.querySelector('[data-action="toggle-menu"]');
    return !!button && button.getAttribute('aria-expanded') === 'true';
  }

  // ---- Live mode ----

  var socket = null;
  var pending = [];

  function send(msg) {
    var data = JSON.stringify(msg);
    if (socket && socket.readyState === 1) socket.send(data);
    else pending.push(data);
  }

  function applyPatch(target, html) {
    var el = document.getElementById(target);
    if (!el) return;
    var tmp = document.createElement('div');
    tmp.innerHTML = html;
    var next = tmp.firstElementChild;
    if (next) el.parentNode.replaceChild(next, el);
  }

  function answerClipboard(msg) {
    var reply = function(ok, err) {
      send({ type: 'clipboard_result', id: msg.id, ok: ok, error: err ? String(err) : '' });
    };
    if (msg.mode === 'write') {
      writeText(msg.text).then(function() { reply(true); }, function(err) { reply(false, err); });
      return;
    }
    try {
      copySelection(msg.text);
      reply(true);
    } catch (err) {
      reply(false, err);
    }
  }

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    socket = new WebSocket(proto + '//' + location.host + '/ws');
    socket.onopen = function() {
      while (pending.length) socket.send(pending.shift());
    };
    socket.onmessage = function(ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch (e) { return; }
      switch (msg.type) {
        case 'patch': applyPatch(msg.target, msg.html); break;
        case 'state':
          document.documentElement.className = msg.state.theme_dark ? 'dark' : 'light';
          break;
        case 'clipboard': answerClipboard(msg); break;
        case 'error': console.error('textflux-site: ' + msg.error); break;
      }
    };
    socket.onclose = function() {
      socket = null;
      setTimeout(connect, 2000);
    };
  }

  // ---- Gestures ----

  function activate(target) {
    var control = closest(target, '[data-action="copy"]');
    if (control) {
      if (live) send({ type: 'copy' });
      else copyLocally(control);
      return true;
    }
    if (closest(target, '[data-action="toggle-menu"]')) {
      if (live) send({ type: 'toggle_menu' });
      else setMenu(!menuOpen());
      return true;
    }
    var link = closest(target, '[data-nav]');
    if (link) {
      if (live) send({ type: 'navigate', anchor: link.getAttribute('href') });
      else if (menuOpen()) setMenu(false);
    }
    return false;
  }

  document.addEventListener('click', function(e) {
    activate(e.target);
  });

  document.addEventListener('keydown', function(e) {
    if (e.key !== 'Enter' && e.key !== ' ') return;
    if (closest(e.target, '[data-action="copy"]')) {
      e.preventDefault();
      activate(e.target);
    }
  });

  if (live) connect();
})();
`

// Stylesheet returns the page stylesheet.
func Stylesheet() string { return cssContent }

// Script returns the page script.
func Script() string { return jsContent }
