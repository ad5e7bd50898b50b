package demoserver

// PageDefinition describes one fixture page.
type PageDefinition struct {
	Path        string
	Description string
	HTML        string
}

// GetAllPages returns every fixture page the demo server serves.
func GetAllPages() []PageDefinition {
	return []PageDefinition{
		{
			Path:        "/accessible",
			Description: "A well-formed page that should pass every check with a perfect score.",
			HTML:        accessiblePage,
		},
		{
			Path:        "/broken",
			Description: "A page violating most checks: missing alt text, unlabeled inputs, vague links, zoom prevention, low contrast.",
			HTML:        brokenPage,
		},
		{
			Path:        "/forms",
			Description: "Form-heavy page mixing labeled and unlabeled controls, with and without help text.",
			HTML:        formsPage,
		},
		{
			Path:        "/media",
			Description: "Audio and video content with missing captions, autoplay, and no transcripts.",
			HTML:        mediaPage,
		},
	}
}

const accessiblePage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Accessible Fixture</title>
    <style>
        body { font-family: sans-serif; color: #1a1a1a; background: #ffffff; max-width: 700px; margin: 0 auto; padding: 20px; }
        a:focus, button:focus, input:focus { outline: 3px solid #00509e; }
        .skip-link { position: absolute; left: -9999px; }
        .skip-link:focus { left: 10px; }
        button { min-width: 48px; min-height: 48px; }
    </style>
</head>
<body>
    <a href="#content" class="skip-link">Skip to main content</a>
    <header>
        <h1>Gardening Basics</h1>
        <nav aria-label="Primary">
            <a href="/accessible">Home</a>
            <a href="/forms">Contact form</a>
        </nav>
    </header>
    <main id="content">
        <h2>Getting started</h2>
        <p>Pick a sunny spot. Water often. Watch things grow.</p>
        <img src="/static/seedling.jpg" alt="A seedling sprouting from dark soil">
        <h2>Newsletter</h2>
        <form>
            <label for="email">Email address</label>
            <input type="email" id="email" name="email">
            <small class="help-text">We send one email a month, no spam.</small>
            <button type="submit">Subscribe to the newsletter</button>
        </form>
    </main>
    <footer>
        <p>Contact us at <a href="mailto:hello@example.com">hello@example.com</a>.</p>
    </footer>
</body>
</html>`

const brokenPage = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1, user-scalable=no">
    <title>Broken Fixture</title>
    <style>
        body { font-family: sans-serif; color: #999999; background: #ffffff; }
        a, button, input { outline: none; }
        button { width: 20px; height: 20px; }
    </style>
</head>
<body>
    <div>
        <h2>Welcome</h2>
        <h4>Latest news</h4>
        <img src="/static/banner.jpg">
        <img src="/static/photo.jpg">
        <p>Some light gray text that is hard to read.</p>
        <a href="/page2">click here</a>
        <a href="/page3"></a>
        <input type="text" name="search">
        <button tabindex="-1">Go</button>
        <marquee>Breaking news scrolls by</marquee>
        <div role="banana">Decorated</div>
    </div>
</body>
</html>`

const formsPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Forms Fixture</title>
</head>
<body>
    <header><h1>Account signup</h1></header>
    <main>
        <form id="good">
            <label for="name">Full name</label>
            <input type="text" id="name" name="name">
            <label for="pw">Password</label>
            <input type="password" id="pw" name="pw">
            <small class="hint">At least 12 characters.</small>
            <button type="submit">Create account</button>
        </form>
        <form id="bad">
            <input type="email" name="email" placeholder="Email">
            <input type="password" name="password" placeholder="Password">
            <select name="country">
                <option>Pick one</option>
            </select>
            <button type="submit">Go</button>
        </form>
    </main>
</body>
</html>`

const mediaPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Media Fixture</title>
</head>
<body>
    <header><h1>Press room</h1></header>
    <main>
        <h2>Captioned interview</h2>
        <video controls src="/static/interview.mp4">
            <track kind="captions" src="/static/interview.vtt" srclang="en" label="English">
        </video>
        <h2>Raw keynote footage</h2>
        <video controls src="/static/keynote.mp4"></video>
        <h2>Background music</h2>
        <audio autoplay src="/static/theme.mp3"></audio>
    </main>
</body>
</html>`
