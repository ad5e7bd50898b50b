package demoserver

import (
	"fmt"
	"html/template"
	"net/http"
)

// DemoServer serves fixture pages with known accessibility properties, so
// the analyzer can be demonstrated and exercised against stable targets.
type DemoServer struct {
	cfg   Config
	pages map[string]PageDefinition
}

// NewDemoServer creates a new demo server instance.
func NewDemoServer(cfg Config) *DemoServer {
	pageMap := make(map[string]PageDefinition)
	for _, p := range GetAllPages() {
		pageMap[p.Path] = p
	}

	return &DemoServer{
		cfg:   cfg,
		pages: pageMap,
	}
}

// Start starts the demo server.
func (s *DemoServer) Start() error {
	mux := http.NewServeMux()

	for path, page := range s.pages {
		mux.HandleFunc(path, s.pageHandler(page))
	}

	mux.HandleFunc("/", s.indexHandler)
	mux.HandleFunc("/static/", s.staticHandler)

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	fmt.Printf("Demo server starting on http://localhost%s\n", addr)
	fmt.Printf("Fixture index at http://localhost%s/\n", addr)
	return http.ListenAndServe(addr, mux)
}

// pageHandler returns a handler serving a fixture page.
func (s *DemoServer) pageHandler(page PageDefinition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(page.HTML))
	}
}

// staticHandler serves placeholder static files referenced by fixtures.
func (s *DemoServer) staticHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	_, _ = w.Write([]byte(`// Demo static file: ` + r.URL.Path + `
console.log("Loaded: ` + r.URL.Path + `");
`))
}

// indexHandler lists the available fixture pages.
func (s *DemoServer) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	tmpl := template.Must(template.New("index").Parse(indexHTML))
	data := struct {
		Pages map[string]PageDefinition
		Port  int
	}{
		Pages: s.pages,
		Port:  s.cfg.Port,
	}
	w.Header().Set("Content-Type", "text/html")
	_ = tmpl.Execute(w, data)
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Accessibility Demo Fixtures</title>
    <style>
        body { font-family: system-ui, -apple-system, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; background: #f5f5f5; color: #1a1a1a; }
        h1 { border-bottom: 2px solid #00509e; padding-bottom: 10px; }
        .page-card { background: white; border-radius: 8px; padding: 20px; margin: 15px 0; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .page-path { font-size: 1.2em; font-weight: bold; color: #00509e; }
        .page-desc { color: #444; margin: 5px 0; }
        .info-box { background: #e7f3ff; padding: 15px; border-radius: 8px; margin-bottom: 20px; border-left: 4px solid #00509e; }
    </style>
</head>
<body>
    <header><h1>Accessibility Demo Fixtures</h1></header>
    <main>
        <div class="info-box">
            <strong>How to use:</strong> Point the analyzer at any fixture below.
            Each page has a known set of accessibility properties, so the
            resulting report can be compared against expectations.
        </div>
        {{range $path, $page := .Pages}}
        <div class="page-card">
            <a href="{{$path}}" class="page-path">{{$path}}</a>
            <div class="page-desc">{{$page.Description}}</div>
        </div>
        {{end}}
    </main>
</body>
</html>`
