// Package shell wraps rendered page content in a full HTML document and
// declares the page metadata.
package shell

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// MountID is the id of the element the browser runtime renders into.
const MountID = "app"

// Metadata is what the document head advertises about the page.
type Metadata struct {
	Title       string
	Description string
}

// Default is the landing page metadata.
var Default = Metadata{
	Title:       "Sportselling Marketplace",
	Description: "Discover sports memorabilia and connect with fellow collectors.",
}

// Assets locates the files the document pulls in.
type Assets struct {
	Stylesheet string // URL of the page stylesheet
	WasmExec   string // URL of the Go wasm_exec.js support script
	WasmBinary string // URL of the compiled browser runtime; empty disables it
}

// DefaultAssets are the paths served by the landing server.
var DefaultAssets = Assets{
	Stylesheet: "/static/styles.css",
	WasmExec:   "/app/wasm_exec.js",
	WasmBinary: "/app/main.wasm",
}

// Options tunes the document frame.
type Options struct {
	Metadata     Metadata
	Assets       Assets
	WelcomeDelay time.Duration // passed to the browser runtime; zero reveals immediately
}

// Page renders the document around body. Empty metadata fields fall back to Default.
func Page(opts Options, body ...g.Node) g.Node {
	meta := opts.Metadata
	if meta.Title == "" {
		meta.Title = Default.Title
	}
	if meta.Description == "" {
		meta.Description = Default.Description
	}

	assets := opts.Assets

	return g.Group([]g.Node{
		Doctype(
			HTML(
				Lang("en"),
				Head(
					Meta(Charset("utf-8")),
					Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
					TitleEl(g.Text(meta.Title)),
					Meta(Name("description"), Content(meta.Description)),
					Meta(g.Attr("property", "og:title"), Content(meta.Title)),
					Meta(g.Attr("property", "og:description"), Content(meta.Description)),
					g.If(assets.Stylesheet != "", Link(Rel("stylesheet"), Href(assets.Stylesheet))),
				),
				Body(
					Div(
						ID(MountID),
						g.Attr("data-welcome-delay", max(opts.WelcomeDelay, 0).String()),
						g.Group(body),
					),
					g.If(assets.WasmBinary != "", bootstrap(assets)),
				),
			),
		),
	})
}

// bootstrap loads the Go support script and starts the browser runtime,
// which takes over the prerendered markup.
func bootstrap(a Assets) g.Node {
	return g.Group([]g.Node{
		Script(Src(a.WasmExec)),
		Script(g.Raw(`const go = new Go();
WebAssembly.instantiateStreaming(fetch("` + a.WasmBinary + `"), go.importObject)
  .then((result) => go.run(result.instance))
  .catch((err) => console.error("landing runtime failed to start:", err));`)),
	})
}
