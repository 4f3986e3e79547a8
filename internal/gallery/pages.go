package gallery

import (
	"io"

	"github.com/vango-dev/headless/internal/stories"
	"github.com/vango-dev/headless/pkg/atom"
	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/render"
	"github.com/vango-dev/headless/pkg/vdom"
)

// LinkFunc returns the href of a story page.
type LinkFunc func(story stories.Story) string

// ServerLink links stories to the gallery server's routes.
func ServerLink(story stories.Story) string {
	return "/stories/" + story.ID
}

// StaticLink links stories to the files written by a static build.
func StaticLink(story stories.Story) string {
	return story.ID + ".html"
}

// WriteIndex renders the story index, grouped and sorted by group.
func WriteIndex(w io.Writer, r *render.Renderer, reg *stories.Registry, link LinkFunc) error {
	var groups []*vdom.VNode
	for _, group := range reg.Groups() {
		var items []*vdom.VNode
		for _, st := range reg.Group(group) {
			items = append(items, vdom.Li(vdom.A(vdom.Href(link(st)), st.Title)))
		}
		groups = append(groups, vdom.Section(
			vdom.Data("group", group),
			vdom.H2(group),
			vdom.Ul(items),
		))
	}

	return r.RenderPage(w, render.PageData{
		Title:  "Headless stories",
		Styles: []string{pageCSS},
		Body: vdom.Main(
			vdom.Header(vdom.H1("Headless stories")),
			vdom.Nav(groups),
		),
	})
}

// WriteStory renders a story page with the story's initial tree. A live
// page also carries the client that connects to the page's websocket.
func WriteStory(w io.Writer, r *render.Renderer, story stories.Story, live bool) error {
	comp, _ := story.Mount(nil)
	root := reactive.NewRoot(atom.NewStore(), comp)
	tree := root.Mount()
	defer root.Unmount()

	var desc *vdom.VNode
	if story.Description != "" {
		desc = vdom.P(vdom.Class("description"), story.Description)
	}

	page := render.PageData{
		Title:  story.Group + " / " + story.Title,
		Styles: []string{pageCSS},
		Body: vdom.Main(
			vdom.Header(
				vdom.Nav(vdom.A(vdom.Href(indexHref(live)), "All stories")),
				vdom.H1(story.Title),
				desc,
			),
			vdom.Section(vdom.ID("story"), vdom.Data("story", story.ID), tree),
			vdom.Section(vdom.ID("actions"),
				vdom.H2("Actions"),
				vdom.Pre(vdom.ID("action-log")),
			),
		),
	}
	if live {
		page.Scripts = []string{clientJS}
	}
	return r.RenderPage(w, page)
}

func indexHref(live bool) string {
	if live {
		return "/"
	}
	return "index.html"
}

const pageCSS = `
body { font-family: system-ui, sans-serif; margin: 2rem; color: #1f2328; }
nav a { margin-right: 1rem; }
#story { border: 1px solid #d0d7de; border-radius: 6px; padding: 1rem; margin: 1rem 0; }
#action-log { background: #f6f8fa; padding: .5rem; min-height: 3rem; }
[hidden] { display: none !important; }
[aria-pressed="true"], [aria-selected="true"], [aria-checked="true"] { font-weight: bold; }
.overlay { position: fixed; inset: 0; background: rgba(0,0,0,.4); display: flex; align-items: center; justify-content: center; }
.overlay > div { background: #fff; padding: 1rem; border-radius: 6px; }
.description { color: #57606a; }
`

// clientJS forwards events on data-hid elements and document key presses
// to the session, and swaps in each rendered tree.
const clientJS = `
(function () {
  var story = document.getElementById("story");
  var log = document.getElementById("action-log");
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + location.pathname.replace(/\/$/, "") + "/ws");

  function send(msg) {
    if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(msg));
  }
  function hid(el) {
    var n = el && el.closest ? el.closest("[data-hid]") : null;
    return n ? n.getAttribute("data-hid") : "";
  }

  ws.onmessage = function (e) {
    var msg = JSON.parse(e.data);
    if (msg.type === "render") {
      story.innerHTML = msg.html;
      log.textContent = (msg.actions || []).map(function (a) {
        return a.name + ": " + a.value;
      }).join("\n");
    } else if (msg.type === "error") {
      console.warn("headless:", msg.error);
    }
  };

  story.addEventListener("click", function (e) {
    var id = hid(e.target);
    if (id) { e.preventDefault(); send({ type: "click", hid: id }); }
  });
  story.addEventListener("mouseover", function (e) {
    var id = hid(e.target);
    if (id && id !== hid(e.relatedTarget)) send({ type: "mouseenter", hid: id });
  });
  story.addEventListener("mouseout", function (e) {
    var id = hid(e.target);
    if (id && id !== hid(e.relatedTarget)) send({ type: "mouseleave", hid: id });
  });
  document.addEventListener("keydown", function (e) {
    send({ type: "keydown", hid: story.contains(e.target) ? hid(e.target) : "", key: e.key });
  });
})();
`
