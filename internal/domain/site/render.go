package site

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/folio/folio-api/internal/domain/project"
)

// PlaceholderImage backs project cards that have no uploaded images yet
const PlaceholderImage = "/media/images/placeholder.jpg"

func primaryImage(p *project.Project) string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return PlaceholderImage
}

// renderCard produces one project card in the grid
func renderCard(p *project.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "        <a class=\"card\" href=\"/project.html?id=%s\" data-project=\"%s\">\n",
		html.EscapeString(p.ID), html.EscapeString(p.ID))
	fmt.Fprintf(&b, "          <img src=\"%s\" alt=\"%s\" loading=\"lazy\">\n",
		html.EscapeString(primaryImage(p)), html.EscapeString(p.Title))
	fmt.Fprintf(&b, "          <div class=\"card-body\">\n")
	fmt.Fprintf(&b, "            <h3>%s</h3>\n", html.EscapeString(p.Title))
	if p.Medium != "" {
		fmt.Fprintf(&b, "            <p>%s</p>\n", html.EscapeString(p.Medium))
	}
	fmt.Fprintf(&b, "          </div>\n")
	fmt.Fprintf(&b, "        </a>")
	return b.String()
}

// renderGrid rebuilds the full grid region, cards in display order
func renderGrid(projects []*project.Project) string {
	var b strings.Builder
	b.WriteString("<div id=\"project-grid\" class=\"grid\">\n")
	for _, p := range projects {
		b.WriteString(renderCard(p))
		b.WriteString("\n")
	}
	b.WriteString("      </div><!-- /project-grid -->")
	return b.String()
}

// renderTitleTable serializes the id→title lookup consumed by the
// index page's script block.
func renderTitleTable(projects []*project.Project) string {
	titles := make(map[string]string, len(projects))
	for _, p := range projects {
		titles[p.ID] = p.Title
	}
	return "const projectTitles = " + renderLiteral(titles, "      ") + ";"
}

// renderProjectMap serializes the whole registry for the template
// artifact's detail pages.
func renderProjectMap(projects []*project.Project) string {
	byID := make(map[string]*project.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	return "const projects = " + renderLiteral(byID, "    ") + ";"
}

// renderLiteral serializes v with the closing brace on its own line, so
// the literal's terminator stays locatable even when the map is empty.
func renderLiteral(v interface{}, prefix string) string {
	data, err := json.MarshalIndent(v, prefix, "  ")
	if err != nil || string(data) == "{}" {
		return "{\n" + prefix + "}"
	}
	return string(data)
}
