package site

import "regexp"

// Anchor patterns for the index artifact. Each targets the first
// occurrence of a fixed literal region; when a pattern does not match
// the field is left untouched.
var (
	heroTitleRe    = regexp.MustCompile(`(<h1 id="hero-title"[^>]*>)(?s:.*?)(</h1>)`)
	heroSubtitleRe = regexp.MustCompile(`(<p id="hero-subtitle"[^>]*>)(?s:.*?)(</p>)`)
	contactTitleRe = regexp.MustCompile(`(<h2 id="contact-title"[^>]*>)(?s:.*?)(</h2>)`)
	contactTextRe  = regexp.MustCompile(`(<p id="contact-text"[^>]*>)(?s:.*?)(</p>)`)
	contactLinkRe  = regexp.MustCompile(`<a id="contact-email" href="mailto:[^"]*"([^>]*)>(?s:.*?)</a>`)

	// Script-level id→title lookup table on the index page. The literal
	// runs from the opening brace to the line holding the closing brace
	// plus semicolon; serialized strings never span lines, so anchoring
	// the terminator to a line keeps `};` inside a value from ending the
	// match early.
	titleTableRe = regexp.MustCompile(`const projectTitles = \{(?s:.*?)(?m:^[ \t]*\};)`)

	// The grid region spans the opening container div through its
	// closing comment marker.
	gridRe = regexp.MustCompile(`(<div id="project-grid" class="grid">)(?s:.*?)(</div><!-- /project-grid -->)`)

	// Template artifact: the serialized project map literal, bounded the
	// same way as the title table.
	projectMapRe = regexp.MustCompile(`const projects = \{(?s:.*?)(?m:^[ \t]*\};)`)

	// The #hero style rule and the background declaration inside it
	heroBlockRe = regexp.MustCompile(`#hero\s*\{[^}]*\}`)
	heroImageRe = regexp.MustCompile(`background-image:\s*url\([^)]*\)`)
)

// replaceInner substitutes the content between a pattern's first and
// last capture groups, first occurrence only.
func replaceInner(doc string, re *regexp.Regexp, inner string) string {
	replaced := false
	return re.ReplaceAllStringFunc(doc, func(match string) string {
		if replaced {
			return match
		}
		replaced = true
		groups := re.FindStringSubmatch(match)
		return groups[1] + inner + groups[2]
	})
}

// replaceFirst swaps the first occurrence of a pattern for a literal
// replacement.
func replaceFirst(doc string, re *regexp.Regexp, replacement string) string {
	replaced := false
	return re.ReplaceAllStringFunc(doc, func(match string) string {
		if replaced {
			return match
		}
		replaced = true
		return replacement
	})
}
