// seehuhn.de/go/spiral - Fibonacci spiral plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package encode

import (
	"encoding/base64"
	"net/url"
	"regexp"
	"strings"
)

var (
	xmlDeclaration = regexp.MustCompile(`<\?xml[^>]*\?>`)
	xmlComment     = regexp.MustCompile(`(?s)<!--.*?-->`)
	docType        = regexp.MustCompile(`<!DOCTYPE[^>]*>`)
)

// Fragment turns an SVG document into markup for inline embedding in HTML.
// The XML declaration, comments and any DOCTYPE are removed, and only the
// outermost svg element is kept.  If no svg element is found, the cleaned
// and trimmed input is returned.
func Fragment(doc string) string {
	doc = xmlDeclaration.ReplaceAllString(doc, "")
	doc = xmlComment.ReplaceAllString(doc, "")
	doc = docType.ReplaceAllString(doc, "")

	start := strings.Index(doc, "<svg")
	if start < 0 {
		return strings.TrimSpace(doc)
	}
	const closeTag = "</svg>"
	end := strings.LastIndex(doc, closeTag)
	if end < start {
		return strings.TrimSpace(doc[start:])
	}
	return doc[start : end+len(closeTag)]
}

// DataURI returns a base64 encoded data URI for an SVG document, suitable
// for the src attribute of an img element.
func DataURI(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// ObjectEmbed wraps an SVG document into an HTML object element.  The
// document is passed as a percent-encoded data URI.
func ObjectEmbed(svg string) string {
	payload := strings.ReplaceAll(url.QueryEscape(svg), "+", "%20")
	return "<object type='image/svg+xml' data='data:image/svg+xml;utf8," + payload +
		"' style='width:100%;height:100%;display:block;border:0'></object>"
}
