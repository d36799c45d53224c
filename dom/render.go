package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/sjson"
	"github.com/yuin/goldmark/util"

	"github.com/linanwx/echochat/widget"
)

// Format selects a transcript export encoding.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatHTML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown transcript format %q (want text, html or json)", s)
	}
}

// Render writes the transcript of box in the given format.
func Render(w io.Writer, format Format, box *Container) error {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatText, "":
		out = renderText(box.Elements())
	case FormatHTML:
		out = renderHTML(box.ID, box.Children())
	case FormatJSON:
		out, err = renderJSON(box.Elements())
	default:
		err = fmt.Errorf("unknown transcript format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func renderText(elements []widget.Element) []byte {
	var buf bytes.Buffer
	for _, el := range elements {
		buf.WriteString(el.Text)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// renderHTML sets element text as text content: nothing is interpreted as
// markup.
func renderHTML(id string, nodes []Node) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<div id="chat-box" data-session="`)
	buf.Write(util.EscapeHTML([]byte(id)))
	buf.WriteString("\">\n")
	for _, n := range nodes {
		buf.WriteString(`  <div id="`)
		buf.Write(util.EscapeHTML([]byte(n.ID)))
		buf.WriteString(`" class="`)
		buf.Write(util.EscapeHTML([]byte(strings.Join(n.Classes, " "))))
		buf.WriteString(`">`)
		buf.Write(util.EscapeHTML([]byte(n.Text)))
		buf.WriteString("</div>\n")
	}
	buf.WriteString("</div>\n")
	return buf.Bytes()
}

type jsonEntry struct {
	Class  string `json:"class"`
	Origin string `json:"origin"`
	Text   string `json:"text"`
}

func renderJSON(elements []widget.Element) ([]byte, error) {
	doc := []byte("[]")
	for i, el := range elements {
		var err error
		doc, err = sjson.SetBytes(doc, "-1", jsonEntry{
			Class:  strings.Join(el.Classes, " "),
			Origin: el.Entry().Origin.String(),
			Text:   el.Text,
		})
		if err != nil {
			return nil, fmt.Errorf("encode entry %d: %w", i, err)
		}
	}
	return append(doc, '\n'), nil
}
