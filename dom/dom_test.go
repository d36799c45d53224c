package dom

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/linanwx/echochat/widget"
)

func sampleBox() *Container {
	box := NewContainer("s1", 2)
	box.AppendChild(widget.Entry{Text: "<b>hi</b> & bye", Origin: widget.OriginUser}.Element())
	box.AppendChild(widget.Entry{Text: `Bot: <b>hi</b> & "bye"`, Origin: widget.OriginBot}.Element())
	return box
}

func TestContainerScrollClamp(t *testing.T) {
	t.Parallel()

	box := NewContainer("box", 2)
	box.SetScrollTop(10)
	if box.ScrollTop() != 0 {
		t.Fatalf("empty box scroll top = %d", box.ScrollTop())
	}
	for i := 0; i < 5; i++ {
		box.AppendChild(widget.Element{Classes: []string{"message"}, Text: "x"})
	}
	box.SetScrollTop(box.ScrollHeight())
	if box.ScrollTop() != 3 {
		t.Fatalf("scroll top = %d, want 3", box.ScrollTop())
	}
	box.SetScrollTop(-4)
	if box.ScrollTop() != 0 || box.AtBottom() {
		t.Fatalf("scroll top = %d, at bottom = %v", box.ScrollTop(), box.AtBottom())
	}
}

func TestContainerChildIDsAndCopies(t *testing.T) {
	t.Parallel()

	box := NewContainer("chat", 0)
	classes := []string{"message", "user"}
	box.AppendChild(widget.Element{Classes: classes, Text: "a"})
	classes[1] = "mutated"
	box.AppendChild(widget.Element{Classes: []string{"message"}, Text: "b"})

	children := box.Children()
	if children[0].ID != "chat-1" || children[1].ID != "chat-2" {
		t.Fatalf("ids = %q, %q", children[0].ID, children[1].ID)
	}
	if children[0].Classes[1] != "user" {
		t.Fatalf("container kept a reference to the caller's classes")
	}
}

func TestFieldDispatchesKeysInOrder(t *testing.T) {
	t.Parallel()

	f := NewField("in")
	var got []string
	f.OnKeyDown(func(k string) { got = append(got, "first:"+k) })
	f.OnKeyDown(nil)
	f.OnKeyDown(func(k string) { got = append(got, "second:"+k) })

	f.Type("abc")
	f.KeyDown("Enter")

	if diff := cmp.Diff([]string{"first:Enter", "second:Enter"}, got); diff != "" {
		t.Fatalf("dispatch (-want +got):\n%s", diff)
	}
	if f.Value() != "abc" {
		t.Fatalf("value = %q", f.Value())
	}
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Render(&buf, FormatText, sampleBox()); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<b>hi</b> & bye\nBot: <b>hi</b> & \"bye\"\n"
	if buf.String() != want {
		t.Fatalf("text = %q, want %q", buf.String(), want)
	}
}

func TestRenderHTMLEscapesText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Render(&buf, FormatHTML, sampleBox()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<div id="chat-box" data-session="s1">`,
		`<div id="s1-1" class="message user">&lt;b&gt;hi&lt;/b&gt; &amp; bye</div>`,
		`<div id="s1-2" class="message">Bot: &lt;b&gt;hi&lt;/b&gt; &amp; &quot;bye&quot;</div>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("html missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<b>") {
		t.Fatalf("html contains unescaped markup:\n%s", out)
	}
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Render(&buf, FormatJSON, sampleBox()); err != nil {
		t.Fatalf("render: %v", err)
	}
	var got []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	want := []map[string]string{
		{"class": "message user", "origin": "user", "text": "<b>hi</b> & bye"},
		{"class": "message", "origin": "bot", "text": `Bot: <b>hi</b> & "bye"`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("json (-want +got):\n%s", diff)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Render(&buf, FormatJSON, NewContainer("x", 0)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("json = %q", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, " html ": FormatHTML, "json": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if err := Render(&bytes.Buffer{}, Format("yaml"), NewContainer("x", 0)); err == nil {
		t.Fatal("expected render error for unknown format")
	}
}
