package osm

import (
	"strings"
	"testing"
)

func collect(t *testing.T, doc string) []Event {
	t.Helper()
	r := NewReader(strings.NewReader(doc))
	var events []Event
	for {
		ev, err := r.Next()
		if err != nil {
			t.Fatalf("Next: unexpected error: %v", err)
		}
		events = append(events, ev)
		if ev.Kind == Eof {
			return events
		}
	}
}

func TestReaderEmptyElement(t *testing.T) {
	events := collect(t, `<node id="1" lat="0" lon="0"/>`)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2 (Empty, Eof)", len(events))
	}
	if events[0].Kind != Empty || events[0].Name != "node" {
		t.Errorf("events[0] = %+v, want Empty node", events[0])
	}
	if v, ok := events[0].Attr("lat"); !ok || v != "0" {
		t.Errorf("lat attr = %q, %v", v, ok)
	}
	if events[1].Kind != Eof {
		t.Errorf("events[1] = %+v, want Eof", events[1])
	}
}

func TestReaderStartEndPair(t *testing.T) {
	events := collect(t, `<way id="5"><nd ref="1"/></way>`)
	want := []EventKind{Start, Empty, End, Eof}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, k := range want {
		if events[i].Kind != k {
			t.Errorf("events[%d].Kind = %v, want %v", i, events[i].Kind, k)
		}
	}
	if events[0].Name != "way" {
		t.Errorf("events[0].Name = %q, want way", events[0].Name)
	}
	if id, ok := events[0].Attr("id"); !ok || id != "5" {
		t.Errorf("way id attr = %q, %v", id, ok)
	}
}

func TestReaderIgnoresWhitespaceBetweenTags(t *testing.T) {
	doc := "<way id=\"1\">\n  <nd ref=\"1\"/>\n  <nd ref=\"2\"/>\n</way>\n"
	events := collect(t, doc)
	want := []EventKind{Start, Empty, Empty, End, Eof}
	if len(events) != len(want) {
		t.Fatalf("got %d events (%v), want %d", len(events), events, len(want))
	}
	for i, k := range want {
		if events[i].Kind != k {
			t.Errorf("events[%d].Kind = %v, want %v", i, events[i].Kind, k)
		}
	}
}

func TestReaderNestedElements(t *testing.T) {
	doc := `<way id="1"><nd ref="1"/><tag k="highway" v="residential"/></way>`
	events := collect(t, doc)
	want := []EventKind{Start, Empty, Empty, End, Eof}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	if events[2].Name != "tag" {
		t.Errorf("events[2].Name = %q, want tag", events[2].Name)
	}
	if k, ok := events[2].Attr("k"); !ok || k != "highway" {
		t.Errorf("tag k attr = %q, %v", k, ok)
	}
}

func TestReaderEofIsSticky(t *testing.T) {
	r := NewReader(strings.NewReader(`<node id="1" lat="0" lon="0"/>`))
	for i := 0; i < 2; i++ {
		if _, err := r.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	ev, err := r.Next()
	if err != nil {
		t.Fatalf("Next after Eof: %v", err)
	}
	if ev.Kind != Eof {
		t.Errorf("expected Eof to stick, got %v", ev.Kind)
	}
}

func TestReaderMalformedXMLIsParseError(t *testing.T) {
	// An unterminated attribute value swallows the rest of the tag, leaving
	// malformed attribute syntax that encoding/xml rejects.
	r := NewReader(strings.NewReader(`<node id="1 lat="0" lon="0"/>`))
	for i := 0; i < 10; i++ {
		ev, err := r.Next()
		if err != nil {
			if _, ok := err.(*ParseError); !ok {
				t.Fatalf("error is not *ParseError: %v", err)
			}
			return
		}
		if ev.Kind == Eof {
			t.Fatal("expected a parse error, reached Eof cleanly instead")
		}
	}
	t.Fatal("did not reach a parse error or Eof within the iteration bound")
}
