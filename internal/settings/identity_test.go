package settings

import (
	"reflect"
	"testing"
)

func TestParseIdentities(t *testing.T) {
	raw := "  Me <me@example.com> \n\nwork@example.com\nJust A Name\n"
	got := ParseIdentities(raw)
	want := []Identity{
		{Name: "Me", Email: "me@example.com"},
		{Email: "work@example.com"},
		{Name: "Just A Name"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	ids := []Identity{
		{Name: "Me", Email: "me@example.com"},
		{Email: "work@example.com"},
		{Name: "Solo"},
	}
	if got := ParseIdentities(FormatIdentities(ids)); !reflect.DeepEqual(got, ids) {
		t.Fatalf("round trip changed identities: %+v", got)
	}
}
