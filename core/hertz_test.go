package core

import (
	"testing"
	"time"
)

func TestHertz(t *testing.T) {
	if KHz(8) != Hz(8000) || MHz(8) != KHz(8000) {
		t.Error("unit constructors disagree")
	}
	if p := KHz(1).Period(); p != time.Millisecond {
		t.Errorf("1kHz period = %v", p)
	}
	if p := Hertz(0).Period(); p != 0 {
		t.Errorf("0Hz period = %v", p)
	}
	if s := MHz(108).String(); s != "108000000Hz" {
		t.Errorf("String = %q", s)
	}
}

func TestHertzSaturates(t *testing.T) {
	testCases := []struct {
		got  Hertz
		want Hertz
	}{
		{MHz(4294), Hertz(4294000000)},
		{MHz(4295), MaxHertz},
		{MHz(5000), MaxHertz},
		{KHz(4294967), Hertz(4294967000)},
		{KHz(4294968), MaxHertz},
	}

	for i, tc := range testCases {
		if tc.got != tc.want {
			t.Errorf("case %d: got %d, want %d", i, tc.got, tc.want)
		}
	}
}
