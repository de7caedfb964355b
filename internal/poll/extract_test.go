package poll

import "testing"

func TestExtractDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"id after last at", "Quinnipiac@12345", "1993-10-19"},
		{"id zero is origin", "@0", "1960-01-01"},
		{"id picks last at", "a@b@20000", "2014-10-04"},
		{"id with trailing space", "poll @23000 ", "2022-12-21"},
		{"range end date", "Field Poll 06/01 - 06/10, 2016", "2016-06-10"},
		{"range tight dash", "05/30-06/02, 2020", "2020-06-02"},
		{"single date", "03/04/2021", "2021-03-04"},
		{"single date embedded", "released 7/4/1999 by AP", "1999-07-04"},
		{"at without trailing digits falls back to range", "x@y 06/01 - 06/10, 2016 final", "2016-06-10"},
		{"invalid range month falls back to single", "13/01 - 13/02, 2016 then 03/04/2021", "2021-03-04"},
		{"invalid everything passes through", "unparseable text", "unparseable text"},
		{"empty passes through", "", ""},
		{"canonical iso passes through", "2016-06-10", "2016-06-10"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ExtractDate(c.in); got != c.want {
				t.Fatalf("ExtractDate(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestExtractDateInvalidCalendarFallsThrough(t *testing.T) {
	// Month 13 in the range must not error; the single-date pattern
	// cannot match either, so the text comes back unchanged.
	in := "13/01 - 13/02, 2016"
	if got := ExtractDate(in); got != in {
		t.Fatalf("ExtractDate(%q) = %q, want pass-through", in, got)
	}
}

func TestExtractPollster(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"anchor inner text", `<a href='x'>Quinnipiac</a>^Sponsor: ABC^`, "Quinnipiac"},
		{"anchor case insensitive", `<A HREF="y">Marist</A>`, "Marist"},
		{"anchor spanning lines", "<a\nhref='z'>Siena\nCollege</a>", "Siena\nCollege"},
		{"before first caret", "YouGov^Sponsor: Economist^", "YouGov"},
		{"plain text", "  Gallup  ", "Gallup"},
		{"strips stray tags", "Ipsos<b>!</b>", "Ipsos!"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ExtractPollster(c.in); got != c.want {
				t.Fatalf("ExtractPollster(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestExtractSponsor(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", `<a href='x'>Quinnipiac</a>^Sponsor: ABC^`, "ABC"},
		{"multi word", "YouGov^Sponsor: Strength in Numbers^", "Strength in Numbers"},
		{"case insensitive label", "X^sponsor:CNN^", "CNN"},
		{"space before label", "X^ Sponsor: CBS News^", "CBS News"},
		{"no sponsor segment", "YouGov^Economist^", ""},
		{"no carets", "Gallup", ""},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ExtractSponsor(c.in); got != c.want {
				t.Fatalf("ExtractSponsor(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
