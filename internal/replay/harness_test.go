package replay

import "testing"

func sampleFixture() *Fixture {
	return &Fixture{
		Description:    "evening cooking session",
		Hour:           21,
		QueryWordCount: 8,
		Watches: []FixtureWatch{
			{WatchTime: 100, VideoLength: 120, VideoName: "How to make pasta carbonara", Hashtags: []string{"cooking", "pasta", "italian"}, Liked: true},
			{WatchTime: 200, VideoLength: 300, VideoName: "Italian cooking secrets from grandma", Hashtags: []string{"cooking", "italian", "recipes"}},
			{WatchTime: 180, VideoLength: 200, VideoName: "Best pasta shapes ranked by an italian chef", Hashtags: []string{"pasta", "italian", "food"}, Liked: true},
			{WatchTime: 3, VideoLength: 600, VideoName: "Clickbait garbage you wont believe", Hashtags: []string{"shocking", "viral"}, Disliked: true},
		},
		Expected: FixtureExpected{
			ShouldBreak:     false,
			LeadToken:       "pasta",
			MaxQueryTokens:  8,
			ForbiddenTokens: []string{"shocking", "viral", "clickbait", "garbage", "wont", "believe"},
		},
	}
}

func TestRunSampleSession(t *testing.T) {
	r := Run(sampleFixture())

	if len(r.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(r.Steps))
	}
	// First three watches qualify; the 3-second one is noise.
	for i := 0; i < 3; i++ {
		if !r.Steps[i].Qualified {
			t.Fatalf("expected step %d to qualify", i)
		}
	}
	if r.Steps[3].Qualified {
		t.Fatal("expected sub-threshold watch to be discarded")
	}

	if r.SessionMinutes != 480.0/60.0 {
		t.Fatalf("expected 8 session minutes, got %f", r.SessionMinutes)
	}
	if r.ShouldBreak {
		t.Fatal("expected no break for an 8-minute engaged session")
	}
	if r.BreakMinutes != 5.0+5.0*21.0/24.0 {
		t.Fatalf("expected hour-21 break length, got %f", r.BreakMinutes)
	}

	if len(r.Query) == 0 || len(r.Query) > 8 {
		t.Fatalf("expected 1..8 query tokens, got %v", r.Query)
	}
	if len(r.Exclusions) != 7 {
		t.Fatalf("expected 7 exclusion tokens, got %v", r.Exclusions)
	}
}

func TestRunAppliesParentOverride(t *testing.T) {
	f := sampleFixture()
	override := 2.5
	f.ParentOverrideMinutes = &override

	r := Run(f)
	if r.BreakMinutes != 2.5 {
		t.Fatalf("expected override break length, got %f", r.BreakMinutes)
	}
}

func TestRunDefaultsQueryWordCount(t *testing.T) {
	f := sampleFixture()
	f.QueryWordCount = 0

	r := Run(f)
	if len(r.Query) == 0 || len(r.Query) > defaultQueryWordCount {
		t.Fatalf("expected default budget applied, got %v", r.Query)
	}
}

func TestCheckPassesOnSample(t *testing.T) {
	f := sampleFixture()

	if divs := Check(f, Run(f)); len(divs) != 0 {
		t.Fatalf("expected no divergences, got %+v", divs)
	}
}

func TestCheckCatchesWrongVerdict(t *testing.T) {
	f := sampleFixture()
	r := Run(f)
	f.Expected.ShouldBreak = true

	divs := Check(f, r)
	if len(divs) != 1 || divs[0].Field != "should_break" {
		t.Fatalf("expected should_break divergence, got %+v", divs)
	}
}

func TestCheckCatchesForbiddenToken(t *testing.T) {
	f := sampleFixture()
	r := Run(f)
	r.Query = append(r.Query, "shocking")

	divs := Check(f, r)
	if len(divs) == 0 {
		t.Fatal("expected forbidden token divergence")
	}
}
