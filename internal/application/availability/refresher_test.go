package availability

import (
	"context"
	"errors"
	"testing"

	"applens-agent/internal/application/store"
	"applens-agent/internal/domain/model"
)

type fakeScorer struct {
	store     *store.ApplicationStore
	scored    []string
	visIDs    map[string]string
	results   map[string]model.Availability
	errors    map[string]error
	firstSeen []model.Application
}

func (f *fakeScorer) Score(ctx context.Context, app model.Application, availabilityVisID string) (model.Availability, error) {
	if f.firstSeen == nil && f.store != nil {
		// Capture what observers see before any score resolves.
		f.firstSeen = f.store.Snapshot()
	}
	f.scored = append(f.scored, app.ID)
	if f.visIDs != nil {
		f.visIDs[app.ID] = availabilityVisID
	}
	if err, ok := f.errors[app.ID]; ok {
		return model.Availability{}, err
	}
	return f.results[app.ID], nil
}

func apps() []model.Application {
	return []model.Application{
		{ID: "a1", Name: "One", Availability: model.Availability{AvailabilityVisID: "v1"}},
		{ID: "a2", Name: "Two", Availability: model.Availability{AvailabilityVisID: "v2"}},
		{ID: "a3", Name: "Three"},
	}
}

func TestRefreshPublishesPlaceholdersFirst(t *testing.T) {
	s := store.NewApplicationStore()
	scorer := &fakeScorer{store: s, results: map[string]model.Availability{}}
	NewRefresher(s, scorer).Refresh(context.Background(), apps())

	if len(scorer.firstSeen) != 3 {
		t.Fatalf("expected full list published before scoring, got %d entries", len(scorer.firstSeen))
	}
	for _, app := range scorer.firstSeen {
		if app.Availability.Color != model.SeverityLoading {
			t.Fatalf("expected loading placeholder for %s, got %q", app.ID, app.Availability.Color)
		}
		if app.Availability.Name != "" || app.Availability.AvailabilityVisID != "" {
			t.Fatalf("placeholder must be empty, got %+v", app.Availability)
		}
	}
}

func TestRefreshScoresInReverseOrder(t *testing.T) {
	s := store.NewApplicationStore()
	scorer := &fakeScorer{visIDs: map[string]string{}, results: map[string]model.Availability{}}
	NewRefresher(s, scorer).Refresh(context.Background(), apps())

	want := []string{"a3", "a2", "a1"}
	if len(scorer.scored) != len(want) {
		t.Fatalf("expected %d scores, got %v", len(want), scorer.scored)
	}
	for i, id := range want {
		if scorer.scored[i] != id {
			t.Fatalf("expected reverse order %v, got %v", want, scorer.scored)
		}
	}

	// The stashed vis IDs are handed to the scorer even though the
	// placeholder cleared them on the published list.
	if scorer.visIDs["a1"] != "v1" || scorer.visIDs["a2"] != "v2" || scorer.visIDs["a3"] != "" {
		t.Fatalf("unexpected vis ids: %v", scorer.visIDs)
	}
}

func TestRefreshResolvesEveryEntryToTerminalColor(t *testing.T) {
	s := store.NewApplicationStore()
	scorer := &fakeScorer{
		results: map[string]model.Availability{
			"a1": {Name: "Availability", Color: model.SeveritySuccess, AvailabilityVisID: "v1"},
			"a2": {Name: "Availability", Color: model.SeverityWarning, AvailabilityVisID: "v2"},
			"a3": {Color: model.SeveritySubdued},
		},
	}
	NewRefresher(s, scorer).Refresh(context.Background(), apps())

	for _, app := range s.Snapshot() {
		if app.Availability.Color == model.SeverityLoading || app.Availability.Color == "" {
			t.Fatalf("expected terminal color for %s, got %q", app.ID, app.Availability.Color)
		}
	}
	got, _ := s.Get("a1")
	if got.Availability.Color != model.SeveritySuccess || got.Availability.AvailabilityVisID != "v1" {
		t.Fatalf("unexpected availability: %+v", got.Availability)
	}
}

func TestRefreshFailureIsolatedPerEntry(t *testing.T) {
	s := store.NewApplicationStore()
	scorer := &fakeScorer{
		results: map[string]model.Availability{
			"a1": {Color: model.SeveritySuccess, AvailabilityVisID: "v1"},
			"a3": {Color: model.SeveritySubdued},
		},
		errors: map[string]error{"a2": errors.New("evaluator unreachable")},
	}
	NewRefresher(s, scorer).Refresh(context.Background(), apps())

	failed, _ := s.Get("a2")
	if failed.Availability.Color != model.SeverityDanger {
		t.Fatalf("expected danger for failed entry, got %+v", failed.Availability)
	}
	ok, _ := s.Get("a1")
	if ok.Availability.Color != model.SeveritySuccess {
		t.Fatalf("failure of one entry affected another: %+v", ok.Availability)
	}
}

func TestRefreshDoesNotAlterOtherFields(t *testing.T) {
	s := store.NewApplicationStore()
	in := apps()
	in[0].Description = "desc"
	in[0].PanelID = "p1"
	scorer := &fakeScorer{results: map[string]model.Availability{}}
	NewRefresher(s, scorer).Refresh(context.Background(), in)

	got, _ := s.Get("a1")
	if got.Description != "desc" || got.PanelID != "p1" || got.Name != "One" {
		t.Fatalf("refresh altered non-availability fields: %+v", got)
	}
}
