package delete_apps

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"applens-agent/internal/application/notification"
	"applens-agent/internal/application/store"
	"applens-agent/internal/domain/model"
)

type fakeAppRepo struct {
	deleteErr error
	deleted   [][]string
}

func (f *fakeAppRepo) ListApplications(ctx context.Context) ([]model.Application, error) {
	return nil, nil
}

func (f *fakeAppRepo) CreateApplication(ctx context.Context, req model.CreateApplicationRequest) (string, error) {
	return "", nil
}

func (f *fakeAppRepo) RenameApplication(ctx context.Context, appID string, name string) error {
	return nil
}

func (f *fakeAppRepo) UpdateApplication(ctx context.Context, appID string, update model.ApplicationUpdate) (string, error) {
	return appID, nil
}

func (f *fakeAppRepo) DeleteApplications(ctx context.Context, appIDs []string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, appIDs)
	return nil
}

type fakePanelRepo struct {
	mu            sync.Mutex
	vizByPanel    map[string][]string
	listErr       error
	deleteErr     error
	deletedPanels [][]string
}

func (f *fakePanelRepo) CreatePanel(ctx context.Context, appID string, panelName string) (string, error) {
	return "", nil
}

func (f *fakePanelRepo) DeletePanels(ctx context.Context, panelIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedPanels = append(f.deletedPanels, panelIDs)
	return nil
}

func (f *fakePanelRepo) ListVisualizationIDs(ctx context.Context, panelID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.vizByPanel[panelID], nil
}

type fakeVizRepo struct {
	mu        sync.Mutex
	deleteErr error
	deleted   [][]string
}

func (f *fakeVizRepo) DeleteVisualizations(ctx context.Context, visualizationIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, visualizationIDs)
	return nil
}

type fixture struct {
	apps    *fakeAppRepo
	panels  *fakePanelRepo
	viz     *fakeVizRepo
	store   *store.ApplicationStore
	toasts  *notification.ToastList
	events  *notification.Events
	handler *DeleteAppsHandler
}

func newFixture() *fixture {
	f := &fixture{
		apps:   &fakeAppRepo{},
		panels: &fakePanelRepo{vizByPanel: map[string][]string{}},
		viz:    &fakeVizRepo{},
		store:  store.NewApplicationStore(),
		toasts: notification.NewToastList(),
		events: notification.NewEvents(),
	}
	f.store.ReplaceAll([]model.Application{
		{ID: "a1", Name: "Checkout", PanelID: "p1"},
		{ID: "a2", Name: "Payments", PanelID: "p2"},
		{ID: "a3", Name: "Orders"},
	})
	f.handler = NewDeleteAppsHandler(
		f.apps, f.panels, f.viz, f.store, f.toasts, f.events, "https://docs.example.com/panels",
	)
	return f
}

func TestDeleteRemovesExactlyRequestedIDs(t *testing.T) {
	f := newFixture()

	err := f.handler.Handle(DeleteAppsCommand{AppIDs: []string{"a1", "a3"}})
	require.NoError(t, err)
	f.handler.WaitForCascade()

	snap := f.store.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, "a2", snap[0].ID)
	require.Equal(t, [][]string{{"a1", "a3"}}, f.apps.deleted, "single batched call")

	list := f.toasts.Toasts()
	require.Len(t, list, 1)
	require.Equal(t, "Applications successfully deleted!", list[0].Title)
}

func TestDeleteSingularMessage(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.handler.Handle(DeleteAppsCommand{AppIDs: []string{"a1"}}))
	f.handler.WaitForCascade()

	list := f.toasts.Toasts()
	require.Len(t, list, 1)
	require.Equal(t, "Application successfully deleted!", list[0].Title)
}

func TestDeleteOverrideMessage(t *testing.T) {
	f := newFixture()

	err := f.handler.Handle(DeleteAppsCommand{
		AppIDs:         []string{"a1"},
		SuccessMessage: "Cleanup complete",
	})
	require.NoError(t, err)
	f.handler.WaitForCascade()

	list := f.toasts.Toasts()
	require.Equal(t, "Cleanup complete", list[0].Title)
}

func TestDeletePrimaryFailureAbortsEverything(t *testing.T) {
	f := newFixture()
	f.apps.deleteErr = &model.BackendError{StatusCode: 500, Body: "boom"}
	f.panels.vizByPanel["p1"] = []string{"v1"}
	deleted := f.events.Subscribe()

	err := f.handler.Handle(DeleteAppsCommand{AppIDs: []string{"a1"}, PanelIDs: []string{"p1"}})
	require.Error(t, err)
	f.handler.WaitForCascade()

	require.Equal(t, 3, f.store.Len(), "store untouched when primary delete fails")
	require.Empty(t, f.viz.deleted, "no cascade after failed primary delete")
	require.Empty(t, f.panels.deletedPanels)
	select {
	case id := <-deleted:
		t.Fatalf("unexpected entity deleted event for %s", id)
	default:
	}
}

func TestDeleteCascadesVisualizationsThenPanel(t *testing.T) {
	f := newFixture()
	f.panels.vizByPanel["p1"] = []string{"v1", "v2"}

	err := f.handler.Handle(DeleteAppsCommand{AppIDs: []string{"a1"}, PanelIDs: []string{"p1"}})
	require.NoError(t, err)
	f.handler.WaitForCascade()

	require.Equal(t, [][]string{{"v1", "v2"}}, f.viz.deleted)
	require.Equal(t, [][]string{{"p1"}}, f.panels.deletedPanels)
}

func TestDeleteEmptyPanelIsLeftInPlace(t *testing.T) {
	f := newFixture()
	// p1 has no visualizations.

	err := f.handler.Handle(DeleteAppsCommand{AppIDs: []string{"a1"}, PanelIDs: []string{"p1"}})
	require.NoError(t, err)
	f.handler.WaitForCascade()

	require.Empty(t, f.viz.deleted)
	require.Empty(t, f.panels.deletedPanels, "empty panel is not deleted")
	require.Equal(t, 2, f.store.Len())
}

func TestDeleteCascadeFailureDoesNotRollBack(t *testing.T) {
	f := newFixture()
	f.panels.vizByPanel["p1"] = []string{"v1"}
	f.viz.deleteErr = errors.New("saved objects unavailable")

	err := f.handler.Handle(DeleteAppsCommand{AppIDs: []string{"a1"}, PanelIDs: []string{"p1"}})
	require.NoError(t, err, "cascade failures never fail the primary operation")
	f.handler.WaitForCascade()

	_, ok := f.store.Get("a1")
	require.False(t, ok, "primary delete stays applied")
	require.Empty(t, f.panels.deletedPanels, "panel delete only after visualization delete succeeds")

	var sawDanger bool
	for _, toast := range f.toasts.Toasts() {
		if toast.Color == model.SeverityDanger {
			sawDanger = true
		}
	}
	require.True(t, sawDanger, "cascade failure reported separately")
}

func TestDeletePanelPermissionFailureLinksDocs(t *testing.T) {
	f := newFixture()
	f.panels.vizByPanel["p1"] = []string{"v1"}
	f.panels.deleteErr = &model.BackendError{StatusCode: 403, Body: "forbidden"}

	require.NoError(t, f.handler.Handle(DeleteAppsCommand{AppIDs: []string{"a1"}, PanelIDs: []string{"p1"}}))
	f.handler.WaitForCascade()

	var docsLinked bool
	for _, toast := range f.toasts.Toasts() {
		if toast.Text == "https://docs.example.com/panels" {
			docsLinked = true
		}
	}
	require.True(t, docsLinked)
}

func TestDeletePublishesEntityDeletedEvents(t *testing.T) {
	f := newFixture()
	deleted := f.events.Subscribe()

	require.NoError(t, f.handler.Handle(DeleteAppsCommand{AppIDs: []string{"a1", "a2"}}))
	f.handler.WaitForCascade()

	got := []string{<-deleted, <-deleted}
	require.ElementsMatch(t, []string{"a1", "a2"}, got)
}

func TestDeleteRequiresAtLeastOneID(t *testing.T) {
	f := newFixture()
	require.Error(t, f.handler.Handle(DeleteAppsCommand{}))
	require.Equal(t, 3, f.store.Len())
}
