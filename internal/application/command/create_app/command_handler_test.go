package create_app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"applens-agent/internal/application/command/update_app"
	"applens-agent/internal/application/navigation"
	"applens-agent/internal/application/notification"
	"applens-agent/internal/application/session"
	"applens-agent/internal/application/store"
	"applens-agent/internal/domain/model"
	"applens-agent/pkg/cqrs"
)

type fakeAppRepo struct {
	createID  string
	createErr error
	created   []model.CreateApplicationRequest
	updates   []model.ApplicationUpdate
}

func (f *fakeAppRepo) ListApplications(ctx context.Context) ([]model.Application, error) {
	return nil, nil
}

func (f *fakeAppRepo) CreateApplication(ctx context.Context, req model.CreateApplicationRequest) (string, error) {
	f.created = append(f.created, req)
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.createID, nil
}

func (f *fakeAppRepo) RenameApplication(ctx context.Context, appID string, name string) error {
	return nil
}

func (f *fakeAppRepo) UpdateApplication(ctx context.Context, appID string, update model.ApplicationUpdate) (string, error) {
	f.updates = append(f.updates, update)
	return appID, nil
}

func (f *fakeAppRepo) DeleteApplications(ctx context.Context, appIDs []string) error {
	return nil
}

type fakePanelRepo struct {
	panelID    string
	err        error
	panelNames []string
}

func (f *fakePanelRepo) CreatePanel(ctx context.Context, appID string, panelName string) (string, error) {
	f.panelNames = append(f.panelNames, panelName)
	if f.err != nil {
		return "", f.err
	}
	return f.panelID, nil
}

func (f *fakePanelRepo) DeletePanels(ctx context.Context, panelIDs []string) error {
	return nil
}

func (f *fakePanelRepo) ListVisualizationIDs(ctx context.Context, panelID string) ([]string, error) {
	return nil, nil
}

type fixture struct {
	apps      *fakeAppRepo
	panels    *fakePanelRepo
	store     *store.ApplicationStore
	drafts    *session.DraftStore
	toasts    *notification.ToastList
	navigator *navigation.Recorder
	bus       cqrs.CommandBus
	handler   *CreateAppHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	drafts, err := session.OpenDraftStore("")
	require.NoError(t, err)

	f := &fixture{
		apps:      &fakeAppRepo{createID: "app-1"},
		panels:    &fakePanelRepo{panelID: "p1"},
		store:     store.NewApplicationStore(),
		drafts:    drafts,
		toasts:    notification.NewToastList(),
		navigator: navigation.NewRecorder(),
		bus:       cqrs.NewCommandBus(nil),
	}
	updateHandler := update_app.NewUpdateAppHandler(f.apps, f.store, f.drafts, f.toasts, f.navigator)
	require.NoError(t, f.bus.Register(updateHandler))

	f.handler = NewCreateAppHandler(
		f.apps, f.panels, f.store, f.drafts, f.toasts, f.bus, "https://docs.example.com/panels", false,
	)
	return f
}

func TestCreateAddsApplicationAndProvisionsPanel(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.drafts.Set(session.DraftName, "Checkout"))

	err := f.handler.Handle(CreateAppCommand{
		Request: model.CreateApplicationRequest{Name: "Checkout", Description: "checkout flow"},
		Mode:    model.ModeCreate,
	})
	require.NoError(t, err)

	app, ok := f.store.Get("app-1")
	require.True(t, ok)
	require.Equal(t, "Checkout", app.Name)
	require.Equal(t, "checkout flow", app.Description)
	require.Equal(t, "p1", app.PanelID, "panel reference should land via the update dispatch")

	require.Equal(t, []string{"Checkout's Panel"}, f.panels.panelNames)
	require.Empty(t, f.drafts.Get(session.DraftName), "drafts cleared on success")
	require.Equal(t, "app-1", f.navigator.CurrentApp())

	toasts := f.toasts.Toasts()
	require.NotEmpty(t, toasts)
	require.Equal(t, `Application "Checkout" successfully created!`, toasts[0].Title)
	require.Equal(t, model.SeveritySuccess, toasts[0].Color)
}

func TestCreateValidationFailureNeverReachesNetwork(t *testing.T) {
	f := newFixture(t)
	f.store.Add(model.Application{ID: "existing", Name: "Checkout"})

	err := f.handler.Handle(CreateAppCommand{
		Request: model.CreateApplicationRequest{Name: "Checkout"},
	})

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Empty(t, f.apps.created, "validation failures are pre-flight")
	require.Equal(t, 1, f.store.Len(), "store unchanged")

	toasts := f.toasts.Toasts()
	require.Len(t, toasts, 1)
	require.Equal(t, model.SeverityDanger, toasts[0].Color)
}

func TestCreateEmptyNameReportsViolation(t *testing.T) {
	f := newFixture(t)

	err := f.handler.Handle(CreateAppCommand{Request: model.CreateApplicationRequest{Name: ""}})

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Violations, "Name must not be empty")
	require.Empty(t, f.apps.created)
	require.Zero(t, f.store.Len())
}

func TestCreateBackendFailureLeavesStoreUnchanged(t *testing.T) {
	f := newFixture(t)
	f.apps.createErr = &model.BackendError{StatusCode: 500, Body: "boom"}

	err := f.handler.Handle(CreateAppCommand{Request: model.CreateApplicationRequest{Name: "Checkout"}})
	require.Error(t, err)

	var berr *model.BackendError
	require.ErrorAs(t, err, &berr)
	require.Zero(t, f.store.Len())
	require.Empty(t, f.panels.panelNames, "no panel provisioning after failed create")
}

func TestCreatePanelFailureIsNonFatal(t *testing.T) {
	f := newFixture(t)
	f.panels.err = errors.New("panels disabled")

	err := f.handler.Handle(CreateAppCommand{
		Request: model.CreateApplicationRequest{Name: "Checkout"},
		Mode:    model.ModeCreate,
	})
	require.NoError(t, err, "create is not rolled back by panel failure")

	app, ok := f.store.Get("app-1")
	require.True(t, ok)
	require.Empty(t, app.PanelID, "no panel reference is guessed client-side")

	// Two separate reports: creation success, then the panel warning with
	// the documentation link.
	toasts := f.toasts.Toasts()
	require.Len(t, toasts, 2)
	require.Equal(t, model.SeveritySuccess, toasts[0].Color)
	require.Equal(t, model.SeverityDanger, toasts[1].Color)
	require.Equal(t, "https://docs.example.com/panels", toasts[1].Text)
}

func TestCreateSetAvailabilityArmsFollowUp(t *testing.T) {
	f := newFixture(t)

	err := f.handler.Handle(CreateAppCommand{
		Request: model.CreateApplicationRequest{Name: "Checkout"},
		Mode:    model.ModeCreateSetAvailability,
	})
	require.NoError(t, err)
	require.Equal(t, "app-1", f.navigator.CurrentApp())
	require.True(t, f.navigator.ConsumeTrigger(), "availability setup flow should be armed")
}

func TestCreateSkipsPanelWhenProvisioningDisabled(t *testing.T) {
	f := newFixture(t)
	f.handler = NewCreateAppHandler(
		f.apps, f.panels, f.store, f.drafts, f.toasts, f.bus, "", true,
	)

	err := f.handler.Handle(CreateAppCommand{Request: model.CreateApplicationRequest{Name: "Checkout"}})
	require.NoError(t, err)
	require.Empty(t, f.panels.panelNames)

	app, _ := f.store.Get("app-1")
	require.Empty(t, app.PanelID)
}
