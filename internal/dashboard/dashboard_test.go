package dashboard

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamops-io/personnel-cli/pkg/models"
)

type fakeAPI struct {
	people      []models.Person
	access      []models.AccessRequest
	assignments []models.ComputerAssignment

	peopleErr      error
	accessErr      error
	assignmentsErr error

	deleted    []string
	deleteErrs map[string]error
}

func (f *fakeAPI) ListPeople(ctx context.Context) ([]models.Person, error) {
	return f.people, f.peopleErr
}

func (f *fakeAPI) ListAccessRequests(ctx context.Context) ([]models.AccessRequest, error) {
	return f.access, f.accessErr
}

func (f *fakeAPI) ListAssignments(ctx context.Context) ([]models.ComputerAssignment, error) {
	return f.assignments, f.assignmentsErr
}

func (f *fakeAPI) delete(kind string, id models.ID) (string, error) {
	key := kind + "/" + id.String()
	if err := f.deleteErrs[key]; err != nil {
		return "", err
	}
	f.deleted = append(f.deleted, key)
	return "deleted", nil
}

func (f *fakeAPI) DeletePerson(ctx context.Context, id models.ID) (string, error) {
	return f.delete("person", id)
}

func (f *fakeAPI) DeleteAccessRequest(ctx context.Context, id models.ID) (string, error) {
	return f.delete("access", id)
}

func (f *fakeAPI) DeleteAssignment(ctx context.Context, id models.ID) (string, error) {
	return f.delete("assignment", id)
}

func fullAPI() *fakeAPI {
	return &fakeAPI{
		people: []models.Person{
			{ID: "p1", Name: "Ana", Status: "aprobado"},
			{ID: "p2", Name: "Luis", Status: "pendiente"},
		},
		access: []models.AccessRequest{
			{ID: "a1", UserName: "Marta", AccessType: "GitHub", Status: "pendiente"},
		},
		assignments: []models.ComputerAssignment{
			{ID: "c1", UserName: "Pedro", ComputerSerial: "SN-1", Status: "aprobado"},
		},
	}
}

func TestLoadConcatenatesInCollectionOrder(t *testing.T) {
	view := Load(context.Background(), fullAPI())

	rows := view.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, models.KindPersonCreation, rows[0].Kind)
	assert.Equal(t, models.KindPersonCreation, rows[1].Kind)
	assert.Equal(t, models.KindAccessRequest, rows[2].Kind)
	assert.Equal(t, models.KindAssignment, rows[3].Kind)
	assert.Equal(t, "", view.Err())
	assert.False(t, view.ShowErrorBanner())
}

func TestLoadSinglePerson(t *testing.T) {
	api := &fakeAPI{
		people: []models.Person{{ID: "1", Name: "Ana", Status: "aprobado"}},
	}

	view := Load(context.Background(), api)

	rows := view.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].PersonLabel)
	assert.Equal(t, models.LabelPersonCreation, rows[0].RequestLabel)
	assert.Equal(t, models.StatusApproved, rows[0].StatusClass())
}

func TestLoadPartialFailureStillRendersOthers(t *testing.T) {
	api := fullAPI()
	api.accessErr = fmt.Errorf("boom")

	view := Load(context.Background(), api)

	rows := view.Rows()
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.NotEqual(t, models.KindAccessRequest, row.Kind)
	}
	assert.Contains(t, view.Err(), "could not load access requests")
	assert.False(t, view.ShowErrorBanner())
}

func TestLoadErrorBannerOnlyWhenAllEmpty(t *testing.T) {
	api := &fakeAPI{
		peopleErr:      fmt.Errorf("down"),
		accessErr:      fmt.Errorf("down"),
		assignmentsErr: fmt.Errorf("down"),
	}

	view := Load(context.Background(), api)

	assert.Empty(t, view.Rows())
	assert.NotEmpty(t, view.Err())
	assert.True(t, view.ShowErrorBanner())
}

func TestLoadKeepsFirstError(t *testing.T) {
	api := &fakeAPI{peopleErr: fmt.Errorf("one")}

	view := Load(context.Background(), api)

	// Only one source failed, so the shared message is deterministic here;
	// a later failure must not overwrite it.
	first := view.Err()
	view.setErr("a later failure")
	assert.Equal(t, first, view.Err())
}

func TestLoadDropsRowsWithoutID(t *testing.T) {
	api := &fakeAPI{
		people: []models.Person{
			{ID: "1", Name: "Ana", Status: "aprobado"},
			{Name: "Sin Id", Status: "pendiente"},
		},
		assignments: []models.ComputerAssignment{
			{UserName: "Pedro"},
		},
	}

	view := Load(context.Background(), api)

	require.Len(t, view.Rows(), 1)
	assert.Equal(t, "Ana", view.Rows()[0].PersonLabel)
	assert.Equal(t, 2, view.Dropped())
}

func TestFind(t *testing.T) {
	view := Load(context.Background(), fullAPI())

	row, ok := view.Find(models.KindAccessRequest, "a1")
	require.True(t, ok)
	assert.Equal(t, "Marta", row.PersonLabel)

	// Kind and id must both match.
	_, ok = view.Find(models.KindPersonCreation, "a1")
	assert.False(t, ok)
}

func TestDeleteRemovesExactlyOneRow(t *testing.T) {
	api := fullAPI()
	view := Load(context.Background(), api)

	msg, err := view.Delete(context.Background(), api, models.KindPersonCreation, "p1")
	require.NoError(t, err)
	assert.Equal(t, "deleted", msg)
	assert.Equal(t, []string{"person/p1"}, api.deleted)

	rows := view.Rows()
	require.Len(t, rows, 3)
	_, ok := view.Find(models.KindPersonCreation, "p1")
	assert.False(t, ok)
	_, ok = view.Find(models.KindPersonCreation, "p2")
	assert.True(t, ok)
}

func TestDeleteFailureLeavesViewUntouched(t *testing.T) {
	api := fullAPI()
	api.deleteErrs = map[string]error{"assignment/c1": fmt.Errorf("server error")}
	view := Load(context.Background(), api)

	_, err := view.Delete(context.Background(), api, models.KindAssignment, "c1")
	require.Error(t, err)

	_, ok := view.Find(models.KindAssignment, "c1")
	assert.True(t, ok)
	assert.Len(t, view.Rows(), 4)
}

func TestDeleteUnknownRow(t *testing.T) {
	api := fullAPI()
	view := Load(context.Background(), api)

	_, err := view.Delete(context.Background(), api, models.KindAccessRequest, "missing")
	require.Error(t, err)
	assert.Empty(t, api.deleted)
}

func TestEditCommand(t *testing.T) {
	assert.Equal(t, "teamops people edit p1", EditCommand(models.KindPersonCreation, "p1"))
	assert.Equal(t, "teamops access edit a1", EditCommand(models.KindAccessRequest, "a1"))
	assert.Equal(t, "teamops assign edit c1", EditCommand(models.KindAssignment, "c1"))
}
