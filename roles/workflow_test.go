package roles

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/testutil"
)

var chefIDPattern = regexp.MustCompile(`^chef-\d{4}$`)

func newWorkflowEnv(t *testing.T) (*Workflow, *store.Stores) {
	t.Helper()
	stores := testutil.NewStores(t)
	return NewWorkflow(stores), stores
}

func seedUser(t *testing.T, stores *store.Stores, email string) *models.User {
	t.Helper()
	user := &models.User{
		UID:   "uid-" + email,
		Name:  "Rakib",
		Email: email,
		Role:  models.RoleUser,
	}
	require.NoError(t, stores.Users.Create(context.Background(), user))
	return user
}

func TestSubmitRejectsUnknownType(t *testing.T) {
	wf, stores := newWorkflowEnv(t)
	ctx := context.Background()

	_, err := wf.Submit(ctx, "Rakib", "rakib@example.com", "driver")
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	reqs, err := stores.Requests.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	wf, _ := newWorkflowEnv(t)

	req, err := wf.Submit(context.Background(), "Rakib", "rakib@example.com", models.RequestChef)
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, req.RequestStatus)
	assert.Equal(t, models.RequestChef, req.RequestType)
	assert.NotEmpty(t, req.ID)
}

func TestSubmitRejectsDuplicatePending(t *testing.T) {
	wf, _ := newWorkflowEnv(t)
	ctx := context.Background()

	_, err := wf.Submit(ctx, "Rakib", "rakib@example.com", models.RequestChef)
	require.NoError(t, err)

	_, err = wf.Submit(ctx, "Rakib", "rakib@example.com", models.RequestChef)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// A different escalation target is still allowed
	_, err = wf.Submit(ctx, "Rakib", "rakib@example.com", models.RequestAdmin)
	require.NoError(t, err)
}

func TestDecideApprovesChef(t *testing.T) {
	wf, stores := newWorkflowEnv(t)
	ctx := context.Background()
	seedUser(t, stores, "rakib@example.com")

	req, err := wf.Submit(ctx, "Rakib", "rakib@example.com", models.RequestChef)
	require.NoError(t, err)

	result, err := wf.Decide(ctx, req.ID, models.RequestApproved, "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleChef, result.Role)
	assert.Regexp(t, chefIDPattern, result.ChefID)
	assert.Equal(t, models.RequestApproved, result.Request.RequestStatus)

	user, err := stores.Users.GetByEmail(ctx, "rakib@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleChef, user.Role)
	assert.Equal(t, result.ChefID, user.ChefID)
}

func TestDecideApproveIsIdempotent(t *testing.T) {
	wf, stores := newWorkflowEnv(t)
	ctx := context.Background()
	seedUser(t, stores, "rakib@example.com")

	req, err := wf.Submit(ctx, "Rakib", "rakib@example.com", models.RequestChef)
	require.NoError(t, err)

	first, err := wf.Decide(ctx, req.ID, models.RequestApproved, "")
	require.NoError(t, err)

	// Admin double-click: same decision again must not reissue a chef id
	second, err := wf.Decide(ctx, req.ID, models.RequestApproved, "")
	require.NoError(t, err)
	assert.Equal(t, first.ChefID, second.ChefID)
	assert.Equal(t, first.Role, second.Role)

	user, err := stores.Users.GetByEmail(ctx, "rakib@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ChefID, user.ChefID)
}

func TestDecideOnTerminalStateFails(t *testing.T) {
	wf, stores := newWorkflowEnv(t)
	ctx := context.Background()
	user := seedUser(t, stores, "rakib@example.com")

	req, err := wf.Submit(ctx, "Rakib", "rakib@example.com", models.RequestChef)
	require.NoError(t, err)

	_, err = wf.Decide(ctx, req.ID, models.RequestRejected, "")
	require.NoError(t, err)

	_, err = wf.Decide(ctx, req.ID, models.RequestApproved, "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))

	got, err := stores.Users.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.Empty(t, got.ChefID)
}

func TestDecideRejectsBadDecision(t *testing.T) {
	wf, _ := newWorkflowEnv(t)

	_, err := wf.Decide(context.Background(), "any", models.RequestPending, "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestDecideUnknownRequest(t *testing.T) {
	wf, _ := newWorkflowEnv(t)

	_, err := wf.Decide(context.Background(), "missing", models.RequestApproved, "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDecideHonorsOverrideRole(t *testing.T) {
	wf, stores := newWorkflowEnv(t)
	ctx := context.Background()
	seedUser(t, stores, "rakib@example.com")

	req, err := wf.Submit(ctx, "Rakib", "rakib@example.com", models.RequestChef)
	require.NoError(t, err)

	result, err := wf.Decide(ctx, req.ID, models.RequestApproved, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, result.Role)
	assert.Empty(t, result.ChefID)

	user, err := stores.Users.GetByEmail(ctx, "rakib@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestDecideMissingUserRollsBack(t *testing.T) {
	wf, stores := newWorkflowEnv(t)
	ctx := context.Background()
	// no user seeded for this email

	req, err := wf.Submit(ctx, "Ghost", "ghost@example.com", models.RequestChef)
	require.NoError(t, err)

	_, err = wf.Decide(ctx, req.ID, models.RequestApproved, "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// The request must still be pending: approval is all-or-nothing
	got, err := stores.Requests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, got.RequestStatus)
}

func TestIssueChefIDSkipsTakenIDs(t *testing.T) {
	wf, stores := newWorkflowEnv(t)
	ctx := context.Background()

	taken := seedUser(t, stores, "taken@example.com")
	require.NoError(t, stores.Users.Promote(ctx, taken.Email, models.RoleChef, "chef-1000"))

	// Force the generator to draw the taken id first, then a free one
	draws := []int{0, 1}
	wf.randInt = func(n int) int {
		d := draws[0]
		if len(draws) > 1 {
			draws = draws[1:]
		}
		return d
	}

	id, err := wf.issueChefID(ctx, stores.Users)
	require.NoError(t, err)
	assert.Equal(t, "chef-1001", id)
}

func TestIssueChefIDExhaustion(t *testing.T) {
	wf, stores := newWorkflowEnv(t)
	ctx := context.Background()

	taken := seedUser(t, stores, "taken@example.com")
	require.NoError(t, stores.Users.Promote(ctx, taken.Email, models.RoleChef, "chef-1000"))

	wf.randInt = func(n int) int { return 0 } // always the taken id

	_, err := wf.issueChefID(ctx, stores.Users)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
}
