package approval

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smartwork/smartwork/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var db *sql.DB

func TestMain(m *testing.M) {
	container, openDB := test_utils.TestWithDB()
	db = openDB()
	code := m.Run()
	db.Close()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func setupTestRepository(t *testing.T) (context.Context, *ApprovalRepoImpl, string) {
	ctx := context.Background()
	repository := NewApprovalRepo(db)

	employeeID := uuid.New().String()
	_, err := db.ExecContext(ctx,
		`INSERT INTO employee (id, name) VALUES ($1, $2)`, employeeID, "Jan Novák")
	require.NoError(t, err)

	return ctx, repository, employeeID
}

func TestApprovalRepoImpl_GetMissingRowIsDraft(t *testing.T) {
	// given
	ctx, repo, employeeID := setupTestRepository(t)

	// when
	status, err := repo.Get(ctx, employeeID, "2024-06")

	// then
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, status.Status)
	assert.Equal(t, employeeID, status.EmployeeID)
	assert.Equal(t, "2024-06", status.Month)
}

func TestApprovalRepoImpl_UpsertLastWriteWins(t *testing.T) {
	// given
	ctx, repo, employeeID := setupTestRepository(t)
	submittedAt := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, MonthStatus{
		EmployeeID: employeeID, Month: "2024-06", Status: StatusSubmitted, SubmittedAt: &submittedAt,
	}))

	// when
	require.NoError(t, repo.Upsert(ctx, MonthStatus{
		EmployeeID: employeeID, Month: "2024-06", Status: StatusRejected,
		ManagerComment: "Chybí tři dny.", SubmittedAt: &submittedAt,
	}))

	// then
	status, err := repo.Get(ctx, employeeID, "2024-06")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, status.Status)
	assert.Equal(t, "Chybí tři dny.", status.ManagerComment)
	require.NotNil(t, status.SubmittedAt)
	assert.True(t, status.SubmittedAt.Equal(submittedAt))
	assert.Nil(t, status.ApprovedAt)
}

func TestApprovalRepoImpl_ListForMonth(t *testing.T) {
	// given
	ctx, repo, first := setupTestRepository(t)
	_, _, second := setupTestRepository(t)
	require.NoError(t, repo.Upsert(ctx, MonthStatus{EmployeeID: first, Month: "2024-05", Status: StatusSubmitted}))
	require.NoError(t, repo.Upsert(ctx, MonthStatus{EmployeeID: second, Month: "2024-05", Status: StatusApproved}))
	require.NoError(t, repo.Upsert(ctx, MonthStatus{EmployeeID: first, Month: "2024-04", Status: StatusApproved}))

	// when
	statuses, err := repo.ListForMonth(ctx, "2024-05")

	// then
	require.NoError(t, err)
	assert.Len(t, statuses, 2)
	for _, status := range statuses {
		assert.Equal(t, "2024-05", status.Month)
	}
}
