package wagerate_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-siteops/internal/wagerate"
)

// newRepoMock opens gorm over sqlmock with a matcher that records each
// statement, so tests can assert on the generated SQL itself.
func newRepoMock(t *testing.T, captured *[]string) (wagerate.Repository, sqlmock.Sqlmock) {
	t.Helper()

	matcher := sqlmock.QueryMatcherFunc(func(_, actualSQL string) error {
		*captured = append(*captured, actualSQL)
		return nil
	})
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db, PreferSimpleProtocol: true}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	return wagerate.NewRepository(gdb), mock
}

func rateRows(roleID uuid.UUID, hourlyRate float64, effective time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "role_id", "hourly_rate", "overtime_multiplier", "double_time_multiplier", "effective_date",
	}).AddRow(uuid.New().String(), roleID.String(), hourlyRate, 1.5, 2.0, effective)
}

func TestFindCurrentByEmployee_NoEffectiveDateWindow(t *testing.T) {
	var captured []string
	repo, mock := newRepoMock(t, &captured)
	roleID := uuid.New()

	// a future-dated row is still the employee's rate row
	future := time.Now().AddDate(0, 1, 0)
	mock.ExpectQuery("SELECT").WillReturnRows(rateRows(roleID, 25, future))

	rate, err := repo.FindCurrentByEmployee(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.InDelta(t, 25.0, rate.HourlyRate, 1e-6)

	assert.Len(t, captured, 1)
	assert.NotContains(t, captured[0], "effective_date <=")
	assert.Contains(t, captured[0], "ORDER BY wage_rates.effective_date DESC")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCurrentByRole_NoEffectiveDateWindow(t *testing.T) {
	var captured []string
	repo, mock := newRepoMock(t, &captured)
	roleID := uuid.New()

	mock.ExpectQuery("SELECT").WillReturnRows(rateRows(roleID, 30, time.Now()))

	rate, err := repo.FindCurrentByRole(context.Background(), roleID.String())
	assert.NoError(t, err)
	assert.InDelta(t, 30.0, rate.HourlyRate, 1e-6)

	assert.Len(t, captured, 1)
	assert.False(t, strings.Contains(captured[0], "effective_date <="))
	assert.NoError(t, mock.ExpectationsWereMet())
}
