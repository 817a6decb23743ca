package poolService

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"megaBolaoApp/services/common"
)

func newMockDB() (*gorm.DB, sqlmock.Sqlmock, error) {
	db, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})

	return gormDB, mock, err
}

func assertEqual(t *testing.T, expected, actual interface{}, msg string) {
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func poolRows(id uint, open bool, result *string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "open", "result"}).AddRow(id, open, result)
}

func TestSetResult_InvalidFormat(t *testing.T) {
	tests := []struct {
		name   string
		result string
	}{
		{"wrong arity", "1-2-3"},
		{"three digit token", "123-4-5-6-7-8"},
		{"letters", "a-b-c-d-e-f"},
		{"comma separated", "1,2,3,4,5,6"},
		{"empty", ""},
		{"trailing hyphen", "1-2-3-4-5-6-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Format is rejected before the pool is even loaded.
			_, err := SetResult(nil, 1, tt.result)
			if !errors.Is(err, common.ErrInvalidResultFormat) {
				t.Errorf("expected ErrInvalidResultFormat, got %v", err)
			}
		})
	}
}

func TestSetResult_PoolStillOpen(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectQuery("SELECT \\* FROM `pools`").WillReturnRows(poolRows(1, true, nil))

	_, err = SetResult(db, 1, "04-17-22-35-48-59")

	if !errors.Is(err, common.ErrPoolOpen) {
		t.Errorf("expected ErrPoolOpen, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestSetResult_StoredVerbatim(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectQuery("SELECT \\* FROM `pools`").WillReturnRows(poolRows(1, false, nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `pools` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pool, err := SetResult(db, 1, "04-17-22-35-48-59")

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if pool.Result == nil || *pool.Result != "04-17-22-35-48-59" {
		t.Errorf("expected result stored verbatim, got %v", pool.Result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestClosePool_UnregisteredWagersRemain(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectQuery("SELECT \\* FROM `pools`").WillReturnRows(poolRows(1, true, nil))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `wagers`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err = ClosePool(db, 1)

	var unregErr *common.UnregisteredWagersError
	if !errors.As(err, &unregErr) {
		t.Fatalf("expected UnregisteredWagersError, got %v", err)
	}
	assertEqual(t, 1, unregErr.Count, "unregistered count")
	// No update was expected; the pool stays open.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestClosePool_AllRegistered(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectQuery("SELECT \\* FROM `pools`").WillReturnRows(poolRows(1, true, nil))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `wagers`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `pools` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pool, err := ClosePool(db, 1)

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertEqual(t, false, pool.Open, "open flag")
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestClosePool_AlreadyClosed(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectQuery("SELECT \\* FROM `pools`").WillReturnRows(poolRows(1, false, nil))

	_, err = ClosePool(db, 1)

	if !errors.Is(err, common.ErrPoolClosed) {
		t.Errorf("expected ErrPoolClosed, got %v", err)
	}
}

func TestReopenPool_ClearsResult(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	result := "04-17-22-35-48-59"
	mock.ExpectQuery("SELECT \\* FROM `pools`").WillReturnRows(poolRows(1, false, &result))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `pools` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pool, err := ReopenPool(db, 1)

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertEqual(t, true, pool.Open, "open flag")
	if pool.Result != nil {
		t.Errorf("expected result cleared on reopen, got %q", *pool.Result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestActivePool_NoPool(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectQuery("SELECT \\* FROM `pools`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "open", "result"}))

	_, err = ActivePool(db)

	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
