package controllers

import (
	"encoding/json"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"hr-onboarding-board/db"
	apimodels "hr-onboarding-board/models/api"
	"net/http"
	"net/http/httptest"
	"testing"
)

func mockDB(t *testing.T) sqlmock.Sqlmock {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	db.DB = gormDB
	t.Cleanup(func() {
		db.DB = nil
		_ = sqlDB.Close()
	})
	return mock
}

func getHealth(t *testing.T) (int, apimodels.Response) {
	app := fiber.New()
	InitHealthRouters(app)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	result := apimodels.Response{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func TestHealth(t *testing.T) {
	t.Run(`db available`, func(t *testing.T) {
		mock := mockDB(t)
		mock.ExpectPing()
		status, result := getHealth(t)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, apimodels.StatusSuccess, result.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`db ping failed`, func(t *testing.T) {
		mock := mockDB(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		status, result := getHealth(t)
		require.Equal(t, http.StatusServiceUnavailable, status)
		require.Equal(t, apimodels.StatusFail, result.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`no db connection`, func(t *testing.T) {
		db.DB = nil
		status, result := getHealth(t)
		require.Equal(t, http.StatusServiceUnavailable, status)
		require.Equal(t, apimodels.StatusFail, result.Status)
	})
}
