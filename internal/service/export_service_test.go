package service_test

import (
	"alcyxob/fitness-planner/internal/service"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExportDisabledWithoutStorage(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, 5)

	exports := service.NewExportService(env.repos.Users, env.repos.Logs, nil, 0, nil)
	_, err := exports.ExportSessionLogs(context.Background(), user.ID)
	assert.ErrorIs(t, err, service.ErrExportDisabled)
}

func TestExportSessionLogs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, 5)
	bench := env.exerciseByName(t, "Bench Press")

	for set := 1; set <= 2; set++ {
		_, err := env.logs.LogSet(ctx, service.LogSetInput{
			UserID: user.ID, ExerciseID: bench.ID, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Sets: set, Reps: 10, WeightKG: 60, Notes: "easy",
		})
		require.NoError(t, err)
	}

	ctrl := gomock.NewController(t)
	store := NewMockFileStorage(ctrl)
	prefix := fmt.Sprintf("exports/%d/", user.ID)

	var stored []byte
	store.EXPECT().
		PutObject(gomock.Any(), gomock.Cond(func(key any) bool {
			k := key.(string)
			return strings.HasPrefix(k, prefix) && strings.HasSuffix(k, ".json")
		}), "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body []byte) error {
			stored = body
			return nil
		})
	store.EXPECT().
		GeneratePresignedDownloadURL(gomock.Any(), gomock.Any(), 5*time.Minute).
		Return("https://storage.example/export", nil)

	exports := service.NewExportService(env.repos.Users, env.repos.Logs, store, 5*time.Minute, env.metrics)
	res, err := exports.ExportSessionLogs(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.ObjectKey, prefix))
	assert.Equal(t, 2, res.LogCount)
	assert.Equal(t, "https://storage.example/export", res.DownloadURL)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), res.ExpiresAt, time.Minute)

	var doc struct {
		UserID int64 `json:"user_id"`
		Logs   []struct {
			Date  string `json:"date"`
			Sets  int    `json:"sets"`
			Notes string `json:"notes"`
		} `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(stored, &doc))
	assert.Equal(t, user.ID, doc.UserID)
	require.Len(t, doc.Logs, 2)
	assert.Equal(t, "2024-03-10", doc.Logs[0].Date)
	assert.Equal(t, 2, doc.Logs[1].Sets)
	assert.Equal(t, "easy", doc.Logs[0].Notes)
}

func TestExportCleansUpWhenPresignFails(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, 5)

	ctrl := gomock.NewController(t)
	store := NewMockFileStorage(ctrl)

	var key string
	store.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, k string, _ string, _ []byte) error {
			key = k
			return nil
		})
	store.EXPECT().GeneratePresignedDownloadURL(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("signing failed"))
	store.EXPECT().DeleteObject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, k string) error {
			assert.Equal(t, key, k)
			return nil
		})

	exports := service.NewExportService(env.repos.Users, env.repos.Logs, store, 0, nil)
	_, err := exports.ExportSessionLogs(context.Background(), user.ID)
	assert.Error(t, err)
}

func TestExportUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	ctrl := gomock.NewController(t)
	store := NewMockFileStorage(ctrl)

	exports := service.NewExportService(env.repos.Users, env.repos.Logs, store, 0, nil)
	_, err := exports.ExportSessionLogs(context.Background(), 4242)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
