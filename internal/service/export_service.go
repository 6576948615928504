package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/metrics"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/storage"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=storage_mocks_test.go -package=service_test alcyxob/fitness-planner/internal/storage FileStorage

const exportContentType = "application/json"

// ExportResult points at a stored export.
type ExportResult struct {
	ObjectKey   string
	LogCount    int
	DownloadURL string
	ExpiresAt   time.Time
}

type ExportService interface {
	// ExportSessionLogs writes every log of the user to object storage as JSON.
	ExportSessionLogs(ctx context.Context, userID int64) (*ExportResult, error)
}

type exportService struct {
	userRepo  repository.UserRepository
	logRepo   repository.SessionLogRepository
	storage   storage.FileStorage
	urlExpiry time.Duration
	metrics   *metrics.Manager
	now       func() time.Time
}

// NewExportService creates an ExportService. A nil fileStorage disables exports.
func NewExportService(
	userRepo repository.UserRepository,
	logRepo repository.SessionLogRepository,
	fileStorage storage.FileStorage,
	urlExpiry time.Duration,
	metricsManager *metrics.Manager,
) ExportService {
	if urlExpiry <= 0 {
		urlExpiry = storage.DefaultPresignedURLExpiry
	}
	return &exportService{
		userRepo:  userRepo,
		logRepo:   logRepo,
		storage:   fileStorage,
		urlExpiry: urlExpiry,
		metrics:   metricsManager,
		now:       time.Now,
	}
}

type exportDocument struct {
	UserID     int64       `json:"user_id"`
	Username   string      `json:"username"`
	ExportedAt time.Time   `json:"exported_at"`
	Logs       []exportLog `json:"logs"`
}

type exportLog struct {
	ID         int64   `json:"id"`
	ExerciseID int64   `json:"exercise_id"`
	Date       string  `json:"date"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	WeightKG   float64 `json:"weight_kg"`
	Notes      string  `json:"notes,omitempty"`
}

func (s *exportService) ExportSessionLogs(ctx context.Context, userID int64) (*ExportResult, error) {
	if s.storage == nil {
		return nil, ErrExportDisabled
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}

	logs, err := s.logRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list session logs: %w", err)
	}

	now := s.now().UTC()
	body, err := json.Marshal(buildExportDocument(user, logs, now))
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}

	objectKey := exportObjectKey(userID)
	if err := s.storage.PutObject(ctx, objectKey, exportContentType, body); err != nil {
		return nil, fmt.Errorf("store export: %w", err)
	}

	url, err := s.storage.GeneratePresignedDownloadURL(ctx, objectKey, s.urlExpiry)
	if err != nil {
		// an export nobody can download is useless
		if delErr := s.storage.DeleteObject(ctx, objectKey); delErr != nil {
			log.Warnf("failed to clean up export %s: %s", objectKey, delErr)
		}
		return nil, fmt.Errorf("presign export: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CounterExports.Inc()
	}
	log.Infof("exported %d session logs of user %d to %s", len(logs), userID, objectKey)

	return &ExportResult{
		ObjectKey:   objectKey,
		LogCount:    len(logs),
		DownloadURL: url,
		ExpiresAt:   now.Add(s.urlExpiry),
	}, nil
}

func buildExportDocument(user *domain.User, logs []domain.WorkoutSessionLog, now time.Time) exportDocument {
	doc := exportDocument{
		UserID:     user.ID,
		Username:   user.Username,
		ExportedAt: now,
		Logs:       make([]exportLog, 0, len(logs)),
	}
	for _, l := range logs {
		doc.Logs = append(doc.Logs, exportLog{
			ID:         l.ID,
			ExerciseID: l.ExerciseID,
			Date:       l.Date.Format(domain.DateLayout),
			Sets:       l.Sets,
			Reps:       l.Reps,
			WeightKG:   l.WeightKG,
			Notes:      l.Notes,
		})
	}
	return doc
}

// exportObjectKey returns exports/<user_id>/<uuid>.json
func exportObjectKey(userID int64) string {
	return path.Join("exports", strconv.FormatInt(userID, 10), uuid.NewString()+".json")
}
