package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gym-admin/internal/repository"
	"gym-admin/internal/storage"
)

var ErrBackupFailed = errors.New("failed to create database backup")

const backupKeyPrefix = "backups/"

// BackupResult describes one uploaded snapshot.
type BackupResult struct {
	Key         string    `json:"key"`
	Size        int       `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
	DownloadURL string    `json:"downloadUrl"`
}

// BackupService exports the database image to object storage and hands out
// time-limited download links for stored snapshots.
type BackupService interface {
	Run(ctx context.Context) (*BackupResult, error)
	PresignDownload(ctx context.Context, name string) (string, error)
}

type backupService struct {
	exporter repository.Exporter
	store    storage.SnapshotStorage
}

// NewBackupService creates a new instance of backupService.
func NewBackupService(exporter repository.Exporter, store storage.SnapshotStorage) BackupService {
	return &backupService{
		exporter: exporter,
		store:    store,
	}
}

// Run exports the full database image and uploads it under a timestamped key.
func (s *backupService) Run(ctx context.Context) (*BackupResult, error) {
	payload, err := s.exporter.Export(ctx)
	if err != nil {
		log.Printf("ERROR: Backup export failed: %v", err)
		return nil, ErrBackupFailed
	}

	now := time.Now().UTC()
	key := fmt.Sprintf("%s%s.json", backupKeyPrefix, now.Format("20060102T150405Z"))

	if err := s.store.Upload(ctx, key, payload, "application/json"); err != nil {
		log.Printf("ERROR: Backup upload failed: %v", err)
		return nil, ErrBackupFailed
	}

	url, err := s.store.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		// The snapshot is safely stored; a fresh URL can be requested later.
		url = ""
	}

	return &BackupResult{
		Key:         key,
		Size:        len(payload),
		CreatedAt:   now,
		DownloadURL: url,
	}, nil
}

// PresignDownload returns a temporary download URL for a stored snapshot,
// addressed by its bare name (without the backups/ prefix).
func (s *backupService) PresignDownload(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: backup name is required", ErrInvalidInput)
	}
	return s.store.GeneratePresignedDownloadURL(ctx, backupKeyPrefix+name, storage.DefaultPresignedURLExpiry)
}
