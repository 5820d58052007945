package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the current schema version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 1

var (
	keySchemaVersion = []byte("schema_version")
	keySourceHash    = []byte("source_hash")
)

// SchemaInfo stores schema version and the hash of the download source.
type SchemaInfo struct {
	Version    int    `json:"version"`
	SourceHash string `json:"source_hash"`
}

// GetSchemaInfo retrieves the current schema info from the database.
func (s *BoltStore) GetSchemaInfo() (*SchemaInfo, error) {
	var info SchemaInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketMeta)
		if b == nil {
			return nil
		}

		if versionData := b.Get(keySchemaVersion); versionData != nil {
			if err := json.Unmarshal(versionData, &info.Version); err != nil {
				info.Version = 0
			}
		}

		if hashData := b.Get(keySourceHash); hashData != nil {
			info.SourceHash = string(hashData)
		}

		return nil
	})
	return &info, err
}

// SetSchemaInfo stores the schema info in the database.
func (s *BoltStore) SetSchemaInfo(info *SchemaInfo) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketMeta)

		versionData, err := json.Marshal(info.Version)
		if err != nil {
			return err
		}
		if err := b.Put(keySchemaVersion, versionData); err != nil {
			return err
		}

		return b.Put(keySourceHash, []byte(info.SourceHash))
	})
}

// ComputeSourceHash hashes the location stopword lists are downloaded from.
// A different source invalidates everything cached from the old one.
func ComputeSourceHash(source string) string {
	hash := sha256.Sum256([]byte(source))
	return hex.EncodeToString(hash[:8])
}

// MigrationResult describes the result of a schema check.
type MigrationResult struct {
	NeedsMigration bool
	NeedsRebuild   bool
	OldVersion     int
	NewVersion     int
	Reason         string
}

// CheckMigration reports whether the cache must be initialized or cleared.
func (s *BoltStore) CheckMigration(source string) (*MigrationResult, error) {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get schema info: %w", err)
	}

	result := &MigrationResult{
		OldVersion: info.Version,
		NewVersion: CurrentSchemaVersion,
	}

	switch {
	case info.Version == 0:
		result.NeedsMigration = true
		result.Reason = "initializing schema version"
	case info.Version != CurrentSchemaVersion:
		result.NeedsRebuild = true
		result.Reason = fmt.Sprintf("schema version changed (v%d -> v%d)", info.Version, CurrentSchemaVersion)
		return result, nil
	}

	if info.SourceHash != "" && info.SourceHash != ComputeSourceHash(source) {
		result.NeedsRebuild = true
		result.Reason = "stopword source changed"
	}

	return result, nil
}

// Prepare runs CheckMigration and applies its outcome: clearing the cached
// lists on rebuild and recording the current version and source hash.
func (s *BoltStore) Prepare(source string) (*MigrationResult, error) {
	result, err := s.CheckMigration(source)
	if err != nil {
		return nil, err
	}

	if result.NeedsRebuild {
		if err := s.Clear(); err != nil {
			return nil, fmt.Errorf("failed to clear cache: %w", err)
		}
	}

	if result.NeedsRebuild || result.NeedsMigration {
		info := &SchemaInfo{
			Version:    CurrentSchemaVersion,
			SourceHash: ComputeSourceHash(source),
		}
		if err := s.SetSchemaInfo(info); err != nil {
			return nil, fmt.Errorf("failed to record schema info: %w", err)
		}
	}

	return result, nil
}

// Clear removes every cached stopword list.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketStopwords); err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucket(bucketStopwords)
		return err
	})
}
