// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	toolstore "github.com/toolgate/toolgate/internal/app/store/tools"
	"github.com/toolgate/toolgate/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll seeds default data if not already present.
func SeedAll(ctx context.Context, db *mongo.Database, toolsPath string, logger *zap.Logger) error {
	if err := seedTools(ctx, db, toolsPath, logger); err != nil {
		return err
	}
	return nil
}

// seedEntry matches one record in the tools seed file.
type seedEntry struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// seedTools loads the catalog from the seed file on first startup.
// A non-empty collection is left untouched, so re-running is safe. A
// missing seed file is not an error: the catalog starts empty.
func seedTools(ctx context.Context, db *mongo.Database, path string, logger *zap.Logger) error {
	if path == "" {
		return nil
	}

	store := toolstore.New(db)

	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count tools: %w", err)
	}
	if count > 0 {
		logger.Debug("tools already seeded", zap.Int64("count", count))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("tools seed file not found, starting with empty catalog",
				zap.String("path", path))
			return nil
		}
		return fmt.Errorf("read seed file: %w", err)
	}

	var entries []seedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse seed file %s: %w", path, err)
	}

	// Descriptions come from an external file and are rendered into
	// pages, so strip any markup before storing.
	sanitizer := bluemonday.StrictPolicy()
	batch := uuid.NewString()

	tools := make([]models.Tool, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		if !models.IsValidToolType(e.Type) {
			logger.Warn("skipping seed entry with unknown type",
				zap.String("name", e.Name),
				zap.String("type", e.Type))
			continue
		}
		tools = append(tools, models.Tool{
			Name:        e.Name,
			Category:    e.Category,
			Type:        e.Type,
			URL:         e.URL,
			Icon:        e.Icon,
			Description: sanitizer.Sanitize(e.Description),
			SeedBatch:   batch,
		})
	}

	if err := store.InsertMany(ctx, tools); err != nil {
		return fmt.Errorf("insert seed tools: %w", err)
	}

	logger.Info("seeded tool catalog",
		zap.String("path", path),
		zap.String("batch", batch),
		zap.Int("count", len(tools)))
	return nil
}
