package radarr

import (
	"context"
	"fmt"
	"sort"
	"time"

	"seedbox-mover/core/database"
	"seedbox-mover/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const libraryQuery = `SELECT f."SceneName" AS scene_name, f."RelativePath" AS relative_path,
f."Size" AS size, f."DateAdded" AS date_added, m."Path" AS path, mm."Title" AS title
FROM "Movies" m
JOIN "MovieFiles" f ON f."Id" = m."MovieFileId"
LEFT JOIN "MovieMetadata" mm ON mm."Id" = m."MovieMetadataId"
WHERE f."SceneName" IS NOT NULL AND f."SceneName" <> ''
ORDER BY f."Id"`

type libraryRow struct {
	SceneName    string
	RelativePath string
	Size         int64
	DateAdded    time.Time
	Path         string
	Title        *string
}

// DBSource reads the Radarr library straight from its database.
type DBSource struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDBSource creates a database-backed media source.
func NewDBSource(db *gorm.DB, logger *zap.Logger) *DBSource {
	return &DBSource{db: db, logger: logger}
}

// Name implements reconcile.MediaSource.
func (s *DBSource) Name() string {
	return "radarr-db"
}

// ListAll implements reconcile.MediaSource.
func (s *DBSource) ListAll(ctx context.Context) (reconcile.MediaIndex, error) {
	var rows []libraryRow
	if err := s.db.WithContext(ctx).Raw(libraryQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query radarr library: %w", err)
	}

	index := make(reconcile.MediaIndex, len(rows))
	for _, r := range rows {
		title := ""
		if r.Title != nil {
			title = *r.Title
		}
		index[r.SceneName] = reconcile.MediaRecord{
			Name:     r.SceneName,
			Title:    title,
			Filename: r.RelativePath,
			BasePath: r.Path,
			Size:     r.Size,
			Added:    r.DateAdded,
		}
	}

	s.logger.Debug("Listed movies from database", zap.Int("indexed", len(index)))
	return index, nil
}

// CheckSchema reports the columns DBSource needs that the database lacks, as "Table.Column".
func (s *DBSource) CheckSchema() ([]string, error) {
	tables := make([]string, 0, len(RequiredColumns))
	for table := range RequiredColumns {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	var missing []string
	for _, table := range tables {
		cols, err := database.MissingColumns(s.db, table, RequiredColumns[table])
		if err != nil {
			return nil, fmt.Errorf("inspect %s: %w", table, err)
		}
		for _, col := range cols {
			missing = append(missing, table+"."+col)
		}
	}
	return missing, nil
}
