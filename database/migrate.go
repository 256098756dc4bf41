package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/fableration/site-backend/slug"
)

// columnSpec describes one column of the target schema as the migration
// runner sees it. Timestamp columns are added as plain nullable TEXT and
// backfilled afterwards: sqlite rejects ALTER TABLE ADD COLUMN with a
// non-constant default.
type columnSpec struct {
	name      string
	ddl       string
	timestamp bool
}

var targetColumns = map[string][]columnSpec{
	"users": {
		{name: "email", ddl: "TEXT"},
		{name: "password", ddl: "TEXT"},
		{name: "role", ddl: "TEXT"},
		{name: "created_at", ddl: "TEXT", timestamp: true},
	},
	"blogs": {
		{name: "title", ddl: "TEXT"},
		{name: "slug", ddl: "TEXT"},
		{name: "content", ddl: "TEXT"},
		{name: "summary", ddl: "TEXT"},
		{name: "category", ddl: "TEXT"},
		{name: "image_url", ddl: "TEXT"},
		{name: "cover_image", ddl: "TEXT"},
		{name: "external_link", ddl: "TEXT"},
		{name: "logo_id", ddl: "INTEGER"},
		{name: "author_id", ddl: "INTEGER"},
		{name: "published", ddl: "INTEGER"},
		{name: "created_at", ddl: "TEXT", timestamp: true},
		{name: "updated_at", ddl: "TEXT", timestamp: true},
	},
	"authors": {
		{name: "name", ddl: "TEXT"},
		{name: "avatar_url", ddl: "TEXT"},
		{name: "bio", ddl: "TEXT"},
		{name: "created_at", ddl: "TEXT", timestamp: true},
		{name: "updated_at", ddl: "TEXT", timestamp: true},
	},
	"logos": {
		{name: "name", ddl: "TEXT"},
		{name: "logo_url", ddl: "TEXT"},
		{name: "date", ddl: "TEXT"},
		{name: "created_at", ddl: "TEXT", timestamp: true},
		{name: "updated_at", ddl: "TEXT", timestamp: true},
	},
	"tags": {
		{name: "name", ddl: "TEXT"},
		{name: "color", ddl: "TEXT"},
		{name: "created_at", ddl: "TEXT", timestamp: true},
		{name: "updated_at", ddl: "TEXT", timestamp: true},
	},
	"blog_tags": {
		{name: "blog_id", ddl: "INTEGER"},
		{name: "tag_id", ddl: "INTEGER"},
	},
	"blog_references": {
		{name: "blog_id", ddl: "INTEGER"},
		{name: "referenced_blog_id", ddl: "INTEGER"},
		{name: "position", ddl: "INTEGER"},
	},
	"announcements": {
		{name: "title", ddl: "TEXT"},
		{name: "message", ddl: "TEXT"},
		{name: "url", ddl: "TEXT"},
		{name: "active", ddl: "INTEGER"},
		{name: "created_at", ddl: "TEXT", timestamp: true},
		{name: "expires_at", ddl: "TEXT"},
	},
	"events": {
		{name: "title", ddl: "TEXT"},
		{name: "image_url", ddl: "TEXT"},
		{name: "summary", ddl: "TEXT"},
		{name: "content", ddl: "TEXT"},
		{name: "external_link", ddl: "TEXT"},
		{name: "published", ddl: "INTEGER"},
		{name: "created_at", ddl: "TEXT", timestamp: true},
		{name: "updated_at", ddl: "TEXT", timestamp: true},
	},
	"event_items": {
		{name: "event_id", ddl: "INTEGER"},
		{name: "name", ddl: "TEXT"},
		{name: "content", ddl: "TEXT"},
		{name: "icon_url", ddl: "TEXT"},
		{name: "position", ddl: "INTEGER"},
	},
	"highlights": {
		{name: "title", ddl: "TEXT"},
		{name: "image_url", ddl: "TEXT"},
		{name: "url", ddl: "TEXT"},
		{name: "type", ddl: "TEXT"},
		{name: "active", ddl: "INTEGER"},
		{name: "created_at", ddl: "TEXT", timestamp: true},
		{name: "updated_at", ddl: "TEXT", timestamp: true},
	},
}

// Migrate brings a pre-existing database file up to the current schema. It
// is a standalone maintenance operation and must not run concurrently with
// live traffic. Every step is safe to re-run: present columns are skipped,
// non-null rows are skipped, and index creation uses IF NOT EXISTS.
// A single step's failure is logged and the run continues.
func Migrate(db *gorm.DB) {
	// Missing tables first, so column passes have something to work on.
	EnsureSchema(db)

	for table, columns := range targetColumns {
		existing, err := tableColumns(db, table)
		if err != nil {
			log.Error().Err(err).Str("table", table).Msg("Could not inspect table, skipping")
			continue
		}

		for _, col := range columns {
			if existing[col.name] {
				continue
			}
			if err := addColumn(db, table, col); err != nil {
				log.Error().Err(err).Str("table", table).Str("column", col.name).Msg("Could not add column")
			} else {
				log.Info().Str("table", table).Str("column", col.name).Msg("Added column")
			}
		}

		for _, col := range columns {
			if !col.timestamp {
				continue
			}
			if err := backfillTimestamp(db, table, col.name); err != nil {
				log.Error().Err(err).Str("table", table).Str("column", col.name).Msg("Timestamp backfill failed")
			}
		}
	}

	if err := backfillSlugs(db); err != nil {
		log.Error().Err(err).Msg("Slug backfill failed")
	}

	// Residual duplicates from a data anomaly make this fail; that is
	// non-fatal because the repo still resolves uniqueness at the
	// application level.
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_blogs_slug ON blogs(slug)").Error; err != nil {
		log.Warn().Err(err).Msg("Could not create unique slug index, leaving it absent")
	}

	log.Info().Msg("Migration complete")
}

func tableColumns(db *gorm.DB, table string) (map[string]bool, error) {
	var cols []struct {
		Name string `gorm:"column:name"`
	}
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info(%s)", table)).Scan(&cols).Error; err != nil {
		return nil, err
	}

	existing := make(map[string]bool, len(cols))
	for _, c := range cols {
		existing[c.Name] = true
	}
	return existing, nil
}

// addColumn adds the column nullable with its declared type, retrying once
// as plain nullable TEXT before giving up on it.
func addColumn(db *gorm.DB, table string, col columnSpec) error {
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, col.name, col.ddl)
	if err := db.Exec(stmt).Error; err == nil {
		return nil
	} else if col.ddl == "TEXT" {
		return err
	}

	fallback := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT", table, col.name)
	return db.Exec(fallback).Error
}

// backfillTimestamp sets every null timestamp to the current time. Rows
// already carrying a value are untouched, so a second run changes nothing.
func backfillTimestamp(db *gorm.DB, table, column string) error {
	stmt := fmt.Sprintf("UPDATE %s SET %s = CURRENT_TIMESTAMP WHERE %s IS NULL", table, column, column)
	return db.Exec(stmt).Error
}

// backfillSlugs assigns a slug to every blog that lacks one, using the same
// derivation and uniqueness resolution as the live create/update path so a
// migrated legacy row and a freshly-created one behave identically.
func backfillSlugs(db *gorm.DB) error {
	var rows []struct {
		ID    uint
		Title string
	}
	if err := db.Table("blogs").Where("slug IS NULL OR slug = ''").Order("id").Scan(&rows).Error; err != nil {
		return err
	}

	repo := NewBlogRepo(db)
	for _, row := range rows {
		base := slug.Make(row.Title)
		if row.Title == "" {
			base = slug.Fallback(row.ID)
		}

		unique, err := repo.UniqueSlug(base, row.ID)
		if err != nil {
			log.Error().Err(err).Uint("blogId", row.ID).Msg("Could not resolve unique slug")
			continue
		}

		if err := db.Table("blogs").Where("id = ?", row.ID).Update("slug", unique).Error; err != nil {
			log.Error().Err(err).Uint("blogId", row.ID).Msg("Could not persist slug")
			continue
		}
		log.Info().Uint("blogId", row.ID).Str("slug", unique).Msg("Backfilled slug")
	}

	return nil
}
