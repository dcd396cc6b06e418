package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id           TEXT        PRIMARY KEY,
  email        TEXT        NOT NULL UNIQUE,
  display_name TEXT        NOT NULL,
  first_name   TEXT        NOT NULL DEFAULT '',
  last_name    TEXT        NOT NULL DEFAULT '',
  bio          TEXT        NOT NULL DEFAULT '',
  phone        TEXT        NOT NULL DEFAULT '',
  city         TEXT        NOT NULL DEFAULT '',
  avatar_path  TEXT        NOT NULL DEFAULT '',
  is_admin     BOOLEAN     NOT NULL DEFAULT false,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_users_display_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_users_display_name ON users (lower(display_name));`,
	},
	{
		Name: "create_table_hobbies",
		SQL: `CREATE TABLE IF NOT EXISTS hobbies (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL UNIQUE,
  category   TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_user_hobbies",
		SQL: `CREATE TABLE IF NOT EXISTS user_hobbies (
  user_id  TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  hobby_id UUID NOT NULL REFERENCES hobbies (id) ON DELETE CASCADE,
  PRIMARY KEY (user_id, hobby_id)
);`,
	},
	{
		Name: "create_table_groups",
		SQL: `CREATE TABLE IF NOT EXISTS groups (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name         TEXT        NOT NULL,
  description  TEXT        NOT NULL DEFAULT '',
  hobby_id     UUID        REFERENCES hobbies (id) ON DELETE SET NULL,
  city         TEXT        NOT NULL DEFAULT '',
  owner_id     TEXT        NOT NULL REFERENCES users (id),
  is_private   BOOLEAN     NOT NULL DEFAULT false,
  max_members  INT         NOT NULL DEFAULT 0 CHECK (max_members >= 0),
  member_count INT         NOT NULL DEFAULT 0 CHECK (member_count >= 0),
  post_count   INT         NOT NULL DEFAULT 0 CHECK (post_count >= 0),
  image_path   TEXT        NOT NULL DEFAULT '',
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_group_members",
		SQL: `CREATE TABLE IF NOT EXISTS group_members (
  group_id  UUID        NOT NULL REFERENCES groups (id) ON DELETE CASCADE,
  user_id   TEXT        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  role      TEXT        NOT NULL CHECK (role IN ('owner', 'member')),
  joined_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (group_id, user_id)
);`,
	},
	{
		Name: "create_index_group_members_user",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_group_members_user ON group_members (user_id);`,
	},
	{
		Name: "create_table_group_posts",
		SQL: `CREATE TABLE IF NOT EXISTS group_posts (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  group_id   UUID        NOT NULL REFERENCES groups (id) ON DELETE CASCADE,
  author_id  TEXT        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  content    TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_group_requests",
		SQL: `CREATE TABLE IF NOT EXISTS group_requests (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  group_id   UUID        NOT NULL REFERENCES groups (id) ON DELETE CASCADE,
  user_id    TEXT        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  message    TEXT        NOT NULL DEFAULT '',
  status     TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  decided_at TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_group_requests_pending",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_group_requests_pending ON group_requests (group_id, user_id) WHERE status = 'pending';`,
	},
	{
		Name: "create_table_contacts",
		SQL: `CREATE TABLE IF NOT EXISTS contacts (
  user_id    TEXT        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  contact_id TEXT        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (user_id, contact_id),
  CHECK (user_id <> contact_id)
);`,
	},
	{
		Name: "create_table_centers",
		SQL: `CREATE TABLE IF NOT EXISTS centers (
  id         UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT             NOT NULL,
  address    TEXT             NOT NULL DEFAULT '',
  city       TEXT             NOT NULL DEFAULT '',
  sports     TEXT             NOT NULL DEFAULT '',
  latitude   DOUBLE PRECISION NOT NULL,
  longitude  DOUBLE PRECISION NOT NULL,
  courts     INT              NOT NULL DEFAULT 1 CHECK (courts >= 1),
  open_time  TEXT             NOT NULL,
  close_time TEXT             NOT NULL,
  phone      TEXT             NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_centers_coords",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_centers_coords ON centers (latitude, longitude);`,
	},
	{
		Name: "create_table_bookings",
		SQL: `CREATE TABLE IF NOT EXISTS bookings (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    TEXT        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  center_id  UUID        NOT NULL REFERENCES centers (id) ON DELETE CASCADE,
  sport      TEXT        NOT NULL,
  start_time TIMESTAMPTZ NOT NULL,
  end_time   TIMESTAMPTZ NOT NULL,
  status     TEXT        NOT NULL,
  note       TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  CHECK (start_time < end_time)
);`,
	},
	{
		Name: "create_index_bookings_center_time",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_bookings_center_time ON bookings (center_id, start_time, end_time);`,
	},
	{
		Name: "create_index_bookings_user",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id, start_time);`,
	},
}

// EnsureMigrated checks if the 'users' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	entry := log.WithFields(logrus.Fields{
		"component": "database",
		"db_host":   dbHost,
	})

	entry.WithField("event", "db_migration_check").Info("starting")

	var exists bool
	query := "SELECT to_regclass('public.users') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		entry.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		entry.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	entry.WithField("event", "db_migration_start").Info("in_progress")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			entry.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"migration_step":   step.Name,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		entry.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Debug("success")
	}

	entry.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"steps":       len(steps),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("success")

	return nil
}
