package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upInit, downInit)
}

func upInit(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE albums (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL DEFAULT '',
		parent_id  TEXT REFERENCES albums (id),
		owner_id   TEXT NOT NULL DEFAULT '',
		cover_id   TEXT,
		is_public  BOOLEAN NOT NULL DEFAULT FALSE,
		is_nsfw    BOOLEAN NOT NULL DEFAULT FALSE,
		_lft       BIGINT NOT NULL,
		_rgt       BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE photos (
		id         TEXT PRIMARY KEY,
		album_id   TEXT NOT NULL REFERENCES albums (id),
		title      TEXT NOT NULL DEFAULT '',
		type       TEXT NOT NULL DEFAULT 'image/jpeg',
		is_starred BOOLEAN NOT NULL DEFAULT FALSE,
		taken_at   TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	ALTER TABLE albums
		ADD CONSTRAINT albums_cover_id_fkey FOREIGN KEY (cover_id) REFERENCES photos (id);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downInit(tx *sql.Tx) error {
	_, err := tx.Exec(`
	ALTER TABLE albums DROP CONSTRAINT albums_cover_id_fkey;
	DROP TABLE photos;
	DROP TABLE albums;
	`)
	if err != nil {
		return err
	}
	return nil
}
