package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upAddCoverIndexes, downAddCoverIndexes)
}

// The grouped cover query scans albums by nested-set bounds and photos by
// owning album; both need indexes once libraries grow past a few thousand
// photos.
func upAddCoverIndexes(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE INDEX albums_lft_rgt_idx ON albums (_lft, _rgt);
	CREATE INDEX albums_parent_id_idx ON albums (parent_id);
	CREATE INDEX photos_album_id_idx ON photos (album_id);
	CREATE INDEX photos_starred_idx ON photos (album_id) WHERE is_starred;
	`)
	if err != nil {
		return err
	}
	return nil
}

func downAddCoverIndexes(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP INDEX photos_starred_idx;
	DROP INDEX photos_album_id_idx;
	DROP INDEX albums_parent_id_idx;
	DROP INDEX albums_lft_rgt_idx;
	`)
	if err != nil {
		return err
	}
	return nil
}
