package handhistory

import (
	"time"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"feltpoker.com/server/game"
	"feltpoker.com/server/util"
)

var storeLogger = util.GetZeroLogger("handhistory::store", nil)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const schema = `
CREATE TABLE IF NOT EXISTS hand_history (
	id         BIGSERIAL PRIMARY KEY,
	room_id    TEXT      NOT NULL,
	hand_num   INTEGER   NOT NULL,
	pot        BIGINT    NOT NULL,
	showdown   BOOLEAN   NOT NULL,
	winners    JSONB     NOT NULL,
	board      TEXT      NOT NULL,
	settled_at TIMESTAMPTZ NOT NULL,
	UNIQUE (room_id, hand_num)
)`

// Store writes settled hands to postgres. It satisfies game.HandHistory.
type Store struct {
	db *sqlx.DB
}

// NewStore connects to the hand history database and ensures the schema
// exists.
func NewStore(connStr string) (*Store, error) {
	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to connect to hand history db")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "Unable to create hand_history table")
	}
	return &Store{db: db}, nil
}

type handRow struct {
	RoomID    string    `db:"room_id"`
	HandNum   uint32    `db:"hand_num"`
	Pot       int64     `db:"pot"`
	Showdown  bool      `db:"showdown"`
	Winners   []byte    `db:"winners"`
	Board     string    `db:"board"`
	SettledAt time.Time `db:"settled_at"`
}

// SaveHandResult records one settled hand. Saving the same hand twice
// is a no-op.
func (s *Store) SaveHandResult(roomID string, result *game.HandResult) error {
	winners, err := json.Marshal(result.Winners)
	if err != nil {
		return errors.Wrap(err, "Unable to encode winners")
	}
	row := handRow{
		RoomID:    roomID,
		HandNum:   result.HandNum,
		Pot:       result.Pot,
		Showdown:  result.Showdown,
		Winners:   winners,
		Board:     boardString(result),
		SettledAt: time.Now().UTC(),
	}
	_, err = s.db.NamedExec(`
		INSERT INTO hand_history (room_id, hand_num, pot, showdown, winners, board, settled_at)
		VALUES (:room_id, :hand_num, :pot, :showdown, :winners, :board, :settled_at)
		ON CONFLICT (room_id, hand_num) DO NOTHING`, row)
	if err != nil {
		return errors.Wrapf(err, "Unable to save hand %d for room %s", result.HandNum, roomID)
	}
	storeLogger.Debug().
		Str("room", roomID).
		Uint32("hand", result.HandNum).
		Msg("Recorded hand history")
	return nil
}

// HandsForRoom returns the stored hands of one room, oldest first.
func (s *Store) HandsForRoom(roomID string) ([]*game.HandResult, error) {
	var rows []handRow
	err := s.db.Select(&rows, `
		SELECT room_id, hand_num, pot, showdown, winners, board, settled_at
		FROM hand_history WHERE room_id = $1 ORDER BY hand_num`, roomID)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to load hand history for room %s", roomID)
	}

	results := make([]*game.HandResult, 0, len(rows))
	for _, row := range rows {
		var winners []game.HandWinner
		if err := json.Unmarshal(row.Winners, &winners); err != nil {
			return nil, errors.Wrap(err, "Unable to decode winners")
		}
		results = append(results, &game.HandResult{
			HandNum:  row.HandNum,
			Winners:  winners,
			Pot:      row.Pot,
			Showdown: row.Showdown,
		})
	}
	return results, nil
}

// Close releases the database connections.
func (s *Store) Close() error {
	return s.db.Close()
}

func boardString(result *game.HandResult) string {
	if len(result.Board) == 0 {
		return ""
	}
	str := ""
	for i, c := range result.Board {
		if i > 0 {
			str += " "
		}
		str += c.String()
	}
	return str
}
