package state

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/rangeslider/internal/db"
)

// SliderValue is the saved value of one slider. Single-value sliders store
// their value in both Lo and Hi.
type SliderValue struct {
	Name      string
	Lo        float64
	Hi        float64
	UpdatedAt time.Time
}

func getValue(conn *sql.DB, name string) (*SliderValue, error) {
	var v SliderValue
	var updatedAt int64

	row := conn.QueryRow(`SELECT name, lo, hi, updated_at FROM slider_values WHERE name = ?`, name)
	err := row.Scan(&v.Name, &v.Lo, &v.Hi, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved value is not an error
	}
	if err != nil {
		return nil, err
	}

	v.UpdatedAt = time.Unix(updatedAt, 0)
	return &v, nil
}

func listValues(conn *sql.DB) ([]SliderValue, error) {
	rows, err := conn.Query(`SELECT name, lo, hi, updated_at FROM slider_values ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []SliderValue
	for rows.Next() {
		var v SliderValue
		var updatedAt int64
		if err := rows.Scan(&v.Name, &v.Lo, &v.Hi, &updatedAt); err != nil {
			return nil, err
		}
		v.UpdatedAt = time.Unix(updatedAt, 0)
		values = append(values, v)
	}
	return values, rows.Err()
}

// saveValues upserts all values in one transaction.
func saveValues(ctx context.Context, conn *sql.DB, values []SliderValue) error {
	if len(values) == 0 {
		return nil
	}
	return db.WithTx(ctx, conn, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO slider_values (name, lo, hi, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				lo = excluded.lo,
				hi = excluded.hi,
				updated_at = excluded.updated_at
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, v := range values {
			if _, err := stmt.Exec(v.Name, v.Lo, v.Hi, v.UpdatedAt.Unix()); err != nil {
				return err
			}
		}
		return nil
	})
}

func deleteValue(conn *sql.DB, name string) error {
	_, err := conn.Exec(`DELETE FROM slider_values WHERE name = ?`, name)
	return err
}
