//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Fixture ids seeded by SeedReferenceData.
const (
	SpaceID              int64 = 1
	OtherSpaceID         int64 = 2
	MeetingRoomID        int64 = 7
	HotDeskProductID     int64 = 10
	MeetingRoomProductID int64 = 20
	ForeignProductID     int64 = 30
	UnpublishedProductID int64 = 40
)

// tables holding migration-owned reference rows
var preservedTables = []string{"schema_migrations", "seating_options"}

// inserts the spaces, rooms and products tests book against
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO countries (id, name) VALUES (1, 'Portugal') ON CONFLICT DO NOTHING;
		INSERT INTO cities (id, name, country_id) VALUES (1, 'Lisbon', 1) ON CONFLICT DO NOTHING;

		INSERT INTO spaces (id, user_id, name, subdomain, street, latitude, longitude, phone, country_id, city_id)
		VALUES
		    (1, 1, 'Harbor Works', 'harbor', 'Rua Augusta 1', '38.71', '-9.13', '+351210000000', 1, 1),
		    (2, 2, 'Hill Desk', 'hill', 'Rua da Graca 9', '38.71', '-9.13', '+351210000001', 1, 1)
		ON CONFLICT DO NOTHING;

		INSERT INTO space_hours (space_id, weekday, open_time, close_time)
		VALUES (1, 1, '08:00', '20:00'), (1, 2, '08:00', '20:00')
		ON CONFLICT DO NOTHING;

		INSERT INTO space_legals (space_id, terms, privacy_policy)
		VALUES (1, 'Be kind.', 'We keep your email.')
		ON CONFLICT DO NOTHING;

		INSERT INTO meeting_rooms (id, space_id, name, capacity, available_from, available_to, has_whiteboard)
		VALUES (7, 1, 'Board Room', 8, '09:00', '17:00', TRUE)
		ON CONFLICT DO NOTHING;

		INSERT INTO products (id, space_id, name, price, seating_option_id, settings, access_type, is_published, position)
		VALUES
		    (10, 1, 'Hot Desk Monthly', 199.00, 2,
		     '{"duration": 1, "duration_unit": 3, "weekdays": [], "persons": 1, "meeting_room_hours": 4}', 'current_space', TRUE, 1),
		    (20, 1, 'Board Room', 25.00, 4,
		     '{"meeting_room_id": 7, "weekdays": [], "duration": 1, "duration_unit": 1}', 'current_space', TRUE, 2),
		    (30, 2, 'Hill Day Pass', 15.00, 1,
		     '{"duration": 1, "duration_type": 2, "persons": 1, "time_start": "09:00:00", "time_ends": "18:00:00"}', 'current_space', TRUE, 1),
		    (40, 1, 'Private Office Draft', 900.00, 5,
		     '{"capacity": 4, "duration": 1, "duration_unit": 3, "meeting_room_hours": 0}', 'current_space', FALSE, 3)
		ON CONFLICT DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND NOT (tablename = ANY($1))`, preservedTables)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

// Count runs a COUNT(*) style query and returns its single value.
func Count(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err, "count query failed: %s", query)
	return n
}

// CreateCustomer inserts a customer directly and returns its id.
func CreateCustomer(t *testing.T, db DBLike, spaceID int64, email string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO customers (space_id, first_name, last_name, email, password_hash)
		VALUES ($1, 'Grace', 'Hopper', $2, '$2a$10$seeded')
		RETURNING id`, spaceID, email).Scan(&id)
	require.NoError(t, err, "failed to create customer")
	return id
}
