package record

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/traitel/calmnight/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/record/mock_repository.go -package=mock_record

// Repository persists check-ins and journals as two append-only sequences.
// Load methods return records in insertion order and an empty slice when nothing is stored.
type Repository interface {
	LoadCheckIns(ctx context.Context) ([]CheckIn, error)
	LoadJournals(ctx context.Context) ([]Journal, error)
	AppendCheckIn(ctx context.Context, c CheckIn) error
	AppendJournal(ctx context.Context, j Journal) error
}

// BatchRepository is a Repository that can append many records at once.
type BatchRepository interface {
	Repository
	BatchAppendCheckIns(ctx context.Context, checkIns []CheckIn) error
	BatchAppendJournals(ctx context.Context, journals []Journal) error
}

type checkInRow struct {
	ID         int64     `db:"id"`
	Emotion    string    `db:"emotion"`
	Intensity  int       `db:"intensity"`
	Notes      string    `db:"notes"`
	RecordedAt time.Time `db:"recorded_at"`
	CreatedAt  time.Time `db:"created_at"`
}

type journalRow struct {
	ID         int64     `db:"id"`
	Entry      string    `db:"entry"`
	Gratitude  string    `db:"gratitude"`
	DateLabel  string    `db:"date_label"`
	RecordedAt time.Time `db:"recorded_at"`
	CreatedAt  time.Time `db:"created_at"`
}

var (
	checkInColumns = []string{"emotion", "intensity", "notes", "recorded_at"}
	journalColumns = []string{"entry", "gratitude", "date_label", "recorded_at"}
)

// DBRepository implements BatchRepository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// LoadCheckIns returns all check-ins ordered by insertion.
func (r *DBRepository) LoadCheckIns(ctx context.Context) ([]CheckIn, error) {
	var rows []checkInRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM check_ins ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load all check-ins: %w", err)
	}
	result := make([]CheckIn, 0, len(rows))
	for _, row := range rows {
		result = append(result, CheckIn{
			Emotion:   row.Emotion,
			Intensity: row.Intensity,
			Notes:     row.Notes,
			Timestamp: row.RecordedAt,
		})
	}
	return result, nil
}

// LoadJournals returns all journals ordered by insertion.
func (r *DBRepository) LoadJournals(ctx context.Context) ([]Journal, error) {
	var rows []journalRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM journals ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load all journals: %w", err)
	}
	result := make([]Journal, 0, len(rows))
	for _, row := range rows {
		result = append(result, Journal{
			Entry:     row.Entry,
			Gratitude: row.Gratitude,
			Timestamp: row.RecordedAt,
			Date:      row.DateLabel,
		})
	}
	return result, nil
}

// AppendCheckIn inserts one check-in.
func (r *DBRepository) AppendCheckIn(ctx context.Context, c CheckIn) error {
	return r.BatchAppendCheckIns(ctx, []CheckIn{c})
}

// AppendJournal inserts one journal.
func (r *DBRepository) AppendJournal(ctx context.Context, j Journal) error {
	return r.BatchAppendJournals(ctx, []Journal{j})
}

// BatchAppendCheckIns inserts check-ins in a single transaction using a multi-row INSERT.
func (r *DBRepository) BatchAppendCheckIns(ctx context.Context, checkIns []CheckIn) error {
	if len(checkIns) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		query := database.BuildMultiRowInsert("check_ins", checkInColumns, len(checkIns))
		var args []interface{}
		for _, c := range checkIns {
			args = append(args, c.Emotion, c.Intensity, c.Notes, c.Timestamp.UTC())
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert check-ins: %w", err)
		}
		return nil
	})
}

// BatchAppendJournals inserts journals in a single transaction using a multi-row INSERT.
func (r *DBRepository) BatchAppendJournals(ctx context.Context, journals []Journal) error {
	if len(journals) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		query := database.BuildMultiRowInsert("journals", journalColumns, len(journals))
		var args []interface{}
		for _, j := range journals {
			args = append(args, j.Entry, j.Gratitude, j.Date, j.Timestamp.UTC())
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert journals: %w", err)
		}
		return nil
	})
}
