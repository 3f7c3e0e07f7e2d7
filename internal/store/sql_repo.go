package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
)

const uniqueViolation = "23505"

const schema = `
create table if not exists students (
	id         bigserial primary key,
	name       text not null,
	roll       text not null,
	number     text not null,
	semester   integer not null,
	sgpa1      double precision not null,
	sgpa2      double precision not null,
	cgpa       double precision not null,
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now()
);
create unique index if not exists students_roll_number_idx on students (roll, number);`

// SQLRepo stores records in PostgreSQL.
type SQLRepo struct{ DB *sql.DB }

func NewSQLRepo(db *sql.DB) *SQLRepo { return &SQLRepo{DB: db} }

// Open connects to dsn with the pgx driver and checks the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return db, nil
}

// Migrate creates the students table when it does not exist.
func (r *SQLRepo) Migrate(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating students table: %w", err)
	}
	return nil
}

func (r *SQLRepo) FindByStudent(ctx context.Context, roll, number string) (Record, error) {
	const q = `select id, name, roll, number, semester, sgpa1, sgpa2, cgpa, created_at, updated_at
	           from students
	           where roll=$1 and number=$2`
	var rec Record
	err := r.DB.QueryRowContext(ctx, q, roll, number).Scan(
		&rec.ID, &rec.Name, &rec.Roll, &rec.Number, &rec.Semester,
		&rec.SGPA1, &rec.SGPA2, &rec.CGPA, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("finding student %s/%s: %w", roll, number, err)
	}
	return rec, nil
}

// Insert saves a new record and fills in its ID and timestamps. It returns
// ErrDuplicate when the student already has a record.
func (r *SQLRepo) Insert(ctx context.Context, rec *Record) error {
	const q = `
insert into students(name, roll, number, semester, sgpa1, sgpa2, cgpa)
values ($1,$2,$3,$4,$5,$6,$7)
returning id, created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, q,
		rec.Name, rec.Roll, rec.Number, rec.Semester, rec.SGPA1, rec.SGPA2, rec.CGPA,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("inserting student %s/%s: %w", rec.Roll, rec.Number, err)
	}
	return nil
}

// Update overwrites the record stored for (rec.Roll, rec.Number).
func (r *SQLRepo) Update(ctx context.Context, rec *Record) error {
	const q = `
update students
set name=$3, semester=$4, sgpa1=$5, sgpa2=$6, cgpa=$7, updated_at=now()
where roll=$1 and number=$2
returning id, created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, q,
		rec.Roll, rec.Number, rec.Name, rec.Semester, rec.SGPA1, rec.SGPA2, rec.CGPA,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating student %s/%s: %w", rec.Roll, rec.Number, err)
	}
	return nil
}

// Ping reports whether the database is reachable.
func (r *SQLRepo) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
