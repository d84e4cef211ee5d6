package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aldenmarsh/fitcoach/internal/db"
	"github.com/aldenmarsh/fitcoach/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

const profileColumns = `id, name, age, weight, height, gender, activity_level,
	goals, calories, protein, fat, carbs, created_at, updated_at`

func (r *SQLiteProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.General.Name,
		nullableInt(p.General.Age),
		nullableFloat(p.General.Weight),
		nullableFloat(p.General.Height),
		p.General.Gender,
		p.General.ActivityLevel,
		encodeGoals(p.Goals),
		nullableFloat(p.Nutrition.Calories),
		nullableFloat(p.Nutrition.Protein),
		nullableFloat(p.Nutrition.Fat),
		nullableFloat(p.Nutrition.Carbs),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProfileRepo) GetByName(ctx context.Context, name string) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("profile: %w", ErrNotFound)
	}
	query := `SELECT ` + profileColumns + ` FROM profiles
		WHERE name = ? ORDER BY created_at LIMIT 1`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteProfileRepo) ListNames(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT name FROM profiles WHERE name != '' ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing profile names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning profile name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *SQLiteProfileRepo) UpdateGeneral(ctx context.Context, id string, g domain.GeneralInfo) error {
	query := `UPDATE profiles SET name = ?, age = ?, weight = ?, height = ?,
		gender = ?, activity_level = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		strings.TrimSpace(g.Name),
		nullableInt(g.Age),
		nullableFloat(g.Weight),
		nullableFloat(g.Height),
		g.Gender,
		g.ActivityLevel,
		nowUTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating general info: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteProfileRepo) UpdateGoals(ctx context.Context, id string, goals []string) error {
	query := `UPDATE profiles SET goals = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, encodeGoals(goals), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating goals: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteProfileRepo) UpdateNutrition(ctx context.Context, id string, n domain.NutritionTargets) error {
	query := `UPDATE profiles SET calories = ?, protein = ?, fat = ?, carbs = ?,
		updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableFloat(n.Calories),
		nullableFloat(n.Protein),
		nullableFloat(n.Fat),
		nullableFloat(n.Carbs),
		nowUTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating nutrition: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteProfileRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteProfileRepo) scanProfile(row *sql.Row) (*domain.Profile, error) {
	var (
		p          domain.Profile
		age        sql.NullInt64
		weight     sql.NullFloat64
		height     sql.NullFloat64
		goals      string
		calories   sql.NullFloat64
		protein    sql.NullFloat64
		fat        sql.NullFloat64
		carbs      sql.NullFloat64
		createdAt  string
		updatedAt  string
	)
	err := row.Scan(
		&p.ID,
		&p.General.Name,
		&age,
		&weight,
		&height,
		&p.General.Gender,
		&p.General.ActivityLevel,
		&goals,
		&calories,
		&protein,
		&fat,
		&carbs,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.General.Age = intPtr(age)
	p.General.Weight = floatPtr(weight)
	p.General.Height = floatPtr(height)
	p.Goals = decodeGoals(goals)
	p.Nutrition.Calories = floatPtr(calories)
	p.Nutrition.Protein = floatPtr(protein)
	p.Nutrition.Fat = floatPtr(fat)
	p.Nutrition.Carbs = floatPtr(carbs)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// requireRow converts a zero-row mutation into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("profile: %w", ErrNotFound)
	}
	return nil
}
