package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/juju/errors"

	"github.com/peeky-app/peeky-service/internal/model"
	"github.com/peeky-app/peeky-service/internal/pkg/database/sqlite"
)

type categoryRow struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	SortOrder int64  `db:"sort_order"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

func (r categoryRow) toModel() model.Category {
	return model.Category{
		BaseModel: model.BaseModel{
			ID:        r.ID,
			CreatedAt: sqlite.FromMillis(r.CreatedAt),
			UpdatedAt: sqlite.FromMillis(r.UpdatedAt),
		},
		Name:      r.Name,
		SortOrder: r.SortOrder,
	}
}

func rowFromModel(c *model.Category) categoryRow {
	return categoryRow{
		ID:        c.ID,
		Name:      c.Name,
		SortOrder: c.SortOrder,
		CreatedAt: sqlite.ToMillis(c.CreatedAt),
		UpdatedAt: sqlite.ToMillis(c.UpdatedAt),
	}
}

const selectColumns = `SELECT id, name, sort_order, created_at, updated_at FROM categories`

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, c *model.Category) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var next int64
	if err := tx.GetContext(ctx, &next, `SELECT COALESCE(MAX(sort_order), -1) + 1 FROM categories`); err != nil {
		return err
	}
	c.SortOrder = next

	res, err := tx.NamedExecContext(ctx, `
        INSERT INTO categories (name, sort_order, created_at, updated_at)
        VALUES (:name, :sort_order, :created_at, :updated_at)
    `, rowFromModel(c))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	var row categoryRow
	err := r.DB.GetContext(ctx, &row, selectColumns+` WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c := row.toModel()
	return &c, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	var rows []categoryRow
	if err := r.DB.SelectContext(ctx, &rows, selectColumns+` ORDER BY sort_order, id`); err != nil {
		return nil, err
	}
	categories := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toModel())
	}
	return categories, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET name = :name,
            sort_order = :sort_order,
            updated_at = :updated_at
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, rowFromModel(c))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.NotFoundf("Category %d", c.ID)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	// items go with it through ON DELETE CASCADE
	res, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Reorder sets each category's sort_order to its index in ids. Unknown ids
// are skipped.
func (r *SQLiteRepository) Reorder(ctx context.Context, ids []int64, updatedAt time.Time) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PreparexContext(ctx, `UPDATE categories SET sort_order = ?, updated_at = ? WHERE id = ?`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	ts := sqlite.ToMillis(updatedAt)
	for i, id := range ids {
		if _, err := stmt.ExecContext(ctx, i, ts, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}
