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

type itemRow struct {
	ID         int64  `db:"id"`
	CategoryID int64  `db:"category_id"`
	Label      string `db:"label"`
	Value      string `db:"value"`
	SortOrder  int64  `db:"sort_order"`
	CreatedAt  int64  `db:"created_at"`
	UpdatedAt  int64  `db:"updated_at"`
}

func (r itemRow) toModel() model.Item {
	return model.Item{
		BaseModel: model.BaseModel{
			ID:        r.ID,
			CreatedAt: sqlite.FromMillis(r.CreatedAt),
			UpdatedAt: sqlite.FromMillis(r.UpdatedAt),
		},
		CategoryID: r.CategoryID,
		Label:      r.Label,
		Value:      r.Value,
		SortOrder:  r.SortOrder,
	}
}

func rowFromModel(it *model.Item) itemRow {
	return itemRow{
		ID:         it.ID,
		CategoryID: it.CategoryID,
		Label:      it.Label,
		Value:      it.Value,
		SortOrder:  it.SortOrder,
		CreatedAt:  sqlite.ToMillis(it.CreatedAt),
		UpdatedAt:  sqlite.ToMillis(it.UpdatedAt),
	}
}

const selectColumns = `SELECT id, category_id, label, value, sort_order, created_at, updated_at FROM items`

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, it *model.Item) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var next int64
	err = tx.GetContext(ctx, &next,
		`SELECT COALESCE(MAX(sort_order), -1) + 1 FROM items WHERE category_id = ?`, it.CategoryID)
	if err != nil {
		return err
	}
	it.SortOrder = next

	res, err := tx.NamedExecContext(ctx, `
        INSERT INTO items (category_id, label, value, sort_order, created_at, updated_at)
        VALUES (:category_id, :label, :value, :sort_order, :created_at, :updated_at)
    `, rowFromModel(it))
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
	it.ID = id
	return nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Item, error) {
	var row itemRow
	err := r.DB.GetContext(ctx, &row, selectColumns+` WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	it := row.toModel()
	return &it, nil
}

func (r *SQLiteRepository) FindByCategory(ctx context.Context, categoryID int64) ([]model.Item, error) {
	var rows []itemRow
	err := r.DB.SelectContext(ctx, &rows, selectColumns+` WHERE category_id = ? ORDER BY sort_order, id`, categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}

func (r *SQLiteRepository) FindAllWithCategory(ctx context.Context) ([]model.ItemWithCategory, error) {
	var rows []struct {
		ID                int64  `db:"id"`
		CategoryID        int64  `db:"category_id"`
		Label             string `db:"label"`
		Value             string `db:"value"`
		SortOrder         int64  `db:"sort_order"`
		CategoryName      string `db:"category_name"`
		CategorySortOrder int64  `db:"category_sort_order"`
	}
	query := `
        SELECT i.id, i.category_id, i.label, i.value, i.sort_order,
               c.name AS category_name, c.sort_order AS category_sort_order
        FROM items i
        JOIN categories c ON c.id = i.category_id
        ORDER BY c.sort_order, c.id, i.sort_order, i.id
    `
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	out := make([]model.ItemWithCategory, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.ItemWithCategory(row))
	}
	return out, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, it *model.Item) error {
	query := `
        UPDATE items
        SET label = :label,
            value = :value,
            sort_order = :sort_order,
            updated_at = :updated_at
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, rowFromModel(it))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.NotFoundf("Item %d", it.ID)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Reorder sets sort_order to the index in ids for items of categoryID. Ids
// that are unknown or belong to another category are skipped.
func (r *SQLiteRepository) Reorder(ctx context.Context, categoryID int64, ids []int64, updatedAt time.Time) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PreparexContext(ctx,
		`UPDATE items SET sort_order = ?, updated_at = ? WHERE id = ? AND category_id = ?`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	ts := sqlite.ToMillis(updatedAt)
	for i, id := range ids {
		if _, err := stmt.ExecContext(ctx, i, ts, id, categoryID); err != nil {
			return err
		}
	}
	return tx.Commit()
}
