package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/takara-tech/product-api/internal/domain"
	"github.com/takara-tech/product-api/internal/repository/pgdb/converter"
	"github.com/takara-tech/product-api/internal/usecase"
	"github.com/takara-tech/product-api/pkg/e"
)

const productColumns = "id, name, price, created_at, updated_at"

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
// Каждый метод выполняет ровно один запрос; соединение берётся из пула на время запроса.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Save вставляет новую строку и возвращает сущность, восстановленную из
// сохранённой записи: идентификатор присваивает хранилище.
func (p *ProductRepo) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + productColumns

	row := p.conv.ToModel(product)

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, row.Name, row.Price, row.CreatedAt, row.UpdatedAt).
		Scan(&model.ID, &model.Name, &model.Price, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model)
}

// FindByID возвращает продукт по идентификатору или nil, если строки нет.
func (p *ProductRepo) FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id.Value()).
		Scan(&model.ID, &model.Name, &model.Price, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model)
}

// FindAll возвращает страницу продуктов, упорядоченную по идентификатору.
func (p *ProductRepo) FindAll(ctx context.Context, skip, limit int) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := p.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

// Update перезаписывает существующую строку.
// Возвращает e.ErrProductNotFound, если строки с таким идентификатором нет.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $1, price = $2, updated_at = $3
		WHERE id = $4
		RETURNING ` + productColumns

	row := p.conv.ToModel(product)

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, row.Name, row.Price, row.UpdatedAt, row.ID).
		Scan(&model.ID, &model.Name, &model.Price, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model)
}

// Delete удаляет строку по идентификатору.
// Возвращает true, если строка была удалена; отсутствие строки ошибкой не считается.
func (p *ProductRepo) Delete(ctx context.Context, id domain.ProductID) (bool, error) {
	query := `DELETE FROM products WHERE id = $1`

	tag, err := p.pool.Exec(ctx, query, id.Value())
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}

// Search возвращает страницу продуктов по фильтру.
// Заданные условия объединяются по AND; название ищется через ILIKE,
// границы цены включительные. Пагинация применяется после фильтрации.
func (p *ProductRepo) Search(ctx context.Context, filter usecase.SearchFilter) ([]*domain.Product, error) {
	var (
		conds []string
		args  []any
	)

	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}

	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}

	args = append(args, filter.Skip)
	query += fmt.Sprintf(` ORDER BY id OFFSET $%d`, len(args))
	args = append(args, filter.Limit)
	query += fmt.Sprintf(` LIMIT $%d`, len(args))

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

func (p *ProductRepo) scanProducts(rows pgx.Rows) ([]*domain.Product, error) {
	result := make([]*domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Price, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		product, err := p.conv.ToEntity(&model)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
