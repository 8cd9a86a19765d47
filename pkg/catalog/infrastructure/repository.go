package infrastructure

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Mouss-42/ReactSituPro-main/pkg/catalog/domain/model"
)

type productRow struct {
	ID   int64           `db:"idproduits"`
	Name string          `db:"nomproduits"`
	Prix decimal.Decimal `db:"prix"`
}

func (r productRow) toModel() model.Product {
	return model.Product{ID: r.ID, Name: r.Name, Price: r.Prix}
}

// MySQLProductRepository reads and writes the produits table.
type MySQLProductRepository struct {
	db *sqlx.DB
}

func NewMySQLProductRepository(db *sqlx.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

func (r *MySQLProductRepository) List() ([]model.Product, error) {
	var rows []productRow
	if err := r.db.Select(&rows, "SELECT idproduits, nomproduits, prix FROM produits ORDER BY idproduits"); err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toModel())
	}
	return products, nil
}

func (r *MySQLProductRepository) Find(id int64) (*model.Product, error) {
	var row productRow
	err := r.db.Get(&row, "SELECT idproduits, nomproduits, prix FROM produits WHERE idproduits = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find product %d", id)
	}

	product := row.toModel()
	return &product, nil
}

func (r *MySQLProductRepository) Create(product *model.Product) (int64, error) {
	result, err := r.db.Exec("INSERT INTO produits (nomproduits, prix) VALUES (?, ?)", product.Name, product.Price)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create product")
	}
	id, err := result.LastInsertId()
	return id, errors.Wrap(err, "failed to read inserted product id")
}

func (r *MySQLProductRepository) Update(product *model.Product) error {
	// MySQL reports zero affected rows for an unchanged row, so existence is
	// checked by the caller.
	_, err := r.db.Exec("UPDATE produits SET nomproduits = ?, prix = ? WHERE idproduits = ?", product.Name, product.Price, product.ID)
	return errors.Wrapf(err, "failed to update product %d", product.ID)
}

func (r *MySQLProductRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM produits WHERE idproduits = ?", id)
	if err != nil {
		return errors.Wrapf(err, "failed to delete product %d", id)
	}
	return expectAffected(result, id)
}

func expectAffected(result sql.Result, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "failed to read affected rows for product %d", id)
	}
	if affected == 0 {
		return model.ErrProductNotFound
	}
	return nil
}
