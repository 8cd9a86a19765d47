package infrastructure

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/model"
)

type userRow struct {
	ID         string    `db:"id"`
	Username   string    `db:"username"`
	MotDePasse string    `db:"motdepasse"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	CreatedAt  time.Time `db:"created_at"`
}

const selectUser = "SELECT id, username, motdepasse, first_name, last_name, email, phone, created_at FROM users"

type MySQLUserRepository struct {
	db *sqlx.DB
}

func NewMySQLUserRepository(db *sqlx.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

func (r *MySQLUserRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *MySQLUserRepository) Create(user *model.User) error {
	_, err := r.db.NamedExec(
		`INSERT INTO users (id, username, motdepasse, first_name, last_name, email, phone, created_at)
		VALUES (:id, :username, :motdepasse, :first_name, :last_name, :email, :phone, :created_at)`,
		userRow{
			ID:         user.ID.String(),
			Username:   user.Username,
			MotDePasse: user.HashedPassword,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Email:      user.Email,
			Phone:      user.Phone,
			CreatedAt:  user.CreatedAt,
		},
	)
	return errors.Wrap(err, "failed to create user")
}

func (r *MySQLUserRepository) Find(id uuid.UUID) (*model.User, error) {
	return r.findOne(selectUser+" WHERE id = ?", id.String())
}

func (r *MySQLUserRepository) FindByUsername(username string) (*model.User, error) {
	return r.findOne(selectUser+" WHERE username = ?", username)
}

func (r *MySQLUserRepository) findOne(query string, arg interface{}) (*model.User, error) {
	var row userRow
	err := r.db.Get(&row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query user")
	}

	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "user %q has a malformed id", row.Username)
	}
	return &model.User{
		ID:             id,
		Username:       row.Username,
		HashedPassword: row.MotDePasse,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Email:          row.Email,
		Phone:          row.Phone,
		CreatedAt:      row.CreatedAt,
	}, nil
}
