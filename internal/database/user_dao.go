package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/grigorv/snackshop/internal/model"
)

type UserDAO struct {
	Logger *slog.Logger
	*DB
}

func NewUserDAO(logger *slog.Logger, db *DB) *UserDAO {
	return &UserDAO{
		Logger: logger.With("dao", "user"),
		DB:     db,
	}
}

func (dao *UserDAO) GetByLogin(ctx context.Context, login string) (model.User, error) {
	logger := dao.Logger.With("query", "getByLogin")

	query, args, err := dao.Builder.
		Select("*").
		From("users").
		Where(squirrel.Eq{"login": login}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var user model.User
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&user); err != nil {
		if IsNoRows(err) {
			return model.User{}, model.NewError("user", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.User{}, err
	}

	return user, nil
}

type InsertUserDTO struct {
	Login        string
	PasswordHash string
}

// Insert creates a user with only the credential pair populated. A duplicate
// login surfaces as model.ErrExists via the unique constraint, so
// check-then-insert races cannot create two users with one login.
func (dao *UserDAO) Insert(ctx context.Context, dto InsertUserDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("users").
		Columns("login", "password_hash").
		Values(dto.Login, dto.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var id model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&id); err != nil {
		if IsUniqueViolation(err) {
			return 0, model.NewError("user", model.ErrExists)
		}

		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	logger.Debug("success query execute", "insertId", id)

	return id, nil
}

type UpdateProfileDTO struct {
	FirstName *string
	LastName  *string
	Email     *string
	BirthDate *string
}

func (dto UpdateProfileDTO) Empty() bool {
	return dto.FirstName == nil && dto.LastName == nil && dto.Email == nil && dto.BirthDate == nil
}

// UpdateProfile applies only the fields present in dto.
func (dao *UserDAO) UpdateProfile(ctx context.Context, id model.ID, dto UpdateProfileDTO) error {
	logger := dao.Logger.With("query", "updateProfile")

	if dto.Empty() {
		return nil
	}

	data := make(map[string]any, 4)
	if dto.FirstName != nil {
		data["firstname"] = *dto.FirstName
	}
	if dto.LastName != nil {
		data["lastname"] = *dto.LastName
	}
	if dto.Email != nil {
		data["email"] = *dto.Email
	}
	if dto.BirthDate != nil {
		data["birthdate"] = *dto.BirthDate
	}

	query, args, err := dao.Builder.
		Update("users").
		SetMap(data).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "updateId", id, "countUpdatedFields", len(data))

	return nil
}

func (dao *UserDAO) GetProfile(ctx context.Context, id model.ID) (model.Profile, error) {
	logger := dao.Logger.With("query", "getProfile")

	query, args, err := dao.Builder.
		Select("firstname", "lastname", "email", "birthdate").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Profile{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var profile model.Profile
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&profile); err != nil {
		if IsNoRows(err) {
			return model.Profile{}, model.NewError("user", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Profile{}, err
	}

	return profile, nil
}
