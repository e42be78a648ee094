package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/database/postgres"
	"github.com/vfg2006/shorten-rest-connector/pkg/utils"
)

const userPropertiesTable = "user_properties"

type postgresPropertyStore struct {
	conn postgres.Conn
}

func NewPostgresPropertyStore(conn postgres.Conn) PropertyStore {
	return &postgresPropertyStore{
		conn: conn,
	}
}

func (r *postgresPropertyStore) Get(ctx context.Context, userID, key string) (string, bool, error) {
	query, args, err := selectPropertyQuery(userID, key)
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "erro ao buscar propriedade")
	}

	return value, true, nil
}

// Set grava numa transação; uma falha não deixa valor parcial no slot
func (r *postgresPropertyStore) Set(ctx context.Context, userID, key, value string) error {
	return r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		id, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "erro ao gerar id")
		}

		query, args, err := upsertPropertyQuery(id, userID, key, value)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrap(err, "erro ao gravar propriedade")
		}

		return nil
	})
}

func (r *postgresPropertyStore) Delete(ctx context.Context, userID, key string) error {
	query, args, err := deletePropertyQuery(userID, key)
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao remover propriedade")
	}

	return nil
}

func (r *postgresPropertyStore) List(ctx context.Context, key string) (map[string]string, error) {
	query, args, err := squirrel.
		Select("user_id", "property_value").
		From(userPropertiesTable).
		Where(squirrel.Eq{"property_key": key}).
		OrderBy("user_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar propriedades")
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var userID, value string
		if err := rows.Scan(&userID, &value); err != nil {
			return nil, err
		}
		result[userID] = value
	}

	return result, rows.Err()
}

func selectPropertyQuery(userID, key string) (string, []interface{}, error) {
	return squirrel.
		Select("property_value").
		From(userPropertiesTable).
		Where(squirrel.Eq{"user_id": userID, "property_key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func upsertPropertyQuery(id, userID, key, value string) (string, []interface{}, error) {
	return squirrel.
		Insert(userPropertiesTable).
		Columns("id", "user_id", "property_key", "property_value", "updated_at").
		Values(id, userID, key, value, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (user_id, property_key) DO UPDATE SET property_value = EXCLUDED.property_value, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func deletePropertyQuery(userID, key string) (string, []interface{}, error) {
	return squirrel.
		Delete(userPropertiesTable).
		Where(squirrel.Eq{"user_id": userID, "property_key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
