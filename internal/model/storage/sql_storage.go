package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	// sqlite driver
	_ "modernc.org/sqlite"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/entity/user"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/calendar"
	"max.ks1230/finance-tracker/internal/model/customerr"
)

const (
	dsnTemplate  = "user=%s password=%s host=%s port=%d dbname=%s sslmode=%s"
	sqlitePragma = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
)

type postgresConfig interface {
	Host() string
	Port() int
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

type sqliteConfig interface {
	Path() string
}

// SQLStorage keeps the ledger in postgres or sqlite. Both share one schema;
// only the placeholder format differs.
type SQLStorage struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func PostgresDSN(config postgresConfig) string {
	return fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Port(),
		config.Database(),
		config.SSLMode())
}

func NewPostgresStorage(config postgresConfig) (*SQLStorage, error) {
	dsn := PostgresDSN(config)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = RunMigrations("postgres", dsn); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLStorage{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

func NewSQLiteStorage(config sqliteConfig) (*SQLStorage, error) {
	path := config.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create db directory")
	}

	dsn := path + sqlitePragma
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	if err = RunMigrations("sqlite", dsn); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLStorage{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Error("error closing rows", zap.Error(err))
	}
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.Error("error when transaction rollback", zap.Error(err))
	}
}

func (s *SQLStorage) GetUser(ctx context.Context) (user.Record, error) {
	query := s.sb.Select("id", "pin_hash").
		From("users").
		OrderBy("id").
		Limit(1)

	var res user.Record
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&res.ID, &res.PinHash)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Record{}, &customerr.NotFoundError{Err: "user not found"}
	}
	if err != nil {
		return user.Record{}, errors.Wrap(err, "get user")
	}
	return res, nil
}

func (s *SQLStorage) CreateUser(ctx context.Context, pinHash string) (user.Record, error) {
	rec := user.Record{PinHash: pinHash}
	query := s.sb.Insert("users").
		Columns("pin_hash").
		Values(rec.PinHash).
		Suffix("RETURNING id")

	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&rec.ID)
	if err != nil {
		return user.Record{}, errors.Wrap(err, "create user")
	}
	return rec, nil
}

func (s *SQLStorage) UpdateUserPin(ctx context.Context, id int64, pinHash string) error {
	query := s.sb.Update("users").
		Set("pin_hash", pinHash).
		Where(sq.Eq{"id": id})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "update pin")
	}
	return expectAffected(res, "user not found")
}

func (s *SQLStorage) ListCategories(ctx context.Context) ([]category.Category, error) {
	query := s.sb.Select("id", "name", "type").
		From("categories").
		OrderBy("id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	defer closeRows(rows)

	cats := make([]category.Category, 0)
	for rows.Next() {
		var (
			c   category.Category
			typ string
		)
		if err = rows.Scan(&c.ID, &c.Name, &typ); err != nil {
			return nil, errors.Wrap(err, "list categories")
		}
		c.Type = category.Type(typ)
		cats = append(cats, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return cats, nil
}

func (s *SQLStorage) GetCategory(ctx context.Context, id int64) (category.Category, error) {
	query := s.sb.Select("id", "name", "type").
		From("categories").
		Where(sq.Eq{"id": id})

	var (
		c   category.Category
		typ string
	)
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&c.ID, &c.Name, &typ)
	if errors.Is(err, sql.ErrNoRows) {
		return category.Category{}, &customerr.NotFoundError{Err: "Category not found"}
	}
	if err != nil {
		return category.Category{}, errors.Wrap(err, "get category")
	}
	c.Type = category.Type(typ)
	return c, nil
}

func (s *SQLStorage) CreateCategory(ctx context.Context, c category.Category) (category.Category, error) {
	query := s.sb.Insert("categories").
		Columns("name", "type").
		Values(c.Name, string(c.Type)).
		Suffix("RETURNING id")

	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&c.ID)
	if err != nil {
		return category.Category{}, errors.Wrap(err, "create category")
	}
	return c, nil
}

// DeleteCategory refuses to remove a category that transactions still point to.
func (s *SQLStorage) DeleteCategory(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "delete category")
	}
	defer rollback(tx)

	var refs int64
	err = s.sb.Select("COUNT(*)").
		From("transactions").
		Where(sq.Eq{"category_id": id}).
		RunWith(tx).QueryRowContext(ctx).Scan(&refs)
	if err != nil {
		return errors.Wrap(err, "delete category")
	}
	if refs > 0 {
		return &customerr.ConflictError{
			Err: fmt.Sprintf("Category is used by %d transaction(s)", refs),
		}
	}

	res, err := s.sb.Delete("categories").
		Where(sq.Eq{"id": id}).
		RunWith(tx).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete category")
	}
	if err = expectAffected(res, "Category not found"); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "delete category")
}

func (s *SQLStorage) ListTransactions(ctx context.Context, filter transaction.Filter) ([]transaction.Transaction, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "listTransactions")
	defer span.Finish()

	query := s.sb.Select(
		"t.id", "t.amount", "CAST(t.date AS TEXT)", "t.description", "t.type", "t.category_id", "c.name",
	).
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		OrderBy("t.date DESC", "t.id DESC")

	if filter.StartDate != nil {
		query = query.Where(sq.GtOrEq{"t.date": calendar.FormatDate(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		query = query.Where(sq.LtOrEq{"t.date": calendar.FormatDate(*filter.EndDate)})
	}
	if filter.Type != nil {
		query = query.Where(sq.Eq{"t.type": string(*filter.Type)})
	}

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list transactions")
	}
	defer closeRows(rows)

	txs := make([]transaction.Transaction, 0)
	for rows.Next() {
		var (
			t         transaction.Transaction
			date, typ string
		)
		err = rows.Scan(&t.ID, &t.Amount, &date, &t.Description, &typ, &t.CategoryID, &t.CategoryName)
		if err != nil {
			return nil, errors.Wrap(err, "list transactions")
		}
		if t.Date, err = calendar.ParseDate(date); err != nil {
			return nil, errors.Wrap(err, "list transactions")
		}
		t.Type = category.Type(typ)
		txs = append(txs, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list transactions")
	}
	return txs, nil
}

func (s *SQLStorage) CreateTransaction(ctx context.Context, t transaction.Transaction) (transaction.Transaction, error) {
	if t.Date.IsZero() {
		return transaction.Transaction{}, errMissingDate
	}
	query := s.sb.Insert("transactions").
		Columns("amount", "date", "description", "type", "category_id").
		Values(t.Amount, calendar.FormatDate(t.Date), t.Description, string(t.Type), t.CategoryID).
		Suffix("RETURNING id")

	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&t.ID)
	if err != nil {
		return transaction.Transaction{}, errors.Wrap(err, "create transaction")
	}
	return t, nil
}

func (s *SQLStorage) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := s.sb.Delete("transactions").
		Where(sq.Eq{"id": id}).
		RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete transaction")
	}
	return expectAffected(res, "Transaction not found")
}

func expectAffected(res sql.Result, notFound string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return &customerr.NotFoundError{Err: notFound}
	}
	return nil
}
