// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/danielhkuo/qform/models"
)

// Querier is the subset of database operations shared by *sql.DB and
// *sql.Tx. Statement helpers take a Querier so the same code runs inside
// and outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the transactional persistence adapter for questions and options.
// It is the only component that speaks SQL; storage failures surface as
// *models.PersistenceError, never as raw driver errors.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying connection for read paths that need no
// transaction.
func (s *Store) DB() *sql.DB {
	return s.db
}

// WithTx runs fn inside a serializable transaction. Any error from fn rolls
// the whole transaction back, so a multi-row mutation (delete+renumber,
// reorder, replace-all) is all-or-nothing. Serializable isolation is what
// makes the read-ordinals-then-write pattern safe: under Postgres's default
// READ COMMITTED, two concurrent appends to the same sibling scope would both
// read N rows and both commit ord = N. At this level one of them aborts
// instead, surfacing as *models.PersistenceError; the caller gets exactly one
// attempt, no retry. Domain errors from fn pass through untouched;
// begin/commit failures are wrapped with the logical operation name.
func (s *Store) WithTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return &models.PersistenceError{Op: op, Err: err}
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return &models.PersistenceError{Op: op, Err: err}
	}
	return nil
}

// fail wraps a driver error for a named statement.
func fail(op string, err error) error {
	return &models.PersistenceError{Op: op, Err: err}
}

// Question statements

func (s *Store) Questions(ctx context.Context, q Querier) ([]models.Question, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, ord, description
		FROM questions
		ORDER BY ord ASC
	`)
	if err != nil {
		return nil, fail("select questions", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var question models.Question
		if err := rows.Scan(&question.ID, &question.Ord, &question.Text); err != nil {
			return nil, fail("scan question", err)
		}
		question.Options = []models.Option{}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("select questions", err)
	}
	return questions, nil
}

// QuestionIDs returns all question ids in ordinal order.
func (s *Store) QuestionIDs(ctx context.Context, q Querier) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id
		FROM questions
		ORDER BY ord ASC
	`)
	if err != nil {
		return nil, fail("select question ids", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fail("scan question id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("select question ids", err)
	}
	return ids, nil
}

func (s *Store) GetQuestion(ctx context.Context, q Querier, id string) (models.Question, error) {
	var question models.Question
	err := q.QueryRowContext(ctx, `
		SELECT id, ord, description
		FROM questions
		WHERE id = $1
	`, id).Scan(&question.ID, &question.Ord, &question.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, models.ErrNotFound
	}
	if err != nil {
		return models.Question{}, fail("select question", err)
	}
	question.Options = []models.Option{}
	return question, nil
}

func (s *Store) QuestionExists(ctx context.Context, q Querier, id string) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM questions WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return false, fail("check question exists", err)
	}
	return exists, nil
}

func (s *Store) InsertQuestion(ctx context.Context, q Querier, question models.Question) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO questions (id, ord, description)
		VALUES ($1, $2, $3)
	`, question.ID, question.Ord, question.Text)
	if err != nil {
		return fail("insert question", err)
	}
	return nil
}

func (s *Store) UpdateQuestionText(ctx context.Context, q Querier, id, text string) error {
	res, err := q.ExecContext(ctx, `
		UPDATE questions
		SET description = $1
		WHERE id = $2
	`, text, id)
	if err != nil {
		return fail("update question text", err)
	}
	return requireRow(res, "update question text")
}

func (s *Store) DeleteQuestion(ctx context.Context, q Querier, id string) error {
	res, err := q.ExecContext(ctx, `
		DELETE FROM questions
		WHERE id = $1
	`, id)
	if err != nil {
		return fail("delete question", err)
	}
	return requireRow(res, "delete question")
}

// ShiftQuestionOrds closes the ordinal gap left by a deleted question:
// every question above the removed ordinal moves down by one.
func (s *Store) ShiftQuestionOrds(ctx context.Context, q Querier, above int) error {
	_, err := q.ExecContext(ctx, `
		UPDATE questions
		SET ord = ord - 1
		WHERE ord > $1
	`, above)
	if err != nil {
		return fail("shift question ordinals", err)
	}
	return nil
}

func (s *Store) SetQuestionOrd(ctx context.Context, q Querier, id string, ord int) error {
	_, err := q.ExecContext(ctx, `
		UPDATE questions
		SET ord = $1
		WHERE id = $2
	`, ord, id)
	if err != nil {
		return fail("set question ordinal", err)
	}
	return nil
}

// Option statements

func (s *Store) Options(ctx context.Context, q Querier, questionID string) ([]models.Option, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, question, ord, description, selected
		FROM options
		WHERE question = $1
		ORDER BY ord ASC
	`, questionID)
	if err != nil {
		return nil, fail("select options", err)
	}
	defer rows.Close()
	return scanOptions(rows)
}

// AllOptions returns every option in the form, ordered by ordinal within
// each question. Used to assemble the full form state in one pass.
func (s *Store) AllOptions(ctx context.Context, q Querier) ([]models.Option, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, question, ord, description, selected
		FROM options
		ORDER BY question ASC, ord ASC
	`)
	if err != nil {
		return nil, fail("select all options", err)
	}
	defer rows.Close()
	return scanOptions(rows)
}

func scanOptions(rows *sql.Rows) ([]models.Option, error) {
	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.QuestionID, &opt.Ord, &opt.Text, &opt.Selected); err != nil {
			return nil, fail("scan option", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("select options", err)
	}
	return options, nil
}

// OptionIDs returns one question's option ids in ordinal order.
func (s *Store) OptionIDs(ctx context.Context, q Querier, questionID string) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id
		FROM options
		WHERE question = $1
		ORDER BY ord ASC
	`, questionID)
	if err != nil {
		return nil, fail("select option ids", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fail("scan option id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("select option ids", err)
	}
	return ids, nil
}

func (s *Store) GetOption(ctx context.Context, q Querier, questionID, optionID string) (models.Option, error) {
	var opt models.Option
	err := q.QueryRowContext(ctx, `
		SELECT id, question, ord, description, selected
		FROM options
		WHERE question = $1 AND id = $2
	`, questionID, optionID).Scan(&opt.ID, &opt.QuestionID, &opt.Ord, &opt.Text, &opt.Selected)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Option{}, models.ErrNotFound
	}
	if err != nil {
		return models.Option{}, fail("select option", err)
	}
	return opt, nil
}

func (s *Store) InsertOption(ctx context.Context, q Querier, opt models.Option) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO options (id, question, ord, description, selected)
		VALUES ($1, $2, $3, $4, $5)
	`, opt.ID, opt.QuestionID, opt.Ord, opt.Text, opt.Selected)
	if err != nil {
		return fail("insert option", err)
	}
	return nil
}

func (s *Store) UpdateOptionText(ctx context.Context, q Querier, questionID, optionID, text string) error {
	res, err := q.ExecContext(ctx, `
		UPDATE options
		SET description = $1
		WHERE question = $2 AND id = $3
	`, text, questionID, optionID)
	if err != nil {
		return fail("update option text", err)
	}
	return requireRow(res, "update option text")
}

func (s *Store) UpdateOptionSelected(ctx context.Context, q Querier, questionID, optionID string, selected bool) error {
	res, err := q.ExecContext(ctx, `
		UPDATE options
		SET selected = $1
		WHERE question = $2 AND id = $3
	`, selected, questionID, optionID)
	if err != nil {
		return fail("update option selected", err)
	}
	return requireRow(res, "update option selected")
}

// ClearSelected unselects every option of a question. Runs in the same
// transaction as the select that follows, so two options are never
// simultaneously selected in committed state.
func (s *Store) ClearSelected(ctx context.Context, q Querier, questionID string) error {
	_, err := q.ExecContext(ctx, `
		UPDATE options
		SET selected = FALSE
		WHERE question = $1
	`, questionID)
	if err != nil {
		return fail("clear selected option", err)
	}
	return nil
}

func (s *Store) DeleteOption(ctx context.Context, q Querier, questionID, optionID string) error {
	res, err := q.ExecContext(ctx, `
		DELETE FROM options
		WHERE question = $1 AND id = $2
	`, questionID, optionID)
	if err != nil {
		return fail("delete option", err)
	}
	return requireRow(res, "delete option")
}

// DeleteQuestionOptions removes all options of a question. Used by both the
// question-delete cascade and the replace-all strategy.
func (s *Store) DeleteQuestionOptions(ctx context.Context, q Querier, questionID string) error {
	_, err := q.ExecContext(ctx, `
		DELETE FROM options
		WHERE question = $1
	`, questionID)
	if err != nil {
		return fail("delete question options", err)
	}
	return nil
}

func (s *Store) ShiftOptionOrds(ctx context.Context, q Querier, questionID string, above int) error {
	_, err := q.ExecContext(ctx, `
		UPDATE options
		SET ord = ord - 1
		WHERE question = $1 AND ord > $2
	`, questionID, above)
	if err != nil {
		return fail("shift option ordinals", err)
	}
	return nil
}

func (s *Store) SetOptionOrd(ctx context.Context, q Querier, questionID, optionID string, ord int) error {
	_, err := q.ExecContext(ctx, `
		UPDATE options
		SET ord = $1
		WHERE question = $2 AND id = $3
	`, ord, questionID, optionID)
	if err != nil {
		return fail("set option ordinal", err)
	}
	return nil
}

// requireRow maps a zero-row write to ErrNotFound.
func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fail(op, err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
