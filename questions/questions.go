// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/qform/auth"
	"github.com/danielhkuo/qform/models"
	"github.com/danielhkuo/qform/ordinal"
	"github.com/danielhkuo/qform/store"
)

// Manager owns the ordered set of top-level questions. Every mutation that
// touches more than one row runs in a single transaction; the manager keeps
// no state between calls.
type Manager struct {
	store *store.Store
}

func NewManager(st *store.Store) *Manager {
	return &Manager{store: st}
}

// List returns the full form state: questions ordered by ordinal, each with
// its options ordered by ordinal.
func (m *Manager) List(ctx context.Context) ([]models.Question, error) {
	qs, err := m.store.Questions(ctx, m.store.DB())
	if err != nil {
		return nil, err
	}

	opts, err := m.store.AllOptions(ctx, m.store.DB())
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.Option, len(qs))
	for _, opt := range opts {
		grouped[opt.QuestionID] = append(grouped[opt.QuestionID], opt)
	}
	for i := range qs {
		if owned, ok := grouped[qs[i].ID]; ok {
			qs[i].Options = owned
		}
	}

	return qs, nil
}

// Add appends a question at the tail ordinal with placeholder text and no
// options.
func (m *Manager) Add(ctx context.Context) (models.Question, error) {
	id, err := auth.GenerateID(8)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to generate question id: %w", err)
	}

	question := models.Question{
		ID:      id,
		Text:    models.DefaultQuestionText,
		Options: []models.Option{},
	}

	err = m.store.WithTx(ctx, "add question", func(tx *sql.Tx) error {
		ids, err := m.store.QuestionIDs(ctx, tx)
		if err != nil {
			return err
		}
		question.Ord = ordinal.Next(len(ids))
		return m.store.InsertQuestion(ctx, tx, question)
	})
	if err != nil {
		return models.Question{}, err
	}

	return question, nil
}

// EditText updates a question's text.
func (m *Manager) EditText(ctx context.Context, id, text string) (models.Question, error) {
	if text == "" {
		return models.Question{}, fmt.Errorf("%w: text is required", models.ErrValidation)
	}

	if err := m.store.UpdateQuestionText(ctx, m.store.DB(), id, text); err != nil {
		return models.Question{}, err
	}

	question, err := m.store.GetQuestion(ctx, m.store.DB(), id)
	if err != nil {
		return models.Question{}, err
	}
	question.Options, err = m.store.Options(ctx, m.store.DB(), id)
	if err != nil {
		return models.Question{}, err
	}
	return question, nil
}

// Delete removes a question, its options, and closes the ordinal gap among
// the remaining questions - all in one transaction.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.store.WithTx(ctx, "delete question", func(tx *sql.Tx) error {
		question, err := m.store.GetQuestion(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := m.store.DeleteQuestionOptions(ctx, tx, id); err != nil {
			return err
		}
		if err := m.store.DeleteQuestion(ctx, tx, id); err != nil {
			return err
		}
		return m.store.ShiftQuestionOrds(ctx, tx, question.Ord)
	})
}

// Reorder assigns fresh ordinals to every question from the client's full
// new ordering. Strict: the submitted id set must match current membership
// exactly, otherwise nothing is written.
func (m *Manager) Reorder(ctx context.Context, ids []string) error {
	return m.store.WithTx(ctx, "reorder questions", func(tx *sql.Tx) error {
		current, err := m.store.QuestionIDs(ctx, tx)
		if err != nil {
			return err
		}

		assigned, err := ordinal.Replace(current, ids)
		if err != nil {
			return fmt.Errorf("%w: %v", models.ErrValidation, err)
		}

		for id, ord := range assigned {
			if err := m.store.SetQuestionOrd(ctx, tx, id, ord); err != nil {
				return err
			}
		}
		return nil
	})
}
