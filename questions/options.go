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

// OptionManager owns the ordered option set of each question. The sibling
// scope of every operation is one question's options; operations on
// different questions are independent.
type OptionManager struct {
	store *store.Store
}

func NewOptionManager(st *store.Store) *OptionManager {
	return &OptionManager{store: st}
}

// Add appends an option at the tail ordinal with placeholder text,
// unselected.
func (m *OptionManager) Add(ctx context.Context, questionID string) (models.Option, error) {
	id, err := auth.GenerateID(8)
	if err != nil {
		return models.Option{}, fmt.Errorf("failed to generate option id: %w", err)
	}

	opt := models.Option{
		ID:         id,
		QuestionID: questionID,
		Text:       models.DefaultOptionText,
		Selected:   false,
	}

	err = m.store.WithTx(ctx, "add option", func(tx *sql.Tx) error {
		if err := m.requireQuestion(ctx, tx, questionID); err != nil {
			return err
		}
		ids, err := m.store.OptionIDs(ctx, tx, questionID)
		if err != nil {
			return err
		}
		opt.Ord = ordinal.Next(len(ids))
		return m.store.InsertOption(ctx, tx, opt)
	})
	if err != nil {
		return models.Option{}, err
	}

	return opt, nil
}

// Edit updates an option's text and/or selection. Selecting an option
// clears its siblings in the same transaction, so at most one option per
// question is ever selected in committed state. Deselecting leaves the
// question with no selected option.
func (m *OptionManager) Edit(ctx context.Context, questionID, optionID string, text *string, selected *bool) (models.Option, error) {
	if text == nil && selected == nil {
		return models.Option{}, fmt.Errorf("%w: nothing to update", models.ErrValidation)
	}

	var opt models.Option
	err := m.store.WithTx(ctx, "edit option", func(tx *sql.Tx) error {
		if _, err := m.store.GetOption(ctx, tx, questionID, optionID); err != nil {
			return err
		}

		if text != nil {
			if err := m.store.UpdateOptionText(ctx, tx, questionID, optionID, *text); err != nil {
				return err
			}
		}

		if selected != nil {
			if *selected {
				if err := m.store.ClearSelected(ctx, tx, questionID); err != nil {
					return err
				}
			}
			if err := m.store.UpdateOptionSelected(ctx, tx, questionID, optionID, *selected); err != nil {
				return err
			}
		}

		var err error
		opt, err = m.store.GetOption(ctx, tx, questionID, optionID)
		return err
	})
	if err != nil {
		return models.Option{}, err
	}

	return opt, nil
}

// Delete removes an option and closes the ordinal gap among its remaining
// siblings, in one transaction.
func (m *OptionManager) Delete(ctx context.Context, questionID, optionID string) error {
	return m.store.WithTx(ctx, "delete option", func(tx *sql.Tx) error {
		opt, err := m.store.GetOption(ctx, tx, questionID, optionID)
		if err != nil {
			return err
		}
		if err := m.store.DeleteOption(ctx, tx, questionID, optionID); err != nil {
			return err
		}
		return m.store.ShiftOptionOrds(ctx, tx, questionID, opt.Ord)
	})
}

// Reorder assigns fresh ordinals to one question's options from the
// client's full new ordering. Strict membership check, same as question
// reorder.
func (m *OptionManager) Reorder(ctx context.Context, questionID string, ids []string) error {
	return m.store.WithTx(ctx, "reorder options", func(tx *sql.Tx) error {
		if err := m.requireQuestion(ctx, tx, questionID); err != nil {
			return err
		}

		current, err := m.store.OptionIDs(ctx, tx, questionID)
		if err != nil {
			return err
		}

		assigned, err := ordinal.Replace(current, ids)
		if err != nil {
			return fmt.Errorf("%w: %v", models.ErrValidation, err)
		}

		for id, ord := range assigned {
			if err := m.store.SetOptionOrd(ctx, tx, questionID, id, ord); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceAll destructively replaces a question's entire option set with the
// submitted ordered list, assigning ord = index. The coarse-grained
// counterpart to the incremental operations: the client submits its full
// edited list instead of a diff.
func (m *OptionManager) ReplaceAll(ctx context.Context, questionID string, items []models.OptionInput) ([]models.Option, error) {
	selectedCount := 0
	for _, item := range items {
		if item.Selected {
			selectedCount++
		}
	}
	if selectedCount > 1 {
		return nil, fmt.Errorf("%w: at most one option may be selected", models.ErrValidation)
	}

	replacement := make([]models.Option, len(items))
	for i, item := range items {
		id, err := auth.GenerateID(8)
		if err != nil {
			return nil, fmt.Errorf("failed to generate option id: %w", err)
		}
		replacement[i] = models.Option{
			ID:         id,
			QuestionID: questionID,
			Ord:        i,
			Text:       item.Text,
			Selected:   item.Selected,
		}
	}

	err := m.store.WithTx(ctx, "replace options", func(tx *sql.Tx) error {
		if err := m.requireQuestion(ctx, tx, questionID); err != nil {
			return err
		}
		if err := m.store.DeleteQuestionOptions(ctx, tx, questionID); err != nil {
			return err
		}
		for _, opt := range replacement {
			if err := m.store.InsertOption(ctx, tx, opt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return replacement, nil
}

func (m *OptionManager) requireQuestion(ctx context.Context, tx *sql.Tx, questionID string) error {
	exists, err := m.store.QuestionExists(ctx, tx, questionID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrNotFound
	}
	return nil
}
