// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/lib/pq"

	"github.com/danielhkuo/qform/models"
	"github.com/danielhkuo/qform/questions"
	"github.com/danielhkuo/qform/store"
	"github.com/danielhkuo/qform/testutil"
)

func newOptionHandler(conn *sql.DB) *OptionHandler {
	return NewOptionHandler(questions.NewOptionManager(store.New(conn)))
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateOption(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := newOptionHandler(conn)
	questionID := testutil.CreateTestQuestion(t, conn, 0, "Question")

	tests := []struct {
		name       string
		questionID string
		wantStatus int
	}{
		{"valid create", questionID, http.StatusCreated},
		{"missing question", "nonexistent", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/questions/"+tt.questionID+"/options", nil, nil)
			req.SetPathValue("id", tt.questionID)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			if tt.wantStatus == http.StatusCreated {
				var opt models.Option
				testutil.AssertJSON(t, w, &opt)
				if opt.QuestionID != questionID {
					t.Errorf("option bound to %q, want %q", opt.QuestionID, questionID)
				}
				if opt.Ord != 0 {
					t.Errorf("first option ord = %d, want 0", opt.Ord)
				}
				if opt.Text != models.DefaultOptionText {
					t.Errorf("expected placeholder text, got %q", opt.Text)
				}
				if opt.Selected {
					t.Error("new option must not be selected")
				}
			}
		})
	}
}

func TestEditOption(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := newOptionHandler(conn)
	questionID := testutil.CreateTestQuestion(t, conn, 0, "Question")
	optionID := testutil.AddTestOption(t, conn, questionID, 0, "Option", false)

	tests := []struct {
		name       string
		questionID string
		optionID   string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "edit text",
			questionID: questionID,
			optionID:   optionID,
			body:       models.EditOptionRequest{Text: strPtr("Green")},
			wantStatus: http.StatusOK,
		},
		{
			name:       "select",
			questionID: questionID,
			optionID:   optionID,
			body:       models.EditOptionRequest{Selected: boolPtr(true)},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty patch",
			questionID: questionID,
			optionID:   optionID,
			body:       models.EditOptionRequest{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing option",
			questionID: questionID,
			optionID:   "nonexistent",
			body:       models.EditOptionRequest{Text: strPtr("Green")},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrong question",
			questionID: "nonexistent",
			optionID:   optionID,
			body:       models.EditOptionRequest{Text: strPtr("Green")},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := "/questions/" + tt.questionID + "/options/" + tt.optionID
			req := testutil.MakeRequest("PATCH", path, tt.body, nil)
			req.SetPathValue("id", tt.questionID)
			req.SetPathValue("optionID", tt.optionID)
			w := httptest.NewRecorder()

			handler.Edit(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestDeleteOption(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := newOptionHandler(conn)
	questionID := testutil.CreateTestQuestion(t, conn, 0, "Question")
	o1 := testutil.AddTestOption(t, conn, questionID, 0, "A", false)
	o2 := testutil.AddTestOption(t, conn, questionID, 1, "B", false)

	req := testutil.MakeRequest("DELETE", "/questions/"+questionID+"/options/"+o1, nil, nil)
	req.SetPathValue("id", questionID)
	req.SetPathValue("optionID", o1)
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)

	// Survivor shifts down to fill the gap
	ords := testutil.OptionOrds(t, conn, questionID)
	if len(ords) != 1 || ords[o2] != 0 {
		t.Errorf("option ordinals after delete = %v, want {%s:0}", ords, o2)
	}
}

func TestReorderOptions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := newOptionHandler(conn)
	questionID := testutil.CreateTestQuestion(t, conn, 0, "Question")
	o1 := testutil.AddTestOption(t, conn, questionID, 0, "A", false)
	o2 := testutil.AddTestOption(t, conn, questionID, 1, "B", false)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "valid reorder",
			body:       models.ReorderOptionsRequest{OptionIDs: []string{o2, o1}},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "unknown id",
			body:       models.ReorderOptionsRequest{OptionIDs: []string{o1, "stranger"}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PUT", "/questions/"+questionID+"/options/reorder", tt.body, nil)
			req.SetPathValue("id", questionID)
			w := httptest.NewRecorder()

			handler.Reorder(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}

	ords := testutil.OptionOrds(t, conn, questionID)
	if ords[o2] != 0 || ords[o1] != 1 {
		t.Errorf("final option ordinals = %v, want {%s:0 %s:1}", ords, o2, o1)
	}
}

func TestReplaceOptions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := newOptionHandler(conn)
	questionID := testutil.CreateTestQuestion(t, conn, 0, "Question")
	old := testutil.AddTestOption(t, conn, questionID, 0, "Old", true)

	body := models.ReplaceOptionsRequest{
		Options: []models.OptionInput{
			{Text: "Red", Selected: false},
			{Text: "Blue", Selected: true},
			{Text: "Green", Selected: false},
		},
	}

	req := testutil.MakeRequest("PUT", "/questions/"+questionID+"/options", body, nil)
	req.SetPathValue("id", questionID)
	w := httptest.NewRecorder()

	handler.ReplaceAll(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var opts []models.Option
	testutil.AssertJSON(t, w, &opts)
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	for i, opt := range opts {
		if opt.Ord != i {
			t.Errorf("option %d ord = %d, want %d", i, opt.Ord, i)
		}
		if opt.ID == old {
			t.Error("replacement must not reuse the old option id")
		}
	}
	if !opts[1].Selected || opts[0].Selected || opts[2].Selected {
		t.Errorf("expected only the second option selected")
	}
}

func TestReplaceOptionsErrors(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := newOptionHandler(conn)
	questionID := testutil.CreateTestQuestion(t, conn, 0, "Question")

	tests := []struct {
		name       string
		questionID string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "two selected",
			questionID: questionID,
			body: models.ReplaceOptionsRequest{
				Options: []models.OptionInput{
					{Text: "A", Selected: true},
					{Text: "B", Selected: true},
				},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing question",
			questionID: "nonexistent",
			body:       models.ReplaceOptionsRequest{Options: []models.OptionInput{{Text: "A"}}},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PUT", "/questions/"+tt.questionID+"/options", tt.body, nil)
			req.SetPathValue("id", tt.questionID)
			w := httptest.NewRecorder()

			handler.ReplaceAll(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}
