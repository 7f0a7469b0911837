package service

import (
	"encoding/json"
	"testing"

	"bperformance_backend/internals/features/checkforms/dto"
)

func decodeContent(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var content map[string]any
	if err := json.Unmarshal(raw, &content); err != nil {
		t.Fatalf("content is not valid JSON: %v", err)
	}
	return content
}

func TestBuildAnswersShapesEachItemType(t *testing.T) {
	items := []byte(`[
		{"type": "check_note", "label": "Is Safe?", "required": true},
		{"type": "fixed_table", "label": "Stock", "columns": [{"name": "Item"}, {"name": "Count"}], "rows": [["Widget", ""], ["Gadget", ""]]},
		{"label": "Door locked"}
	]`)

	req := &dto.SubmitRequest{
		SubmittedByName: "R. Visitor",
		GeneralComment:  "all good",
		Answers: []dto.AnswerInput{
			{Checked: true, Note: "verified twice"},
			{RowInputs: []string{"10", "3"}},
			{Checked: false, Comment: "key missing"},
		},
	}

	raw, err := BuildAnswers(items, req)
	if err != nil {
		t.Fatalf("build answers: %v", err)
	}
	content := decodeContent(t, raw)

	if content["general_comment"] != "all good" {
		t.Errorf("general_comment = %v", content["general_comment"])
	}
	answers, ok := content["answers"].([]any)
	if !ok || len(answers) != 3 {
		t.Fatalf("answers = %v, want 3 entries", content["answers"])
	}

	first := answers[0].(map[string]any)
	if first["type"] != "check_note" || first["checked"] != true || first["note"] != "verified twice" {
		t.Errorf("check_note answer = %v", first)
	}

	second := answers[1].(map[string]any)
	rowInputs, _ := second["row_inputs"].([]any)
	if second["type"] != "fixed_table" || len(rowInputs) != 2 || rowInputs[0] != "10" {
		t.Errorf("fixed_table answer = %v", second)
	}

	// Untyped items fall back to the legacy simple check.
	third := answers[2].(map[string]any)
	if third["type"] != "simple" || third["comment"] != "key missing" {
		t.Errorf("simple answer = %v", third)
	}
}

func TestBuildAnswersPadsMissingInputs(t *testing.T) {
	items := []byte(`[
		{"type": "check_note", "label": "A"},
		{"type": "fixed_table", "label": "B", "rows": [["x", ""], ["y", ""], ["z", ""]]}
	]`)

	raw, err := BuildAnswers(items, &dto.SubmitRequest{SubmittedByName: "R. Visitor"})
	if err != nil {
		t.Fatalf("build answers: %v", err)
	}
	content := decodeContent(t, raw)
	answers := content["answers"].([]any)
	if len(answers) != 2 {
		t.Fatalf("answers = %d, want one per template item", len(answers))
	}
	table := answers[1].(map[string]any)
	rowInputs := table["row_inputs"].([]any)
	if len(rowInputs) != 3 {
		t.Errorf("row_inputs = %v, want padded to 3 rows", rowInputs)
	}
}

func TestBuildAnswersRejectsMalformedItems(t *testing.T) {
	if _, err := BuildAnswers([]byte(`{"not": "an array"}`), &dto.SubmitRequest{}); err == nil {
		t.Fatal("expected error for non-array items")
	}
}

func TestBuildAnswersEmptyTemplate(t *testing.T) {
	raw, err := BuildAnswers(nil, &dto.SubmitRequest{GeneralComment: "nothing to check"})
	if err != nil {
		t.Fatalf("build answers: %v", err)
	}
	content := decodeContent(t, raw)
	if answers := content["answers"].([]any); len(answers) != 0 {
		t.Errorf("answers = %v, want empty", answers)
	}
}
