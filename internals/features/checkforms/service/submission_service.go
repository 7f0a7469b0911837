package service

import (
	"encoding/json"
	"fmt"

	"bperformance_backend/internals/features/checkforms/dto"
)

// BuildAnswers shapes the recipient's raw inputs against the template's item
// list. Answers are matched by index; items beyond the supplied answers get a
// zero-value answer so the stored content always mirrors the template.
func BuildAnswers(itemsJSON []byte, req *dto.SubmitRequest) ([]byte, error) {
	var items []map[string]any
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &items); err != nil {
			return nil, fmt.Errorf("template items are not a valid JSON array: %w", err)
		}
	}

	answers := make([]map[string]any, 0, len(items))
	for idx, item := range items {
		var in dto.AnswerInput
		if idx < len(req.Answers) {
			in = req.Answers[idx]
		}

		label, _ := item["label"].(string)
		itemType, _ := item["type"].(string)
		if itemType == "" {
			itemType = "simple"
		}

		switch itemType {
		case "check_note":
			answers = append(answers, map[string]any{
				"label":   label,
				"type":    "check_note",
				"checked": in.Checked,
				"note":    in.Note,
			})
		case "fixed_table":
			rows, _ := item["rows"].([]any)
			rowInputs := make([]string, len(rows))
			for r := range rows {
				if r < len(in.RowInputs) {
					rowInputs[r] = in.RowInputs[r]
				}
			}
			answers = append(answers, map[string]any{
				"label":      label,
				"type":       "fixed_table",
				"row_inputs": rowInputs,
			})
		default:
			answers = append(answers, map[string]any{
				"label":   label,
				"type":    "simple",
				"checked": in.Checked,
				"comment": in.Comment,
			})
		}
	}

	content := map[string]any{
		"answers":         answers,
		"general_comment": req.GeneralComment,
	}
	return json.Marshal(content)
}
