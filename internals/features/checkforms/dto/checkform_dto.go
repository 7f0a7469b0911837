package dto

/* ================================ REQUEST ================================ */

type FolderRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type TemplateRequest struct {
	Title             string `json:"title" validate:"required,max=100"`
	Instructions      string `json:"instructions" validate:"omitempty"`
	HasGeneralComment *bool  `json:"has_general_comment" validate:"omitempty"`
	// Raw items array, stored as-is after a JSON validity check.
	Items []map[string]any `json:"items" validate:"omitempty"`
}

type ShareRequest struct {
	TemplateID string `json:"template_id" validate:"required,uuid"`
	Recipient  string `json:"recipient" validate:"required,email"`
}

type FileSubmissionRequest struct {
	FolderID string `json:"folder_id" validate:"required,uuid"`
}

// AnswerInput carries the recipient's answer for the item at the same index
// in the template. Which fields apply depends on the item type.
type AnswerInput struct {
	Checked   bool     `json:"checked"`
	Note      string   `json:"note"`
	Comment   string   `json:"comment"`
	RowInputs []string `json:"row_inputs"`
}

type SubmitRequest struct {
	SubmittedByName string        `json:"submitted_by_name" validate:"required,max=100"`
	GeneralComment  string        `json:"general_comment" validate:"omitempty"`
	Answers         []AnswerInput `json:"answers" validate:"omitempty"`
}
