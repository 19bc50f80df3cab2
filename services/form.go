package services

import (
	"sort"
	"strconv"
	"strings"

	"rp-community-api/models"
)

// Question field types. Unknown tags fall back to FieldText on render,
// so an admin typo degrades to a plain text input instead of breaking
// the form.
const (
	FieldText           = "text"
	FieldTextarea       = "textarea"
	FieldNumber         = "number"
	FieldSelect         = "select"
	FieldDate           = "date"
	FieldCheckbox       = "checkbox"
	FieldCheckboxSingle = "checkbox_single"
)

// NormalizeFieldType maps a stored field_type tag to a known tag,
// defaulting anything unrecognized to text.
func NormalizeFieldType(tag string) string {
	switch tag {
	case FieldText, FieldTextarea, FieldNumber, FieldSelect, FieldDate, FieldCheckbox, FieldCheckboxSingle:
		return tag
	}
	return FieldText
}

// SplitOptions parses the comma-separated options column for select and
// checkbox questions. Blank entries are dropped.
func SplitOptions(options string) []string {
	parts := strings.Split(options, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// FormQuestion is one question as served to the public form renderer.
type FormQuestion struct {
	QuestionID int      `json:"question_id"`
	Label      string   `json:"label"`
	FieldType  string   `json:"field_type"`
	Options    []string `json:"options,omitempty"`
	IsRequired bool     `json:"is_required"`
}

// FormSection groups questions under one section heading.
type FormSection struct {
	Title     string         `json:"title"`
	Questions []FormQuestion `json:"questions"`
}

// BuildForm sorts questions by (section_order, order_num) and groups
// them by section title in first-seen order.
func BuildForm(questions []models.Question) []FormSection {
	sorted := make([]models.Question, len(questions))
	copy(sorted, questions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SectionOrder != sorted[j].SectionOrder {
			return sorted[i].SectionOrder < sorted[j].SectionOrder
		}
		return sorted[i].OrderNum < sorted[j].OrderNum
	})

	sections := make([]FormSection, 0)
	index := make(map[string]int)
	for _, q := range sorted {
		fieldType := NormalizeFieldType(q.FieldType)

		var options []string
		if (fieldType == FieldSelect || fieldType == FieldCheckbox) && q.Options != nil {
			options = SplitOptions(*q.Options)
		}

		fq := FormQuestion{
			QuestionID: q.QuestionID,
			Label:      q.Label,
			FieldType:  fieldType,
			Options:    options,
			IsRequired: q.IsRequired,
		}

		pos, ok := index[q.SectionTitle]
		if !ok {
			index[q.SectionTitle] = len(sections)
			sections = append(sections, FormSection{Title: q.SectionTitle, Questions: []FormQuestion{fq}})
			continue
		}
		sections[pos].Questions = append(sections[pos].Questions, fq)
	}
	return sections
}

// NormalizeAnswers coerces checkbox_single answers to exactly "Yes" or
// "No". Every other field type is stored free-form, including answers
// keyed by unknown question ids; required-field checks live in the
// client, matching the form renderer.
func NormalizeAnswers(questions []models.Question, answers map[string]string) map[string]string {
	single := make(map[string]bool, len(questions))
	for _, q := range questions {
		if NormalizeFieldType(q.FieldType) == FieldCheckboxSingle {
			single[strconv.Itoa(q.QuestionID)] = true
		}
	}

	out := make(map[string]string, len(answers))
	for id, answer := range answers {
		if single[id] && answer != "Yes" {
			answer = "No"
		}
		out[id] = answer
	}
	return out
}
