// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package render

import (
	"github.com/specialistvlad/slangc/internal/metadata"
	"github.com/specialistvlad/slangc/internal/model"
	"github.com/specialistvlad/slangc/internal/plan"
)

// ArtifactDocument is the serialized form of a CompilationArtifact.
type ArtifactDocument struct {
	Version          string                         `json:"version" yaml:"version"`
	Plan             *plan.ExecutionPlan            `json:"plan" yaml:"plan"`
	Dependencies     map[string]*plan.ExecutionPlan `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Inputs           []plan.Binding                 `json:"inputs" yaml:"inputs"`
	SystemProperties []string                       `json:"systemProperties" yaml:"systemProperties"`
}

// Artifact builds the document of a. Version is the action data vocabulary
// version the plans were written with.
func Artifact(a *plan.CompilationArtifact) ArtifactDocument {
	properties := a.SystemProperties
	if properties == nil {
		properties = []string{}
	}
	return ArtifactDocument{
		Version:          plan.ActionDataVersion,
		Plan:             a.Plan,
		Dependencies:     a.Dependencies,
		Inputs:           plan.NewInputBindings(a.Inputs),
		SystemProperties: properties,
	}
}

// BindingDocument describes one binding. Sensitive values are masked.
type BindingDocument struct {
	Name        string `json:"name" yaml:"name"`
	Value       string `json:"value,omitempty" yaml:"value,omitempty"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Private     bool   `json:"private,omitempty" yaml:"private,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DescriptionDocument describes an executable without compiling it.
type DescriptionDocument struct {
	ID               string             `json:"id" yaml:"id"`
	Type             model.Type         `json:"type" yaml:"type"`
	Source           string             `json:"source,omitempty" yaml:"source,omitempty"`
	Description      string             `json:"description,omitempty" yaml:"description,omitempty"`
	Prerequisites    string             `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	Inputs           []BindingDocument  `json:"inputs" yaml:"inputs"`
	Outputs          []BindingDocument  `json:"outputs" yaml:"outputs"`
	Results          []BindingDocument  `json:"results" yaml:"results"`
	Dependencies     []string           `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	SystemProperties []string           `json:"systemProperties,omitempty" yaml:"systemProperties,omitempty"`
	Tags             *metadata.Metadata `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Describe builds the document of exe. Binding descriptions come from the
// matching metadata tags, e.g. `@input host`.
func Describe(exe model.Executable) DescriptionDocument {
	md := exe.Description()
	doc := DescriptionDocument{
		ID:               exe.ID(),
		Type:             exe.Type(),
		Description:      md.Description(),
		Prerequisites:    md.Prerequisites(),
		Inputs:           []BindingDocument{},
		Outputs:          []BindingDocument{},
		Results:          []BindingDocument{},
		Dependencies:     exe.ExecutableDependencies(),
		SystemProperties: exe.SystemPropertyDependencies(),
	}
	if src := exe.Source(); src != nil {
		doc.Source = src.FilePath
	}
	if md.Len() > 0 {
		doc.Tags = md
	}

	inputText := entryText(md, metadata.TagInput)
	for _, in := range exe.Inputs() {
		doc.Inputs = append(doc.Inputs, BindingDocument{
			Name:        in.Name,
			Value:       in.Value.String(),
			Required:    in.Required,
			Private:     in.Private,
			Description: inputText[in.Name],
		})
	}
	outputText := entryText(md, metadata.TagOutput)
	for _, o := range exe.Outputs() {
		doc.Outputs = append(doc.Outputs, BindingDocument{Name: o.Name, Value: o.Value.String(), Description: outputText[o.Name]})
	}
	resultText := entryText(md, metadata.TagResult)
	for _, r := range exe.Results() {
		doc.Results = append(doc.Results, BindingDocument{Name: r.Name, Value: r.Value.String(), Description: resultText[r.Name]})
	}
	return doc
}

func entryText(md *metadata.Metadata, tag metadata.Tag) map[string]string {
	out := make(map[string]string)
	for _, e := range md.Entries(tag) {
		out[e.Name] = e.Text
	}
	return out
}

// ValidationReport lists the structural errors of one executable.
type ValidationReport struct {
	ID     string   `json:"id" yaml:"id"`
	Valid  bool     `json:"valid" yaml:"valid"`
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Validation builds the report of exe from the errors found.
func Validation(exe model.Executable, errs []error) ValidationReport {
	report := ValidationReport{ID: exe.ID(), Valid: len(errs) == 0}
	for _, err := range errs {
		report.Errors = append(report.Errors, err.Error())
	}
	return report
}
