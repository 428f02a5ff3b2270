// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hclsource

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top level of a source file.
type fileRoot struct {
	Namespace  string            `hcl:"namespace,optional"`
	Imports    map[string]string `hcl:"imports,optional"`
	Operations []*operationBlock `hcl:"operation,block"`
	Flows      []*flowBlock      `hcl:"flow,block"`
}

type operationBlock struct {
	Name    string          `hcl:"name,label"`
	Inputs  []*inputBlock   `hcl:"input,block"`
	Outputs []*bindingBlock `hcl:"output,block"`
	Results []*bindingBlock `hcl:"result,block"`
	Script  *string         `hcl:"script,optional"`
	Handler *string         `hcl:"handler,optional"`
}

type flowBlock struct {
	Name    string          `hcl:"name,label"`
	Inputs  []*inputBlock   `hcl:"input,block"`
	Outputs []*bindingBlock `hcl:"output,block"`
	Results []*bindingBlock `hcl:"result,block"`
	Tasks   []*taskBlock    `hcl:"task,block"`
}

type inputBlock struct {
	Name      string         `hcl:"name,label"`
	Default   hcl.Expression `hcl:"default,optional"`
	Required  *bool          `hcl:"required,optional"`
	Private   bool           `hcl:"private,optional"`
	Sensitive bool           `hcl:"sensitive,optional"`
}

// bindingBlock is an output, a result or a task argument.
type bindingBlock struct {
	Name  string         `hcl:"name,label"`
	Value hcl.Expression `hcl:"value,optional"`
}

type taskBlock struct {
	Name         string          `hcl:"name,label"`
	Do           string          `hcl:"do"`
	Arguments    []*bindingBlock `hcl:"argument,block"`
	Loop         *loopBlock      `hcl:"loop,block"`
	ParallelLoop *loopBlock      `hcl:"parallel_loop,block"`
	Navigate     *navigateBlock  `hcl:"navigate,block"`
}

// loopBlock sets var for a list loop, or key and value for a map loop.
type loopBlock struct {
	Var   string         `hcl:"var,optional"`
	Key   string         `hcl:"key,optional"`
	Value string         `hcl:"value,optional"`
	Items hcl.Expression `hcl:"items"`
}

// navigateBlock maps results to targets, e.g. `SUCCESS = next_task`.
type navigateBlock struct {
	Body hcl.Body `hcl:",remain"`
}
