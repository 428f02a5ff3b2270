// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hclsource

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/slangc/internal/execid"
	"github.com/specialistvlad/slangc/internal/exprdeps"
	"github.com/specialistvlad/slangc/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// decoder translates the decoded blocks of one file into the model.
type decoder struct {
	src       []byte
	filename  string
	namespace string
	imports   map[string]string
}

func (d *decoder) operation(h model.Header, b *operationBlock) (*model.Operation, error) {
	h.Name = b.Name
	if err := d.header(&h, b.Inputs, b.Outputs, b.Results); err != nil {
		return nil, err
	}

	var action model.Action
	switch {
	case b.Script != nil && b.Handler != nil:
		return nil, fmt.Errorf("operation %q: script and handler are mutually exclusive", b.Name)
	case b.Script != nil:
		action = model.Action{Kind: model.ActionScript, Script: *b.Script}
	case b.Handler != nil:
		action = model.Action{Kind: model.ActionNative, Handler: *b.Handler}
	default:
		return nil, fmt.Errorf("operation %q: one of script or handler is required", b.Name)
	}
	return model.NewOperation(h, action)
}

func (d *decoder) flow(h model.Header, b *flowBlock) (*model.Flow, error) {
	h.Name = b.Name
	if err := d.header(&h, b.Inputs, b.Outputs, b.Results); err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(b.Tasks))
	for _, tb := range b.Tasks {
		task, err := d.task(tb)
		if err != nil {
			return nil, fmt.Errorf("flow %q: %w", b.Name, err)
		}
		tasks = append(tasks, task)
	}
	return model.NewFlow(h, tasks)
}

func (d *decoder) header(h *model.Header, inputs []*inputBlock, outputs, results []*bindingBlock) error {
	for _, ib := range inputs {
		v, err := d.value(ib.Default)
		if err != nil {
			return fmt.Errorf("input %q: %w", ib.Name, err)
		}
		required := true
		if ib.Required != nil {
			required = *ib.Required
		}
		h.Inputs = append(h.Inputs, model.Input{
			Binding:   model.Binding{Name: ib.Name, Value: v},
			Required:  required,
			Private:   ib.Private,
			Sensitive: ib.Sensitive,
		})
	}
	for _, ob := range outputs {
		b, err := d.binding(ob)
		if err != nil {
			return fmt.Errorf("output %q: %w", ob.Name, err)
		}
		h.Outputs = append(h.Outputs, model.Output{Binding: b})
	}
	for _, rb := range results {
		b, err := d.binding(rb)
		if err != nil {
			return fmt.Errorf("result %q: %w", rb.Name, err)
		}
		h.Results = append(h.Results, model.Result{Binding: b})
	}
	return nil
}

func (d *decoder) binding(b *bindingBlock) (model.Binding, error) {
	v, err := d.value(b.Value)
	if err != nil {
		return model.Binding{}, err
	}
	return model.Binding{Name: b.Name, Value: v}, nil
}

func (d *decoder) task(b *taskBlock) (model.Task, error) {
	ref, err := d.expandRef(b.Do)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %q: %w", b.Name, err)
	}
	task := model.Task{Name: b.Name, Ref: ref}

	for _, ab := range b.Arguments {
		arg, err := d.binding(ab)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %q: argument %q: %w", b.Name, ab.Name, err)
		}
		task.Arguments = append(task.Arguments, model.Argument{Binding: arg})
	}

	if task.Loop, err = d.loop(b); err != nil {
		return model.Task{}, fmt.Errorf("task %q: %w", b.Name, err)
	}

	if b.Navigate != nil {
		if task.Navigation, err = d.navigation(b.Navigate.Body); err != nil {
			return model.Task{}, fmt.Errorf("task %q: %w", b.Name, err)
		}
	}
	return task, nil
}

func (d *decoder) loop(b *taskBlock) (model.LoopStatement, error) {
	switch {
	case b.Loop != nil && b.ParallelLoop != nil:
		return nil, fmt.Errorf("loop and parallel_loop are mutually exclusive")
	case b.ParallelLoop != nil:
		lb := b.ParallelLoop
		if lb.Var == "" || lb.Key != "" || lb.Value != "" {
			return nil, diagError("Invalid parallel_loop", "A parallel_loop sets var only.", lb.Items.Range())
		}
		in, err := d.value(lb.Items)
		if err != nil {
			return nil, err
		}
		return model.ParallelLoop{VarName: lb.Var, Expression: in}, nil
	case b.Loop != nil:
		lb := b.Loop
		in, err := d.value(lb.Items)
		if err != nil {
			return nil, err
		}
		switch {
		case lb.Var != "" && lb.Key == "" && lb.Value == "":
			return model.ListForLoop{VarName: lb.Var, Expression: in}, nil
		case lb.Var == "" && lb.Key != "" && lb.Value != "":
			return model.MapForLoop{KeyName: lb.Key, ValueName: lb.Value, Expression: in}, nil
		default:
			return nil, diagError("Invalid loop", "A loop sets either var, or both key and value.", lb.Items.Range())
		}
	default:
		return nil, nil
	}
}

// navigation reads `RESULT = target` attributes in declaration order. A
// target is a bare name or a string.
func (d *decoder) navigation(body hcl.Body) ([]model.NavigationRule, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	sorted := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		sorted = append(sorted, attr)
	}
	slices.SortFunc(sorted, func(a, b *hcl.Attribute) int {
		return a.Range.Start.Byte - b.Range.Start.Byte
	})

	rules := make([]model.NavigationRule, 0, len(sorted))
	for _, attr := range sorted {
		target := hcl.ExprAsKeyword(attr.Expr)
		if target == "" {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() || val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
				return nil, diagError("Invalid navigation target", "A navigation target must be a task or result name.", attr.Expr.Range())
			}
			target = val.AsString()
		}
		rules = append(rules, model.NavigationRule{Result: attr.Name, Target: target})
	}
	return rules, nil
}

// expandRef turns a `do` reference into a fully-qualified id. The first
// segment may be an import alias; a bare name is relative to the namespace of
// the file.
func (d *decoder) expandRef(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("do must not be empty")
	}

	head, rest, dotted := strings.Cut(ref, ".")
	if target, ok := d.imports[head]; ok {
		if dotted {
			ref = target + "." + rest
		} else {
			ref = target
		}
	} else if !dotted {
		ref = execid.Join(d.namespace, ref)
	}

	if _, err := execid.Parse(ref); err != nil {
		return "", fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	return ref, nil
}

// value turns an attribute expression into a Value. An absent attribute or
// a null constant yields the empty value.
func (d *decoder) value(expr hcl.Expression) (model.Value, error) {
	if expr == nil {
		return model.Value{}, nil
	}

	text := string(expr.Range().SliceBytes(d.src))
	deps := exprdeps.Analyze(expr)
	if len(deps.References) == 0 && len(deps.Functions) == 0 {
		val, diags := expr.Value(nil)
		if diags.HasErrors() {
			return model.Value{}, diags
		}
		if val.IsNull() {
			return model.Value{}, nil
		}
		return model.LiteralValue(val, text), nil
	}
	return model.ExpressionValue(expr, text), nil
}
