// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// LoopKind names a loop variant.
type LoopKind string

const (
	LoopListFor  LoopKind = "list_for"
	LoopMapFor   LoopKind = "map_for"
	LoopParallel LoopKind = "parallel"
)

// LoopStatement repeats one task over a collection at run time. The compiler
// only records it; iteration is the run-time's concern.
type LoopStatement interface {
	Kind() LoopKind
	// Collection returns the expression producing the iterated collection.
	Collection() Value
	isLoop()
}

// ListForLoop invokes the task once per element, in order.
type ListForLoop struct {
	VarName    string
	Expression Value
}

func (l ListForLoop) Kind() LoopKind    { return LoopListFor }
func (l ListForLoop) Collection() Value { return l.Expression }
func (ListForLoop) isLoop()             {}

// MapForLoop invokes the task once per key/value pair, in order.
type MapForLoop struct {
	KeyName    string
	ValueName  string
	Expression Value
}

func (l MapForLoop) Kind() LoopKind    { return LoopMapFor }
func (l MapForLoop) Collection() Value { return l.Expression }
func (MapForLoop) isLoop()             {}

// ParallelLoop fans the task out over every element concurrently and joins
// before navigation continues.
type ParallelLoop struct {
	VarName    string
	Expression Value
}

func (l ParallelLoop) Kind() LoopKind    { return LoopParallel }
func (l ParallelLoop) Collection() Value { return l.Expression }
func (ParallelLoop) isLoop()             {}
