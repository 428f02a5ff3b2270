// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/slangc/internal/compiler"
	"github.com/specialistvlad/slangc/internal/hclsource"
	"github.com/specialistvlad/slangc/internal/model"
	"github.com/specialistvlad/slangc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const source = `
	#!!
	#! @description: Logs in.
	#! @input user: the account
	#! @input password: the secret
	#! @result SUCCESS: logged in
	#!!#
	namespace = "io.demo"

	operation "login" {
	  input "user" {}
	  input "password" {
	    default   = "hunter2"
	    sensitive = true
	  }
	  result "SUCCESS" {}
	  result "FAILURE" {}
	  script = "login(user, password)"
	}
`

func load(t *testing.T) model.Executable {
	t.Helper()
	exe, err := hclsource.NewLoader().LoadSource(context.Background(), "login.sl.hcl", []byte(testutil.Unindent(source)))
	require.NoError(t, err)
	return exe
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "YAML": FormatYAML, " yml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	require.ErrorContains(t, err, "unsupported format")
}

func TestDescribe(t *testing.T) {
	doc := Describe(load(t))

	want := DescriptionDocument{
		ID:          "io.demo.login",
		Type:        model.TypeOperation,
		Source:      "login.sl.hcl",
		Description: "Logs in.",
		Inputs: []BindingDocument{
			{Name: "user", Required: true, Description: "the account"},
			{Name: "password", Value: "********", Required: true, Description: "the secret"},
		},
		Outputs: []BindingDocument{},
		Results: []BindingDocument{
			{Name: "SUCCESS", Description: "logged in"},
			{Name: "FAILURE"},
		},
	}
	if diff := cmp.Diff(want, doc, cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Tags"
	}, cmp.Ignore())); diff != "" {
		t.Errorf("description mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, doc.Tags)
	assert.Equal(t, 4, doc.Tags.Len())
}

func TestArtifact_JSON(t *testing.T) {
	artifact, err := compiler.New().Compile(context.Background(), load(t), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, Artifact(artifact)))

	var decoded struct {
		Version string `json:"version"`
		Plan    struct {
			Name  string `json:"name"`
			Steps []struct {
				ID         int64          `json:"id"`
				Kind       string         `json:"kind"`
				ActionData map[string]any `json:"actionData"`
			} `json:"steps"`
		} `json:"plan"`
		Inputs           []map[string]any `json:"inputs"`
		SystemProperties []string         `json:"systemProperties"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "1", decoded.Version)
	assert.Equal(t, "login", decoded.Plan.Name)
	require.Len(t, decoded.Plan.Steps, 3)
	assert.Equal(t, "start", decoded.Plan.Steps[0].Kind)
	assert.Equal(t, float64(2), decoded.Plan.Steps[0].ActionData["nextStepId"])
	assert.Contains(t, decoded.Plan.Steps[1].ActionData, "actionPayload")
	assert.Contains(t, decoded.Plan.Steps[2].ActionData, "executableResults")
	require.Len(t, decoded.Inputs, 2)
	assert.Equal(t, true, decoded.Inputs[1]["sensitive"])
	assert.Empty(t, decoded.SystemProperties)
	assert.NotNil(t, decoded.SystemProperties)
}

func TestArtifact_YAMLKeepsActionDataOrder(t *testing.T) {
	artifact, err := compiler.New().Compile(context.Background(), load(t), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, Artifact(artifact)))

	var root yaml.Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &root))

	plan := mappingValue(t, root.Content[0], "plan")
	steps := mappingValue(t, plan, "steps")
	require.Len(t, steps.Content, 3)
	action := mappingValue(t, steps.Content[1], "actionData")

	var keys []string
	for i := 0; i < len(action.Content); i += 2 {
		keys = append(keys, action.Content[i].Value)
	}
	assert.Equal(t, []string{"actionPayload", "operationInputs", "nextStepId"}, keys)
}

func TestValidation(t *testing.T) {
	exe := load(t)
	ok := Validation(exe, nil)
	assert.True(t, ok.Valid)
	assert.Empty(t, ok.Errors)

	bad := Validation(exe, []error{errors.New("one"), errors.New("two")})
	assert.False(t, bad.Valid)
	assert.Equal(t, []string{"one", "two"}, bad.Errors)
}

func TestEncode_UnknownFormat(t *testing.T) {
	require.Error(t, Encode(&bytes.Buffer{}, Format("toml"), struct{}{}))
}

func mappingValue(t *testing.T, node *yaml.Node, key string) *yaml.Node {
	t.Helper()
	require.Equal(t, yaml.MappingNode, node.Kind)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	t.Fatalf("key %q not found", key)
	return nil
}
