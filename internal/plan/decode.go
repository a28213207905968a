// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package plan

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/xrdcollect/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// hclPlanFile is the top-level structure of a plan file.
type hclPlanFile struct {
	Variables []*hclVariable `hcl:"variable,block"`
	Setups    []*hclItem     `hcl:"setup,block"`
	Points    []*hclItem     `hcl:"point,block"`
}

type hclVariable struct {
	Name        string         `hcl:"name,label"`
	Default     hcl.Expression `hcl:"default"`
	Description string         `hcl:"description,optional"`
}

// hclItem defers body decoding until all variables are known.
type hclItem struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// hclSetupBody uses pointers so unset attributes keep their defaults.
type hclSetupBody struct {
	DetectorPosX *float64 `hcl:"detector_pos_x,optional"`
	DetectorPosZ *float64 `hcl:"detector_pos_z,optional"`
	OmegaStart   *float64 `hcl:"omega_start,optional"`
	OmegaEnd     *float64 `hcl:"omega_end,optional"`
	OmegaStep    *float64 `hcl:"omega_step,optional"`
	TimePerStep  *float64 `hcl:"time_per_step,optional"`
}

type hclPointBody struct {
	X        float64  `hcl:"x,optional"`
	Y        float64  `hcl:"y,optional"`
	Z        float64  `hcl:"z,optional"`
	StepScan []string `hcl:"step_scan,optional"`
	WideScan []string `hcl:"wide_scan,optional"`
}

type decodedFile struct {
	path    string
	content hclPlanFile
}

func decodeFiles(files []parsedFile) (*Plan, error) {
	decoded := make([]decodedFile, 0, len(files))
	for _, f := range files {
		var content hclPlanFile
		if diags := gohcl.DecodeBody(f.file.Body, nil, &content); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode plan file %s: %w", f.path, diags)
		}
		decoded = append(decoded, decodedFile{path: f.path, content: content})
	}

	evalCtx, err := buildEvalContext(decoded)
	if err != nil {
		return nil, err
	}

	p := &Plan{}
	for _, f := range decoded {
		for _, item := range f.content.Setups {
			spec, diags := decodeSetup(item, f.path, evalCtx)
			if diags.HasErrors() {
				return nil, fmt.Errorf("error decoding setup %q in %s: %w", item.Name, f.path, diags)
			}
			p.Setups = append(p.Setups, spec)
		}
	}
	for _, f := range decoded {
		for _, item := range f.content.Points {
			spec, diags := decodePoint(item, f.path, evalCtx)
			if diags.HasErrors() {
				return nil, fmt.Errorf("error decoding point %q in %s: %w", item.Name, f.path, diags)
			}
			p.Points = append(p.Points, spec)
		}
	}
	return p, nil
}

// buildEvalContext collects every variable default into the `var` object.
func buildEvalContext(files []decodedFile) (*hcl.EvalContext, error) {
	vars := make(map[string]cty.Value)
	declaredIn := make(map[string]string)

	for _, f := range files {
		for _, v := range f.content.Variables {
			if prev, exists := declaredIn[v.Name]; exists {
				return nil, fmt.Errorf("variable %q declared in %s is already declared in %s", v.Name, f.path, prev)
			}
			val, diags := v.Default.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid default for variable %q in %s: %w", v.Name, f.path, diags)
			}
			vars[v.Name] = val
			declaredIn[v.Name] = f.path
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(vars),
		},
	}, nil
}

func decodeSetup(item *hclItem, path string, evalCtx *hcl.EvalContext) (*SetupSpec, hcl.Diagnostics) {
	var body hclSetupBody
	if diags := gohcl.DecodeBody(item.Body, evalCtx, &body); diags.HasErrors() {
		return nil, diags
	}

	params := model.DefaultSetupParams()
	setIfPresent(&params.DetectorPosX, body.DetectorPosX)
	setIfPresent(&params.DetectorPosZ, body.DetectorPosZ)
	setIfPresent(&params.OmegaStart, body.OmegaStart)
	setIfPresent(&params.OmegaEnd, body.OmegaEnd)
	setIfPresent(&params.OmegaStep, body.OmegaStep)
	setIfPresent(&params.TimePerStep, body.TimePerStep)

	return &SetupSpec{
		Name:          item.Name,
		Params:        params,
		FSInformation: NewFSInfo(path),
	}, nil
}

func decodePoint(item *hclItem, path string, evalCtx *hcl.EvalContext) (*PointSpec, hcl.Diagnostics) {
	var body hclPointBody
	if diags := gohcl.DecodeBody(item.Body, evalCtx, &body); diags.HasErrors() {
		return nil, diags
	}

	return &PointSpec{
		Name:          item.Name,
		X:             body.X,
		Y:             body.Y,
		Z:             body.Z,
		StepScan:      body.StepScan,
		WideScan:      body.WideScan,
		FSInformation: NewFSInfo(path),
	}, nil
}

func setIfPresent(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
