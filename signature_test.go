package validcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSignature_IndexMapping(t *testing.T) {
	sig, err := analyzeSignature([]Parameter{
		{Name: "a", Kind: PositionalOnly},
		{Name: "b", Kind: PositionalOrKeyword},
		{Name: "c", Kind: KeywordOnly, Default: 1, HasDefault: true},
	})
	require.NoError(t, err)
	assert.Equal(t, map[int]string{0: "a", 1: "b"}, sig.indexToName)
	assert.Contains(t, sig.positionalOnly, "a")
	assert.NotContains(t, sig.positionalOnly, "b")
}

func TestAnalyzeSignature_CarrierFieldsAlwaysExist(t *testing.T) {
	sig, err := analyzeSignature([]Parameter{
		{Name: "a", Kind: PositionalOrKeyword},
	})
	require.NoError(t, err)
	assert.False(t, sig.varPosDeclared)
	assert.False(t, sig.varKwDeclared)
	assert.Equal(t, "args", sig.varPosName)
	assert.Equal(t, "kwargs", sig.varKwName)

	names := make([]string, 0, len(sig.fields))
	for _, f := range sig.fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"a", "args", "kwargs"}, names)

	// Carriers are optional fields with empty defaults.
	assert.Equal(t, []any{}, sig.fields[1].Default)
	assert.Equal(t, map[string]any{}, sig.fields[2].Default)
	assert.False(t, sig.fields[1].Required)
	assert.False(t, sig.fields[2].Required)
}

func TestAnalyzeSignature_CarrierPrecedesKeywordOnly(t *testing.T) {
	sig, err := analyzeSignature([]Parameter{
		{Name: "a", Kind: PositionalOrKeyword},
		{Name: "m", Kind: KeywordOnly},
	})
	require.NoError(t, err)

	names := make([]string, 0, len(sig.fields))
	for _, f := range sig.fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"a", "args", "m", "kwargs"}, names)
}

func TestAnalyzeSignature_DeclaredVariadicsAreCarriers(t *testing.T) {
	sig, err := analyzeSignature([]Parameter{
		{Name: "a", Kind: PositionalOrKeyword},
		{Name: "rest", Kind: VarPositional, Schema: map[string]any{"type": "integer"}},
		{Name: "extra", Kind: VarKeyword},
	})
	require.NoError(t, err)
	assert.True(t, sig.varPosDeclared)
	assert.Equal(t, "rest", sig.varPosName)
	assert.True(t, sig.varKwDeclared)
	assert.Equal(t, "extra", sig.varKwName)

	// Declared var-positional field becomes a typed sequence.
	assert.Equal(t, map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "integer"},
	}, sig.fields[1].Schema)
	// Untyped var-keyword carrier stays untyped.
	assert.Nil(t, sig.fields[2].Schema)
	// No synthetic carriers appended on top of declared ones.
	assert.Len(t, sig.fields, 3)
}

func TestAnalyzeSignature_OverflowAliasing(t *testing.T) {
	tests := []struct {
		name       string
		params     []Parameter
		varPosName string
		varKwName  string
	}{
		{
			name:       "plain field named args",
			params:     []Parameter{{Name: "args", Kind: PositionalOrKeyword}},
			varPosName: "var__args",
			varKwName:  "kwargs",
		},
		{
			name:       "plain field named kwargs",
			params:     []Parameter{{Name: "kwargs", Kind: PositionalOrKeyword}},
			varPosName: "args",
			varKwName:  "var__kwargs",
		},
		{
			name: "both labels taken",
			params: []Parameter{
				{Name: "args", Kind: PositionalOrKeyword},
				{Name: "kwargs", Kind: PositionalOrKeyword},
			},
			varPosName: "var__args",
			varKwName:  "var__kwargs",
		},
		{
			name: "declared variadic named args is not aliased",
			params: []Parameter{
				{Name: "args", Kind: VarPositional},
			},
			varPosName: "args",
			varKwName:  "kwargs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := analyzeSignature(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.varPosName, sig.varPosName)
			assert.Equal(t, tt.varKwName, sig.varKwName)
			assert.Contains(t, sig.fieldNames, sig.varPosName)
			assert.Contains(t, sig.fieldNames, sig.varKwName)
		})
	}
}

func TestAnalyzeSignature_SetupErrors(t *testing.T) {
	tests := []struct {
		name   string
		params []Parameter
	}{
		{"reserved var__args", []Parameter{{Name: "var__args", Kind: PositionalOrKeyword}}},
		{"reserved var__kwargs", []Parameter{{Name: "var__kwargs", Kind: KeywordOnly}}},
		{"empty name", []Parameter{{Name: "", Kind: PositionalOrKeyword}}},
		{"duplicate name", []Parameter{
			{Name: "a", Kind: PositionalOrKeyword},
			{Name: "a", Kind: KeywordOnly},
		}},
		{"unknown kind", []Parameter{{Name: "a", Kind: ParameterKind(42)}}},
		{"positional-only after positional-or-keyword", []Parameter{
			{Name: "a", Kind: PositionalOrKeyword},
			{Name: "b", Kind: PositionalOnly},
		}},
		{"positional after keyword-only", []Parameter{
			{Name: "a", Kind: KeywordOnly},
			{Name: "b", Kind: PositionalOrKeyword},
		}},
		{"second var-positional", []Parameter{
			{Name: "rest", Kind: VarPositional},
			{Name: "more", Kind: VarPositional},
		}},
		{"second var-keyword", []Parameter{
			{Name: "kw", Kind: VarKeyword},
			{Name: "more", Kind: VarKeyword},
		}},
		{"anything after var-keyword", []Parameter{
			{Name: "kw", Kind: VarKeyword},
			{Name: "late", Kind: KeywordOnly},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzeSignature(tt.params)
			require.Error(t, err)
			assert.True(t, IsSetupError(err))
		})
	}
}

func TestAnalyzeSignature_Deterministic(t *testing.T) {
	params := []Parameter{
		{Name: "a", Kind: PositionalOnly},
		{Name: "b", Kind: PositionalOrKeyword, Default: 2, HasDefault: true},
		{Name: "rest", Kind: VarPositional},
		{Name: "c", Kind: KeywordOnly},
		{Name: "kw", Kind: VarKeyword},
	}
	first, err := analyzeSignature(params)
	require.NoError(t, err)
	second, err := analyzeSignature(params)
	require.NoError(t, err)
	assert.Equal(t, first.fields, second.fields)
	assert.Equal(t, first.indexToName, second.indexToName)
	assert.Equal(t, first.positionalOnly, second.positionalOnly)
	assert.Equal(t, first.varPosName, second.varPosName)
	assert.Equal(t, first.varKwName, second.varKwName)
}

func TestParameterKind_String(t *testing.T) {
	tests := []struct {
		kind ParameterKind
		want string
	}{
		{PositionalOnly, "positional-only"},
		{PositionalOrKeyword, "positional-or-keyword"},
		{KeywordOnly, "keyword-only"},
		{VarPositional, "var-positional"},
		{VarKeyword, "var-keyword"},
		{ParameterKind(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}
