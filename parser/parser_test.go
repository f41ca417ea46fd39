/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"bennypowers.dev/tokensync/parser"
	"bennypowers.dev/tokensync/testutil"
)

func TestParseColorsFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, ".", "/project")

	result, err := parser.ParseColorsFile(mfs, "/project/figma-colors.json")
	require.NoError(t, err)

	groups := result.Primitives.All()
	require.Len(t, groups, 2, "broken entry skipped, spacing ignored")
	assert.Equal(t, "big-stone", groups[0].Family)
	assert.Equal(t, []string{"50", "100", "900"}, groups[0].ShadeKeys())
	assert.Equal(t, "#eef1f5", groups[0].Shades["50"])
	assert.Equal(t, "sunset", groups[1].Family)
	assert.Equal(t, "#ea580c", groups[1].Shades["600"])

	warnings := multierr.Errors(result.Warnings)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Error(), "color-broken-500")

	require.Len(t, result.Semantic, 4)
	assert.Equal(t, "bg-brand-hover", result.Semantic[0].Name, "source order kept")
	assert.True(t, result.Semantic[0].Hover)
	assert.Equal(t, "bg-brand", result.Semantic[1].Name)
	assert.Equal(t, "#3b82f6", result.Semantic[1].Light)
	assert.Equal(t, "text-secondary", result.Semantic[2].Name)
	assert.Equal(t, "border-danger", result.Semantic[3].Name)
	assert.Empty(t, result.Semantic[3].Dark)
}

func TestParseColors_LegacySections(t *testing.T) {
	data := testutil.LoadFixtureFile(t, "figma-colors-legacy.json")
	result, err := parser.ParseColors(data)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Primitives.Len())
	require.Len(t, result.Semantic, 1)
	assert.Equal(t, "bg-brand", result.Semantic[0].Name)
	assert.NoError(t, result.Warnings)
}

func TestParseColors_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "array", data: `[1, 2]`},
		{name: "truncated", data: `{"semantic-classes": {`},
		{name: "section not an object", data: `{"custom-primitive-classes": 3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseColors([]byte(tt.data))
			if !errors.Is(err, parser.ErrInvalidSource) {
				t.Errorf("ParseColors(%q) error = %v, want ErrInvalidSource", tt.data, err)
			}
		})
	}
}

func TestParseColorsFile_Missing(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, ".", "/project")
	_, err := parser.ParseColorsFile(mfs, "/project/nope.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseFontsFile_JSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, ".", "/project")
	fonts, err := parser.ParseFontsFile(mfs, "/project/figma-fonts.json")
	require.NoError(t, err)
	require.Len(t, fonts.Styles, 2)
	assert.Equal(t, 2, fonts.Len())
	assert.Equal(t, "font-heading-large", fonts.Styles[1].ClassName())
	assert.InDelta(t, -0.025, fonts.Styles[1].LetterSpacing.Value, 1e-12)
}

func TestParseFontsFile_CSS(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, ".", "/project")
	fonts, err := parser.ParseFontsFile(mfs, "/project/figma-fonts.css")
	require.NoError(t, err)

	require.Len(t, fonts.Variables, 2)
	assert.Equal(t, "display", fonts.Variables[1].Name)

	require.Len(t, fonts.Rules, 3)
	assert.Equal(t, "font-body", fonts.Rules[0].Class)
	assert.Equal(t, []string{"font-display", "font-bold", "text-5xl", "leading-tight"}, fonts.Rules[1].Utilities)
	assert.Equal(t, "font-caption", fonts.Rules[2].Class)
}

func TestDetectFontFormat(t *testing.T) {
	assert.Equal(t, parser.FontFormatJSON, parser.DetectFontFormat("fonts.json", nil))
	assert.Equal(t, parser.FontFormatCSS, parser.DetectFontFormat("fonts.CSS", nil))
	assert.Equal(t, parser.FontFormatJSON, parser.DetectFontFormat("fonts", []byte("  {\"textStyles\": []}")))
	assert.Equal(t, parser.FontFormatCSS, parser.DetectFontFormat("fonts", []byte("@theme {}")))
}

func TestParseFonts_Invalid(t *testing.T) {
	_, err := parser.ParseFontsJSON([]byte(`{"styles": []}`))
	assert.ErrorIs(t, err, parser.ErrInvalidSource)

	_, err = parser.ParseFontsJSON([]byte(`{"textStyles": {"name": "x"}}`))
	assert.ErrorIs(t, err, parser.ErrInvalidSource)

	_, err = parser.ParseFontsCSS([]byte(`.card { color: red; }`))
	assert.ErrorIs(t, err, parser.ErrInvalidSource)
}
