/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package merge_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"bennypowers.dev/tokensync/merge"
	"bennypowers.dev/tokensync/palette"
	"bennypowers.dev/tokensync/stylesheet"
	"bennypowers.dev/tokensync/testutil"
	"bennypowers.dev/tokensync/token"
)

func brandEntries() []token.SemanticEntry {
	return []token.SemanticEntry{
		token.NewSemanticEntry("bg-brand-default", "#3b82f6", "#1d4ed8"),
		token.NewSemanticEntry("bg-brand-default-hover", "#2563eb", "#1e40af"),
	}
}

func resolve(t *testing.T, entries []token.SemanticEntry, groups ...[]*token.ColorGroup) []merge.Resolved {
	t.Helper()
	resolved, err := merge.Resolve(entries, palette.WithStandard(groups...))
	require.NoError(t, err)
	return resolved
}

func render(text string, in merge.Input) merge.Output {
	return merge.Render(stylesheet.Parse(text, stylesheet.Options{}), in, merge.Options{})
}

func TestRender_ColorScaffold(t *testing.T) {
	in := merge.Input{Colors: &merge.ColorInput{
		Primitives: token.NewColorGroups(),
		Semantic:   resolve(t, brandEntries()),
	}}
	out := render("", in)
	require.NoError(t, out.Warnings)
	assert.Equal(t, 2, out.ColorRules)

	assert.Equal(t, testutil.Golden(t, "colors-scaffold.css", out.CSS), out.CSS)

	assert.Contains(t, out.CSS, ".bg-brand {\n    @apply bg-blue-500;\n  }")
	assert.Contains(t, out.CSS, ".bg-brand:hover {\n    @apply bg-blue-600;\n  }")
}

func TestRender_FontScaffold(t *testing.T) {
	in := merge.Input{Fonts: &merge.FontInput{
		Rules: []token.FontRule{{
			Class:     "font-body",
			Utilities: []string{"font-sans", "font-normal", "text-sm", "leading-relaxed"},
		}},
		Variables: []token.FontVar{{Name: "sans", Value: `"Mukta", sans-serif`}},
	}}
	out := render("", in)
	assert.Equal(t, 1, out.FontRules)

	assert.Equal(t, testutil.Golden(t, "fonts-scaffold.css", out.CSS), out.CSS)
}

func TestRender_MissingStylesheet(t *testing.T) {
	out := render("", merge.Input{})
	assert.Contains(t, out.CSS, `@import "tailwindcss";`)
	assert.Contains(t, out.CSS, "--background: #ffffff;")
	assert.Contains(t, out.CSS, "--foreground: #171717;")
	assert.Contains(t, out.CSS, "@media (prefers-color-scheme: dark)")
	assert.Contains(t, out.CSS, "@layer utilities {\n}")
	assert.NotContains(t, out.CSS, "@theme {")
	assert.True(t, strings.HasSuffix(out.CSS, "}\n"))
}

func TestRender_Idempotent(t *testing.T) {
	brand := token.NewColorGroup("brand")
	brand.Set("500", "#3b82f6")
	brand.Set("600", "#2563eb")
	exported := token.NewColorGroups()
	exported.Put(brand)

	handwritten := string(testutil.LoadFixtureFile(t, "handwritten.css"))

	for name, text := range map[string]string{"empty": "", "handwritten": handwritten} {
		t.Run(name, func(t *testing.T) {
			run := func(text string) string {
				doc := stylesheet.Parse(text, stylesheet.Options{})
				prims := merge.MergePrimitives(doc.Primitives(), exported)
				require.NoError(t, prims.Warnings)
				resolved, err := merge.Resolve(brandEntries(), palette.WithStandard(prims.Candidates))
				require.NoError(t, err)
				out := merge.Render(doc, merge.Input{
					Colors: &merge.ColorInput{Primitives: prims.Groups, Semantic: resolved},
					Fonts: &merge.FontInput{Rules: []token.FontRule{
						{Class: "font-body", Utilities: []string{"font-sans", "font-normal", "text-sm", "leading-relaxed"}},
					}},
				}, merge.Options{})
				return out.CSS
			}

			first := run(text)
			second := run(first)
			assert.Equal(t, first, second)
			assert.Equal(t, second, run(second))
		})
	}
}

func TestRender_Preservation(t *testing.T) {
	text := string(testutil.LoadFixtureFile(t, "handwritten.css"))
	in := merge.Input{
		Colors: &merge.ColorInput{Semantic: resolve(t, brandEntries())},
		Fonts:  &merge.FontInput{},
	}

	out := render(text, in).CSS
	again := render(out, in).CSS

	for _, css := range []string{out, again} {
		for _, kept := range []string{
			"/* Layout helpers */",
			".card-shadow {\n    box-shadow: 0 1px 2px rgb(0 0 0 / 0.1);\n  }",
			".text-balance-nice {\n    text-wrap: balance;\n  }",
			".prose a {\n  color: inherit;\n}",
			"body {\n  background: var(--background);\n}",
			"@plugin \"@tailwindcss/typography\";",
			"--radius-card: 12px;",
			"/* Fonts */\n  --font-sans: \"Mukta\", sans-serif;",
			"--font-mono: \"Menlo\", monospace;",
			"--background: #fdfdfd;",
			".font-legacy {\n    @apply font-serif text-lg;\n  }",
		} {
			assert.Equal(t, 1, strings.Count(css, kept), "%q", kept)
		}

		// Managed color content of the previous run is regenerated, not kept.
		assert.NotContains(t, css, ".bg-old")
		assert.NotContains(t, css, "--color-bg-old")

		// Existing primitives stay.
		assert.Contains(t, css, "/* Accent Colors */\n  --color-accent-500: oklch(0.700 0.150 40.0);")
	}
}

func TestRender_Layout(t *testing.T) {
	text := string(testutil.LoadFixtureFile(t, "handwritten.css"))
	out := render(text, merge.Input{
		Colors: &merge.ColorInput{Primitives: token.NewColorGroups(), Semantic: resolve(t, brandEntries())},
	}).CSS

	order := []string{
		`@import "tailwindcss";`,
		":root {",
		"@theme {",
		"@theme inline {",
		"@media (prefers-color-scheme: dark) {",
		".dark {",
		"@layer utilities {",
		"\nbody {",
		".prose a {",
	}
	last := -1
	for _, marker := range order {
		i := strings.Index(out, marker)
		require.GreaterOrEqual(t, i, 0, marker)
		assert.Greater(t, i, last, "%q out of order", marker)
		last = i
	}

	utilities := out[strings.Index(out, "@layer utilities {"):]
	assert.Less(t, strings.Index(utilities, ".bg-brand {"), strings.Index(utilities, ".font-legacy {"),
		"color rules precede carried font rules")
	assert.Less(t, strings.Index(utilities, ".font-legacy {"), strings.Index(utilities, "/* Layout helpers */"),
		"font rules precede foreign rules")
}

func TestRender_FontsOnlyCarriesColors(t *testing.T) {
	text := string(testutil.LoadFixtureFile(t, "colors-scaffold.css"))
	out := render(text, merge.Input{Fonts: &merge.FontInput{
		Rules: []token.FontRule{{Class: "font-caption", Utilities: []string{"font-sans", "text-xs"}}},
	}})

	assert.Contains(t, out.CSS, ".bg-brand {\n    @apply bg-blue-500;\n  }")
	assert.Contains(t, out.CSS, ".bg-brand:hover {\n    @apply bg-blue-600;\n  }")
	assert.Contains(t, out.CSS, "--color-bg-brand: var(--color-blue-500);")
	assert.Contains(t, out.CSS, "--color-bg-brand-hover: var(--color-blue-800);")
	assert.Contains(t, out.CSS, ".font-caption {\n    @apply font-sans text-xs;\n  }")
	assert.Equal(t, 2, out.ColorRules)
	assert.Equal(t, 1, out.FontRules)

	// A colors-only run over that output keeps the font rule verbatim.
	back := render(out.CSS, merge.Input{Colors: &merge.ColorInput{
		Primitives: token.NewColorGroups(),
		Semantic:   resolve(t, brandEntries()),
	}})
	assert.Contains(t, back.CSS, ".font-caption {\n    @apply font-sans text-xs;\n  }")
	assert.Equal(t, 1, back.FontRules)
}

func TestRender_FontVariables(t *testing.T) {
	text := string(testutil.LoadFixtureFile(t, "handwritten.css"))
	out := render(text, merge.Input{Fonts: &merge.FontInput{Variables: []token.FontVar{
		{Name: "sans", Value: `"Inter", sans-serif`},
		{Name: "display", Value: `"Bree Serif", serif`},
	}}}).CSS

	assert.Contains(t, out, "/* Fonts */\n  --font-sans: \"Inter\", sans-serif;\n  --font-display: \"Bree Serif\", serif;\n  --radius-card: 12px;")
	assert.NotContains(t, out, `"Mukta"`)
}

func TestResolve_HoverMatchedIndependently(t *testing.T) {
	entries := []token.SemanticEntry{
		token.NewSemanticEntry("bg-brand-default-hover", "#ef4444", "#b91c1c"),
		token.NewSemanticEntry("bg-brand-default", "#3b82f6", "#1d4ed8"),
	}
	resolved := resolve(t, entries)
	require.Len(t, resolved, 2)

	assert.Equal(t, "bg-brand", resolved[0].Name, "base entries resolve first")
	assert.Equal(t, "blue-500", resolved[0].LightMatch.Name)
	assert.Equal(t, "bg-brand-hover", resolved[1].Name)
	assert.Equal(t, "red-500", resolved[1].LightMatch.Name)
	assert.Equal(t, "red-700", resolved[1].DarkMatch.Name)

	out := render("", merge.Input{Colors: &merge.ColorInput{Primitives: token.NewColorGroups(), Semantic: resolved}})
	assert.Contains(t, out.CSS, ".bg-brand:hover {\n    @apply bg-red-500;\n  }")
}

func TestResolve_Skips(t *testing.T) {
	entries := []token.SemanticEntry{
		token.NewSemanticEntry("bg-brand-default", "#3b82f6", ""),
		token.NewSemanticEntry("text-danger", "not-a-color", "#b91c1c"),
		token.NewSemanticEntry("border-neutral", "#e5e5e5", "#404040"),
	}
	resolved, err := merge.Resolve(entries, palette.WithStandard())
	require.Len(t, resolved, 1)
	assert.Equal(t, "border-neutral", resolved[0].Name)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.True(t, errors.Is(errs[0], merge.ErrIncomplete))
	assert.True(t, errors.Is(errs[1], merge.ErrNoMatch))

	_, err = merge.Resolve(brandEntries(), palette.NewCatalogue())
	assert.ErrorIs(t, err, merge.ErrNoMatch, "empty catalogue")
}

func TestRender_OrphanHover(t *testing.T) {
	resolved := resolve(t, []token.SemanticEntry{
		token.NewSemanticEntry("bg-brand-hover", "#2563eb", "#1e40af"),
	})
	out := render("", merge.Input{Colors: &merge.ColorInput{Primitives: token.NewColorGroups(), Semantic: resolved}})
	assert.ErrorIs(t, out.Warnings, merge.ErrOrphanHover)
	assert.Zero(t, out.ColorRules)
	assert.Contains(t, out.CSS, "--color-bg-brand-hover: var(--color-blue-600);")
}

func TestRender_SemanticGrouping(t *testing.T) {
	resolved := resolve(t, []token.SemanticEntry{
		token.NewSemanticEntry("text-neutral-default", "#171717", "#fafafa"),
		token.NewSemanticEntry("bg-neutral-default", "#ffffff", "#0a0a0a"),
		token.NewSemanticEntry("bg-brand-secondary", "#dbeafe", "#1e3a8a"),
		token.NewSemanticEntry("bg-brand-default", "#3b82f6", "#1d4ed8"),
	})
	out := render("", merge.Input{Colors: &merge.ColorInput{Primitives: token.NewColorGroups(), Semantic: resolved}})

	assert.Contains(t, out.CSS, "  /* Semantic Colors - Light Theme */\n"+
		"  /* Brand */\n"+
		"  --color-bg-brand: var(--color-blue-500);\n"+
		"  --color-bg-brand-secondary: var(--color-blue-100);\n"+
		"\n"+
		"  /* Neutral */\n"+
		"  --color-bg-neutral: var(--color-white);\n"+
		"  --color-text-neutral: var(--color-neutral-900);\n")

	// Rules follow export order.
	assert.Less(t, strings.Index(out.CSS, ".text-neutral {"), strings.Index(out.CSS, ".bg-neutral {"))
}

var oklchValue = regexp.MustCompile(`^oklch\(\d\.\d{3} \d+\.\d{3} \d{1,3}\.\d\)$`)

func TestMergePrimitives(t *testing.T) {
	existing := token.NewColorGroups()
	old := existing.Ensure("brand")
	old.Set("50", "oklch(0.980 0.010 250.0)")
	old.Set("500", "oklch(0.100 0.100 10.0)")
	existing.Ensure("accent").Set("500", "oklch(0.700 0.150 40.0)")

	exported := token.NewColorGroups()
	src := exported.Ensure("brand")
	src.Set("500", "#3b82f6")
	src.Set("900", "#nothex")
	exported.Ensure("sunset").Set("500", "#f97316")

	p := merge.MergePrimitives(existing, exported)
	assert.Equal(t, 2, p.Existing)
	assert.Equal(t, 2, p.Exported)

	var families []string
	for _, g := range p.Groups.All() {
		families = append(families, g.Family)
	}
	assert.Equal(t, []string{"brand", "sunset", "accent"}, families)

	brand, ok := p.Groups.Get("brand")
	require.True(t, ok)
	assert.Equal(t, "oklch(0.980 0.010 250.0)", brand.Shades["50"], "existing-only shade kept")
	assert.Regexp(t, oklchValue, brand.Shades["500"], "exported shade converted")
	assert.Equal(t, "#nothex", brand.Shades["900"], "unconvertible shade keeps its value")

	require.Error(t, p.Warnings)
	assert.Len(t, multierr.Errors(p.Warnings), 1)

	require.Len(t, p.Candidates, 3)
	assert.Equal(t, "#3b82f6", p.Candidates[0].Shades["500"], "candidates hold exported values")

	m, ok := palette.WithStandard(p.Candidates).Nearest("#3b82f6")
	require.True(t, ok)
	assert.Equal(t, "brand-500", m.Name)
}

func TestRender_KeepsHandwrittenFontClasses(t *testing.T) {
	text := `@layer utilities {
  /* Brand display heading, hand written */
  .font-display {
    @apply font-serif text-6xl;
  }

  /* Old heading */
  .font-heading-old {
    @apply font-sans text-4xl;
  }

  .font-body {
    @apply font-sans text-base;
  }
}`
	opts := stylesheet.Options{IsManagedFont: func(class string) bool { return strings.HasPrefix(class, "font-heading-") }}
	in := merge.Input{Fonts: &merge.FontInput{Rules: []token.FontRule{
		{Class: "font-body", Utilities: []string{"font-sans", "font-normal", "text-sm"}},
	}}}

	out := merge.Render(stylesheet.Parse(text, opts), in, merge.Options{})
	again := merge.Render(stylesheet.Parse(out.CSS, opts), in, merge.Options{})
	assert.Equal(t, out.CSS, again.CSS)
	assert.Equal(t, 1, out.FontRules)

	for _, css := range []string{out.CSS, again.CSS} {
		assert.Equal(t, 1, strings.Count(css,
			"/* Brand display heading, hand written */\n  .font-display {\n    @apply font-serif text-6xl;\n  }"))
		assert.Equal(t, 1, strings.Count(css, ".font-body {\n    @apply font-sans font-normal text-sm;\n  }"))
		assert.NotContains(t, css, "text-base")

		// Classes claimed by a glob are removed with their comments.
		assert.NotContains(t, css, ".font-heading-old")
		assert.NotContains(t, css, "/* Old heading */")
	}
	assert.Less(t, strings.Index(out.CSS, ".font-body {"), strings.Index(out.CSS, ".font-display {"),
		"generated font rules precede kept ones")
}

func TestRender_RuleComments(t *testing.T) {
	text := `@layer utilities {
  /* Primary call to action */
  .bg-brand {
    @apply bg-red-500;
  }

  /* Retired */
  .bg-old {
    @apply bg-red-500;
  }

  /* Layout helpers */

  .card-shadow {
    box-shadow: none;
  }
}`
	in := merge.Input{Colors: &merge.ColorInput{
		Primitives: token.NewColorGroups(),
		Semantic:   resolve(t, brandEntries()),
	}}

	out := render(text, in).CSS
	again := render(out, in).CSS
	assert.Equal(t, out, again)

	assert.Contains(t, out, "  /* Primary call to action */\n  .bg-brand {\n    @apply bg-blue-500;\n  }")
	assert.NotContains(t, out, "/* Retired */")
	assert.NotContains(t, out, ".bg-old")
	assert.Equal(t, 1, strings.Count(out, "/* Layout helpers */"))
}

func TestRender_TrailingThemeComments(t *testing.T) {
	text := `@theme {
  --radius: 4px;
  /* TODO */
}`
	runs := map[string]merge.Input{
		"colors": {Colors: &merge.ColorInput{Primitives: token.NewColorGroups(), Semantic: resolve(t, brandEntries())}},
		"fonts":  {Fonts: &merge.FontInput{}},
	}
	for name, in := range runs {
		t.Run(name, func(t *testing.T) {
			out := render(text, in).CSS
			again := render(out, in).CSS
			assert.Equal(t, out, again)
			assert.Equal(t, 1, strings.Count(out, "/* TODO */"))
			assert.Contains(t, out, "--radius: 4px;")
		})
	}
}
