/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package merge

// Scaffold used for sections missing from the stylesheet.
const (
	defaultHeader = `/*
 * Generated TailwindCSS 4.1 styles from Figma colors
 * This file is auto-generated. Do not edit manually.
 * Run: tokensync sync to regenerate
 */

@import "tailwindcss";`

	defaultRoot = `:root {
  --background: #ffffff;
  --foreground: #171717;
}`

	defaultThemeInline = `@theme inline {
  --color-background: var(--background);
  --color-foreground: var(--foreground);
}`

	defaultDarkMedia = `@media (prefers-color-scheme: dark) {
  :root {
    --background: #0a0a0a;
    --foreground: #ededed;
  }
}`

	defaultBody = `body {
  background: var(--background);
  color: var(--foreground);
  font-family: Arial, Helvetica, sans-serif;
}`

	emptyUtilities = "@layer utilities {\n}"
)
