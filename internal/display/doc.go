// Package display formats the user-facing text of rustcheat that is not sheet
// content: sheet titles, the section outline tree and warnings.
//
// # Outline
//
//	fmt.Println(display.SheetTitle(0, "basics"))        // 0 - Basics
//	fmt.Println(display.OutlineLine(0, 2, "Intro"))     // ├── 1. Intro
//	fmt.Println(display.OutlineLine(1, 2, "Outro"))     // └── 2. Outro
//
// # Warnings
//
//	warning := display.Warning{
//	    Title:      "Sheets without sections",
//	    Sheets:     []string{"notes"},
//	    Suggestion: "Start each section with a divider line followed by a numbered header",
//	}
//	warning.Display(os.Stderr)
//
// All functions accept io.Writer or return strings so output can be captured
// in tests. Colors go through fatih/color and disappear when color is off.
package display
