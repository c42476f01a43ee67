// Package pdf renders a resume document to a paginated PDF.
//
// The renderer draws every page by hand on an A4 portrait canvas: a fixed
// header (photo, identity, contact lines and a rule) and a "Page N" footer on
// each page, then the resume sections in a fixed order. A vertical cursor
// tracks the next free position; a section that would start less than
// MinBlockHeight above the printable bottom moves to a new page. Tabular
// sections break between rows and repeat their head row.
//
// Example:
//
//	doc, err := cvdash.Load("cv_data.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	report, err := pdf.Render(pdf.RenderRequest{
//		Document: doc,
//		Writer:   outFile,
//		Config:   pdf.DefaultConfig(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Printf("wrote %d pages", report.Pages)
//
// Without RegularFont/BoldFont the core Helvetica font is used and text is
// transcoded to Windows-1252; runes outside that code page are dropped.
package pdf
