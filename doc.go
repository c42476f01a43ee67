// Package cvdash loads a JSON resume and renders it for people.
//
// A Document is decoded once and then read by three surfaces: the terminal
// view in this package, the HTML page in internal/server and the paginated
// PDF export in package pdf. Lists that are absent or malformed in the data
// file degrade to a single placeholder instead of failing the load.
//
// Example:
//
//	doc, err := cvdash.Load("resume.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = cvdash.Render(cvdash.RenderRequest{
//		Document: doc,
//		Writer:   os.Stdout,
//		Width:    80,
//		Theme:    cvdash.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package cvdash
