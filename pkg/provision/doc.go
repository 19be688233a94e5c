// Package provision copies the Pantheon deployment workflows into a
// consuming project and bootstraps their documentation.
//
// A run is a single synchronous pass over two file classes:
//
//   - Managed files are owned by the package. They are copied from the
//     package templates on every run, replacing whatever is on disk.
//   - Auxiliary files are created once for the user (changelog, README)
//     and never touched again.
//
// Each file is handled independently; a failure is recorded in the Report
// and the run moves on. The only early exit is a missing package directory.
//
//	pctx, err := provision.Resolve(vendorDir, workflow.DefaultPackage)
//	report := provision.New(pctx).Run()
//	for _, e := range report.Entries {
//		fmt.Println(e.Name, e.Outcome)
//	}
package provision
