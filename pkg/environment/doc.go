// Package environment names the deployment environment a process runs in
// (development, staging or production). Parse accepts the short aliases dev,
// stage and prod and falls back to Development for anything else.
//
//	env := environment.Parse(os.Getenv("REGCHECK_ENV"))
//	if env.IsProduction() {
//		// ...
//	}
package environment
