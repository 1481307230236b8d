package versions

// NotFound is reported for any package whose version cannot be determined.
const NotFound = "Not Found"

// WatchList is the ordered set of first-party and ecosystem packages whose
// versions are always reported.
var WatchList = []string{
	"nx",
	"@nrwl/angular",
	"@nrwl/cypress",
	"@nrwl/detox",
	"@nrwl/devkit",
	"@nrwl/eslint-plugin-nx",
	"@nrwl/express",
	"@nrwl/jest",
	"@nrwl/js",
	"@nrwl/linter",
	"@nrwl/nest",
	"@nrwl/next",
	"@nrwl/node",
	"@nrwl/nx-cloud",
	"@nrwl/nx-plugin",
	"@nrwl/react",
	"@nrwl/react-native",
	"@nrwl/schematics",
	"@nrwl/storybook",
	"@nrwl/web",
	"@nrwl/workspace",
	"typescript",
	"rxjs",
}
