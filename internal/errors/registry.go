package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid headless.json",
		Detail:   "The configuration file could not be parsed as JSON.",
	},
	"E102": {
		Category:   CategoryConfig,
		Message:    "Invalid gallery port",
		Detail:     "The gallery port must be between 1 and 65535.",
		Suggestion: `Set "gallery": {"port": 7070} in headless.json or pass --port.`,
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Scenario directory not found",
		Detail:   "The directory configured under scenarios.dir does not exist.",
	},
	"E104": {
		Category:   CategoryConfig,
		Message:    "Publish bucket missing",
		Detail:     "Publishing needs an S3 bucket.",
		Suggestion: `Set "publish": {"bucket": "..."} in headless.json or pass --bucket.`,
	},

	// ============================================
	// Scenario Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryScenario,
		Message:  "Invalid scenario file",
		Detail:   "The scenario file is not valid YAML or does not match the scenario format.",
	},
	"E202": {
		Category:   CategoryScenario,
		Message:    "Unknown step action",
		Detail:     "Steps must use one of click, hover, unhover, keydown or keyboard.",
		Suggestion: "Check the spelling of the action field.",
	},
	"E203": {
		Category: CategoryScenario,
		Message:  "Element not found",
		Detail:   "No element matched the step's role, name or text selector.",
	},
	"E204": {
		Category: CategoryScenario,
		Message:  "Invalid expectation",
		Detail:   "The expect expression could not be compiled.",
	},
	"E205": {
		Category: CategoryScenario,
		Message:  "Expectation failed",
		Detail:   "The expect expression evaluated to false.",
	},
	"E206": {
		Category: CategoryScenario,
		Message:  "Expectation is not boolean",
		Detail:   "Expect expressions must evaluate to true or false.",
	},

	// ============================================
	// Story and Gallery Errors (E300-E399)
	// ============================================

	"E301": {
		Category:   CategoryStory,
		Message:    "Story not found",
		Detail:     "No story is registered under this id.",
		Suggestion: "Run `headless stories` to list the available stories.",
	},
	"E302": {
		Category: CategoryStory,
		Message:  "Story render failed",
		Detail:   "The story's tree could not be rendered to HTML.",
	},
	"E303": {
		Category: CategoryGallery,
		Message:  "Invalid gallery message",
		Detail:   "The websocket message is not a valid event.",
	},
	"E304": {
		Category: CategoryGallery,
		Message:  "Gallery server failed",
		Detail:   "The gallery HTTP server stopped with an error.",
	},

	// ============================================
	// Publish Errors (E400-E499)
	// ============================================

	"E401": {
		Category: CategoryPublish,
		Message:  "Static build failed",
		Detail:   "The static gallery could not be written to the output directory.",
	},
	"E402": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Detail:   "A page could not be uploaded to the bucket.",
	},
	"E403": {
		Category: CategoryPublish,
		Message:  "AWS configuration failed",
		Detail:   "Credentials or region for the S3 client could not be resolved.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
