package prediction

// TypicalAccuracy describes how close combined predictions usually land.
const TypicalAccuracy = "Predictions combine multiple proven methods and exclude outliers. " +
	"Typical accuracy is within 2-4 inches of adult height."

// MethodInfo describes a prediction method for users choosing what to enter.
type MethodInfo struct {
	Method      string `json:"method"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
}

// Catalog lists every method in computation order.
func Catalog() []MethodInfo {
	return []MethodInfo{
		{
			Method:      MethodLinearRegression,
			Title:       "Linear Regression",
			Description: "Statistical analysis of growth patterns to project future height",
		},
		{
			Method:      MethodParentalHeight,
			Title:       "Parental Height",
			Description: "Genetic potential calculated from both biological parents' heights",
		},
		{
			Method:      MethodHeightAtAge2,
			Title:       "Double Height Rule",
			Description: "Traditional paediatric method: height at age 2 doubled for adult prediction",
			Optional:    true,
		},
	}
}
