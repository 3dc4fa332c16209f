package performance

// StandardDetail describes one learning standard for display purposes.
type StandardDetail struct {
	Label    string
	Category string
}

// standardDetails maps 8th-grade NYS math standard codes to their
// display label and reporting category. Columns in the gradebook that
// do not appear here are skipped by Format.
var standardDetails = map[string]StandardDetail{
	"8.NS.1": {"Rational vs. irrational numbers", "The Number System"},
	"8.NS.2": {"Approximating irrational numbers", "The Number System"},

	"8.EE.1": {"Integer exponent properties", "Expressions & Equations"},
	"8.EE.2": {"Square and cube roots", "Expressions & Equations"},
	"8.EE.3": {"Powers of ten estimation", "Expressions & Equations"},
	"8.EE.4": {"Scientific notation operations", "Expressions & Equations"},
	"8.EE.5": {"Proportional relationships and slope", "Expressions & Equations"},
	"8.EE.6": {"Similar triangles and y = mx + b", "Expressions & Equations"},
	"8.EE.7": {"Linear equations in one variable", "Expressions & Equations"},
	"8.EE.8": {"Systems of linear equations", "Expressions & Equations"},

	"8.F.1": {"Functions as input-output rules", "Functions"},
	"8.F.2": {"Comparing function representations", "Functions"},
	"8.F.3": {"Linear vs. nonlinear functions", "Functions"},
	"8.F.4": {"Constructing linear models", "Functions"},
	"8.F.5": {"Describing functional relationships", "Functions"},

	"8.G.1": {"Properties of rigid transformations", "Geometry"},
	"8.G.2": {"Congruence via transformations", "Geometry"},
	"8.G.3": {"Transformations on coordinates", "Geometry"},
	"8.G.4": {"Similarity via transformations", "Geometry"},
	"8.G.5": {"Angle relationships", "Geometry"},
	"8.G.6": {"Pythagorean theorem proof", "Geometry"},
	"8.G.7": {"Pythagorean theorem applications", "Geometry"},
	"8.G.8": {"Distance between points", "Geometry"},
	"8.G.9": {"Volume of cones, cylinders, spheres", "Geometry"},

	"8.SP.1": {"Scatter plots and association", "Statistics & Probability"},
	"8.SP.2": {"Lines of best fit", "Statistics & Probability"},
	"8.SP.3": {"Interpreting linear models", "Statistics & Probability"},
	"8.SP.4": {"Two-way tables", "Statistics & Probability"},
}

// Detail returns display metadata for a standard code. Unknown codes
// get the code itself as label under the "Other" category.
func Detail(code string) (StandardDetail, bool) {
	d, ok := standardDetails[code]
	if !ok {
		return StandardDetail{Label: code, Category: "Other"}, false
	}
	return d, true
}

// Known reports whether the code is a recognized standard.
func Known(code string) bool {
	_, ok := standardDetails[code]
	return ok
}
