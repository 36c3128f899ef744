package diagnosis

// seedMisconceptions is the built-in taxonomy of learning misconceptions.
var seedMisconceptions = []Misconception{
	// General
	{
		ID:          "gen-misread-question",
		Category:    CategoryGeneral,
		Label:       "Misread question",
		Description: "Answers a different question than the one asked; e.g., gives the total when asked for the difference",
		Examples:    []string{"asked for the remainder, gave the quotient", "asked for the cause, described the effect"},
	},
	{
		ID:          "gen-overgeneralization",
		Category:    CategoryGeneral,
		Label:       "Overgeneralization",
		Description: "Applies a rule outside the cases where it holds",
		Examples:    []string{"multiplying always makes numbers bigger", "all plurals end in -s"},
	},
	{
		ID:          "gen-surface-matching",
		Category:    CategoryGeneral,
		Label:       "Surface feature matching",
		Description: "Picks an answer because it shares words or look with the question rather than meaning",
		Examples:    []string{"chooses the option repeating a keyword from the prompt"},
	},
	{
		ID:          "gen-partial-recall",
		Category:    CategoryGeneral,
		Label:       "Partial recall",
		Description: "Remembers part of a fact or definition and fills the rest incorrectly",
		Examples:    []string{"knows the formula shape but swaps a term"},
	},

	// Factual
	{
		ID:          "fact-term-confusion",
		Category:    "factual",
		Label:       "Term confusion",
		Description: "Confuses two related terms or names; e.g., mitosis and meiosis",
		Examples:    []string{"mitosis for meiosis", "latitude for longitude"},
	},
	{
		ID:          "fact-unit-scale",
		Category:    "factual",
		Label:       "Unit or scale error",
		Description: "Uses the wrong unit or is off by an order of magnitude",
		Examples:    []string{"100 cm = 10 m", "answers in grams when asked for kilograms"},
	},
	{
		ID:          "fact-date-order",
		Category:    "factual",
		Label:       "Chronology mix-up",
		Description: "Places events or stages in the wrong order",
		Examples:    []string{"puts the effect's date before the cause"},
	},

	// Procedural
	{
		ID:          "proc-step-omission",
		Category:    "procedural",
		Label:       "Skipped step",
		Description: "Leaves out a required step of a procedure; e.g., forgets to carry or to simplify",
		Examples:    []string{"47 + 38 = 715", "leaves 4/8 unsimplified"},
	},
	{
		ID:          "proc-step-order",
		Category:    "procedural",
		Label:       "Steps out of order",
		Description: "Performs the right steps in the wrong order",
		Examples:    []string{"adds before multiplying in 2 + 3 * 4"},
	},
	{
		ID:          "proc-sign-direction",
		Category:    "procedural",
		Label:       "Sign or direction error",
		Description: "Reverses a sign, inequality or direction during a procedure",
		Examples:    []string{"subtracts the smaller digit from the larger regardless of position"},
	},

	// Conceptual
	{
		ID:          "concept-cause-effect",
		Category:    "conceptual",
		Label:       "Cause and effect reversed",
		Description: "Explains a relationship backwards, treating the effect as the cause",
		Examples:    []string{"plants make sunlight", "rain is caused by wet ground"},
	},
	{
		ID:          "concept-procedure-only",
		Category:    "conceptual",
		Label:       "Procedure without meaning",
		Description: "Executes a method correctly but cannot say what the result means",
		Examples:    []string{"computes 3/4 but cannot shade it"},
	},
	{
		ID:          "concept-whole-number-bias",
		Category:    "conceptual",
		Label:       "Whole-number bias",
		Description: "Treats parts or ratios like whole numbers; e.g., thinks 1/8 > 1/4 because 8 > 4",
		Examples:    []string{"1/8 > 1/4", "0.25 > 0.5"},
	},
}
