package curriculum

// defaultEntries is the starter curriculum for new students.
var defaultEntries = []Entry{
	{Domain: "number-facts", Category: CategoryFactual, DisplayName: "Number Facts"},
	{Domain: "place-value", Category: CategoryConceptual, DisplayName: "Place Value"},
	{Domain: "addition", Category: CategoryProcedural, DisplayName: "Addition", Prerequisites: []string{"number-facts", "place-value"}},
	{Domain: "subtraction", Category: CategoryProcedural, DisplayName: "Subtraction", Prerequisites: []string{"addition"}},
	{Domain: "multiplication", Category: CategoryProcedural, DisplayName: "Multiplication", Prerequisites: []string{"addition"}},
	{Domain: "times-tables", Category: CategoryFactual, DisplayName: "Times Tables", Prerequisites: []string{"multiplication"}},
	{Domain: "division", Category: CategoryProcedural, DisplayName: "Division", Prerequisites: []string{"multiplication"}},
	{Domain: "fractions", Category: CategoryConceptual, DisplayName: "Fractions", Prerequisites: []string{"division"}},
	{Domain: "photosynthesis", Category: CategoryConceptual, DisplayName: "Photosynthesis"},
	{Domain: "plant-parts", Category: CategoryFactual, DisplayName: "Parts of a Plant"},
}

// Default returns the built-in curriculum.
func Default() *Curriculum {
	c, err := New(defaultEntries)
	if err != nil {
		panic("curriculum: invalid default: " + err.Error())
	}
	return c
}
