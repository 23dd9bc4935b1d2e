package inventory

// Fixture returns an inventory preloaded with the demonstration dataset.
// The records are a fixed literal table so every render of the demo
// dashboard is reproducible.
func Fixture() *Inventory {
	return New(
		WithRecords(fixtureRecords),
		WithCategories(fixtureCategories),
		WithRequirements(fixtureRequirements),
	)
}

var fixtureCategories = []Category{
	{Name: "Programming Languages", Skills: []string{"Go", "Python", "Java", "TypeScript", "Rust"}},
	{Name: "Cloud & Infrastructure", Skills: []string{"AWS", "Terraform", "Kubernetes", "Docker"}},
	{Name: "Data & Analytics", Skills: []string{"SQL", "Spark", "Airflow", "Machine Learning"}},
	{Name: "Leadership", Skills: []string{"Mentoring", "Project Management"}},
}

var fixtureRequirements = map[string]int{
	"Blockchain":       5,
	"Rust":             4,
	"Machine Learning": 6,
	"Kubernetes":       5,
	"Terraform":        4,
	"Mentoring":        3,
}

var fixtureRecords = []Record{
	{EmployeeID: "E001", Skill: "Go", Department: "Engineering", Proficiency: "EXPERT", YearsExperience: 7},
	{EmployeeID: "E001", Skill: "Kubernetes", Department: "Engineering", Proficiency: "ADVANCED", YearsExperience: 4},
	{EmployeeID: "E001", Skill: "Terraform", Department: "Engineering", Proficiency: "INTERMEDIATE", YearsExperience: 2},
	{EmployeeID: "E002", Skill: "Python", Department: "Data", Proficiency: "EXPERT", YearsExperience: 8},
	{EmployeeID: "E002", Skill: "SQL", Department: "Data", Proficiency: "ADVANCED", YearsExperience: 6},
	{EmployeeID: "E002", Skill: "Machine Learning", Department: "Data", Proficiency: "ADVANCED", YearsExperience: 5},
	{EmployeeID: "E003", Skill: "Java", Department: "Engineering", Proficiency: "ADVANCED", YearsExperience: 9},
	{EmployeeID: "E003", Skill: "AWS", Department: "Engineering", Proficiency: "INTERMEDIATE", YearsExperience: 3},
	{EmployeeID: "E004", Skill: "TypeScript", Department: "Engineering", Proficiency: "ADVANCED", YearsExperience: 5},
	{EmployeeID: "E004", Skill: "Docker", Department: "Engineering", Proficiency: "ADVANCED", YearsExperience: 4},
	{EmployeeID: "E004", Skill: "Go", Department: "Engineering", Proficiency: "INTERMEDIATE", YearsExperience: 2},
	{EmployeeID: "E005", Skill: "Spark", Department: "Data", Proficiency: "INTERMEDIATE", YearsExperience: 3},
	{EmployeeID: "E005", Skill: "Airflow", Department: "Data", Proficiency: "BEGINNER", YearsExperience: 1},
	{EmployeeID: "E005", Skill: "Python", Department: "Data", Proficiency: "ADVANCED", YearsExperience: 6},
	{EmployeeID: "E006", Skill: "SQL", Department: "Data", Proficiency: "EXPERT", YearsExperience: 10},
	{EmployeeID: "E006", Skill: "Machine Learning", Department: "Data", Proficiency: "INTERMEDIATE", YearsExperience: 2},
	{EmployeeID: "E007", Skill: "Project Management", Department: "Product", Proficiency: "EXPERT", YearsExperience: 11},
	{EmployeeID: "E007", Skill: "Mentoring", Department: "Product", Proficiency: "ADVANCED", YearsExperience: 8},
	{EmployeeID: "E008", Skill: "AWS", Department: "Operations", Proficiency: "EXPERT", YearsExperience: 9},
	{EmployeeID: "E008", Skill: "Terraform", Department: "Operations", Proficiency: "ADVANCED", YearsExperience: 5},
	{EmployeeID: "E008", Skill: "Kubernetes", Department: "Operations", Proficiency: "ADVANCED", YearsExperience: 4},
	{EmployeeID: "E009", Skill: "Docker", Department: "Operations", Proficiency: "INTERMEDIATE", YearsExperience: 3},
	{EmployeeID: "E009", Skill: "Go", Department: "Engineering", Proficiency: "BEGINNER", YearsExperience: 1},
	{EmployeeID: "E010", Skill: "Python", Department: "Engineering", Proficiency: "INTERMEDIATE", YearsExperience: 2},
	{EmployeeID: "E010", Skill: "Kubernetes", Department: "Engineering", Proficiency: "BEGINNER", YearsExperience: 1},
	{EmployeeID: "E011", Skill: "Rust", Department: "Engineering", Proficiency: "INTERMEDIATE", YearsExperience: 2},
	{EmployeeID: "E011", Skill: "Go", Department: "Engineering", Proficiency: "ADVANCED", YearsExperience: 5},
	{EmployeeID: "E012", Skill: "Machine Learning", Department: "Data", Proficiency: "EXPERT", YearsExperience: 7},
	{EmployeeID: "E012", Skill: "Spark", Department: "Data", Proficiency: "ADVANCED", YearsExperience: 5},
	{EmployeeID: "E013", Skill: "Mentoring", Department: "Engineering", Proficiency: "ADVANCED", YearsExperience: 9},
	{EmployeeID: "E013", Skill: "Java", Department: "Engineering", Proficiency: "EXPERT", YearsExperience: 12},
	{EmployeeID: "E014", Skill: "TypeScript", Department: "Product", Proficiency: "INTERMEDIATE", YearsExperience: 3},
	{EmployeeID: "E014", Skill: "Project Management", Department: "Product", Proficiency: "INTERMEDIATE", YearsExperience: 4},
	{EmployeeID: "E015", Skill: "Airflow", Department: "Data", Proficiency: "INTERMEDIATE", YearsExperience: 2},
	{EmployeeID: "E015", Skill: "SQL", Department: "Data", Proficiency: "ADVANCED", YearsExperience: 5},
}
