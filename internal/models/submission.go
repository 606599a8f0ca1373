package models

// Submission is one completed booking questionnaire. The JSON tags double as
// the on-disk format of the submissions file, so they must stay stable.
type Submission struct {
	ID          string `json:"id"`
	SubmittedAt string `json:"submittedAt"`
	LookedAt    bool   `json:"lookedAt"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`

	BirthPlace               string `json:"birthPlace"`
	BirthDate                string `json:"birthDate"`
	BirthTime                string `json:"birthTime"`
	PersonalPower            string `json:"personalPower"`
	FragmentedAreas          string `json:"fragmentedAreas"`
	FullyYourselfMoment      string `json:"fullyYourselfMoment"`
	AlignmentInvestment      string `json:"alignmentInvestment"`
	AlignedSeenSupported     string `json:"alignedSeenSupported"`
	WitnessedTrueSelf        string `json:"witnessedTrueSelf"`
	FirstCallPreference      string `json:"firstCallPreference"`
	FirstCallPreferenceOther string `json:"firstCallPreferenceOther"`
}
