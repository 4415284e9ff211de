package issue

var subjectNames = [...]string{
	SubjectNone:      "none",
	SubjectComponent: "component",
	SubjectImport:    "import",
	SubjectModel:     "model",
	SubjectUnits:     "units",
	SubjectVariable:  "variable",
}

func (s Subject) String() string {
	if s < 0 || int(s) >= len(subjectNames) {
		return "none"
	}
	return subjectNames[s]
}
